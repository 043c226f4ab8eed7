// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, the places API, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-process cache backed by go-cache
// - cache/redis: Redis-based cache implementation
// - places/googlemaps: Places client built on the Google Maps Go client
// - logger/structured: logrus-backed structured logger
// - metrics/prometheus: Prometheus recorder with its own registry
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
package infrastructure
