package interfaces

import "time"

// Metrics records operational counters for the search pipeline.
// Implementations must be safe for concurrent use.
type Metrics interface {
	// CacheLookup records a result cache hit or miss
	CacheLookup(hit bool)

	// UpstreamCall records one call to the places API with its outcome status
	UpstreamCall(operation, status string, duration time.Duration)

	// DetailLookupFailed records one absorbed detail lookup failure
	DetailLookupFailed()

	// PageFetched records a completed page request
	PageFetched(cached bool, duration time.Duration)
}

// NopMetrics discards all measurements
type NopMetrics struct{}

func (NopMetrics) CacheLookup(bool) {}
func (NopMetrics) UpstreamCall(string, string, time.Duration) {}
func (NopMetrics) DetailLookupFailed() {}
func (NopMetrics) PageFetched(bool, time.Duration) {}
