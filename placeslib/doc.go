// Package placeslib embeds the business search stack in another Go program
// without the HTTP layer. It shares the result cache, pagination rules and
// detail enrichment used by the API server.
package placeslib
