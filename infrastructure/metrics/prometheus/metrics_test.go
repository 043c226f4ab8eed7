package prometheus

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"places-finder-api/core/interfaces"
)

var _ interfaces.Metrics = (*Recorder)(nil)

func TestRecorder_CacheLookup(t *testing.T) {
	r := NewRecorder()

	r.CacheLookup(true)
	r.CacheLookup(true)
	r.CacheLookup(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.cacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.cacheLookups.WithLabelValues("miss")))
}

func TestRecorder_UpstreamCall(t *testing.T) {
	r := NewRecorder()

	r.UpstreamCall("text_search", "OK", 120*time.Millisecond)
	r.UpstreamCall("place_details", "NOT_FOUND", 40*time.Millisecond)
	r.UpstreamCall("place_details", "OK", 30*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.upstreamCalls.WithLabelValues("text_search", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.upstreamCalls.WithLabelValues("place_details", "NOT_FOUND")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.upstreamDuration))
}

func TestRecorder_DetailLookupFailed(t *testing.T) {
	r := NewRecorder()

	r.DetailLookupFailed()

	assert.Equal(t, 1.0, testutil.ToFloat64(r.detailFailures))
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	first := NewRecorder()
	second := NewRecorder()

	first.DetailLookupFailed()

	assert.Equal(t, 0.0, testutil.ToFloat64(second.detailFailures))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.PageFetched(false, time.Second)
	r.CacheLookup(false)

	server := httptest.NewServer(r.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "places_finder_page_request_duration_seconds")
	assert.Contains(t, string(body), `places_finder_result_cache_lookups_total{result="miss"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
