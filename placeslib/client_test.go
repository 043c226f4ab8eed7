package placeslib

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlacesAPI serves two chained pages per query plus details for every place
type fakePlacesAPI struct {
	textSearches atomic.Int32
	status       string
}

func (f *fakePlacesAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query()

	switch r.URL.Path {
	case "/maps/api/place/textsearch/json":
		f.textSearches.Add(1)
		if f.status != "" {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": f.status, "error_message": "denied"})
			return
		}
		if strings.Contains(q.Get("query"), "Atlantis") {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": "ZERO_RESULTS", "results": []interface{}{}})
			return
		}
		page, next := "1", "page-2"
		if q.Get("pagetoken") == "page-2" {
			page, next = "2", ""
		}
		resp := map[string]interface{}{
			"status": "OK",
			"results": []map[string]interface{}{
				{"name": "Cafe " + page, "formatted_address": "1 Main St", "place_id": "place-" + page},
			},
		}
		if next != "" {
			resp["next_page_token"] = next
		}
		_ = json.NewEncoder(w).Encode(resp)
	case "/maps/api/place/details/json":
		id := q.Get("placeid")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"result": map[string]interface{}{
				"website":            fmt.Sprintf("https://%s.example.com", id),
				"rating":             4.5,
				"user_ratings_total": 12,
			},
		})
	default:
		http.NotFound(w, r)
	}
}

func newTestLibClient(t *testing.T, fake *fakePlacesAPI, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	base := []Option{
		WithAPIKey("test-key"),
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
		WithPageDelay(0),
	}
	client, err := NewClient(append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient()

	require.Error(t, err)
	var libErr *Error
	require.ErrorAs(t, err, &libErr)
	assert.Equal(t, ErrorTypeConfiguration, libErr.Type)
}

func TestNewClient_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero ttl", WithCacheTTL(0)},
		{"no workers", WithWorkers(0)},
		{"negative delay", WithPageDelay(-1)},
		{"no pages", WithMaxPages(0)},
		{"nil cache", WithCache(nil)},
		{"nil http client", WithHTTPClient(nil)},
		{"zero lookup timeout", WithLookupTimeout(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(WithAPIKey("k"), tt.opt)
			require.Error(t, err)
			assert.Contains(t, err.Error(), string(ErrorTypeConfiguration))
		})
	}
}

func TestClient_SearchAndLoadMore(t *testing.T) {
	fake := &fakePlacesAPI{}
	client := newTestLibClient(t, fake)
	ctx := context.Background()

	first, err := client.Search(ctx, "coffee", "Seattle")
	require.NoError(t, err)
	require.Len(t, first.Businesses, 1)
	assert.Equal(t, "place-1", first.Businesses[0].PlaceID)
	require.NotNil(t, first.Businesses[0].Website)
	assert.Equal(t, "https://place-1.example.com", *first.Businesses[0].Website)
	require.NotNil(t, first.Businesses[0].ReviewCount)
	assert.Equal(t, 12, *first.Businesses[0].ReviewCount)
	assert.True(t, first.HasMore())
	assert.Equal(t, 1, first.Number)
	assert.False(t, first.Cached)

	second, err := client.LoadMore(ctx, "coffee", "Seattle", first.NextPageToken)
	require.NoError(t, err)
	require.Len(t, second.Businesses, 1)
	assert.Equal(t, "place-2", second.Businesses[0].PlaceID)
	assert.False(t, second.HasMore())
	assert.Equal(t, 2, second.Number)
}

func TestClient_SearchServedFromCache(t *testing.T) {
	fake := &fakePlacesAPI{}
	client := newTestLibClient(t, fake)
	ctx := context.Background()

	_, err := client.Search(ctx, "coffee", "Seattle")
	require.NoError(t, err)
	again, err := client.Search(ctx, "coffee", "Seattle")
	require.NoError(t, err)

	assert.True(t, again.Cached)
	assert.Equal(t, int32(1), fake.textSearches.Load())
}

func TestClient_LoadMoreRequiresToken(t *testing.T) {
	client := newTestLibClient(t, &fakePlacesAPI{})

	_, err := client.LoadMore(context.Background(), "coffee", "Seattle", "")

	assert.True(t, IsValidationError(err))
}

func TestClient_ValidationError(t *testing.T) {
	client := newTestLibClient(t, &fakePlacesAPI{})

	_, err := client.Search(context.Background(), "", "Seattle")

	assert.True(t, IsValidationError(err))
}

func TestClient_UpstreamError(t *testing.T) {
	client := newTestLibClient(t, &fakePlacesAPI{status: "REQUEST_DENIED"})

	_, err := client.Search(context.Background(), "coffee", "Seattle")

	require.Error(t, err)
	assert.True(t, IsUpstreamError(err))
	assert.Equal(t, "REQUEST_DENIED", UpstreamStatus(err))
}

func TestClient_SearchMultiple(t *testing.T) {
	client := newTestLibClient(t, &fakePlacesAPI{})

	result, err := client.SearchMultiple(context.Background(), "coffee", []string{"Seattle", "Atlantis"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalLocations)
	assert.Equal(t, 2, result.LocationsFound)
	assert.Len(t, result.Results["Seattle"], 1)
	assert.Empty(t, result.Results["Atlantis"])
}

func TestClient_Closed(t *testing.T) {
	client := newTestLibClient(t, &fakePlacesAPI{})
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Search(context.Background(), "coffee", "Seattle")
	assert.ErrorIs(t, err, ErrClientClosed)

	_, err = client.SearchMultiple(context.Background(), "coffee", []string{"Seattle"})
	assert.ErrorIs(t, err, ErrClientClosed)
}
