package youtube

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creator_sync/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(Config{BaseURL: srv.URL, APIKey: "test-key", Timeout: 5 * time.Second}, logger)
}

const playlistPage = `{
  "nextPageToken": "CAUQAA",
  "pageInfo": {"totalResults": 120, "resultsPerPage": 3},
  "items": [
    {"contentDetails": {"videoId": "v3", "videoPublishedAt": "2024-05-03T10:00:00Z"}},
    {"contentDetails": {"videoId": "v2", "videoPublishedAt": "2024-05-02T10:00:00Z"}},
    {"contentDetails": {"videoId": "v1", "videoPublishedAt": "2024-05-01T10:00:00Z"}}
  ]
}`

const videosPage = `{
  "items": [
    {"id": "v1", "snippet": {"title": "First", "publishedAt": "2024-05-01T10:00:00Z"},
     "statistics": {"viewCount": "10", "likeCount": "1", "commentCount": "0"}},
    {"id": "v3", "snippet": {"title": "Third", "publishedAt": "2024-05-03T10:00:00Z"},
     "statistics": {"viewCount": "3000", "commentCount": "12"}}
  ]
}`

func TestClient_GetAccountInfo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/channels", r.URL.Path)
		assert.Equal(t, "UCabc", r.URL.Query().Get("id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"items":[{"id":"UCabc","snippet":{"title":"Chan"},"statistics":{"videoCount":"120"}}]}`))
	})

	info, err := c.GetAccountInfo(context.Background(), "UCabc")

	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "UCabc", info.ExternalID)
	assert.Equal(t, "Chan", info.Title)
	assert.Equal(t, int64(120), info.ItemCount)
}

func TestClient_GetAccountInfo_Unknown(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	})

	info, err := c.GetAccountInfo(context.Background(), "UCmissing")

	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestClient_ListItemsPage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/playlistItems":
			assert.Equal(t, "UUabc", r.URL.Query().Get("playlistId"))
			assert.Equal(t, "50", r.URL.Query().Get("maxResults"))
			assert.Equal(t, "tok", r.URL.Query().Get("pageToken"))
			_, _ = w.Write([]byte(playlistPage))
		case "/videos":
			assert.Equal(t, "v3,v2,v1", r.URL.Query().Get("id"))
			_, _ = w.Write([]byte(videosPage))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	page, err := c.ListItemsPage(context.Background(), domain.PageRequest{
		ExternalID: "UCabc",
		PageSize:   50,
		PageToken:  "tok",
	})

	require.NoError(t, err)
	assert.Equal(t, "CAUQAA", page.NextPageToken)
	assert.Equal(t, int64(120), page.TotalResults)
	require.Len(t, page.Items, 2, "v2 is private and missing from videos")
	assert.Equal(t, "v3", page.Items[0].ExternalID)
	assert.Equal(t, int64(3000), page.Items[0].Statistics.Views)
	assert.Zero(t, page.Items[0].Statistics.Likes)
	assert.Equal(t, int64(12), page.Items[0].Statistics.Comments)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), page.Items[1].PublishedAt)
}

func TestClient_ListItemsPage_PublishedAfterCutoff(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/playlistItems":
			_, _ = w.Write([]byte(playlistPage))
		case "/videos":
			assert.Equal(t, "v3", r.URL.Query().Get("id"))
			_, _ = w.Write([]byte(videosPage))
		}
	})

	after := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	page, err := c.ListItemsPage(context.Background(), domain.PageRequest{
		ExternalID:     "UCabc",
		PageSize:       10,
		PublishedAfter: &after,
	})

	require.NoError(t, err)
	assert.Empty(t, page.NextPageToken)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "v3", page.Items[0].ExternalID)
}

func TestClient_ListItemsPage_NothingNew(t *testing.T) {
	var videoCalls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/videos" {
			videoCalls.Add(1)
		}
		_, _ = w.Write([]byte(playlistPage))
	})

	after := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	page, err := c.ListItemsPage(context.Background(), domain.PageRequest{ExternalID: "UCabc", PublishedAfter: &after})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, videoCalls.Load())
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "server error is transient",
			status: http.StatusServiceUnavailable,
			body:   `{"error":{"code":503,"message":"backend"}}`,
			check: func(t *testing.T, err error) {
				assert.True(t, domain.IsTransient(err))
			},
		},
		{
			name:   "provider quota",
			status: http.StatusForbidden,
			body:   `{"error":{"code":403,"message":"quota","errors":[{"reason":"quotaExceeded"}]}}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
			},
		},
		{
			name:   "missing playlist",
			status: http.StatusNotFound,
			body:   `{"error":{"code":404,"errors":[{"reason":"playlistNotFound"}]}}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrAccountGone)
			},
		},
		{
			name:   "bad request is permanent",
			status: http.StatusBadRequest,
			body:   `{"error":{"code":400,"errors":[{"reason":"invalidParameter"}]}}`,
			check: func(t *testing.T, err error) {
				assert.False(t, domain.IsTransient(err))
				assert.Contains(t, err.Error(), "invalidParameter")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.ListItemsPage(context.Background(), domain.PageRequest{ExternalID: "UCabc"})

			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClient_CircuitBreakerOpens(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 5; i++ {
		_, err := c.GetAccountInfo(context.Background(), "UCabc")
		require.Error(t, err)
	}

	_, err := c.GetAccountInfo(context.Background(), "UCabc")

	require.Error(t, err)
	assert.True(t, domain.IsTransient(err))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(5), calls.Load())
}

func TestClient_Cost(t *testing.T) {
	c := New(Config{}, slog.New(slog.NewTextHandler(os.Stdout, nil)))

	assert.Equal(t, 1, c.Cost(domain.OpAccountInfo))
	assert.Equal(t, 2, c.Cost(domain.OpListItems))
	assert.Equal(t, ProviderID, c.ID())
}

func TestUploadsPlaylistID(t *testing.T) {
	assert.Equal(t, "UUxyz", UploadsPlaylistID("UCxyz"))
	assert.Equal(t, "PLxyz", UploadsPlaylistID("PLxyz"))
}
