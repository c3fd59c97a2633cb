// Package youtube adapts the YouTube Data API v3 to the content provider
// contract of the sync engine.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"creator_sync/internal/domain"
	"creator_sync/internal/metrics"
)

const (
	ProviderID     = "youtube"
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	maxPageSize = 50
)

// Unit costs of one logical operation. A page reads playlistItems and videos.
var costs = map[domain.Operation]int{
	domain.OpAccountInfo: 1,
	domain.OpListItems:   2,
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cb         *gobreaker.CircuitBreaker[[]byte]
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	logger = logger.With("provider", ProviderID)

	name := ProviderID + "-api"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// only transport and server failures count against the breaker
		IsSuccessful: func(err error) bool {
			return err == nil || !domain.IsTransient(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.APIKey,
		cb:      cb,
		logger:  logger,
	}
}

func (c *Client) ID() string {
	return ProviderID
}

func (c *Client) Cost(op domain.Operation) int {
	return costs[op]
}

// GetAccountInfo returns nil without error when the channel does not exist.
func (c *Client) GetAccountInfo(ctx context.Context, externalID string) (*domain.AccountInfo, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", externalID)

	var resp channelListResponse
	if err := c.get(ctx, domain.OpAccountInfo, "channels", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}

	ch := resp.Items[0]
	return &domain.AccountInfo{
		ExternalID: ch.ID,
		Title:      ch.Snippet.Title,
		ItemCount:  parseCount(ch.Statistics.VideoCount),
	}, nil
}

// ListItemsPage reads one page of the channel's uploads playlist and the
// statistics of its videos. The playlist is newest first, so with
// PublishedAfter set the page stops at the first older video and the next
// page token is dropped.
func (c *Client) ListItemsPage(ctx context.Context, req domain.PageRequest) (*domain.ItemsPage, error) {
	pageSize := req.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("playlistId", UploadsPlaylistID(req.ExternalID))
	params.Set("maxResults", strconv.Itoa(pageSize))
	if req.PageToken != "" {
		params.Set("pageToken", req.PageToken)
	}

	var playlist playlistItemsResponse
	if err := c.get(ctx, domain.OpListItems, "playlistItems", params, &playlist); err != nil {
		return nil, err
	}

	page := &domain.ItemsPage{
		NextPageToken: playlist.NextPageToken,
		TotalResults:  playlist.PageInfo.TotalResults,
	}

	ids := make([]string, 0, len(playlist.Items))
	for _, it := range playlist.Items {
		if req.PublishedAfter != nil {
			published, err := time.Parse(time.RFC3339, it.ContentDetails.VideoPublishedAt)
			if err == nil && !published.After(*req.PublishedAfter) {
				page.NextPageToken = ""
				break
			}
		}
		ids = append(ids, it.ContentDetails.VideoID)
	}

	if len(ids) == 0 {
		return page, nil
	}

	videos, err := c.videos(ctx, ids)
	if err != nil {
		return nil, err
	}

	// keep playlist order; private or deleted videos are absent from the videos response
	for _, id := range ids {
		v, ok := videos[id]
		if !ok {
			continue
		}
		published, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt)
		if err != nil {
			c.logger.Warn("failed to parse publish date", "external_id", id, "date", v.Snippet.PublishedAt)
		}
		page.Items = append(page.Items, domain.Item{
			ExternalID:  v.ID,
			Title:       v.Snippet.Title,
			PublishedAt: published,
			Statistics: domain.Statistics{
				Views:    parseCount(v.Statistics.ViewCount),
				Likes:    parseCount(v.Statistics.LikeCount),
				Comments: parseCount(v.Statistics.CommentCount),
			},
		})
	}

	return page, nil
}

func (c *Client) videos(ctx context.Context, ids []string) (map[string]video, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", strings.Join(ids, ","))
	params.Set("maxResults", strconv.Itoa(len(ids)))

	var resp videoListResponse
	if err := c.get(ctx, domain.OpListItems, "videos", params, &resp); err != nil {
		return nil, err
	}

	out := make(map[string]video, len(resp.Items))
	for _, v := range resp.Items {
		out[v.ID] = v
	}
	return out, nil
}

// UploadsPlaylistID maps a channel id (UC...) to its uploads playlist (UU...).
func UploadsPlaylistID(channelID string) string {
	if strings.HasPrefix(channelID, "UC") {
		return "UU" + channelID[2:]
	}
	return channelID
}

func (c *Client) get(ctx context.Context, op domain.Operation, resource string, params url.Values, out any) error {
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	endpoint := c.baseURL + "/" + resource + "?" + params.Encode()

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.doRequest(ctx, op, endpoint)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(c.cb.Name(), "rejected").Inc()
			return &domain.TransientError{Op: op, Err: err}
		}
		metrics.CircuitBreakerRequests.WithLabelValues(c.cb.Name(), "failure").Inc()
		return err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(c.cb.Name(), "success").Inc()

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, op domain.Operation, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "CreatorSync/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransientError{Op: op, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransientError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}
	return nil, classify(op, resp.StatusCode, body)
}

// classify maps an API error response onto the sync error taxonomy.
func classify(op domain.Operation, status int, body []byte) error {
	var apiErr errorResponse
	_ = json.Unmarshal(body, &apiErr)

	reason := ""
	if len(apiErr.Error.Errors) > 0 {
		reason = apiErr.Error.Errors[0].Reason
	}
	err := fmt.Errorf("unexpected status %d: %s %s", status, reason, apiErr.Error.Message)

	switch {
	case status == http.StatusForbidden && (reason == "quotaExceeded" || reason == "dailyLimitExceeded"):
		return fmt.Errorf("%w: %v", domain.ErrQuotaExceeded, err)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %v", domain.ErrAccountGone, err)
	case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
		return &domain.TransientError{Op: op, Err: err}
	default:
		return err
	}
}

func parseCount(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
