package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// FeedClient fetches hourly supply-demand series from an external grid feed.
type FeedClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewFeedClient creates a feed client. apiKey may be empty for open feeds.
func NewFeedClient(apiKey string, baseURL string) *FeedClient {
	return &FeedClient{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FeedError represents an error returned by the feed API.
type FeedError struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // for rate limit errors
}

func (e *FeedError) Error() string {
	return e.Message
}

// FetchSeries fetches the hourly series for a zone and date (YYYY-MM-DD).
func (c *FeedClient) FetchSeries(ctx context.Context, zone string, date string) (*SeriesDocument, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("feed base URL is required")
	}
	if zone == "" {
		return nil, fmt.Errorf("zone is required")
	}

	u, err := url.Parse(fmt.Sprintf("%s/v1/series/%s", c.BaseURL, url.PathEscape(zone)))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	if date != "" {
		q.Set("date", date)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, feedErrorFromResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var doc SeriesDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}
	return &doc, nil
}

func feedErrorFromResponse(resp *http.Response) *FeedError {
	fe := &FeedError{StatusCode: resp.StatusCode}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		fe.Code = "INVALID_API_KEY"
		fe.Message = "feed rejected the API key"
	case http.StatusTooManyRequests:
		fe.Code = "RATE_LIMITED"
		fe.Message = "feed rate limit exceeded"
		fe.RetryAfter = resp.Header.Get("Retry-After")
	case http.StatusNotFound:
		fe.Code = "ZONE_NOT_FOUND"
		fe.Message = "feed has no series for the requested zone"
	default:
		fe.Code = "FEED_ERROR"
		fe.Message = fmt.Sprintf("feed returned status %d", resp.StatusCode)
	}
	return fe
}
