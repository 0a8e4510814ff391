package imagesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jevonx/farmers-market/pkg/logger"
)

const defaultTimeout = 3 * time.Second

// Client queries the Bing Image Search API for a best-match stock photo URL.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an image search client. endpoint is the API base URL
// (e.g. https://api.bing.microsoft.com); timeout bounds each request.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type searchResponse struct {
	Value []struct {
		ContentURL string `json:"contentUrl"`
	} `json:"value"`
}

// Lookup returns the content URL of the first image matching query, or an
// empty string when the API returns no results. Network and decode failures
// surface as errors; callers absorb them.
func (c *Client) Lookup(ctx context.Context, query string) (string, error) {
	u := fmt.Sprintf("%s/v7.0/images/search?q=%s&count=1&safeSearch=Strict", c.endpoint, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build image search request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image search returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode image search response: %w", err)
	}

	if len(body.Value) == 0 {
		logger.Debug(ctx).Str("query", query).Msg("Image search returned no results")
		return "", nil
	}

	return body.Value[0].ContentURL, nil
}
