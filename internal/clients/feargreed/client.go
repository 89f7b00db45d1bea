// Package feargreed fetches the crypto Fear & Greed index from alternative.me.
package feargreed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/guregu/null/v5"
	"github.com/rs/zerolog"

	"github.com/hanwool/moneyweather/internal/weather"
)

// Client for the alternative.me fng API
type Client struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new Fear & Greed client
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		baseURL: "https://api.alternative.me",
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With().Str("client", "feargreed").Logger(),
	}
}

type fngResponse struct {
	Data []struct {
		Value          string `json:"value"`
		Classification string `json:"value_classification"`
	} `json:"data"`
}

// Index fetches the current index value. Change is the point difference
// against the previous day; with a single entry the change is zero.
func (c *Client) Index(ctx context.Context) (*weather.RawQuote, error) {
	u := fmt.Sprintf("%s/fng/?limit=2", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var parsed fngResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("no index data in response")
	}

	current, err := strconv.ParseFloat(parsed.Data[0].Value, 64)
	if err != nil {
		return nil, fmt.Errorf("bad index value %q", parsed.Data[0].Value)
	}

	previous := current
	if len(parsed.Data) > 1 {
		if v, err := strconv.ParseFloat(parsed.Data[1].Value, 64); err == nil {
			previous = v
		}
	}

	c.log.Debug().Float64("value", current).Msg("Fetched fear and greed index")
	return &weather.RawQuote{
		Price:  current,
		Change: null.FloatFrom(current - previous),
	}, nil
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}
