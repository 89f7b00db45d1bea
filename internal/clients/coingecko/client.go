// Package coingecko fetches cryptocurrency prices in KRW from CoinGecko.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/guregu/null/v5"
	"github.com/rs/zerolog"

	"github.com/hanwool/moneyweather/internal/weather"
)

// Client for the CoinGecko simple price API
type Client struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new CoinGecko client
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		baseURL: "https://api.coingecko.com/api/v3",
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With().Str("client", "coingecko").Logger(),
	}
}

// Prices fetches KRW prices and 24h changes for the given coin IDs
// (bitcoin, ethereum). The returned map is keyed by coin ID; coins the
// API omitted are absent from the map.
func (c *Client) Prices(ctx context.Context, ids ...string) (map[string]*weather.RawQuote, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no coin ids given")
	}

	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=krw&include_24hr_change=true",
		c.baseURL, joinIDs(ids))

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

	var parsed map[string]struct {
		KRW          float64 `json:"krw"`
		KRW24hChange float64 `json:"krw_24h_change"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	quotes := make(map[string]*weather.RawQuote, len(parsed))
	for _, id := range ids {
		entry, ok := parsed[id]
		if !ok || entry.KRW == 0 {
			continue
		}
		quotes[id] = &weather.RawQuote{
			Price:  entry.KRW,
			Change: null.FloatFrom(entry.KRW24hChange),
		}
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("no prices in response")
	}

	c.log.Debug().Int("coins", len(quotes)).Msg("Fetched crypto prices")
	return quotes, nil
}

func joinIDs(ids []string) string {
	out := ids[0]
	for _, id := range ids[1:] {
		out += "," + id
	}
	return out
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}
