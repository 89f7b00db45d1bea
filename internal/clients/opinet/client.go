// Package opinet fetches nationwide average fuel prices from the Opinet API.
package opinet

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

// Opinet product codes.
const (
	prodGasoline = "B027"
	prodDiesel   = "D047"
)

// Client for the Opinet average price API
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new Opinet client
func NewClient(apiKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: "https://www.opinet.co.kr/api",
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With().Str("client", "opinet").Logger(),
	}
}

type avgPriceResponse struct {
	Result struct {
		Oil []struct {
			ProdCode string `json:"PRODCD"`
			Price    string `json:"PRICE"`
			Diff     string `json:"DIFF"`
		} `json:"OIL"`
	} `json:"RESULT"`
}

// FuelPrices fetches today's nationwide average pump prices. The returned
// map is keyed by asset ID (gasoline, diesel). Without a usable API key the
// call fails immediately so the caller falls back to generated data.
func (c *Client) FuelPrices(ctx context.Context) (map[string]*weather.RawQuote, error) {
	if c.apiKey == "" || c.apiKey == "DEMO_KEY" {
		return nil, fmt.Errorf("opinet API key not configured")
	}

	u := fmt.Sprintf("%s/avgAllPrice.do?out=json&code=%s", c.baseURL, c.apiKey)

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

	var parsed avgPriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	quotes := make(map[string]*weather.RawQuote)
	for _, oil := range parsed.Result.Oil {
		var id string
		switch oil.ProdCode {
		case prodGasoline:
			id = "gasoline"
		case prodDiesel:
			id = "diesel"
		default:
			continue
		}

		price, err := strconv.ParseFloat(oil.Price, 64)
		if err != nil || price <= 0 {
			continue
		}

		quote := &weather.RawQuote{Price: price}
		// DIFF is the won change against yesterday's average.
		if diff, err := strconv.ParseFloat(oil.Diff, 64); err == nil {
			prev := price - diff
			if prev > 0 {
				quote.PreviousClose = null.FloatFrom(prev)
				quote.Change = null.FloatFrom(diff / prev * 100)
			}
		}
		quotes[id] = quote
	}

	if len(quotes) == 0 {
		return nil, fmt.Errorf("no fuel prices in response")
	}

	c.log.Debug().Int("products", len(quotes)).Msg("Fetched fuel prices")
	return quotes, nil
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}
