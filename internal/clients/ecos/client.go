// Package ecos fetches statistics series from the Bank of Korea ECOS API.
package ecos

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

// Client for the ECOS StatisticSearch API
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
	now     func() time.Time
}

// NewClient creates a new ECOS client
func NewClient(apiKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: "https://ecos.bok.or.kr/api",
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With().Str("client", "ecos").Logger(),
		now:     time.Now,
	}
}

type searchResponse struct {
	StatisticSearch struct {
		Row []struct {
			Value string `json:"DATA_VALUE"`
			Time  string `json:"TIME"`
		} `json:"row"`
	} `json:"StatisticSearch"`
}

// Series fetches the latest observation of a statistic. The window covers
// the last 30 days for daily series and the last year for monthly ones.
// Change is the absolute difference against the previous observation.
func (c *Client) Series(ctx context.Context, statCode, itemCode, cycle string) (*weather.RawQuote, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("ecos API key not configured")
	}

	start, end := c.window(cycle)
	u := fmt.Sprintf("%s/StatisticSearch/%s/json/kr/1/10/%s/%s/%s/%s/%s",
		c.baseURL, c.apiKey, statCode, cycle, start, end, itemCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed for %s: %w", statCode, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d for %s", resp.StatusCode, statCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response for %s: %w", statCode, err)
	}

	rows := parsed.StatisticSearch.Row
	if len(rows) == 0 {
		return nil, fmt.Errorf("no observations for %s", statCode)
	}

	latest, err := strconv.ParseFloat(rows[len(rows)-1].Value, 64)
	if err != nil {
		return nil, fmt.Errorf("bad value %q for %s", rows[len(rows)-1].Value, statCode)
	}

	prev := latest
	if len(rows) > 1 {
		if v, err := strconv.ParseFloat(rows[len(rows)-2].Value, 64); err == nil {
			prev = v
		}
	}

	c.log.Debug().Str("stat", statCode).Float64("value", latest).Msg("Fetched series")
	return &weather.RawQuote{
		Price:  latest,
		Change: null.FloatFrom(latest - prev),
	}, nil
}

func (c *Client) window(cycle string) (start, end string) {
	today := c.now()
	if cycle == "D" {
		return today.AddDate(0, 0, -30).Format("20060102"), today.Format("20060102")
	}
	return today.AddDate(-1, 0, 0).Format("200601"), today.Format("200601")
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}
