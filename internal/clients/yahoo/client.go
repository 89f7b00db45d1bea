// Package yahoo fetches quotes from the Yahoo Finance chart API.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/guregu/null/v5"
	"github.com/rs/zerolog"

	"github.com/hanwool/moneyweather/internal/weather"
)

// Yahoo blocks requests without a browser-looking agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Client for the Yahoo Finance v8 chart endpoint.
type Client struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new Yahoo Finance client
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		baseURL: "https://query1.finance.yahoo.com/v8/finance/chart",
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     log.With().Str("client", "yahoo").Logger(),
	}
}

type quoteBars struct {
	Close []*float64 `json:"close"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				PreviousClose       float64 `json:"previousClose"`
				ChartPreviousClose  float64 `json:"chartPreviousClose"`
				RegularMarketPrevCl float64 `json:"regularMarketPreviousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []quoteBars `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// Quote fetches hourly bars over five days and reduces them to a RawQuote:
// current price, relative percent change against the previous close, and a
// short chart series. When the metadata lacks a previous close, the
// next-to-last bar stands in; with a single bar the change is zero.
func (c *Client) Quote(ctx context.Context, symbol string) (*weather.RawQuote, error) {
	u := fmt.Sprintf("%s/%s?interval=1h&range=5d", c.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d for %s", resp.StatusCode, symbol)
	}

	var parsed chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response for %s: %w", symbol, err)
	}

	if len(parsed.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result for %s", symbol)
	}
	result := parsed.Chart.Result[0]

	closes, chart := collectBars(result.Timestamp, result.Indicators.Quote)

	price := result.Meta.RegularMarketPrice
	if price == 0 && len(closes) > 0 {
		price = closes[len(closes)-1]
	}
	if price == 0 {
		return nil, fmt.Errorf("no price for %s", symbol)
	}

	prevClose := result.Meta.PreviousClose
	if prevClose == 0 {
		prevClose = result.Meta.RegularMarketPrevCl
	}
	if prevClose == 0 {
		prevClose = result.Meta.ChartPreviousClose
	}
	if prevClose == 0 && len(closes) >= 2 {
		prevClose = closes[len(closes)-2]
	}

	quote := &weather.RawQuote{
		Price:     price,
		ChartData: chart,
	}
	if prevClose > 0 {
		quote.PreviousClose = null.FloatFrom(prevClose)
		quote.Change = null.FloatFrom((price - prevClose) / prevClose * 100)
	} else {
		quote.Change = null.FloatFrom(0)
	}

	c.log.Debug().Str("symbol", symbol).Float64("price", price).Msg("Fetched quote")
	return quote, nil
}

// collectBars flattens the non-null close bars into a value slice and a
// labelled chart series.
func collectBars(timestamps []int64, quotes []quoteBars) ([]float64, []weather.ChartPoint) {
	if len(quotes) == 0 {
		return nil, nil
	}

	var closes []float64
	var chart []weather.ChartPoint
	for i, cl := range quotes[0].Close {
		if cl == nil {
			continue
		}
		closes = append(closes, *cl)

		label := ""
		if i < len(timestamps) {
			label = time.Unix(timestamps[i], 0).UTC().Format("01-02 15:04")
		}
		chart = append(chart, weather.ChartPoint{Time: label, Price: *cl})
	}
	return closes, chart
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}
