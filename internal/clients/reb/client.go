// Package reb fetches the apartment price index from the Korea Real Estate
// Board open API.
package reb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hanwool/moneyweather/internal/weather"
)

// Client for the REB statistics table API
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new REB client
func NewClient(apiKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: "https://www.reb.or.kr/r-one/openapi",
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log.With().Str("client", "reb").Logger(),
	}
}

type tblDataRow struct {
	ClsName     string `json:"CLS_NM"`
	ClsFullName string `json:"CLS_FULLNM"`
	Value       string `json:"DTA_VAL"`
}

// The API wraps rows in a two-element array: header object first, then
// the row container.
type tblDataResponse struct {
	SttsApiTblData []struct {
		Row []tblDataRow `json:"row"`
	} `json:"SttsApiTblData"`
}

// Index fetches the nationwide apartment price index and converts it to a
// representative price in 억원, anchored at 25억 for an index of 100. The
// nationwide row is preferred, falling back to Seoul.
func (c *Client) Index(ctx context.Context) (*weather.RawQuote, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("reb API key not configured")
	}

	u := fmt.Sprintf("%s/SttsApiTblData.do?STATBL_ID=A_2024_00900&DTACYCLE_CD=YY&WRTTIME_IDTFR_ID=2022&Type=json&serviceKey=%s",
		c.baseURL, c.apiKey)

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

	var parsed tblDataResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.SttsApiTblData) < 2 {
		return nil, fmt.Errorf("no rows in response")
	}
	rows := parsed.SttsApiTblData[1].Row

	target := findRegion(rows, "전국")
	if target == nil {
		target = findRegion(rows, "서울")
	}
	if target == nil {
		return nil, fmt.Errorf("no usable region row")
	}

	index, err := strconv.ParseFloat(target.Value, 64)
	if err != nil || index <= 0 {
		return nil, fmt.Errorf("bad index value %q", target.Value)
	}

	price := index / 100 * 25

	c.log.Debug().Float64("index", index).Float64("price", price).Msg("Fetched price index")
	return &weather.RawQuote{Price: price}, nil
}

func findRegion(rows []tblDataRow, name string) *tblDataRow {
	for i := range rows {
		if rows[i].ClsName == name || strings.HasPrefix(rows[i].ClsFullName, name) {
			return &rows[i]
		}
	}
	return nil
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}
