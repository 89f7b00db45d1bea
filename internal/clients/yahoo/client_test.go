package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{
  "chart": {
    "result": [{
      "meta": {"regularMarketPrice": 2512.3, "previousClose": 2500.0},
      "timestamp": [1700000000, 1700003600, 1700007200],
      "indicators": {"quote": [{"close": [2498.1, null, 2512.3]}]}
    }]
  }
}`

func TestQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/%5EKS11", r.URL.EscapedPath())
		assert.Equal(t, "1h", r.URL.Query().Get("interval"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	c := NewClient(zerolog.Nop())
	c.SetBaseURL(srv.URL)

	quote, err := c.Quote(context.Background(), "^KS11")
	require.NoError(t, err)

	assert.InDelta(t, 2512.3, quote.Price, 1e-9)
	assert.InDelta(t, 2500.0, quote.PreviousClose.Float64, 1e-9)
	assert.InDelta(t, (2512.3-2500.0)/2500.0*100, quote.Change.Float64, 1e-9)

	// Null bars are dropped from the chart series.
	require.Len(t, quote.ChartData, 2)
	assert.InDelta(t, 2498.1, quote.ChartData[0].Price, 1e-9)
	assert.NotEmpty(t, quote.ChartData[0].Time)
}

func TestQuotePreviousCloseFromBars(t *testing.T) {
	body := `{
  "chart": {
    "result": [{
      "meta": {"regularMarketPrice": 105},
      "timestamp": [1, 2],
      "indicators": {"quote": [{"close": [100, 105]}]}
    }]
  }
}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(zerolog.Nop())
	c.SetBaseURL(srv.URL)

	quote, err := c.Quote(context.Background(), "GC=F")
	require.NoError(t, err)
	assert.InDelta(t, 100, quote.PreviousClose.Float64, 1e-9)
	assert.InDelta(t, 5, quote.Change.Float64, 1e-9)
}

func TestQuoteSingleBarZeroChange(t *testing.T) {
	body := `{
  "chart": {
    "result": [{
      "meta": {},
      "timestamp": [1],
      "indicators": {"quote": [{"close": [42.5]}]}
    }]
  }
}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(zerolog.Nop())
	c.SetBaseURL(srv.URL)

	quote, err := c.Quote(context.Background(), "SI=F")
	require.NoError(t, err)
	assert.InDelta(t, 42.5, quote.Price, 1e-9)
	assert.True(t, quote.Change.Valid)
	assert.Zero(t, quote.Change.Float64)
}

func TestQuoteEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[]}}`))
	}))
	defer srv.Close()

	c := NewClient(zerolog.Nop())
	c.SetBaseURL(srv.URL)

	_, err := c.Quote(context.Background(), "^TNX")
	assert.Error(t, err)
}
