package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanwool/moneyweather/internal/collector"
	"github.com/hanwool/moneyweather/internal/config"
	"github.com/hanwool/moneyweather/internal/database"
	"github.com/hanwool/moneyweather/internal/fx"
	"github.com/hanwool/moneyweather/internal/market"
	"github.com/hanwool/moneyweather/internal/marketstore"
	"github.com/hanwool/moneyweather/internal/weather"
)

var errDown = fmt.Errorf("upstream down")

// downSource fails every source call. The collector treats that as an empty
// but successful cycle, which is enough for handler tests.
type downSource struct{}

func (downSource) USDRates(ctx context.Context) (map[string]float64, error) {
	return nil, errDown
}

func (downSource) Quote(ctx context.Context, symbol string) (*weather.RawQuote, error) {
	return nil, errDown
}

func (downSource) Prices(ctx context.Context, ids ...string) (map[string]*weather.RawQuote, error) {
	return nil, errDown
}

func (downSource) FuelPrices(ctx context.Context) (map[string]*weather.RawQuote, error) {
	return nil, errDown
}

func (downSource) Index(ctx context.Context) (*weather.RawQuote, error) {
	return nil, errDown
}

func (downSource) Series(ctx context.Context, statCode, itemCode, cycle string) (*weather.RawQuote, error) {
	return nil, errDown
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := database.New(database.Config{
		Path: filepath.Join(t.TempDir(), "market.db"),
		Name: "market",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := marketstore.NewRepository(db.Conn())
	require.NoError(t, repo.Migrate())

	cache := fx.NewCache()
	src := collector.Sources{
		Rates:      downSource{},
		Quotes:     downSource{},
		Crypto:     downSource{},
		Fuel:       downSource{},
		RealEstate: downSource{},
		Series:     downSource{},
		Sentiment:  downSource{},
	}

	return New(Config{
		Port:      0,
		Log:       zerolog.Nop(),
		DB:        db,
		Config:    &config.Config{CronSecret: "top-secret", ManualRunKey: "manual-key"},
		Market:    market.NewService(repo, cache, zerolog.Nop()),
		Collector: collector.NewCollector(repo, cache, src, zerolog.Nop()),
		DevMode:   true,
	})
}

func doRequest(s *Server, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestMarketEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/market", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, s-maxage=60, stale-while-revalidate=300",
		rec.Header().Get("Cache-Control"))

	var body weather.MarketDataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Assets, len(weather.IDs()))
	assert.Equal(t, "usdkrw", body.Assets[0].ID)
	assert.NotEmpty(t, body.GeneratedAt)
}

func TestCronRejectsMissingAuth(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/cron", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestCronRejectsWrongSecret(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/cron", http.Header{
		"Authorization": {"Bearer not-the-secret"},
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCronWithBearerSecret(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodPost, "/api/cron", http.Header{
		"Authorization": {"Bearer top-secret"},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string `json:"message"`
		RunID   string `json:"runId"`
		Count   int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Success", body.Message)
	assert.NotEmpty(t, body.RunID)
	// Every upstream is down; only the cached USD rate gets stored.
	assert.Equal(t, 1, body.Count)
}

func TestCronWithManualKey(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/cron?key=manual-key", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMarketStatusEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/market/status", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Korea struct {
			Status string `json:"status"`
		} `json:"korea"`
		US struct {
			Status string `json:"status"`
		} `json:"us"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Korea.Status)
	assert.NotEmpty(t, body.US.Status)
	assert.NotEmpty(t, body.Timestamp)
}

func TestSystemHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := doRequest(s, http.MethodGet, "/api/system/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body SystemHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "running", body.Status)
	assert.GreaterOrEqual(t, body.UptimeSeconds, 0.0)
}
