package ecos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestSeriesMonthly(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"StatisticSearch":{"row":[
			{"DATA_VALUE":"3.25","TIME":"202504"},
			{"DATA_VALUE":"3.00","TIME":"202505"}
		]}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", zerolog.Nop())
	c.SetBaseURL(srv.URL)
	c.now = fixedNow

	quote, err := c.Series(context.Background(), "722Y001", "0101000", "M")
	require.NoError(t, err)

	assert.InDelta(t, 3.00, quote.Price, 1e-9)
	assert.InDelta(t, -0.25, quote.Change.Float64, 1e-9)

	// Monthly window spans one year back from the current month.
	assert.True(t, strings.Contains(gotPath, "/722Y001/M/202406/202506/0101000"), gotPath)
}

func TestSeriesDailyWindow(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"StatisticSearch":{"row":[{"DATA_VALUE":"2.85","TIME":"20250613"}]}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", zerolog.Nop())
	c.SetBaseURL(srv.URL)
	c.now = fixedNow

	quote, err := c.Series(context.Background(), "817Y002", "010200000", "D")
	require.NoError(t, err)

	// A single observation yields zero change.
	assert.InDelta(t, 2.85, quote.Price, 1e-9)
	assert.Zero(t, quote.Change.Float64)

	assert.True(t, strings.Contains(gotPath, "/817Y002/D/20250516/20250615/010200000"), gotPath)
}

func TestSeriesWithoutKey(t *testing.T) {
	c := NewClient("", zerolog.Nop())
	_, err := c.Series(context.Background(), "722Y001", "0101000", "M")
	assert.Error(t, err)
}

func TestSeriesNoRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"RESULT":{"CODE":"INFO-200","MESSAGE":"no data"}}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", zerolog.Nop())
	c.SetBaseURL(srv.URL)

	_, err := c.Series(context.Background(), "901Y009", "0", "M")
	assert.Error(t, err)
}
