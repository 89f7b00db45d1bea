package exchangerate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUSDRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/USD", r.URL.Path)
		w.Write([]byte(`{"base":"USD","rates":{"KRW":1385.2,"JPY":147.1,"EUR":0.92,"CNY":7.24}}`))
	}))
	defer srv.Close()

	c := NewClient(zerolog.Nop())
	c.SetBaseURL(srv.URL)

	rates, err := c.USDRates(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1385.2, rates["KRW"], 1e-9)
	assert.InDelta(t, 147.1, rates["JPY"], 1e-9)
}

func TestUSDRatesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(zerolog.Nop())
	c.SetBaseURL(srv.URL)

	_, err := c.USDRates(context.Background())
	assert.Error(t, err)
}

func TestUSDRatesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"base":"USD","rates":{}}`))
	}))
	defer srv.Close()

	c := NewClient(zerolog.Nop())
	c.SetBaseURL(srv.URL)

	_, err := c.USDRates(context.Background())
	assert.Error(t, err)
}
