package feargreed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fng/", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data":[
			{"value":"62","value_classification":"Greed"},
			{"value":"55","value_classification":"Greed"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(zerolog.Nop())
	c.SetBaseURL(srv.URL)

	quote, err := c.Index(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 62, quote.Price, 1e-9)
	assert.InDelta(t, 7, quote.Change.Float64, 1e-9)
}

func TestIndexSingleEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"value":"40","value_classification":"Fear"}]}`))
	}))
	defer srv.Close()

	c := NewClient(zerolog.Nop())
	c.SetBaseURL(srv.URL)

	quote, err := c.Index(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 40, quote.Price, 1e-9)
	assert.Zero(t, quote.Change.Float64)
}

func TestIndexEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(zerolog.Nop())
	c.SetBaseURL(srv.URL)

	_, err := c.Index(context.Background())
	assert.Error(t, err)
}
