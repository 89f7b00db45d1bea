// Package market assembles the full dashboard payload from stored quotes.
package market

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/hanwool/moneyweather/internal/fx"
	"github.com/hanwool/moneyweather/internal/marketstore"
	"github.com/hanwool/moneyweather/internal/weather"
)

// Service reads stored quotes and normalizes them into served records.
type Service struct {
	store   *marketstore.Repository
	fxCache *fx.Cache
	log     zerolog.Logger
}

// NewService creates a new market service.
func NewService(store *marketstore.Repository, fxCache *fx.Cache, log zerolog.Logger) *Service {
	return &Service{
		store:   store,
		fxCache: fxCache,
		log:     log.With().Str("component", "market").Logger(),
	}
}

// MarketData builds the complete response: every configured asset in its
// fixed order, normalized from the stored payload or synthesized from
// fallback data when nothing usable is stored. Malformed rows are skipped,
// never fatal.
func (s *Service) MarketData() (*weather.MarketDataResponse, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load market data: %w", err)
	}

	quotes := make(map[string]*weather.RawQuote, len(records))
	for _, rec := range records {
		var q weather.RawQuote
		if err := json.Unmarshal(rec.Payload, &q); err != nil {
			s.log.Warn().Err(err).Str("category", rec.Category).Msg("Skipping malformed payload")
			continue
		}
		quotes[rec.Category] = &q
	}

	// Prefer the stored USD rate over the in-process cache so a restarted
	// server converts with the last collected rate.
	fxRate := s.fxCache.Get()
	if q := quotes["usdkrw"]; q != nil && q.Price > 0 {
		fxRate = q.Price
		s.fxCache.Set(fxRate)
	}

	ids := weather.IDs()
	assets := make([]weather.AssetData, 0, len(ids))
	for _, id := range ids {
		data, err := weather.Normalize(id, quotes[id], fxRate)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize %s: %w", id, err)
		}
		assets = append(assets, data)
	}

	return &weather.MarketDataResponse{
		Assets:      assets,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
