// Package collector runs one collection cycle: fan out to every source,
// derive composite quotes and persist whatever came back.
package collector

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hanwool/moneyweather/internal/fx"
	"github.com/hanwool/moneyweather/internal/marketstore"
	"github.com/hanwool/moneyweather/internal/weather"
)

// RateSource provides USD-denominated currency rates.
type RateSource interface {
	USDRates(ctx context.Context) (map[string]float64, error)
}

// QuoteSource provides a quote per ticker symbol.
type QuoteSource interface {
	Quote(ctx context.Context, symbol string) (*weather.RawQuote, error)
}

// BatchSource provides quotes for a fixed product set in one call.
type BatchSource interface {
	Prices(ctx context.Context, ids ...string) (map[string]*weather.RawQuote, error)
}

// FuelSource provides average pump prices keyed by asset ID.
type FuelSource interface {
	FuelPrices(ctx context.Context) (map[string]*weather.RawQuote, error)
}

// IndexSource provides a single derived index quote.
type IndexSource interface {
	Index(ctx context.Context) (*weather.RawQuote, error)
}

// SeriesSource provides the latest observation of a statistics series.
type SeriesSource interface {
	Series(ctx context.Context, statCode, itemCode, cycle string) (*weather.RawQuote, error)
}

// Sources bundles every upstream the collector fans out to.
type Sources struct {
	Rates      RateSource
	Quotes     QuoteSource
	Crypto     BatchSource
	Fuel       FuelSource
	RealEstate IndexSource
	Series     SeriesSource
	Sentiment  IndexSource
}

// Result summarizes one collection cycle.
type Result struct {
	RunID    string        `json:"runId"`
	Updated  int           `json:"count"`
	Duration time.Duration `json:"-"`
}

// Collector fans out to all sources and upserts the collected quotes.
type Collector struct {
	store   *marketstore.Repository
	fxCache *fx.Cache
	src     Sources
	log     zerolog.Logger
}

// NewCollector creates a collector over the given sources.
func NewCollector(store *marketstore.Repository, fxCache *fx.Cache, src Sources, log zerolog.Logger) *Collector {
	return &Collector{
		store:   store,
		fxCache: fxCache,
		src:     src,
		log:     log.With().Str("component", "collector").Logger(),
	}
}

var yahooSymbols = map[string]string{
	"kospi":    "^KS11",
	"kosdaq":   "^KQ11",
	"nasdaq":   "^IXIC",
	"sp500":    "^GSPC",
	"dowjones": "^DJI",
	"gold":     "GC=F",
	"silver":   "SI=F",
	"bonds":    "^TNX",
	"bonds2y":  "^IRX",
}

var ecosSeries = map[string]struct {
	stat, item, cycle string
}{
	"bokrate":   {"722Y001", "0101000", "M"},
	"krbond3y":  {"817Y002", "010200000", "D"},
	"krbond10y": {"817Y002", "010210000", "D"},
	"cpi":       {"901Y009", "0", "M"},
	"ppi":       {"901Y010", "0", "M"},
	"ccsi":      {"511Y002", "FME/99988", "M"},
}

// Collect runs one full cycle. Source failures are logged and skipped, never
// propagated: a cycle that collected nothing is still a successful cycle.
// Only the storage write can fail it.
func (c *Collector) Collect(ctx context.Context) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := c.log.With().Str("run_id", runID).Logger()

	var mu sync.Mutex
	quotes := make(map[string]*weather.RawQuote)
	put := func(id string, q *weather.RawQuote) {
		mu.Lock()
		quotes[id] = q
		mu.Unlock()
	}

	var rates map[string]float64

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := c.src.Rates.USDRates(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Exchange rates unavailable")
			return nil
		}
		mu.Lock()
		rates = r
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		q, err := c.src.Quotes.Quote(ctx, "KRW=X")
		if err != nil {
			log.Warn().Err(err).Msg("USD/KRW quote unavailable")
			return nil
		}
		put("usdkrw", q)
		return nil
	})

	for id, symbol := range yahooSymbols {
		id, symbol := id, symbol
		g.Go(func() error {
			q, err := c.src.Quotes.Quote(ctx, symbol)
			if err != nil {
				log.Warn().Err(err).Str("symbol", symbol).Msg("Quote unavailable")
				return nil
			}
			if id == "bonds2y" {
				// ^IRX quotes the 13-week yield times ten.
				q = scaleQuote(q, 0.1)
			}
			if id == "bonds" || id == "bonds2y" {
				q = yieldPoints(q)
			}
			put(id, q)
			return nil
		})
	}

	g.Go(func() error {
		prices, err := c.src.Crypto.Prices(ctx, "bitcoin", "ethereum")
		if err != nil {
			log.Warn().Err(err).Msg("Crypto prices unavailable")
			return nil
		}
		for id, q := range prices {
			put(id, q)
		}
		return nil
	})

	g.Go(func() error {
		prices, err := c.src.Fuel.FuelPrices(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Fuel prices unavailable")
			return nil
		}
		for id, q := range prices {
			put(id, q)
		}
		return nil
	})

	g.Go(func() error {
		q, err := c.src.RealEstate.Index(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Real estate index unavailable")
			return nil
		}
		put("kbrealestate", q)
		return nil
	})

	for id, s := range ecosSeries {
		id, s := id, s
		g.Go(func() error {
			q, err := c.src.Series.Series(ctx, s.stat, s.item, s.cycle)
			if err != nil {
				log.Warn().Err(err).Str("stat", s.stat).Msg("Series unavailable")
				return nil
			}
			put(id, q)
			return nil
		})
	}

	g.Go(func() error {
		q, err := c.src.Sentiment.Index(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Fear and greed index unavailable")
			return nil
		}
		put("feargreed", q)
		return nil
	})

	// Legs never return errors, only log them.
	_ = g.Wait()

	c.deriveCurrencies(quotes, rates)
	deriveYieldSpread(quotes)

	var batch []marketstore.Update
	for _, id := range weather.IDs() {
		q, ok := quotes[id]
		if !ok || q == nil || math.IsNaN(q.Price) || math.IsInf(q.Price, 0) {
			continue
		}
		batch = append(batch, marketstore.Update{Category: id, Payload: q})
	}

	if err := c.store.UpsertBatch(batch); err != nil {
		return nil, fmt.Errorf("failed to store collected data: %w", err)
	}

	result := &Result{
		RunID:    runID,
		Updated:  len(batch),
		Duration: time.Since(start),
	}
	log.Info().
		Int("updated", result.Updated).
		Dur("duration", result.Duration).
		Msg("Collection cycle complete")
	return result, nil
}

// deriveCurrencies resolves the USD/KRW price through its fallback chain and
// computes the cross rates against KRW. Cross rates are only produced when
// the corresponding USD rate came back this cycle.
func (c *Collector) deriveCurrencies(quotes map[string]*weather.RawQuote, rates map[string]float64) {
	usd := 0.0
	if r := rates["KRW"]; r > 0 {
		usd = r
	} else if q := quotes["usdkrw"]; q != nil && q.Price > 0 {
		usd = q.Price
	} else {
		usd = c.fxCache.Get()
	}
	c.fxCache.Set(usd)

	uq := &weather.RawQuote{Price: usd}
	if q := quotes["usdkrw"]; q != nil {
		uq.Change = q.Change
	}
	quotes["usdkrw"] = uq

	if r := rates["JPY"]; r > 0 {
		quotes["jpykrw"] = &weather.RawQuote{Price: usd / r * 100}
	}
	if r := rates["CNY"]; r > 0 {
		quotes["cnykrw"] = &weather.RawQuote{Price: usd / r}
	}
	if r := rates["EUR"]; r > 0 {
		quotes["eurkrw"] = &weather.RawQuote{Price: usd / r}
	}
}

// deriveYieldSpread builds the 10y-2y spread from the two bond quotes. The
// change is the spread movement, an absolute percentage-point delta.
func deriveYieldSpread(quotes map[string]*weather.RawQuote) {
	long, short := quotes["bonds"], quotes["bonds2y"]
	if long == nil || short == nil {
		return
	}

	spread := long.Price - short.Price
	q := &weather.RawQuote{Price: spread}
	if long.PreviousClose.Valid && short.PreviousClose.Valid {
		prev := long.PreviousClose.Float64 - short.PreviousClose.Float64
		q.PreviousClose = null.FloatFrom(prev)
		q.Change = null.FloatFrom(spread - prev)
	}
	quotes["yieldspread"] = q
}

// yieldPoints replaces a yield quote's relative percent change with the
// percentage-point move, the unit the rate classifiers and formatters expect.
func yieldPoints(q *weather.RawQuote) *weather.RawQuote {
	if !q.PreviousClose.Valid {
		return q
	}
	out := *q
	out.Change = null.FloatFrom(q.Price - q.PreviousClose.Float64)
	return &out
}

func scaleQuote(q *weather.RawQuote, factor float64) *weather.RawQuote {
	out := &weather.RawQuote{
		Price:  q.Price * factor,
		Change: q.Change,
	}
	if q.PreviousClose.Valid {
		out.PreviousClose = null.FloatFrom(q.PreviousClose.Float64 * factor)
	}
	for _, p := range q.ChartData {
		out.ChartData = append(out.ChartData, weather.ChartPoint{Time: p.Time, Price: p.Price * factor})
	}
	return out
}
