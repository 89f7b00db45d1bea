// Package weather turns raw market quotes into classified dashboard records.
//
// Every supported asset has one immutable Config entry in the registry:
// display name, category, price formatters, a pure classification rule and a
// fixed message set. Normalize applies unit adjustment, change-points
// derivation and classification to a raw {price, change} pair and always
// produces a fully populated AssetData, synthesizing fallback data when a
// source has nothing stored.
package weather

import "github.com/guregu/null/v5"

// Status is the qualitative market mood for one asset.
type Status string

const (
	StatusSunny   Status = "sunny"
	StatusCloudy  Status = "cloudy"
	StatusRainy   Status = "rainy"
	StatusThunder Status = "thunder"
)

// Category groups assets for filtering in the dashboard.
type Category string

const (
	CategoryCurrency  Category = "currency"
	CategoryIndex     Category = "index"
	CategoryCommodity Category = "commodity"
	CategoryCrypto    Category = "crypto"
	CategoryBonds     Category = "bonds"
)

// ChartPoint is one bar of a short rolling chart window.
type ChartPoint struct {
	Time  string  `json:"time"`
	Price float64 `json:"price"`
}

// RawQuote is the common shape of one collected payload. Change is a
// relative percent for most classes and an absolute percentage-point delta
// for rates/bonds; PreviousClose is only known for some sources.
type RawQuote struct {
	Price         float64      `json:"price"`
	Change        null.Float   `json:"change"`
	PreviousClose null.Float   `json:"previousClose"`
	ChartData     []ChartPoint `json:"chartData,omitempty"`
}

// AssetData is the served record for one asset. It is derived at serve time
// and never stored.
type AssetData struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Category            Category     `json:"category"`
	Price               float64      `json:"price"`
	PriceDisplay        string       `json:"priceDisplay"`
	BuyPrice            float64      `json:"buyPrice,omitempty"`
	BuyPriceDisplay     string       `json:"buyPriceDisplay,omitempty"`
	SellPrice           float64      `json:"sellPrice,omitempty"`
	SellPriceDisplay    string       `json:"sellPriceDisplay,omitempty"`
	Change              float64      `json:"change"`
	ChangePoints        float64      `json:"changePoints"`
	ChangePointsDisplay string       `json:"changePointsDisplay"`
	Status              Status       `json:"status"`
	Message             string       `json:"message"`
	Advice              string       `json:"advice"`
	Source              string       `json:"source,omitempty"`
	Basis               string       `json:"basis,omitempty"`
	ChartData           []ChartPoint `json:"chartData,omitempty"`
}

// MarketDataResponse is the full serving payload.
type MarketDataResponse struct {
	Assets      []AssetData `json:"assets"`
	GeneratedAt string      `json:"generatedAt"`
}

// Fallback describes the synthetic data band used when a source has no data.
type Fallback struct {
	Base       float64
	Volatility float64
}

// Config is the static per-asset configuration. Configs are pure data plus
// pure functions and are never mutated after registry construction.
type Config struct {
	Name     string
	Category Category

	// Classify derives the weather status from the display-unit price and
	// the change value. Must be pure and deterministic.
	Classify func(price, change float64) Status

	// UnitAdjust converts a stored price into its display unit. fx is the
	// last known USD/KRW rate, used by USD-denominated commodities. Nil
	// means stored and display units coincide.
	UnitAdjust func(price, fx float64) float64

	FormatPrice        func(price float64) string
	FormatChangePoints func(points float64) string

	// BuySpread/SellSpread derive retail buy/sell prices from the display
	// price (e.g. 1.03/0.97 for gold). Zero means no buy/sell quote.
	BuySpread  float64
	SellSpread float64

	// AbsoluteChange marks classes whose raw change is already an absolute
	// delta (rates/bonds), so change points must not be reconstructed from
	// a relative percentage.
	AbsoluteChange bool

	Messages map[Status]string
	Advice   string
	Source   string
	Basis    string

	Fallback Fallback
}
