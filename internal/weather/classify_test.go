package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexRuleBoundaries(t *testing.T) {
	// 0.5 exactly is cloudy, not sunny; 2.0 exactly is sunny/rainy, not
	// thunder. Thunder requires strictly more than 2.
	assert.Equal(t, StatusCloudy, classifyIndex(2500, 0.5))
	assert.Equal(t, StatusCloudy, classifyIndex(2500, -0.5))
	assert.Equal(t, StatusSunny, classifyIndex(2500, 2.0))
	assert.Equal(t, StatusRainy, classifyIndex(2500, -2.0))
	assert.Equal(t, StatusThunder, classifyIndex(2500, 2.01))
	assert.Equal(t, StatusThunder, classifyIndex(2500, -2.01))
	assert.Equal(t, StatusSunny, classifyIndex(2500, 0.51))
	assert.Equal(t, StatusRainy, classifyIndex(2500, -0.51))
	assert.Equal(t, StatusCloudy, classifyIndex(2500, 0))
}

func TestCurrencyRuleIsPriceBanded(t *testing.T) {
	classify := classifyPriceBand(1350, 1400)

	// Change is irrelevant for currencies; only the level matters.
	assert.Equal(t, StatusRainy, classify(1400.01, -5))
	assert.Equal(t, StatusSunny, classify(1349.99, 5))
	assert.Equal(t, StatusCloudy, classify(1375, 0))
	assert.Equal(t, StatusCloudy, classify(1400, 0))
	assert.Equal(t, StatusCloudy, classify(1350, 0))
}

func TestFuelBands(t *testing.T) {
	gasoline := classifyFuelBand(1600, 1750)

	assert.Equal(t, StatusSunny, gasoline(1550, 0))
	assert.Equal(t, StatusRainy, gasoline(1800, 0))
	assert.Equal(t, StatusCloudy, gasoline(1650, 0))
}

func TestCommodityRule(t *testing.T) {
	assert.Equal(t, StatusSunny, classifyCommodity(2650, 1.01))
	assert.Equal(t, StatusRainy, classifyCommodity(2650, -1.01))
	assert.Equal(t, StatusCloudy, classifyCommodity(2650, 1.0))
	assert.Equal(t, StatusCloudy, classifyCommodity(2650, -1.0))
}

func TestCryptoRuleWiderThunderBand(t *testing.T) {
	assert.Equal(t, StatusThunder, classifyCrypto(97000, 3.01))
	assert.Equal(t, StatusThunder, classifyCrypto(97000, -3.01))
	assert.Equal(t, StatusSunny, classifyCrypto(97000, 2.5))
	assert.Equal(t, StatusRainy, classifyCrypto(97000, -2.5))
	assert.Equal(t, StatusCloudy, classifyCrypto(97000, 0.5))
}

// The rate rule never produces rainy or thunder. The original implementation
// behaved this way and the asymmetry is preserved on purpose; this test
// documents it rather than fixing it.
func TestRateRuleAsymmetry(t *testing.T) {
	assert.Equal(t, StatusSunny, classifyRate(4.2, 0.11))
	assert.Equal(t, StatusCloudy, classifyRate(4.2, 0.1))
	assert.Equal(t, StatusCloudy, classifyRate(4.2, 0))
	assert.Equal(t, StatusCloudy, classifyRate(4.2, -0.5))
	assert.Equal(t, StatusCloudy, classifyRate(4.2, -5))
}

func TestYieldSpreadRule(t *testing.T) {
	// Inversion dominates everything else.
	assert.Equal(t, StatusThunder, classifyYieldSpread(-0.01, 0.5))
	assert.Equal(t, StatusRainy, classifyYieldSpread(0.1, 0.5))
	assert.Equal(t, StatusSunny, classifyYieldSpread(0.5, 0.06))
	assert.Equal(t, StatusCloudy, classifyYieldSpread(0.5, 0.0))
}

func TestFearGreedLevelBands(t *testing.T) {
	assert.Equal(t, StatusThunder, classifyFearGreed(75, 0))
	assert.Equal(t, StatusSunny, classifyFearGreed(60, 0))
	assert.Equal(t, StatusCloudy, classifyFearGreed(40, 0))
	assert.Equal(t, StatusRainy, classifyFearGreed(25, 0))
}

func TestConsumerSentimentLevelBands(t *testing.T) {
	assert.Equal(t, StatusThunder, classifyConsumerSentiment(110, 0))
	assert.Equal(t, StatusSunny, classifyConsumerSentiment(102, 0))
	assert.Equal(t, StatusCloudy, classifyConsumerSentiment(95, 0))
	assert.Equal(t, StatusRainy, classifyConsumerSentiment(89, 0))
}

func TestInflationRule(t *testing.T) {
	assert.Equal(t, StatusRainy, classifyInflation(103, 0.6))
	assert.Equal(t, StatusSunny, classifyInflation(103, -0.1))
	assert.Equal(t, StatusCloudy, classifyInflation(103, 0.2))
}

// Classification must be a pure function: same inputs, same status, every
// time, for every configured asset.
func TestClassifyIsDeterministic(t *testing.T) {
	inputs := []struct{ price, change float64 }{
		{1380, 0.2}, {950, -1.5}, {2500, 2.5}, {0.15, -0.3}, {50, 0},
	}

	for _, id := range IDs() {
		cfg, ok := Lookup(id)
		assert.True(t, ok, id)
		for _, in := range inputs {
			first := cfg.Classify(in.price, in.change)
			for i := 0; i < 10; i++ {
				assert.Equal(t, first, cfg.Classify(in.price, in.change), id)
			}
		}
	}
}
