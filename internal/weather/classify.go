package weather

import "math"

// classifyPriceBand rates an asset by absolute price level: above high is
// rainy (expensive), below low is sunny (cheap). Used for currencies, where
// a high rate means a weak won.
func classifyPriceBand(low, high float64) func(price, change float64) Status {
	return func(price, _ float64) Status {
		if price > high {
			return StatusRainy
		}
		if price < low {
			return StatusSunny
		}
		return StatusCloudy
	}
}

// classifyFuelBand is the inverse orientation: cheap fuel is sunny.
func classifyFuelBand(low, high float64) func(price, change float64) Status {
	return func(price, _ float64) Status {
		if price < low {
			return StatusSunny
		}
		if price > high {
			return StatusRainy
		}
		return StatusCloudy
	}
}

// classifyIndex rates equity indices by daily change with a volatility
// escape. Exactly 0.5 stays cloudy and exactly 2.0 stays sunny/rainy:
// thunder requires strictly more than 2.
func classifyIndex(price, change float64) Status {
	if math.Abs(change) > 2 {
		return StatusThunder
	}
	if change > 0.5 {
		return StatusSunny
	}
	if change < -0.5 {
		return StatusRainy
	}
	return StatusCloudy
}

// classifyCommodity rates metals by daily change.
func classifyCommodity(price, change float64) Status {
	if change > 1 {
		return StatusSunny
	}
	if change < -1 {
		return StatusRainy
	}
	return StatusCloudy
}

// classifyCrypto is the index rule with a wider thunder threshold.
func classifyCrypto(price, change float64) Status {
	if math.Abs(change) > 3 {
		return StatusThunder
	}
	if change > 1 {
		return StatusSunny
	}
	if change < -1 {
		return StatusRainy
	}
	return StatusCloudy
}

// classifyRate rates bonds and policy rates by absolute percentage-point
// delta. The rule never yields rainy or thunder; the original behaved this
// way and the asymmetry is kept deliberately.
func classifyRate(price, change float64) Status {
	if change > 0.1 {
		return StatusSunny
	}
	return StatusCloudy
}

// classifyRealEstate uses a narrow change band; the index moves slowly.
func classifyRealEstate(price, change float64) Status {
	if change > 0.3 {
		return StatusSunny
	}
	if change < -0.3 {
		return StatusRainy
	}
	return StatusCloudy
}

// classifyInflation treats rising prices as bad weather.
func classifyInflation(price, change float64) Status {
	if change > 0.5 {
		return StatusRainy
	}
	if change < 0 {
		return StatusSunny
	}
	return StatusCloudy
}

// classifyFearGreed bands the 0-100 sentiment level into four states.
// Extreme greed reads as thunder: an overheated market, not a clear sky.
func classifyFearGreed(price, _ float64) Status {
	switch {
	case price >= 75:
		return StatusThunder
	case price >= 55:
		return StatusSunny
	case price <= 25:
		return StatusRainy
	default:
		return StatusCloudy
	}
}

// classifyConsumerSentiment bands the CCSI level (100 = long-run average).
func classifyConsumerSentiment(price, _ float64) Status {
	switch {
	case price >= 110:
		return StatusThunder
	case price >= 100:
		return StatusSunny
	case price >= 90:
		return StatusCloudy
	default:
		return StatusRainy
	}
}

// classifyYieldSpread rates the long-short curve spread. An inverted curve
// is thunder regardless of the day's move.
func classifyYieldSpread(price, change float64) Status {
	if price < 0 {
		return StatusThunder
	}
	if price < 0.2 {
		return StatusRainy
	}
	if change > 0.05 {
		return StatusSunny
	}
	return StatusCloudy
}
