package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "1,385", groupDigits(1385.2, 0))
	assert.Equal(t, "2,512.35", groupDigits(2512.345, 2))
	assert.Equal(t, "135,000,000", groupDigits(135000000, 0))
	assert.Equal(t, "-1,234.50", groupDigits(-1234.5, 2))
	assert.Equal(t, "0", groupDigits(0, 0))
	assert.Equal(t, "999", groupDigits(999, 0))
	assert.Equal(t, "1,000", groupDigits(1000, 0))
}

func TestDeltaFormattersCarrySign(t *testing.T) {
	assert.Equal(t, "+8원", fmtWonDelta(0)(8.4))
	assert.Equal(t, "-8원", fmtWonDelta(0)(-8.4))
	assert.Equal(t, "+12.30 pt", fmtPointsDelta(12.3))
	assert.Equal(t, "+0.05%p", fmtPercentPointsDelta(0.05))
	assert.Equal(t, "-0.05%p", fmtPercentPointsDelta(-0.05))
	assert.Equal(t, "+₩1,500,000", fmtKRWSymbolDelta(1500000))
}

func TestRealEstateFormatters(t *testing.T) {
	assert.Equal(t, "24.88억", fmtEok(24.88))
	// 0.05억 delta reads as 500만원.
	assert.Equal(t, "+500만원", fmtManwonDelta(0.05))
	assert.Equal(t, "-500만원", fmtManwonDelta(-0.05))
}

func TestSentimentFormatter(t *testing.T) {
	assert.Equal(t, "52 / 100", fmtSentiment(52))
	assert.Equal(t, "+3", fmtSentimentDelta(3))
}
