package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// groupDigits formats v with comma-grouped thousands and the given number of
// decimal places, matching the ko-KR locale output of the dashboard.
func groupDigits(v float64, decimals int) string {
	neg := math.Signbit(v) && v != 0
	s := strconv.FormatFloat(math.Abs(v), 'f', decimals, 64)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteString(fracPart)
	return b.String()
}

// signed prefixes positive values with "+" so change displays read as deltas.
func signed(s string, v float64) string {
	if v > 0 {
		return "+" + s
	}
	return s
}

func fmtWon(decimals int) func(float64) string {
	return func(v float64) string {
		return groupDigits(v, decimals) + "원"
	}
}

func fmtWonDelta(decimals int) func(float64) string {
	return func(v float64) string {
		return signed(groupDigits(v, decimals)+"원", v)
	}
}

func fmtPoints(v float64) string {
	return groupDigits(v, 2) + " pt"
}

func fmtPointsDelta(v float64) string {
	return signed(groupDigits(v, 2)+" pt", v)
}

func fmtKRWSymbol(v float64) string {
	return "₩" + groupDigits(v, 0)
}

func fmtKRWSymbolDelta(v float64) string {
	return signed("₩"+groupDigits(v, 0), v)
}

func fmtPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}

func fmtPercentPointsDelta(v float64) string {
	return signed(strconv.FormatFloat(v, 'f', 2, 64)+"%p", v)
}

func fmtPerDon(v float64) string {
	return groupDigits(v, 0) + "원/돈"
}

func fmtPerDonDelta(v float64) string {
	return signed(groupDigits(v, 0)+"원/돈", v)
}

// fmtEok renders the real-estate proxy price, which is carried in 억원.
func fmtEok(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "억"
}

// fmtManwonDelta scales an 억원 delta into 만원 (1억 = 10,000만원).
func fmtManwonDelta(v float64) string {
	scaled := v * 10000
	return signed(groupDigits(scaled, 0)+"만원", scaled)
}

func fmtIndexLevel(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func fmtIndexLevelDelta(v float64) string {
	return signed(strconv.FormatFloat(v, 'f', 1, 64), v)
}

// fmtSentiment renders the 0-100 fear & greed level.
func fmtSentiment(v float64) string {
	return fmt.Sprintf("%.0f / 100", v)
}

func fmtSentimentDelta(v float64) string {
	return signed(strconv.FormatFloat(v, 'f', 0, 64), v)
}
