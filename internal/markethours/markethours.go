// Package markethours computes trading session status for the Korean and US
// equity markets. Pure time arithmetic in fixed KST/EST offsets, weekends
// closed, holidays not modelled.
package markethours

import (
	"fmt"
	"time"
)

// Status is the current session phase of a market.
type Status string

const (
	StatusOpen       Status = "open"
	StatusPreMarket  Status = "premarket"
	StatusAfterHours Status = "afterhours"
	StatusClosed     Status = "closed"
)

// SessionInfo describes one market's current session.
type SessionInfo struct {
	Status     Status `json:"status"`
	Label      string `json:"label"`
	NextOpenIn string `json:"nextOpenIn,omitempty"`
}

var (
	zoneKST = time.FixedZone("KST", 9*3600)
	zoneEST = time.FixedZone("EST", -5*3600)
)

// KoreanMarket returns the KRX session at the given instant. Regular session
// 09:00-15:30 KST, premarket from 08:00.
func KoreanMarket(now time.Time) SessionInfo {
	kst := now.In(zoneKST)
	mins := kst.Hour()*60 + kst.Minute()
	weekend := isWeekend(kst.Weekday())

	const (
		preMarketStart = 8 * 60
		marketOpen     = 9 * 60
		marketClose    = 15*60 + 30
	)

	if !weekend && mins >= marketOpen && mins < marketClose {
		return SessionInfo{Status: StatusOpen, Label: "장 중"}
	}

	if !weekend && mins >= preMarketStart && mins < marketOpen {
		return SessionInfo{
			Status:     StatusPreMarket,
			Label:      "장 전",
			NextOpenIn: formatUntilOpen(time.Duration(marketOpen-mins) * time.Minute),
		}
	}

	nextOpen := time.Date(kst.Year(), kst.Month(), kst.Day(), 9, 0, 0, 0, zoneKST)
	if !weekend && mins >= marketClose {
		nextOpen = nextOpen.AddDate(0, 0, 1)
	}
	for isWeekend(nextOpen.Weekday()) || !nextOpen.After(kst) {
		nextOpen = nextOpen.AddDate(0, 0, 1)
	}

	return SessionInfo{
		Status:     StatusClosed,
		Label:      "장 마감",
		NextOpenIn: formatUntilOpen(nextOpen.Sub(kst)),
	}
}

// USMarket returns the NYSE session at the given instant. Regular session
// 09:30-16:00 EST, premarket from 04:00, after-hours until 20:00.
func USMarket(now time.Time) SessionInfo {
	est := now.In(zoneEST)
	mins := est.Hour()*60 + est.Minute()

	const (
		preMarketStart = 4 * 60
		marketOpen     = 9*60 + 30
		marketClose    = 16 * 60
		afterHoursEnd  = 20 * 60
	)

	if isWeekend(est.Weekday()) {
		daysUntilMonday := 2
		if est.Weekday() == time.Sunday {
			daysUntilMonday = 1
		}
		nextOpen := time.Date(est.Year(), est.Month(), est.Day(), 9, 30, 0, 0, zoneEST).
			AddDate(0, 0, daysUntilMonday)
		return SessionInfo{
			Status:     StatusClosed,
			Label:      "장 마감",
			NextOpenIn: formatUntilOpen(nextOpen.Sub(est)),
		}
	}

	switch {
	case mins >= marketOpen && mins < marketClose:
		return SessionInfo{Status: StatusOpen, Label: "장 중"}
	case mins >= marketClose && mins < afterHoursEnd:
		return SessionInfo{Status: StatusAfterHours, Label: "애프터마켓"}
	case mins >= preMarketStart && mins < marketOpen:
		return SessionInfo{
			Status:     StatusPreMarket,
			Label:      "프리마켓",
			NextOpenIn: formatUntilOpen(time.Duration(marketOpen-mins) * time.Minute),
		}
	}

	nextOpen := time.Date(est.Year(), est.Month(), est.Day(), 9, 30, 0, 0, zoneEST)
	if mins >= afterHoursEnd {
		nextOpen = nextOpen.AddDate(0, 0, 1)
	}
	switch nextOpen.Weekday() {
	case time.Saturday:
		nextOpen = nextOpen.AddDate(0, 0, 2)
	case time.Sunday:
		nextOpen = nextOpen.AddDate(0, 0, 1)
	}

	return SessionInfo{
		Status:     StatusClosed,
		Label:      "장 마감",
		NextOpenIn: formatUntilOpen(nextOpen.Sub(est)),
	}
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

func formatUntilOpen(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	total := int(d.Minutes())
	hours := total / 60
	minutes := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d시간 %d분 후 개장", hours, minutes)
	}
	return fmt.Sprintf("%d분 후 개장", minutes)
}
