// Package pricing computes booking totals from a caregiver package and the
// requested dates.
package pricing

import (
	"strings"
	"time"

	"caregiver-marketplace/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted format for booking dates
const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// DayCount returns the number of billable days. A single-date booking counts
// one day whenever a date is present; a range counts both endpoints. Missing,
// malformed or reversed ranges count zero days.
func DayCount(dayType entity.DayType, singleDate, startDate, endDate string) int {
	switch dayType {
	case entity.DayTypeOneDay:
		if strings.TrimSpace(singleDate) != "" {
			return 1
		}
		return 0
	case entity.DayTypeMultipleDays:
		start, ok := ParseDate(startDate)
		if !ok {
			return 0
		}
		end, ok := ParseDate(endDate)
		if !ok || end.Before(start) {
			return 0
		}
		diff := end.Sub(start)
		if diff%day != 0 {
			return 0
		}
		return int(diff/day) + 1
	default:
		return 0
	}
}

// ComputeTotal returns days × per-day price, or zero when no package is selected
func ComputeTotal(pkg *entity.ServicePackage, dayType entity.DayType, singleDate, startDate, endDate string) decimal.Decimal {
	if pkg == nil {
		return decimal.Zero
	}
	days := DayCount(dayType, singleDate, startDate, endDate)
	return pkg.Price.Mul(decimal.NewFromInt(int64(days)))
}

// MinimumAdvance is the smallest advance that confirms a booking: a third of
// the total, rounded up to a whole unit.
func MinimumAdvance(total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(3)).Ceil()
}

// ParseDate parses a YYYY-MM-DD date, reporting false for empty or malformed input
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
