package dashboard

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// PreviousPeriod derives the comparison window for [from, to]: the
// contiguous window of identical day-length immediately preceding it.
// A single-day window (from == to) degenerates to a zero-day shift and
// compares the day against itself; callers relying on the comparison
// being a different period should widen the window first.
func PreviousPeriod(from, to time.Time) (time.Time, time.Time) {
	lengthDays := int(math.Ceil(to.Sub(from).Hours() / 24))
	return from.AddDate(0, 0, -lengthDays), to.AddDate(0, 0, -lengthDays)
}

// PercentChange returns the signed percentage delta from previous to
// current. A zero baseline maps to 100 when the metric appeared and 0
// when it stayed absent, so the dashboard never divides by zero. The
// denominator's absolute value keeps the sign tracking the numerator
// even for a negative baseline. The result is not rounded.
func PercentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}
	change, _ := current.Sub(previous).Div(previous.Abs()).Float64()
	return change * 100
}

// percentChangeInt is PercentChange over count metrics.
func percentChangeInt(current, previous int) float64 {
	return PercentChange(decimal.NewFromInt(int64(current)), decimal.NewFromInt(int64(previous)))
}
