package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		prevFrom time.Time
		prevTo   time.Time
	}{
		{
			name:     "full month",
			from:     date(2024, time.March, 1),
			to:       date(2024, time.March, 31),
			prevFrom: date(2024, time.January, 31),
			prevTo:   date(2024, time.March, 1),
		},
		{
			name:     "one week",
			from:     date(2024, time.June, 8),
			to:       date(2024, time.June, 15),
			prevFrom: date(2024, time.June, 1),
			prevTo:   date(2024, time.June, 8),
		},
		{
			name:     "across year boundary",
			from:     date(2024, time.January, 1),
			to:       date(2024, time.January, 8),
			prevFrom: date(2023, time.December, 25),
			prevTo:   date(2024, time.January, 1),
		},
		{
			name: "single day degenerates to itself",
			from: date(2024, time.May, 10),
			to:   date(2024, time.May, 10),
			// zero-length shift, known boundary behavior
			prevFrom: date(2024, time.May, 10),
			prevTo:   date(2024, time.May, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFrom, gotTo := PreviousPeriod(tt.from, tt.to)
			assert.Equal(t, tt.prevFrom, gotFrom)
			assert.Equal(t, tt.prevTo, gotTo)
		})
	}
}

func TestPreviousPeriodLengthPreserved(t *testing.T) {
	// whatever the window, the comparison window has the same length and
	// ends where the current one begins
	windows := [][2]time.Time{
		{date(2024, time.February, 1), date(2024, time.February, 29)},
		{date(2024, time.July, 3), date(2024, time.July, 4)},
		{date(2023, time.December, 20), date(2024, time.January, 10)},
	}
	for _, w := range windows {
		from, to := w[0], w[1]
		prevFrom, prevTo := PreviousPeriod(from, to)
		assert.Equal(t, to.Sub(from), prevTo.Sub(prevFrom))
		assert.Equal(t, from, prevTo)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  decimal.Decimal
		previous decimal.Decimal
		want     float64
	}{
		{"growth", decimal.NewFromInt(150), decimal.NewFromInt(100), 50},
		{"decline", decimal.NewFromInt(50), decimal.NewFromInt(100), -50},
		{"flat", decimal.NewFromInt(100), decimal.NewFromInt(100), 0},
		{"appeared from zero", decimal.NewFromInt(42), decimal.Zero, 100},
		{"stayed at zero", decimal.Zero, decimal.Zero, 0},
		{"dropped to zero", decimal.Zero, decimal.NewFromInt(80), -100},
		{"negative baseline keeps numerator sign", decimal.NewFromInt(50), decimal.NewFromInt(-100), 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PercentChange(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestPercentChangeNotRounded(t *testing.T) {
	got := PercentChange(decimal.NewFromInt(1), decimal.NewFromInt(3))
	assert.InDelta(t, -66.666666, got, 1e-4)
}
