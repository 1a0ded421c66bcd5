package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateWindow is an inclusive calendar-date range. Either bound may be nil:
// a half-open window filters on one side only, a fully open window matches
// everything. Time-of-day is irrelevant; bounds are compared as dates.
type DateWindow struct {
	From *time.Time
	To   *time.Time
}

// Window builds a fully bounded DateWindow.
func Window(from, to time.Time) DateWindow {
	return DateWindow{From: &from, To: &to}
}

// Open reports whether no bound is set.
func (w DateWindow) Open() bool {
	return w.From == nil && w.To == nil
}

// Bounded reports whether both bounds are set.
func (w DateWindow) Bounded() bool {
	return w.From != nil && w.To != nil
}

// Granularity controls time bucket size for chart series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// DashboardStats is the period snapshot shown on the dashboard cards.
// Totals cover the reporting window; each change field is the signed
// percentage delta against the immediately preceding window of equal
// length. ActiveDebtors is a point-in-time count, not a window sum.
type DashboardStats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	ProductsSold  int             `json:"productsSold"`
	ActiveDebtors int             `json:"activeDebtors"`

	RevenueChange      float64 `json:"revenueChange"`
	ExpensesChange     float64 `json:"expensesChange"`
	ProfitChange       float64 `json:"profitChange"`
	ProductsSoldChange float64 `json:"productsSoldChange"`
	DebtorsChange      float64 `json:"debtorsChange"`
}

// ZeroDashboardStats is what API callers receive when the stats pipeline
// fails; decimal zero values are spelled out so the JSON carries 0, not null.
func ZeroDashboardStats() DashboardStats {
	return DashboardStats{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalProfit:   decimal.Zero,
	}
}

// ChartPoint is one time bucket of the dashboard chart: gross sales volume
// (all payment statuses), expenses including inventory purchases, and
// profit, under a granularity-formatted label.
type ChartPoint struct {
	Name     string          `json:"name"`
	Sales    decimal.Decimal `json:"sales"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}
