package store

import (
	"context"
	"time"

	"github.com/kagabo/duka-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// statsStore implements the dashboard aggregate queries. Every aggregate
// coalesces to zero over an empty window so a fresh database reads as
// zeros, not errors.
type statsStore struct {
	*MYSQLStore
}

// TotalRevenue sums amounts of paid sales inside the window. Pending,
// partial and overdue sales are booked but not realized, so they are
// excluded here even though they count toward units sold.
func (ms *MYSQLStore) TotalRevenue(ctx context.Context, w entity.DateWindow) (decimal.Decimal, error) {
	type row struct {
		Total decimal.Decimal `db:"total"`
	}
	params := map[string]any{}
	conds := append([]string{"payment_status = 'paid'"}, windowConds("sale_date", w, params)...)
	query := `SELECT COALESCE(SUM(amount), 0) AS total FROM sale` + whereClause(conds)
	r, err := QueryNamedOne[row](ctx, ms.DB(), query, params)
	if err != nil {
		return decimal.Zero, err
	}
	return r.Total, nil
}

// TotalProfit sums profit over the same paid-only set as TotalRevenue.
func (ms *MYSQLStore) TotalProfit(ctx context.Context, w entity.DateWindow) (decimal.Decimal, error) {
	type row struct {
		Total decimal.Decimal `db:"total"`
	}
	params := map[string]any{}
	conds := append([]string{"payment_status = 'paid'"}, windowConds("sale_date", w, params)...)
	query := `SELECT COALESCE(SUM(profit), 0) AS total FROM sale` + whereClause(conds)
	r, err := QueryNamedOne[row](ctx, ms.DB(), query, params)
	if err != nil {
		return decimal.Zero, err
	}
	return r.Total, nil
}

// TotalExpenses sums operating expenses plus inventory spend, i.e. the
// total price of product purchases inside the window.
func (ms *MYSQLStore) TotalExpenses(ctx context.Context, w entity.DateWindow) (decimal.Decimal, error) {
	type row struct {
		Total decimal.Decimal `db:"total"`
	}

	expParams := map[string]any{}
	expQuery := `SELECT COALESCE(SUM(amount), 0) AS total FROM expense` + whereClause(windowConds("expense_date", w, expParams))
	exp, err := QueryNamedOne[row](ctx, ms.DB(), expQuery, expParams)
	if err != nil {
		return decimal.Zero, err
	}

	purParams := map[string]any{}
	purQuery := `SELECT COALESCE(SUM(total_price), 0) AS total FROM product` + whereClause(windowConds("purchase_date", w, purParams))
	pur, err := QueryNamedOne[row](ctx, ms.DB(), purQuery, purParams)
	if err != nil {
		return decimal.Zero, err
	}

	return exp.Total.Add(pur.Total), nil
}

// ProductsSold counts units sold inside the window regardless of payment
// status. This is gross sales volume, deliberately wider than the
// paid-only revenue set.
func (ms *MYSQLStore) ProductsSold(ctx context.Context, w entity.DateWindow) (int, error) {
	type row struct {
		Units int `db:"units"`
	}
	params := map[string]any{}
	query := `SELECT COALESCE(SUM(quantity), 0) AS units FROM sale` + whereClause(windowConds("sale_date", w, params))
	r, err := QueryNamedOne[row](ctx, ms.DB(), query, params)
	if err != nil {
		return 0, err
	}
	return r.Units, nil
}

// ActiveDebtors counts debtors whose status is anything but paid. A
// non-nil asOf restricts the count to debts already due by that date,
// which is how the comparison period avoids counting debts that did not
// exist yet.
func (ms *MYSQLStore) ActiveDebtors(ctx context.Context, asOf *time.Time) (int, error) {
	type row struct {
		Count int `db:"cnt"`
	}
	params := map[string]any{}
	query := `SELECT COUNT(*) AS cnt FROM debtor WHERE status != 'paid'`
	if asOf != nil {
		params["asOf"] = asOf.Format(dateLayout)
		query += ` AND due_date <= :asOf`
	}
	r, err := QueryNamedOne[row](ctx, ms.DB(), query, params)
	if err != nil {
		return 0, err
	}
	return r.Count, nil
}
