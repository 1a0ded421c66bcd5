package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kagabo/duka-manager/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// chartDefaultDays is the trailing window used when the caller gives no
// bounds.
const chartDefaultDays = 7

// Chart produces the time-bucketed series for the dashboard chart. Three
// record sources are unioned per bucket: sales contribute amount and
// profit (all payment statuses, unlike the stats revenue which is
// paid-only), standalone expenses contribute amount, and inventory
// purchases contribute their total price as expenses. Buckets come out in
// ascending order and only for dates that have data; no empty buckets are
// synthesized. An open window defaults to the trailing week.
func (s *Service) Chart(ctx context.Context, w entity.DateWindow, g entity.Granularity) ([]entity.ChartPoint, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("invalid granularity %q", g)
	}
	if w.Open() {
		now := s.now()
		w = entity.Window(now.AddDate(0, 0, -chartDefaultDays), now)
	}

	var (
		sales    []entity.Sale
		expenses []entity.Expense
		products []entity.Product
	)
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		sales, err = s.rep.Sales().ListSales(gctx, w)
		if err != nil {
			return fmt.Errorf("can't get sales for chart: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		expenses, err = s.rep.Expenses().ListExpenses(gctx, w)
		if err != nil {
			return fmt.Errorf("can't get expenses for chart: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		products, err = s.rep.Products().ListProducts(gctx, w)
		if err != nil {
			return fmt.Errorf("can't get purchases for chart: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	buckets := map[time.Time]*entity.ChartPoint{}
	at := func(d time.Time) *entity.ChartPoint {
		key := bucketStart(d, g)
		p, ok := buckets[key]
		if !ok {
			p = &entity.ChartPoint{
				Name:     bucketLabel(key, g),
				Sales:    decimal.Zero,
				Expenses: decimal.Zero,
				Profit:   decimal.Zero,
			}
			buckets[key] = p
		}
		return p
	}

	for _, sl := range sales {
		p := at(sl.SaleDate)
		p.Sales = p.Sales.Add(sl.Amount)
		p.Profit = p.Profit.Add(sl.Profit)
	}
	for _, e := range expenses {
		p := at(e.ExpenseDate)
		p.Expenses = p.Expenses.Add(e.Amount)
	}
	for _, prd := range products {
		p := at(prd.PurchaseDate)
		p.Expenses = p.Expenses.Add(prd.TotalPrice)
	}

	keys := make([]time.Time, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	series := make([]entity.ChartPoint, 0, len(keys))
	for _, k := range keys {
		series = append(series, *buckets[k])
	}
	return series, nil
}

// bucketStart truncates a date to the first day of its bucket: the day
// itself, the Monday of its ISO week, or the first of its month. Keys are
// normalized to UTC midnight so equal calendar dates collide regardless
// of the stored time-of-day.
func bucketStart(d time.Time, g entity.Granularity) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	switch g {
	case entity.GranularityWeek:
		wd := int(day.Weekday())
		if wd == 0 {
			wd = 7
		}
		return day.AddDate(0, 0, 1-wd)
	case entity.GranularityMonth:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// bucketLabel formats a bucket's display name. Labels use English short
// month names regardless of locale.
func bucketLabel(key time.Time, g entity.Granularity) string {
	switch g {
	case entity.GranularityWeek:
		_, wk := key.ISOWeek()
		return fmt.Sprintf("Week %d", wk)
	case entity.GranularityMonth:
		return key.Format("Jan")
	default:
		return key.Format("Jan 2")
	}
}
