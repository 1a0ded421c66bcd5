// Package dashboard computes the period-bounded metrics behind the admin
// dashboard: scalar totals with deltas against the preceding period of
// equal length, and time-bucketed series for the chart. It reads through
// the repository and owns no state, so every call is idempotent. Failures
// surface as errors; mapping them to zero defaults is the caller's choice.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/kagabo/duka-manager/internal/dependency"
	"github.com/kagabo/duka-manager/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	rep dependency.Repository
	now func() time.Time
}

type Option func(*Service)

// WithClock overrides the wall clock used for default windows. Tests
// freeze it; production leaves the default.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(rep dependency.Repository, opts ...Option) *Service {
	s := &Service{
		rep: rep,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// monthWindow is the default stats window: the first through last day of
// the month containing t.
func monthWindow(t time.Time) entity.DateWindow {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return entity.Window(first, last)
}

// Stats assembles the dashboard snapshot for the window. An open window
// defaults to the current calendar month. A half-open window is rejected:
// the comparison period is undefined without both bounds.
func (s *Service) Stats(ctx context.Context, w entity.DateWindow) (entity.DashboardStats, error) {
	if w.Open() {
		w = monthWindow(s.now())
	}
	if !w.Bounded() {
		return entity.ZeroDashboardStats(), fmt.Errorf("stats window must have both bounds or neither")
	}

	prevFrom, prevTo := PreviousPeriod(*w.From, *w.To)
	prev := entity.Window(prevFrom, prevTo)

	type totals struct {
		revenue  decimal.Decimal
		expenses decimal.Decimal
		profit   decimal.Decimal
		sold     int
		debtors  int
	}
	var cur, cmp totals

	stats := s.rep.Stats()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		cur.revenue, err = stats.TotalRevenue(gctx, w)
		if err != nil {
			return fmt.Errorf("can't get revenue: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cur.expenses, err = stats.TotalExpenses(gctx, w)
		if err != nil {
			return fmt.Errorf("can't get expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cur.profit, err = stats.TotalProfit(gctx, w)
		if err != nil {
			return fmt.Errorf("can't get profit: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cur.sold, err = stats.ProductsSold(gctx, w)
		if err != nil {
			return fmt.Errorf("can't get products sold: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cur.debtors, err = stats.ActiveDebtors(gctx, nil)
		if err != nil {
			return fmt.Errorf("can't get active debtors: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		cmp.revenue, err = stats.TotalRevenue(gctx, prev)
		if err != nil {
			return fmt.Errorf("can't get previous revenue: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cmp.expenses, err = stats.TotalExpenses(gctx, prev)
		if err != nil {
			return fmt.Errorf("can't get previous expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cmp.profit, err = stats.TotalProfit(gctx, prev)
		if err != nil {
			return fmt.Errorf("can't get previous profit: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cmp.sold, err = stats.ProductsSold(gctx, prev)
		if err != nil {
			return fmt.Errorf("can't get previous products sold: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// Point-in-time snapshot of the debtor book as it stood at the
		// end of the comparison period.
		var err error
		cmp.debtors, err = stats.ActiveDebtors(gctx, &prevTo)
		if err != nil {
			return fmt.Errorf("can't get previous active debtors: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return entity.ZeroDashboardStats(), err
	}

	return entity.DashboardStats{
		TotalRevenue:  cur.revenue,
		TotalExpenses: cur.expenses,
		TotalProfit:   cur.profit,
		ProductsSold:  cur.sold,
		ActiveDebtors: cur.debtors,

		RevenueChange:      PercentChange(cur.revenue, cmp.revenue),
		ExpensesChange:     PercentChange(cur.expenses, cmp.expenses),
		ProfitChange:       PercentChange(cur.profit, cmp.profit),
		ProductsSoldChange: percentChangeInt(cur.sold, cmp.sold),
		DebtorsChange:      percentChangeInt(cur.debtors, cmp.debtors),
	}, nil
}
