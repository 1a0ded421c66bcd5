package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kagabo/duka-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sale(d time.Time, amount, profit int64, status entity.PaymentStatus) entity.Sale {
	return entity.Sale{
		Amount:        decimal.NewFromInt(amount),
		Profit:        decimal.NewFromInt(profit),
		SaleDate:      d,
		PaymentStatus: status,
	}
}

func TestChartDayBuckets(t *testing.T) {
	day1 := date(2024, time.April, 1)
	day2 := date(2024, time.April, 2)
	rep := &stubRepo{
		sales:    []entity.Sale{sale(day1, 100, 20, entity.PaymentStatusPaid)},
		expenses: []entity.Expense{{ExpenseInsert: entity.ExpenseInsert{Amount: decimal.NewFromInt(30), ExpenseDate: day2}}},
	}
	svc := New(rep)

	got, err := svc.Chart(context.Background(),
		entity.Window(day1, date(2024, time.April, 3)), entity.GranularityDay)
	require.NoError(t, err)

	// only dates carrying data produce buckets, in ascending order
	require.Len(t, got, 2)
	assert.Equal(t, "Apr 1", got[0].Name)
	assert.True(t, got[0].Sales.Equal(decimal.NewFromInt(100)))
	assert.True(t, got[0].Expenses.IsZero())
	assert.True(t, got[0].Profit.Equal(decimal.NewFromInt(20)))

	assert.Equal(t, "Apr 2", got[1].Name)
	assert.True(t, got[1].Sales.IsZero())
	assert.True(t, got[1].Expenses.Equal(decimal.NewFromInt(30)))
	assert.True(t, got[1].Profit.IsZero())
}

func TestChartIncludesUnpaidSales(t *testing.T) {
	day := date(2024, time.April, 1)
	rep := &stubRepo{
		sales: []entity.Sale{
			sale(day, 100, 20, entity.PaymentStatusPaid),
			sale(day, 50, 10, entity.PaymentStatusPending),
		},
	}
	svc := New(rep)

	got, err := svc.Chart(context.Background(), entity.Window(day, day), entity.GranularityDay)
	require.NoError(t, err)
	require.Len(t, got, 1)
	// gross sales volume: pending sales count here even though the stats
	// revenue is paid-only
	assert.True(t, got[0].Sales.Equal(decimal.NewFromInt(150)))
	assert.True(t, got[0].Profit.Equal(decimal.NewFromInt(30)))
}

func TestChartPurchasesCountAsExpenses(t *testing.T) {
	day := date(2024, time.April, 5)
	rep := &stubRepo{
		expenses: []entity.Expense{{ExpenseInsert: entity.ExpenseInsert{Amount: decimal.NewFromInt(30), ExpenseDate: day}}},
		products: []entity.Product{{ProductInsert: entity.ProductInsert{TotalPrice: decimal.NewFromInt(200), PurchaseDate: day}}},
	}
	svc := New(rep)

	got, err := svc.Chart(context.Background(), entity.Window(day, day), entity.GranularityDay)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Expenses.Equal(decimal.NewFromInt(230)))
}

func TestChartWeekBuckets(t *testing.T) {
	// Mon Apr 1 and Sun Apr 7 share ISO week 14; Mon Apr 8 starts week 15
	rep := &stubRepo{
		sales: []entity.Sale{
			sale(date(2024, time.April, 1), 10, 1, entity.PaymentStatusPaid),
			sale(date(2024, time.April, 7), 20, 2, entity.PaymentStatusPaid),
			sale(date(2024, time.April, 8), 40, 4, entity.PaymentStatusPaid),
		},
	}
	svc := New(rep)

	got, err := svc.Chart(context.Background(),
		entity.Window(date(2024, time.April, 1), date(2024, time.April, 14)), entity.GranularityWeek)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Week 14", got[0].Name)
	assert.True(t, got[0].Sales.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Week 15", got[1].Name)
	assert.True(t, got[1].Sales.Equal(decimal.NewFromInt(40)))
}

func TestChartMonthBuckets(t *testing.T) {
	rep := &stubRepo{
		sales: []entity.Sale{
			sale(date(2024, time.January, 15), 10, 1, entity.PaymentStatusPaid),
			sale(date(2024, time.January, 20), 20, 2, entity.PaymentStatusPaid),
			sale(date(2024, time.March, 2), 40, 4, entity.PaymentStatusPaid),
		},
	}
	svc := New(rep)

	got, err := svc.Chart(context.Background(),
		entity.Window(date(2024, time.January, 1), date(2024, time.March, 31)), entity.GranularityMonth)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Jan", got[0].Name)
	assert.True(t, got[0].Sales.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, "Mar", got[1].Name)
	assert.True(t, got[1].Sales.Equal(decimal.NewFromInt(40)))
}

func TestChartDefaultsToTrailingWeek(t *testing.T) {
	now := date(2024, time.June, 10)
	rep := &stubRepo{
		sales: []entity.Sale{
			sale(date(2024, time.June, 9), 10, 1, entity.PaymentStatusPaid),
			// outside the trailing window
			sale(date(2024, time.June, 1), 99, 9, entity.PaymentStatusPaid),
		},
	}
	svc := New(rep, fixedClock(now))

	got, err := svc.Chart(context.Background(), entity.DateWindow{}, entity.GranularityDay)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jun 9", got[0].Name)
}

func TestChartEmptyWindow(t *testing.T) {
	rep := &stubRepo{}
	svc := New(rep)

	got, err := svc.Chart(context.Background(),
		entity.Window(date(2024, time.June, 1), date(2024, time.June, 7)), entity.GranularityDay)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestChartRejectsUnknownGranularity(t *testing.T) {
	rep := &stubRepo{}
	svc := New(rep)

	_, err := svc.Chart(context.Background(), entity.DateWindow{}, entity.Granularity("hour"))
	assert.Error(t, err)
}

func TestChartPropagatesStoreFailure(t *testing.T) {
	rep := &stubRepo{err: errors.New("connection refused")}
	svc := New(rep)

	_, err := svc.Chart(context.Background(), entity.DateWindow{}, entity.GranularityDay)
	assert.Error(t, err)
}
