package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kagabo/duka-manager/internal/dependency"
	"github.com/kagabo/duka-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// stubSales serves canned sales; the embedded interface panics on
// anything the test does not exercise.
type stubSales struct {
	dependency.Sales
	sales []entity.Sale
}

func (s *stubSales) ListSales(ctx context.Context, w entity.DateWindow) ([]entity.Sale, error) {
	return s.sales, nil
}

type stubSalesRepo struct {
	dependency.Repository
	sales *stubSales
}

func (s *stubSalesRepo) Sales() dependency.Sales { return s.sales }

func TestExportSales(t *testing.T) {
	saleDate := time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)
	rep := &stubSalesRepo{sales: &stubSales{sales: []entity.Sale{
		{
			CustomerName:  "Alice",
			ProductName:   "Rice 25kg",
			Quantity:      2,
			Amount:        decimal.NewFromInt(100),
			CostPrice:     decimal.NewFromInt(80),
			Profit:        decimal.NewFromInt(20),
			SaleDate:      saleDate,
			PaymentStatus: entity.PaymentStatusPaid,
		},
	}}}
	srv := New(&Config{Port: "0", Address: "127.0.0.1"}, rep, &stubDashboard{})

	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sales/export?from=2024-06-01&to=2024-06-30", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sales.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Customer", header)

	customer, err := f.GetCellValue("Sheet1", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Alice", customer)
	date, err := f.GetCellValue("Sheet1", "G2")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-05", date)
	status, err := f.GetCellValue("Sheet1", "H2")
	require.NoError(t, err)
	assert.Equal(t, "paid", status)
}
