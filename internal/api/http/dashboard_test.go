package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kagabo/duka-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboard struct {
	stats entity.DashboardStats
	chart []entity.ChartPoint
	err   error
}

func (d *stubDashboard) Stats(ctx context.Context, w entity.DateWindow) (entity.DashboardStats, error) {
	if d.err != nil {
		return entity.ZeroDashboardStats(), d.err
	}
	return d.stats, nil
}

func (d *stubDashboard) Chart(ctx context.Context, w entity.DateWindow, g entity.Granularity) ([]entity.ChartPoint, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.chart, nil
}

func newTestServer(d Dashboard) *Server {
	return New(&Config{Port: "0", Address: "127.0.0.1"}, nil, d)
}

func TestGetDashboardStats(t *testing.T) {
	stats := entity.ZeroDashboardStats()
	stats.TotalRevenue = decimal.NewFromInt(500)
	stats.ProductsSold = 12
	stats.RevenueChange = 25

	srv := newTestServer(&stubDashboard{stats: stats})
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats?from=2024-06-01&to=2024-06-30", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "500", got["totalRevenue"])
	assert.EqualValues(t, 12, got["productsSold"])
	assert.EqualValues(t, 25, got["revenueChange"])
}

func TestGetDashboardStatsServesZerosOnFailure(t *testing.T) {
	srv := newTestServer(&stubDashboard{err: errors.New("store down")})
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))

	// fail-soft: the cards render zeros instead of an error page
	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "0", got["totalRevenue"])
	assert.EqualValues(t, 0, got["activeDebtors"])
}

func TestGetDashboardStatsRejectsMalformedDate(t *testing.T) {
	srv := newTestServer(&stubDashboard{})
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats?from=junk", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetChartData(t *testing.T) {
	srv := newTestServer(&stubDashboard{chart: []entity.ChartPoint{
		{Name: "Jun 1", Sales: decimal.NewFromInt(100), Expenses: decimal.Zero, Profit: decimal.NewFromInt(20)},
	}})
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/chart?granularity=day", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Jun 1", got[0]["name"])
}

func TestGetChartDataServesEmptyOnFailure(t *testing.T) {
	srv := newTestServer(&stubDashboard{err: errors.New("store down")})
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/chart", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetChartDataRejectsUnknownGranularity(t *testing.T) {
	srv := newTestServer(&stubDashboard{})
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/chart?granularity=hour", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
