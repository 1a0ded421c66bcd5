package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/kagabo/duka-manager/internal/entity"
)

func errInvalidGranularity(g entity.Granularity) error {
	return fmt.Errorf("invalid granularity %q", g)
}

// getDashboardStats serves the period snapshot. A failed pipeline is
// logged and answered with the all-zero snapshot so the dashboard cards
// render instead of erroring; malformed dates are still a 400 because
// they are a caller bug, not a store failure.
func (s *Server) getDashboardStats(w http.ResponseWriter, r *http.Request) {
	win, err := windowFromQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	stats, err := s.dashboard.Stats(r.Context(), win)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "dashboard stats failed, serving zeros",
			slog.String("err", err.Error()),
		)
		render.JSON(w, r, entity.ZeroDashboardStats())
		return
	}
	render.JSON(w, r, stats)
}

// getChartData serves the bucketized series, defaulting granularity to
// day. Store failures degrade to an empty series.
func (s *Server) getChartData(w http.ResponseWriter, r *http.Request) {
	win, err := windowFromQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	g := entity.Granularity(r.URL.Query().Get("granularity"))
	if g == "" {
		g = entity.GranularityDay
	}
	if !g.Valid() {
		render.Render(w, r, ErrInvalidRequest(errInvalidGranularity(g)))
		return
	}

	series, err := s.dashboard.Chart(r.Context(), win, g)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "dashboard chart failed, serving empty series",
			slog.String("err", err.Error()),
		)
		render.JSON(w, r, []entity.ChartPoint{})
		return
	}
	if series == nil {
		series = []entity.ChartPoint{}
	}
	render.JSON(w, r, series)
}
