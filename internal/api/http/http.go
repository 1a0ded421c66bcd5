// Package httpapi exposes the store manager over REST: dashboard stats
// and chart series, plus CRUD for products, sales, debtors, expenses and
// notes.
package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	"github.com/kagabo/duka-manager/internal/dependency"
	"github.com/kagabo/duka-manager/internal/entity"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Dashboard is the stats and chart engine consumed by the dashboard
// handlers. Failures surface as errors; the handlers map them to zero
// defaults so the UI always gets a well-formed payload.
type Dashboard interface {
	Stats(ctx context.Context, w entity.DateWindow) (entity.DashboardStats, error)
	Chart(ctx context.Context, w entity.DateWindow, g entity.Granularity) ([]entity.ChartPoint, error)
}

// Server is the http server
type Server struct {
	hs        *http.Server
	c         *Config
	rep       dependency.Repository
	dashboard Dashboard
	done      chan struct{}
}

// New creates a new server
func New(config *Config, rep dependency.Repository, dashboard Dashboard) *Server {
	return &Server{
		c:         config,
		rep:       rep,
		dashboard: dashboard,
		done:      make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Use(httprate.LimitByIP(100, time.Minute))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/dashboard/stats", s.getDashboardStats)
		r.Get("/dashboard/chart", s.getChartData)

		r.Get("/products", s.listProducts)
		r.Post("/products", s.addProduct)
		r.Get("/products/{id}", s.getProductById)

		r.Get("/sales", s.listSales)
		r.Post("/sales", s.addSale)
		r.Put("/sales/{id}/status", s.updateSaleStatus)
		r.Get("/sales/export", s.exportSales)

		r.Get("/debtors", s.listDebtors)
		r.Post("/debtors", s.addDebtor)
		r.Put("/debtors/{id}/paid", s.markDebtorPaid)

		r.Get("/expenses", s.listExpenses)
		r.Post("/expenses", s.addExpense)

		r.Get("/notes", s.listNotes)
		r.Post("/notes", s.addNote)
		r.Delete("/notes/{id}", s.deleteNote)
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context) error {
	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:    listenerAddr,
		Handler: s.router(),
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("duka-manager new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()),
			)
		}
		close(s.done)
	}()

	return nil
}

// Stop shuts the server down, letting in-flight requests finish.
func (s *Server) Stop(ctx context.Context) error {
	if s.hs == nil {
		return nil
	}
	return s.hs.Shutdown(ctx)
}
