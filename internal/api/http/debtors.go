package httpapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/kagabo/duka-manager/internal/entity"
)

func (s *Server) listDebtors(w http.ResponseWriter, r *http.Request) {
	var (
		debtors []entity.Debtor
		err     error
	)
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, convErr := strconv.Atoi(v)
		if convErr != nil || limit <= 0 {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("bad limit %q", v)))
			return
		}
		debtors, err = s.rep.Debtors().RecentDebtors(r.Context(), limit)
	} else {
		debtors, err = s.rep.Debtors().ListDebtors(r.Context())
	}
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't list debtors",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	if debtors == nil {
		debtors = []entity.Debtor{}
	}
	render.JSON(w, r, debtors)
}

func (s *Server) addDebtor(w http.ResponseWriter, r *http.Request) {
	var data entity.DebtorInsert
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	id, err := s.rep.Debtors().AddDebtor(r.Context(), &data)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't add debtor",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.Render(w, r, &IdResponse{Id: id})
}

func (s *Server) markDebtorPaid(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := s.rep.Debtors().MarkDebtorPaid(r.Context(), id); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't settle debtor",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
