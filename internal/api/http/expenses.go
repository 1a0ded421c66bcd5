package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/kagabo/duka-manager/internal/entity"
)

func (s *Server) listExpenses(w http.ResponseWriter, r *http.Request) {
	win, err := windowFromQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	expenses, err := s.rep.Expenses().ListExpenses(r.Context(), win)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't list expenses",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	if expenses == nil {
		expenses = []entity.Expense{}
	}
	render.JSON(w, r, expenses)
}

func (s *Server) addExpense(w http.ResponseWriter, r *http.Request) {
	var data entity.ExpenseInsert
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	id, err := s.rep.Expenses().AddExpense(r.Context(), &data)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't add expense",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.Render(w, r, &IdResponse{Id: id})
}
