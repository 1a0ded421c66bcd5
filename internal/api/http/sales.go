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
	"github.com/xuri/excelize/v2"
)

func (s *Server) listSales(w http.ResponseWriter, r *http.Request) {
	win, err := windowFromQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("bad limit %q", v)))
			return
		}
		sales, err := s.rep.Sales().RecentSales(r.Context(), limit)
		if err != nil {
			slog.Default().ErrorContext(r.Context(), "can't list recent sales",
				slog.String("err", err.Error()),
			)
			render.Render(w, r, ErrInternalServerError(err))
			return
		}
		renderSales(w, r, sales)
		return
	}

	sales, err := s.rep.Sales().ListSales(r.Context(), win)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't list sales",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	renderSales(w, r, sales)
}

func renderSales(w http.ResponseWriter, r *http.Request, sales []entity.Sale) {
	if sales == nil {
		sales = []entity.Sale{}
	}
	render.JSON(w, r, sales)
}

func (s *Server) addSale(w http.ResponseWriter, r *http.Request) {
	var data entity.SaleInsert
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	id, err := s.rep.Sales().AddSale(r.Context(), &data)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't add sale",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.Render(w, r, &IdResponse{Id: id})
}

func (s *Server) updateSaleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	var body struct {
		Status entity.PaymentStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !body.Status.Valid() {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("invalid payment status %q", body.Status)))
		return
	}
	if err := s.rep.Sales().UpdateSaleStatus(r.Context(), id, body.Status); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't update sale status",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// exportSales streams the filtered sales as an .xlsx workbook.
func (s *Server) exportSales(w http.ResponseWriter, r *http.Request) {
	win, err := windowFromQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	sales, err := s.rep.Sales().ListSales(r.Context(), win)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't export sales",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	headers := []string{"Customer", "Product", "Quantity", "Amount", "Cost", "Profit", "Date", "Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			render.Render(w, r, ErrInternalServerError(err))
			return
		}
		f.SetCellValue("Sheet1", cell, h)
	}
	for i, sl := range sales {
		row := i + 2
		values := []any{
			sl.CustomerName,
			sl.ProductName,
			sl.Quantity,
			sl.Amount.InexactFloat64(),
			sl.CostPrice.InexactFloat64(),
			sl.Profit.InexactFloat64(),
			sl.SaleDate.Format(dateLayout),
			string(sl.PaymentStatus),
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				render.Render(w, r, ErrInternalServerError(err))
				return
			}
			f.SetCellValue("Sheet1", cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=sales.xlsx")
	if err := f.Write(w); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't write sales workbook",
			slog.String("err", err.Error()),
		)
	}
}
