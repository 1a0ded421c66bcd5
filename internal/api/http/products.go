package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/kagabo/duka-manager/internal/entity"
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	win, err := windowFromQuery(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	products, err := s.rep.Products().ListProducts(r.Context(), win)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't list products",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	if products == nil {
		products = []entity.Product{}
	}
	render.JSON(w, r, products)
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	var data entity.ProductInsert
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	id, err := s.rep.Products().AddProduct(r.Context(), &data)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't add product",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.Render(w, r, &IdResponse{Id: id})
}

func (s *Server) getProductById(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	prd, err := s.rep.Products().GetProductById(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrNotFound(err))
		return
	}
	render.JSON(w, r, prd)
}
