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

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.rep.Notes().ListNotes(r.Context())
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't list notes",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	if notes == nil {
		notes = []entity.Note{}
	}
	render.JSON(w, r, notes)
}

func (s *Server) addNote(w http.ResponseWriter, r *http.Request) {
	var data entity.NoteInsert
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	id, err := s.rep.Notes().AddNote(r.Context(), &data)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't add note",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	render.Status(r, http.StatusCreated)
	render.Render(w, r, &IdResponse{Id: id})
}

func (s *Server) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := s.rep.Notes().DeleteNote(r.Context(), id); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't delete note",
			slog.String("err", err.Error()),
		)
		render.Render(w, r, ErrInternalServerError(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
