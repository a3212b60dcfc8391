package notes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/coerce/pkg/httpserver"
	"github.com/dmitrymomot/coerce/pkg/requestid"
)

// NewRouter mounts the notes API and the day-of-week endpoint.
// Extra middleware runs after the request id and panic recovery.
func NewRouter(h *Handlers, mw ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware, middleware.Recoverer)
	r.Use(mw...)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, h.log, "not_found", ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Error: &ErrorDetail{
			Code:    "method_not_allowed",
			Message: http.StatusText(http.StatusMethodNotAllowed),
		}})
	})

	r.Get("/healthz", httpserver.HealthCheckHandler(h.log))
	r.Get("/day-of-week/", h.DayOfWeek)

	r.Route("/notes", func(r chi.Router) {
		r.Get("/", h.ListNotes)
		r.Post("/", h.CreateNote)
		r.Route("/{note_id}", func(r chi.Router) {
			r.Get("/", h.ReadNote)
			r.Put("/", h.UpdateNote)
			r.Delete("/", h.DeleteNote)
		})
	})

	return r
}
