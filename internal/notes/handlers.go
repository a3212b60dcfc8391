package notes

import (
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/coerce/pkg/binder"
	"github.com/dmitrymomot/coerce/pkg/logger"
	"github.com/dmitrymomot/coerce/pkg/params"
)

// Handlers serves the notes API on top of a Store.
type Handlers struct {
	store *Store
	log   *slog.Logger
}

// NewHandlers returns handlers backed by store. A nil log discards output.
func NewHandlers(store *Store, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handlers{store: store, log: log.With(logger.Component("notes"))}
}

// DayOfWeek handles GET /day-of-week/?date=YYYY-MM-DD.
func (h *Handlers) DayOfWeek(w http.ResponseWriter, r *http.Request) {
	args, err := dayOfWeekParams.Bind(binder.Query(r))
	if err == nil {
		err = requireArgs(args, "date")
	}
	if err != nil {
		writeError(w, r, h.log, "day_of_week", err)
		return
	}

	date, _ := params.Get[civil.Date](args, "date")
	writeData(w, http.StatusOK, map[string]string{
		"day": date.In(time.UTC).Weekday().String(),
	})
}

// ListNotes handles GET /notes/.
func (h *Handlers) ListNotes(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, h.store.List())
}

// CreateNote handles POST /notes/.
func (h *Handlers) CreateNote(w http.ResponseWriter, r *http.Request) {
	input, err := noteInput(r)
	if err != nil {
		writeError(w, r, h.log, "create_note", err)
		return
	}
	args, err := createNoteParams.Bind(input)
	if err == nil {
		err = requireArgs(args, "description")
	}
	if err != nil {
		writeError(w, r, h.log, "create_note", err)
		return
	}

	description, _ := params.Get[string](args, "description")
	note := h.store.Create(description)

	h.log.InfoContext(r.Context(), "note created",
		logger.Event("note_created"),
		logger.NoteID(note.ID),
	)
	writeData(w, http.StatusCreated, note)
}

// ReadNote handles GET /notes/{note_id}/.
func (h *Handlers) ReadNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.store.Get(chi.URLParam(r, "note_id"))
	if err != nil {
		writeError(w, r, h.log, "read_note", err)
		return
	}
	writeData(w, http.StatusOK, note)
}

// UpdateNote handles PUT /notes/{note_id}/. Both description and complete
// are optional; fields left out keep their value.
func (h *Handlers) UpdateNote(w http.ResponseWriter, r *http.Request) {
	input, err := noteInput(r)
	if err != nil {
		writeError(w, r, h.log, "update_note", err)
		return
	}
	args, err := updateNoteParams.Bind(input)
	if err != nil {
		writeError(w, r, h.log, "update_note", err)
		return
	}

	id, _ := params.Get[string](args, "note_id")
	var patch Patch
	if description, ok := params.Get[string](args, "description"); ok {
		patch.Description = &description
	}
	if complete, ok := params.Get[bool](args, "complete"); ok {
		patch.Complete = &complete
	}

	note, err := h.store.Update(id, patch)
	if err != nil {
		writeError(w, r, h.log, "update_note", err)
		return
	}

	h.log.InfoContext(r.Context(), "note updated",
		logger.Event("note_updated"),
		logger.NoteID(note.ID),
	)
	writeData(w, http.StatusOK, note)
}

// DeleteNote handles DELETE /notes/{note_id}/.
func (h *Handlers) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "note_id")
	if err := h.store.Delete(id); err != nil {
		writeError(w, r, h.log, "delete_note", err)
		return
	}

	h.log.InfoContext(r.Context(), "note deleted",
		logger.Event("note_deleted"),
		logger.NoteID(id),
	)
	w.WriteHeader(http.StatusNoContent)
}
