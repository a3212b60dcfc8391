package notes

import (
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no note has the requested id.
var ErrNotFound = errors.New("note not found")

// Note is a single to-do entry.
type Note struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}

// Patch holds the fields of an update. Nil fields are left unchanged.
type Patch struct {
	Description *string
	Complete    *bool
}

// Store keeps notes in memory, newest first. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	notes []Note
}

// StoreConfig controls how the service store starts. It is loaded with
// config.Load.
type StoreConfig struct {
	Seed bool `env:"NOTES_SEED" envDefault:"true"`
}

// NewStoreFromConfig returns an empty store, or one holding SeedNotes when
// cfg.Seed is set.
func NewStoreFromConfig(cfg StoreConfig) *Store {
	if !cfg.Seed {
		return NewStore()
	}
	return NewStore(SeedNotes()...)
}

// NewStore returns a store holding the given notes in order.
func NewStore(seed ...Note) *Store {
	return &Store{notes: slices.Clone(seed)}
}

// SeedNotes returns the notes a fresh service starts with.
func SeedNotes() []Note {
	return []Note{
		{ID: uuid.NewString(), Description: "Meet someone", Complete: true},
		{ID: uuid.NewString(), Description: "Walk somewhere"},
		{ID: uuid.NewString(), Description: "Do something"},
	}
}

// List returns a copy of all notes. The result is never nil.
func (s *Store) List() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Get returns the note with the given id.
func (s *Store) Get(id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.index(id)
	if i < 0 {
		return Note{}, ErrNotFound
	}
	return s.notes[i], nil
}

// Create adds an incomplete note in front of the others.
func (s *Store) Create(description string) Note {
	note := Note{ID: uuid.NewString(), Description: description}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = slices.Insert(s.notes, 0, note)
	return note
}

// Update applies p to the note with the given id and returns the result.
func (s *Store) Update(id string, p Patch) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return Note{}, ErrNotFound
	}
	if p.Description != nil {
		s.notes[i].Description = *p.Description
	}
	if p.Complete != nil {
		s.notes[i].Complete = *p.Complete
	}
	return s.notes[i], nil
}

// Delete removes the note with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	return nil
}

// index must be called with s.mu held.
func (s *Store) index(id string) int {
	return slices.IndexFunc(s.notes, func(n Note) bool { return n.ID == id })
}
