package notes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coerce/internal/notes"
	"github.com/dmitrymomot/coerce/pkg/logger"
	"github.com/dmitrymomot/coerce/pkg/requestid"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newServer(t *testing.T, seed ...notes.Note) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	logs := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(logs), logger.WithContextExtractors(requestid.LoggerExtractor()))
	srv := httptest.NewServer(notes.NewRouter(notes.NewHandlers(notes.NewStore(seed...), log)))
	t.Cleanup(srv.Close)
	return srv, logs
}

func do(t *testing.T, method, url, contentType, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp.StatusCode, env
}

func decodeNote(t *testing.T, raw json.RawMessage) notes.Note {
	t.Helper()
	var n notes.Note
	require.NoError(t, json.Unmarshal(raw, &n))
	return n
}

func TestDayOfWeek(t *testing.T) {
	t.Parallel()
	srv, _ := newServer(t)

	t.Run("valid date", func(t *testing.T) {
		status, env := do(t, http.MethodGet, srv.URL+"/day-of-week/?date=2024-02-29", "", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"day":"Thursday"}`, string(env.Data))
	})

	t.Run("invalid date", func(t *testing.T) {
		status, env := do(t, http.MethodGet, srv.URL+"/day-of-week/?date=2023-02-29", "", "")
		require.Equal(t, http.StatusBadRequest, status)
		require.NotNil(t, env.Error)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Equal(t, map[string]any{"date": "Must be a valid date."}, env.Error.Details)
	})

	t.Run("missing date", func(t *testing.T) {
		status, env := do(t, http.MethodGet, srv.URL+"/day-of-week/", "", "")
		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, map[string]any{"date": "This field is required."}, env.Error.Details)
	})
}

func TestNotesAPI(t *testing.T) {
	t.Parallel()

	seed := []notes.Note{
		{ID: "0f8c5b1e-5f2e-4c4e-9b7a-1d2e3f4a5b6c", Description: "Meet someone", Complete: true},
		{ID: "1a2b3c4d-0000-4000-8000-000000000001", Description: "Walk somewhere"},
	}

	t.Run("list", func(t *testing.T) {
		srv, _ := newServer(t, seed...)
		status, env := do(t, http.MethodGet, srv.URL+"/notes/", "", "")
		require.Equal(t, http.StatusOK, status)

		var list []notes.Note
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, seed, list)
	})

	t.Run("list empty store", func(t *testing.T) {
		srv, _ := newServer(t)
		status, env := do(t, http.MethodGet, srv.URL+"/notes/", "", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("list after deleting every note", func(t *testing.T) {
		srv, _ := newServer(t, seed[0])
		status, _ := do(t, http.MethodDelete, srv.URL+"/notes/"+seed[0].ID+"/", "", "")
		require.Equal(t, http.StatusNoContent, status)

		status, env := do(t, http.MethodGet, srv.URL+"/notes/", "", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("create from json", func(t *testing.T) {
		srv, logs := newServer(t, seed...)
		status, env := do(t, http.MethodPost, srv.URL+"/notes/", "application/json",
			`{"description":"  Buy milk  "}`)
		require.Equal(t, http.StatusCreated, status)

		n := decodeNote(t, env.Data)
		assert.Equal(t, "Buy milk", n.Description)
		assert.False(t, n.Complete)
		assert.NotEmpty(t, n.ID)
		assert.Contains(t, logs.String(), `"event":"note_created"`)
		assert.Contains(t, logs.String(), `"request_id":`)

		_, env = do(t, http.MethodGet, srv.URL+"/notes/", "", "")
		var list []notes.Note
		require.NoError(t, json.Unmarshal(env.Data, &list))
		require.Len(t, list, 3)
		assert.Equal(t, n.ID, list[0].ID)
	})

	t.Run("create from form", func(t *testing.T) {
		srv, _ := newServer(t)
		status, env := do(t, http.MethodPost, srv.URL+"/notes/",
			"application/x-www-form-urlencoded", "description=Call+mom")
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Call mom", decodeNote(t, env.Data).Description)
	})

	t.Run("create rejects invalid description", func(t *testing.T) {
		srv, logs := newServer(t)

		status, env := do(t, http.MethodPost, srv.URL+"/notes/", "application/json",
			`{"description":"`+strings.Repeat("x", 101)+`"}`)
		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, map[string]any{"description": "Must have no more than 100 characters."}, env.Error.Details)
		assert.Contains(t, logs.String(), `"level":"WARN"`)

		status, env = do(t, http.MethodPost, srv.URL+"/notes/", "", "")
		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, map[string]any{"description": "This field is required."}, env.Error.Details)

		status, env = do(t, http.MethodPost, srv.URL+"/notes/", "application/json", `{"description":null}`)
		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, map[string]any{"description": "This field may not be null."}, env.Error.Details)
	})

	t.Run("create rejects malformed bodies", func(t *testing.T) {
		srv, _ := newServer(t)

		status, env := do(t, http.MethodPost, srv.URL+"/notes/", "application/json", `{"description":`)
		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "bad_request", env.Error.Code)

		status, env = do(t, http.MethodPost, srv.URL+"/notes/", "text/plain", "hello")
		require.Equal(t, http.StatusUnsupportedMediaType, status)
		assert.Equal(t, "unsupported_media_type", env.Error.Code)
	})

	t.Run("read", func(t *testing.T) {
		srv, _ := newServer(t, seed...)
		status, env := do(t, http.MethodGet, srv.URL+"/notes/"+seed[1].ID+"/", "", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, seed[1], decodeNote(t, env.Data))

		status, env = do(t, http.MethodGet, srv.URL+"/notes/missing/", "", "")
		require.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "not_found", env.Error.Code)
	})

	t.Run("update", func(t *testing.T) {
		srv, _ := newServer(t, seed...)
		url := srv.URL + "/notes/" + seed[1].ID + "/"

		status, env := do(t, http.MethodPut, url, "application/json", `{"complete":"true"}`)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, notes.Note{ID: seed[1].ID, Description: "Walk somewhere", Complete: true},
			decodeNote(t, env.Data))

		status, env = do(t, http.MethodPut, url, "application/json", `{"description":"Run","complete":0}`)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, notes.Note{ID: seed[1].ID, Description: "Run"}, decodeNote(t, env.Data))
	})

	t.Run("update reports every invalid field", func(t *testing.T) {
		srv, _ := newServer(t, seed...)
		status, env := do(t, http.MethodPut, srv.URL+"/notes/"+seed[0].ID+"/", "application/json",
			`{"description":"","complete":"maybe"}`)
		require.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, map[string]any{
			"description": "This field may not be blank.",
			"complete":    "Must be a valid boolean.",
		}, env.Error.Details)
	})

	t.Run("update unknown note", func(t *testing.T) {
		srv, _ := newServer(t)
		status, _ := do(t, http.MethodPut, srv.URL+"/notes/missing/", "application/json", `{"complete":true}`)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("delete", func(t *testing.T) {
		srv, _ := newServer(t, seed...)
		url := srv.URL + "/notes/" + seed[0].ID + "/"

		status, _ := do(t, http.MethodDelete, url, "", "")
		require.Equal(t, http.StatusNoContent, status)

		status, _ = do(t, http.MethodDelete, url, "", "")
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestNewRouter_Extras(t *testing.T) {
	t.Parallel()

	var seen bool
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = true
			next.ServeHTTP(w, r)
		})
	}
	h := notes.NewHandlers(notes.NewStore(), slog.New(slog.DiscardHandler))
	router := notes.NewRouter(h, mw)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	assert.True(t, seen)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/notes/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
