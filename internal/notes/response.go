package notes

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/coerce/pkg/binder"
	"github.com/dmitrymomot/coerce/pkg/environment"
	"github.com/dmitrymomot/coerce/pkg/logger"
	"github.com/dmitrymomot/coerce/pkg/validator"
)

// Response is the JSON envelope of every API response.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details carries the validation
// description, shaped like the rejected input.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// errorInfo is the classified form of a handler error.
type errorInfo struct {
	status int
	detail ErrorDetail
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Data: data})
}

// classifyError maps handler errors to a status code and error body.
func classifyError(err error) errorInfo {
	if verr := validator.ExtractValidationError(err); verr != nil {
		return errorInfo{
			status: http.StatusBadRequest,
			detail: ErrorDetail{
				Code:    "validation_error",
				Message: "Request validation failed",
				Details: verr,
			},
		}
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return errorInfo{http.StatusNotFound, ErrorDetail{Code: "not_found", Message: "Not found"}}
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return errorInfo{http.StatusUnsupportedMediaType, ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return errorInfo{http.StatusRequestEntityTooLarge, ErrorDetail{Code: "body_too_large", Message: err.Error()}}
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrMissingContentType):
		return errorInfo{http.StatusBadRequest, ErrorDetail{Code: "bad_request", Message: err.Error()}}
	}

	return errorInfo{
		status: http.StatusInternalServerError,
		detail: ErrorDetail{Code: "internal_error", Message: "An error occurred processing your request"},
	}
}

// writeError logs err and renders it. Client errors log at warn level,
// everything else at error level. In development, internal errors expose
// err.Error() under details.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, handler string, err error) {
	info := classifyError(err)
	if info.status == http.StatusInternalServerError && environment.IsDevelopment(r.Context()) {
		info.detail.Details = err.Error()
	}

	level := slog.LevelError
	if info.status < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	log.LogAttrs(r.Context(), level, "request error",
		logger.Handler(handler),
		logger.Status(info.status),
		logger.Error(err),
		logger.Validation(err),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	writeJSON(w, info.status, Response{Error: &info.detail})
}

