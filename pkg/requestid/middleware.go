package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrymomot/coerce/pkg/validator"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var (
	validIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// idValidator bounds client supplied ids before the character check.
	idValidator = validator.Text(validator.MaxLength(maxIDLength))
)

// Middleware reuses a well-formed X-Request-ID header or generates a UUIDv4,
// stores the id in the request context and echoes it in the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if !isValidRequestID(requestID) {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
	})
}

func isValidRequestID(id string) bool {
	value, err := idValidator.Validate(id)
	if err != nil {
		return false
	}
	// Surrounding whitespace is trimmed by the validator but not allowed here.
	return value == id && validIDRegex.MatchString(id)
}
