package notes

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/coerce/pkg/binder"
	"github.com/dmitrymomot/coerce/pkg/params"
	"github.com/dmitrymomot/coerce/pkg/validator"
)

// MaxDescriptionLength is the longest note description accepted.
const MaxDescriptionLength = 100

var (
	dayOfWeekParams = params.New(
		[]string{"date"},
		params.Validators{"date": validator.ISODate()},
	)

	createNoteParams = params.New(
		[]string{"description"},
		params.Validators{"description": validator.Text(validator.MaxLength(MaxDescriptionLength))},
	)

	updateNoteParams = params.New(
		[]string{"note_id", "description", "complete"},
		params.Validators{
			"description": validator.Text(validator.MaxLength(MaxDescriptionLength)),
			"complete":    validator.Boolean(),
		},
	)
)

// requestBody extracts the body by Content-Type. A request without a body
// and without a Content-Type yields an empty map.
func requestBody(r *http.Request) (map[string]any, error) {
	if r.Header.Get("Content-Type") == "" && r.ContentLength <= 0 {
		return map[string]any{}, nil
	}
	if body, err := binder.JSON(r); err == nil || !isMediaTypeError(err) {
		return body, err
	}
	return binder.Form(r)
}

func isMediaTypeError(err error) bool {
	return errors.Is(err, binder.ErrUnsupportedMediaType)
}

// noteInput merges path, query and body values, later sources winning.
func noteInput(r *http.Request) (map[string]any, error) {
	body, err := requestBody(r)
	if err != nil {
		return nil, err
	}
	return binder.Merge(
		binder.Query(r),
		body,
		binder.Path(r, chi.URLParam, "note_id"),
	), nil
}

// requireArgs fails with a "required" error for each name missing from args.
func requireArgs(args params.Args, names ...string) error {
	missing := make(map[string]*validator.ValidationError)
	for _, name := range names {
		if !args.Has(name) {
			missing[name] = validator.NewError(validator.KindRequired, nil)
		}
	}
	if verr := validator.NewFieldsError(missing); verr != nil {
		return verr
	}
	return nil
}
