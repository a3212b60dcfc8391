// Package params binds named call arguments to validators.
//
// A Binder is declared once with the argument names of the function it guards
// and the validators for some of them. Bind then coerces the supplied values
// and reports every invalid argument in a single *validator.ValidationError
// keyed by argument name, the same shape validator.ObjectOf produces.
//
// Unlike ObjectOf, arguments that were not supplied are not an error: they
// stay absent so the callee can apply its own defaults. Wrapping a validator
// in validator.Optional makes Bind fill in the default instead.
//
// # Usage
//
//	updateNote := params.New(
//	    []string{"note_id", "description", "complete"},
//	    params.Validators{
//	        "description": validator.Text(validator.MaxLength(100)),
//	        "complete":    validator.Boolean(),
//	    },
//	)
//
//	args, err := updateNote.Bind(map[string]any{"note_id": id, "complete": "true"})
//	if err != nil {
//	    // errors.Is(err, validator.ErrValidationFailed)
//	}
//	if complete, ok := params.Get[bool](args, "complete"); ok {
//	    // ...
//	}
package params
