// Package config loads process configuration from environment variables and
// .env files, either through validators from pkg/validator or into tagged
// structs.
//
// It builds on `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for reading the environment.
//
// # Validated Environment
//
// Declare each variable with the validator that coerces it, plus an optional
// default. LoadEnvironment validates all of them and reports every bad
// variable at once:
//
//	environ, err := config.LoadEnvironment(map[string]config.Var{
//	    "NOTES_ADDR": config.EnvDefault(validator.Text(), ":8080"),
//	    "NOTES_SHUTDOWN_TIMEOUT": config.EnvDefault(
//	        validator.Integer(validator.MinValue(1), validator.MaxValue(60)), "5"),
//	    "NOTES_SIGNING_KEY": config.Env(validator.Text(validator.MinLength(32))),
//	})
//	if err != nil {
//	    // errors.Is(err, config.ErrInvalidEnvironment) holds and
//	    // validator.ExtractValidationError(err).Description() is keyed by
//	    // variable name, e.g. {"NOTES_SIGNING_KEY": "This field is required."}
//	}
//	timeout, _ := config.Value[int64](environ, "NOTES_SHUTDOWN_TIMEOUT")
//
// A variable that is unset falls back to its default, which goes through the
// validator like any other value. Without a default the validator's own
// default applies when it has one (validator.Optional); otherwise the
// variable is required.
//
// Values are read through env.ToMap(os.Environ()), so call LoadEnv first when
// variables live in .env files. Tests pass WithEnvironment instead of touching
// the process environment.
//
// # Struct Loading
//
// Load parses tagged structs and caches the result per type, so later calls
// for the same type return the first result:
//
//	type StoreConfig struct {
//	    SeedNotes bool `env:"NOTES_SEED" envDefault:"true"`
//	}
//
//	var cfg StoreConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Failed parses are not cached. ResetCache and ForceReloadConfig drop cached
// values, mostly for tests.
//
// # Errors
//
//   - ErrInvalidEnvironment: declared variables failed validation.
//   - ErrLoadingEnvFile: a .env file could not be read or parsed.
//   - ErrParsingConfig: the environment did not fit a tagged struct.
//   - ErrConfigNotLoaded: a concurrent Load of the same type failed.
//   - ErrNilPointer: Load was given a nil pointer.
package config
