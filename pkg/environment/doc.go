// Package environment names the deployment environment a process runs in and
// propagates it through context.Context, HTTP requests and structured logs.
//
// Environment values come from configuration. Validator plugs into
// pkg/config so that NOTES_ENV=prod, NOTES_ENV=Production and
// NOTES_ENV=production all load as Production, while a typo fails startup
// with the usual validation message:
//
//	environ, err := config.LoadEnvironment(map[string]config.Var{
//	    "NOTES_ENV": config.EnvDefault(environment.Validator(), "development"),
//	})
//	env, _ := config.Value[environment.Environment](environ, "NOTES_ENV")
//
// Middleware stores the environment on every request context and
// LoggerExtractor adds it to log records written with that context:
//
//	r.Use(environment.Middleware(env))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Missing values result in the zero Environment ("").
package environment
