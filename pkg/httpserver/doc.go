// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, health-check handlers, and
// structured logging via slog.
//
// Server augments http.Server with:
//
//   - Graceful Shutdown: Run blocks until its context is cancelled or Shutdown
//     is called, then drains in-flight requests within ShutdownTimeout.
//     Signal handling belongs to the caller, typically via
//     signal.NotifyContext.
//
//   - Functional Options: New and NewFromConfig take Option helpers such as
//     WithAddr, WithReadTimeout, WithConfig and WithLogger.
//
//   - Hooks: WithStartHook receives the resolved listen address, which makes
//     "127.0.0.1:0" usable in tests. WithStopHook runs after shutdown.
//
//   - Health Checks: HealthCheckHandler serves liveness and readiness probes.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Configuration
//
// Vars declares the server settings for config.LoadEnvironment under a
// prefix, and ConfigFromEnvironment turns the loaded values into a Config for
// NewFromConfig:
//
//	environ, err := config.LoadEnvironment(httpserver.Vars("NOTES"))
//	if err != nil {
//		return err
//	}
//	srv := httpserver.NewFromConfig(httpserver.ConfigFromEnvironment(environ, "NOTES"),
//		httpserver.WithLogger(log))
//
// # Errors
//
// Run joins listen and serve failures with ErrStart (and ErrAlreadyRunning
// on a second call). Shutdown joins an expired drain with ErrShutdown.
package httpserver
