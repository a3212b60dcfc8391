package main

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/dmitrymomot/coerce/internal/notes"
	"github.com/dmitrymomot/coerce/pkg/config"
	"github.com/dmitrymomot/coerce/pkg/environment"
	"github.com/dmitrymomot/coerce/pkg/httpserver"
	"github.com/dmitrymomot/coerce/pkg/logger"
	"github.com/dmitrymomot/coerce/pkg/requestid"
)

const (
	serviceName = "notes"
	envPrefix   = "NOTES"
)

func main() {
	// A missing .env file is fine; variables may come from the process.
	if err := config.LoadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to load .env file", logger.Error(err))
		os.Exit(1)
	}

	vars := httpserver.Vars(envPrefix)
	vars[envPrefix+"_ENV"] = config.EnvDefault(environment.Validator(), string(environment.Development))
	vars[envPrefix+"_LOG_LEVEL"] = config.EnvDefault(logger.LevelValidator(), "")

	environ, err := config.LoadEnvironment(vars)
	if err != nil {
		slog.Error("invalid configuration",
			logger.Component(serviceName),
			logger.Validation(err),
			logger.Error(err),
		)
		os.Exit(1)
	}

	env, _ := config.Value[environment.Environment](environ, envPrefix+"_ENV")
	logOpts := []logger.Option{
		logger.WithEnvironment(env, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if level, ok := config.Value[slog.Level](environ, envPrefix+"_LOG_LEVEL"); ok {
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var storeCfg notes.StoreConfig
	if err := config.Load(&storeCfg); err != nil {
		log.Error("invalid store configuration", logger.Error(err))
		os.Exit(1)
	}

	handlers := notes.NewHandlers(notes.NewStoreFromConfig(storeCfg), log)
	router := notes.NewRouter(handlers, environment.Middleware(env))

	srv := httpserver.NewFromConfig(
		httpserver.ConfigFromEnvironment(environ, envPrefix),
		httpserver.WithLogger(log),
	)

	log.Info("configuration loaded",
		logger.Component(serviceName),
		slog.Any("variables", slices.Sorted(maps.Keys(vars))),
	)

	if err := srv.Run(ctx, router); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
