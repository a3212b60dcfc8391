package httpserver

import (
	"strconv"
	"time"

	"github.com/dmitrymomot/coerce/pkg/config"
	"github.com/dmitrymomot/coerce/pkg/validator"
)

// Config holds the listen address and timeouts of a Server.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Environment variable suffixes read by Vars and ConfigFromEnvironment.
const (
	EnvAddr            = "_ADDR"
	EnvReadTimeout     = "_READ_TIMEOUT"
	EnvWriteTimeout    = "_WRITE_TIMEOUT"
	EnvIdleTimeout     = "_IDLE_TIMEOUT"
	EnvShutdownTimeout = "_SHUTDOWN_TIMEOUT"
)

// Vars declares the server settings for config.LoadEnvironment under the
// given prefix. Timeouts are whole seconds.
//
//	vars := httpserver.Vars("NOTES") // NOTES_ADDR, NOTES_SHUTDOWN_TIMEOUT, ...
func Vars(prefix string) map[string]config.Var {
	seconds := func(max float64) validator.Validator {
		return validator.Integer(validator.MinValue(1), validator.MaxValue(max))
	}
	defaults := DefaultConfig()
	return map[string]config.Var{
		prefix + EnvAddr:            config.EnvDefault(validator.Text(), defaults.Addr),
		prefix + EnvReadTimeout:     config.EnvDefault(seconds(3600), secondsString(defaults.ReadTimeout)),
		prefix + EnvWriteTimeout:    config.EnvDefault(seconds(3600), secondsString(defaults.WriteTimeout)),
		prefix + EnvIdleTimeout:     config.EnvDefault(seconds(3600), secondsString(defaults.IdleTimeout)),
		prefix + EnvShutdownTimeout: config.EnvDefault(seconds(60), secondsString(defaults.ShutdownTimeout)),
	}
}

// ConfigFromEnvironment builds a Config from variables loaded with Vars.
// Variables missing from environ leave the corresponding field zero.
func ConfigFromEnvironment(environ config.Environment, prefix string) Config {
	addr, _ := config.Value[string](environ, prefix+EnvAddr)
	return Config{
		Addr:            addr,
		ReadTimeout:     secondsValue(environ, prefix+EnvReadTimeout),
		WriteTimeout:    secondsValue(environ, prefix+EnvWriteTimeout),
		IdleTimeout:     secondsValue(environ, prefix+EnvIdleTimeout),
		ShutdownTimeout: secondsValue(environ, prefix+EnvShutdownTimeout),
	}
}

func secondsValue(environ config.Environment, name string) time.Duration {
	n, _ := config.Value[int64](environ, name)
	return time.Duration(n) * time.Second
}

func secondsString(d time.Duration) string {
	return strconv.FormatInt(int64(d/time.Second), 10)
}
