package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies and lifecycle for one
// invocation: the writer catalog output goes to, and an isolated logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
}

// NewApp is the constructor for the main application. Catalog output is
// written to outW; log records go to logW so that piping stdout stays clean.
func NewApp(outW, logW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
	}
}
