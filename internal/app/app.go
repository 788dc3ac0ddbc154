package app

import (
	"github.com/rs/zerolog"

	"signalpro/internal/config"
	"signalpro/internal/output"
)

// App aggregates configuration and shared dependencies for the CLI
// commands and the HTTP API.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

// NewWriter returns a document writer rooted at the configured output dir.
func (a *App) NewWriter() *output.Writer {
	return output.NewWriter(a.Config.Output.Dir, a.Logger)
}
