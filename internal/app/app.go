package app

import (
	"fmt"

	"commitlens/internal/config"
	"commitlens/internal/services"

	log "github.com/sirupsen/logrus"
)

type App struct {
	Config *config.Config

	ClassificationService *services.ClassificationService
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initLogging(); err != nil {
		return nil, err
	}
	app.ClassificationService = services.NewClassificationService()

	log.Debug("Application initialization complete.")
	return app, nil
}

// initLogging configures logrus from the loaded config.
func (a *App) initLogging() error {
	level, err := log.ParseLevel(a.Config.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.Config.Log.Level, err)
	}
	log.SetLevel(level)

	if a.Config.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	return nil
}
