package app

import (
	"fmt"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Toup95/AgriDetec-test/internal/api"
	"github.com/Toup95/AgriDetec-test/internal/config"
	"github.com/Toup95/AgriDetec-test/internal/core"
	"github.com/Toup95/AgriDetec-test/internal/dispatcher"
	"github.com/Toup95/AgriDetec-test/internal/eventbus"
	"github.com/Toup95/AgriDetec-test/internal/history"
	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/internal/models"
	"github.com/Toup95/AgriDetec-test/internal/session"
)

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.Service
	store      *history.Store
	model      *AppModel
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.IsValid() {
		return nil, fmt.Errorf("profile %q has no server URL configured", cfg.ActiveProfile)
	}

	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)

	dataDir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	sessionID, err := session.Load(dataDir)
	if err != nil {
		slog.Warn("session id not persisted", "error", err)
	}

	// History is best effort: the app runs without it.
	store, err := history.Open(filepath.Join(dataDir, "history.db"))
	if err != nil {
		slog.Warn("history store unavailable", "error", err)
		store = nil
	}

	client := api.NewClient(cfg.GetBaseURL(),
		api.WithAnalyzeTimeout(cfg.GetAnalyzeTimeout()),
		api.WithRequestTimeout(cfg.GetRequestTimeout()),
	)

	service := core.NewService(cfg, client, store, sessionID, eb)

	model := &AppModel{
		appModel:   createInitialAppModel(cfg),
		dispatcher: disp,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		store:      store,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	app.service.Start()

	p := tea.NewProgram(app.model)
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	if app.store != nil {
		app.store.Close()
	}
}

func createInitialAppModel(cfg *config.Config) models.AppModel {
	// Messages and results come from core snapshots; the UI starts with
	// local state only.
	lang := cfg.GetLanguage()
	return models.AppModel{
		Screen:       models.ScreenLanguage,
		Language:     lang,
		Status:       i18n.T(lang, "status.ready"),
		ServiceReady: true,
	}
}
