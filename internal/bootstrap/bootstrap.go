package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	counterinadapter "pushpal/internal/modules/counter/adapter/in"
	counteroutadapter "pushpal/internal/modules/counter/adapter/out"
	counterservice "pushpal/internal/modules/counter/service"
	counterusecase "pushpal/internal/modules/counter/usecase"
	settingsinadapter "pushpal/internal/modules/settings/adapter/in"
	settingsoutadapter "pushpal/internal/modules/settings/adapter/out"
	settingsservice "pushpal/internal/modules/settings/service"
	settingsusecase "pushpal/internal/modules/settings/usecase"
	"pushpal/internal/platform/clock"
	"pushpal/internal/platform/config"
	"pushpal/internal/platform/kv"
	"pushpal/internal/platform/logging"
	uiapp "pushpal/internal/ui/app"
	"pushpal/internal/ui/theme"
)

type App struct {
	CounterCLI  counterinadapter.CLIHandler
	CounterTUI  counterinadapter.TUIHandler
	SettingsCLI settingsinadapter.CLIHandler
	SettingsTUI settingsinadapter.TUIHandler
	Theme       *theme.Service
	Logger      *slog.Logger

	closers []io.Closer
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	logFile, err := logging.OpenFile(cfg.LogPath)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logFile, cfg.LogLevel).With("store", cfg.Store.Backend)

	store, err := kv.Open(ctx, cfg, clk)
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}

	themeSvc := theme.NewService(logger.With("component", "theme"))

	settingsUC := settingsusecase.NewInteractor(settingsservice.NewSettingsService(
		settingsoutadapter.NewKVSettingsStore(store, logger.With("module", "settings")),
		themeSvc,
		logger.With("module", "settings"),
	))

	counterUC := counterusecase.NewInteractor(counterservice.NewCounterService(
		counteroutadapter.NewKVCountStore(store),
		counteroutadapter.NewSettingsPreferenceAdapter(settingsUC),
		themeSvc,
		logger.With("module", "counter"),
		cfg.Prompt,
	))

	logger.Debug("app wired", "data_dir", cfg.DataDir)

	return &App{
		CounterCLI:  counterinadapter.NewCLIHandler(counterUC),
		CounterTUI:  counterinadapter.NewTUIHandler(counterUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		SettingsTUI: settingsinadapter.NewTUIHandler(settingsUC),
		Theme:       themeSvc,
		Logger:      logger,
		closers:     []io.Closer{store, logFile},
	}, nil
}

// Close releases the store and then the log file.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.CounterTUI, app.SettingsTUI, app.Theme)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if err != nil {
		app.Logger.Error("tui exited", "error", err)
	}
	return err
}
