package service

import (
	"context"
	"fmt"
	"log/slog"

	"pushpal/internal/modules/settings/domain"
	settingsout "pushpal/internal/modules/settings/port/out"
)

type SettingsService struct {
	store  settingsout.SettingsStore
	theme  settingsout.ThemeApplier
	logger *slog.Logger
}

func NewSettingsService(store settingsout.SettingsStore, theme settingsout.ThemeApplier, logger *slog.Logger) *SettingsService {
	return &SettingsService{store: store, theme: theme, logger: logger}
}

// Load never fails: a store error yields the defaults.
func (s *SettingsService) Load(ctx context.Context) domain.Preferences {
	prefs, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("settings load failed, using defaults", "error", err)
		return domain.Defaults()
	}
	return prefs.Normalize()
}

func (s *SettingsService) Save(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error) {
	prefs = prefs.Normalize()
	if err := s.store.Save(ctx, prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("save settings: %w", err)
	}
	s.logger.Info("settings saved",
		"progress_bar", prefs.ProgressBarEnabled,
		"dark_theme", prefs.DarkThemeEnabled,
		"goal", prefs.Goal,
	)
	return prefs, nil
}

func (s *SettingsService) ApplyTheme(ctx context.Context, dark bool) error {
	if s.theme == nil {
		return nil
	}
	if err := s.theme.Apply(ctx, dark); err != nil {
		return fmt.Errorf("apply theme: %w", err)
	}
	s.logger.Debug("theme applied", "dark", dark)
	return nil
}
