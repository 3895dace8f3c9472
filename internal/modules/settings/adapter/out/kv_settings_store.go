package out

import (
	"context"
	"fmt"
	"log/slog"

	"pushpal/internal/modules/settings/domain"
	settingsout "pushpal/internal/modules/settings/port/out"
	"pushpal/internal/platform/kv"
)

type KVSettingsStore struct {
	store  kv.Store
	logger *slog.Logger
}

func NewKVSettingsStore(store kv.Store, logger *slog.Logger) settingsout.SettingsStore {
	return &KVSettingsStore{store: store, logger: logger}
}

// Load reads each key on its own so one bad value does not reset the others.
func (s *KVSettingsStore) Load(ctx context.Context) (domain.Preferences, error) {
	defaults := domain.Defaults()
	progressBar, err := kv.BoolOr(ctx, s.store, domain.KeyProgressBarEnabled, defaults.ProgressBarEnabled)
	s.logFallback(err)
	dark, err := kv.BoolOr(ctx, s.store, domain.KeyDarkThemeEnabled, defaults.DarkThemeEnabled)
	s.logFallback(err)
	goal, err := kv.IntOr(ctx, s.store, domain.KeyGoal, defaults.Goal)
	s.logFallback(err)
	return domain.Preferences{
		ProgressBarEnabled: progressBar,
		DarkThemeEnabled:   dark,
		Goal:               goal,
	}.Normalize(), nil
}

// Save writes the three keys in one batch.
func (s *KVSettingsStore) Save(ctx context.Context, prefs domain.Preferences) error {
	batch := kv.Batch{}.
		Bool(domain.KeyProgressBarEnabled, prefs.ProgressBarEnabled).
		Bool(domain.KeyDarkThemeEnabled, prefs.DarkThemeEnabled).
		Int(domain.KeyGoal, domain.ClampGoal(prefs.Goal))
	if err := s.store.SetMany(ctx, batch); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

func (s *KVSettingsStore) logFallback(err error) {
	if err != nil {
		s.logger.Warn("preference read fell back to default", "error", err)
	}
}
