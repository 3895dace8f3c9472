package out

import (
	"context"

	"pushpal/internal/modules/settings/domain"
)

type SettingsStore interface {
	Load(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, prefs domain.Preferences) error
}

// ThemeApplier switches the display between light and dark.
type ThemeApplier interface {
	Apply(ctx context.Context, dark bool) error
}
