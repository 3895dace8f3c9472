package out

import (
	"context"

	"pushpal/internal/modules/counter/domain"
)

type CountStore interface {
	LoadCount(ctx context.Context) (domain.Tally, error)
	SaveCount(ctx context.Context, count domain.Tally) error
}

type PreferenceReader interface {
	Load(ctx context.Context) (domain.DisplayPrefs, error)
}

type ThemeApplier interface {
	Apply(ctx context.Context, dark bool) error
}
