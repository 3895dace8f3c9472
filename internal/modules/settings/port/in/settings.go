package in

import (
	"context"

	"pushpal/internal/modules/settings/dto"
)

type Usecase interface {
	// Resume loads the stored preferences and applies the stored theme.
	Resume(ctx context.Context) (dto.PreferencesOutput, error)
	// Pause persists the screen's current values.
	Pause(ctx context.Context, input dto.SaveInput) (dto.PreferencesOutput, error)
	Get(ctx context.Context) (dto.PreferencesOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.PreferencesOutput, error)
	PreviewTheme(ctx context.Context, dark bool) error
	// StepGoal moves the goal picker, wrapping at either bound.
	StepGoal(goal, delta int) int
}
