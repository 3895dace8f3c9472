package in

import (
	"context"

	"pushpal/internal/modules/settings/dto"
	settingsin "pushpal/internal/modules/settings/port/in"
)

type TUIHandler struct {
	usecase settingsin.Usecase
}

func NewTUIHandler(usecase settingsin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Resume(ctx context.Context) (dto.PreferencesOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h TUIHandler) Pause(ctx context.Context, progressBar, darkTheme bool, goal int) (dto.PreferencesOutput, error) {
	return h.usecase.Pause(ctx, dto.SaveInput{ProgressBarEnabled: progressBar, DarkThemeEnabled: darkTheme, Goal: goal})
}

func (h TUIHandler) PreviewTheme(ctx context.Context, dark bool) error {
	return h.usecase.PreviewTheme(ctx, dark)
}

func (h TUIHandler) StepGoal(goal, delta int) int {
	return h.usecase.StepGoal(goal, delta)
}
