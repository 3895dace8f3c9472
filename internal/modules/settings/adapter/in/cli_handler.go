package in

import (
	"context"

	"pushpal/internal/modules/settings/dto"
	settingsin "pushpal/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.PreferencesOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Set(ctx context.Context, progressBar, darkTheme *bool, goal *int) (dto.PreferencesOutput, error) {
	return h.usecase.Update(ctx, dto.UpdateInput{ProgressBarEnabled: progressBar, DarkThemeEnabled: darkTheme, Goal: goal})
}
