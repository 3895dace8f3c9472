package usecase

import (
	"context"

	"pushpal/internal/modules/settings/domain"
	"pushpal/internal/modules/settings/dto"
	settingsin "pushpal/internal/modules/settings/port/in"
	"pushpal/internal/modules/settings/service"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Resume(ctx context.Context) (dto.PreferencesOutput, error) {
	prefs := i.svc.Load(ctx)
	if err := i.svc.ApplyTheme(ctx, prefs.DarkThemeEnabled); err != nil {
		return dto.PreferencesOutput{}, err
	}
	return toOutput(prefs), nil
}

func (i *Interactor) Pause(ctx context.Context, input dto.SaveInput) (dto.PreferencesOutput, error) {
	saved, err := i.svc.Save(ctx, domain.Preferences{
		ProgressBarEnabled: input.ProgressBarEnabled,
		DarkThemeEnabled:   input.DarkThemeEnabled,
		Goal:               input.Goal,
	})
	if err != nil {
		return dto.PreferencesOutput{}, err
	}
	return toOutput(saved), nil
}

func (i *Interactor) Get(ctx context.Context) (dto.PreferencesOutput, error) {
	return toOutput(i.svc.Load(ctx)), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.PreferencesOutput, error) {
	prefs := i.svc.Load(ctx)
	wasDark := prefs.DarkThemeEnabled
	if input.ProgressBarEnabled != nil {
		prefs.ProgressBarEnabled = *input.ProgressBarEnabled
	}
	if input.DarkThemeEnabled != nil {
		prefs.DarkThemeEnabled = *input.DarkThemeEnabled
	}
	if input.Goal != nil {
		prefs.Goal = *input.Goal
	}
	saved, err := i.svc.Save(ctx, prefs)
	if err != nil {
		return dto.PreferencesOutput{}, err
	}
	if saved.DarkThemeEnabled != wasDark {
		if err := i.svc.ApplyTheme(ctx, saved.DarkThemeEnabled); err != nil {
			return dto.PreferencesOutput{}, err
		}
	}
	return toOutput(saved), nil
}

// PreviewTheme applies a theme without persisting it; Pause persists it.
func (i *Interactor) PreviewTheme(ctx context.Context, dark bool) error {
	return i.svc.ApplyTheme(ctx, dark)
}

func (i *Interactor) StepGoal(goal, delta int) int {
	return domain.StepGoal(goal, delta)
}

func toOutput(p domain.Preferences) dto.PreferencesOutput {
	return dto.PreferencesOutput{
		ProgressBarEnabled: p.ProgressBarEnabled,
		DarkThemeEnabled:   p.DarkThemeEnabled,
		Goal:               p.Goal,
	}
}
