package usecase

import (
	"context"

	"pushpal/internal/modules/counter/dto"
	counterin "pushpal/internal/modules/counter/port/in"
	"pushpal/internal/modules/counter/service"
)

type Interactor struct {
	svc *service.CounterService
}

func NewInteractor(svc *service.CounterService) counterin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Resume(ctx context.Context) (dto.CounterOutput, error) {
	screen, err := i.svc.Resume(ctx)
	if err != nil {
		return dto.CounterOutput{}, err
	}
	return toOutput(screen), nil
}

func (i *Interactor) Pause(ctx context.Context) error {
	return i.svc.Pause(ctx)
}

func (i *Interactor) Increment(_ context.Context, input dto.IncrementInput) (dto.CounterOutput, error) {
	screen, err := i.svc.Increment(input.By)
	if err != nil {
		return dto.CounterOutput{}, err
	}
	return toOutput(screen), nil
}

func (i *Interactor) Reset(context.Context) (dto.CounterOutput, error) {
	return toOutput(i.svc.Reset()), nil
}

func toOutput(s service.Screen) dto.CounterOutput {
	return dto.CounterOutput{
		Count:           s.Tally.Int(),
		Display:         s.Tally.Display(s.Prompt),
		ProgressVisible: s.Progress.Visible,
		Goal:            s.Progress.Goal,
		Ratio:           s.Progress.Ratio,
		Fraction:        s.Progress.Fraction(),
		Band:            string(s.Progress.Band),
		DarkTheme:       s.Prefs.DarkThemeEnabled,
	}
}
