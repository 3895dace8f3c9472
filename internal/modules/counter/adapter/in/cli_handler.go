package in

import (
	"context"

	"pushpal/internal/modules/counter/dto"
	counterin "pushpal/internal/modules/counter/port/in"
)

// CLIHandler runs each command as one resume/act/pause cycle.
type CLIHandler struct {
	usecase counterin.Usecase
}

func NewCLIHandler(usecase counterin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.CounterOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Increment(ctx context.Context, by int) (dto.CounterOutput, error) {
	if _, err := h.usecase.Resume(ctx); err != nil {
		return dto.CounterOutput{}, err
	}
	out, err := h.usecase.Increment(ctx, dto.IncrementInput{By: by})
	if err != nil {
		return dto.CounterOutput{}, err
	}
	if err := h.usecase.Pause(ctx); err != nil {
		return dto.CounterOutput{}, err
	}
	return out, nil
}

func (h CLIHandler) Reset(ctx context.Context) (dto.CounterOutput, error) {
	if _, err := h.usecase.Resume(ctx); err != nil {
		return dto.CounterOutput{}, err
	}
	out, err := h.usecase.Reset(ctx)
	if err != nil {
		return dto.CounterOutput{}, err
	}
	if err := h.usecase.Pause(ctx); err != nil {
		return dto.CounterOutput{}, err
	}
	return out, nil
}
