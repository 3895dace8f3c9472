package in

import (
	"context"

	"pushpal/internal/modules/counter/dto"
	counterin "pushpal/internal/modules/counter/port/in"
)

type TUIHandler struct {
	usecase counterin.Usecase
}

func NewTUIHandler(usecase counterin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Resume(ctx context.Context) (dto.CounterOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h TUIHandler) Pause(ctx context.Context) error {
	return h.usecase.Pause(ctx)
}

func (h TUIHandler) Tap(ctx context.Context) (dto.CounterOutput, error) {
	return h.usecase.Increment(ctx, dto.IncrementInput{By: 1})
}

func (h TUIHandler) Reset(ctx context.Context) (dto.CounterOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h TUIHandler) Add(ctx context.Context, n int) (dto.CounterOutput, error) {
	return h.usecase.Increment(ctx, dto.IncrementInput{By: n})
}
