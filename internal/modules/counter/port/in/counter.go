package in

import (
	"context"

	"pushpal/internal/modules/counter/dto"
)

// Usecase drives the counter screen. Resume and Pause are the lifecycle
// hooks; Increment and Reset only touch the in-memory count.
type Usecase interface {
	Resume(ctx context.Context) (dto.CounterOutput, error)
	Pause(ctx context.Context) error
	Increment(ctx context.Context, input dto.IncrementInput) (dto.CounterOutput, error)
	Reset(ctx context.Context) (dto.CounterOutput, error)
}
