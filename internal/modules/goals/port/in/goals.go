package in

import (
	"context"

	"vitalog/internal/modules/goals/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddGoalInput) (dto.GoalOutput, error)
	List(ctx context.Context) ([]dto.GoalOutput, error)
	Get(ctx context.Context, goalID string) (dto.GoalDetailOutput, error)
	FindByKind(ctx context.Context, kind string) (dto.GoalDetailOutput, error)
	SetCurrent(ctx context.Context, input dto.SetCurrentInput) (dto.GoalOutput, error)
	Increment(ctx context.Context, goalID string) (dto.GoalOutput, error)
	Decrement(ctx context.Context, goalID string) (dto.GoalOutput, error)
	SlideCurrent(ctx context.Context, input dto.SetCurrentInput) error
	Flush(ctx context.Context) error
	RecordSample(ctx context.Context, input dto.RecordSampleInput) (dto.GoalOutput, error)
	Reindex(ctx context.Context) error
}
