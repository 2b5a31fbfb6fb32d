package in

import (
	"context"

	"vitalog/internal/modules/goals/dto"
	goalsin "vitalog/internal/modules/goals/port/in"
)

type CLIHandler struct {
	usecase goalsin.Usecase
}

func NewCLIHandler(usecase goalsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, name, kind string, target, current float64, unit, category string) (dto.GoalOutput, error) {
	return h.usecase.Add(ctx, dto.AddGoalInput{
		Name:     name,
		Kind:     kind,
		Target:   target,
		Current:  current,
		Unit:     unit,
		Category: category,
	})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.GoalOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, goalID string) (dto.GoalDetailOutput, error) {
	return h.usecase.Get(ctx, goalID)
}

func (h CLIHandler) SetCurrent(ctx context.Context, goalID string, value float64) (dto.GoalOutput, error) {
	return h.usecase.SetCurrent(ctx, dto.SetCurrentInput{GoalID: goalID, Value: value})
}

func (h CLIHandler) Increment(ctx context.Context, goalID string) (dto.GoalOutput, error) {
	return h.usecase.Increment(ctx, goalID)
}

func (h CLIHandler) Decrement(ctx context.Context, goalID string) (dto.GoalOutput, error) {
	return h.usecase.Decrement(ctx, goalID)
}

func (h CLIHandler) RecordSample(ctx context.Context, goalID, day string, value float64) (dto.GoalOutput, error) {
	return h.usecase.RecordSample(ctx, dto.RecordSampleInput{GoalID: goalID, Day: day, Value: value})
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
