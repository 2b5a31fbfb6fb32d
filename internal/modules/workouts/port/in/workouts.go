package in

import (
	"context"

	"vitalog/internal/modules/workouts/dto"
)

type Usecase interface {
	AddPlan(ctx context.Context, input dto.AddPlanInput) (dto.PlanOutput, error)
	ListPlans(ctx context.Context) ([]dto.PlanOutput, error)
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Finish(ctx context.Context, input dto.FinishInput) (dto.FinishOutput, error)
	Active(ctx context.Context) (dto.ActiveOutput, error)
	History(ctx context.Context) ([]dto.WorkoutOutput, error)
}
