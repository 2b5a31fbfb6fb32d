package in

import (
	"context"

	"vitalog/internal/modules/workouts/dto"
	workoutsin "vitalog/internal/modules/workouts/port/in"
)

type CLIHandler struct {
	usecase workoutsin.Usecase
}

func NewCLIHandler(usecase workoutsin.Usecase) *CLIHandler {
	return &CLIHandler{usecase: usecase}
}

func (h *CLIHandler) AddPlan(ctx context.Context, input dto.AddPlanInput) (dto.PlanOutput, error) {
	return h.usecase.AddPlan(ctx, input)
}

func (h *CLIHandler) ListPlans(ctx context.Context) ([]dto.PlanOutput, error) {
	return h.usecase.ListPlans(ctx)
}

func (h *CLIHandler) Start(ctx context.Context, planID string) (dto.StartOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{PlanID: planID})
}

func (h *CLIHandler) Finish(ctx context.Context, notes string) (dto.FinishOutput, error) {
	return h.usecase.Finish(ctx, dto.FinishInput{Notes: notes})
}

func (h *CLIHandler) Active(ctx context.Context) (dto.ActiveOutput, error) {
	return h.usecase.Active(ctx)
}

func (h *CLIHandler) History(ctx context.Context) ([]dto.WorkoutOutput, error) {
	return h.usecase.History(ctx)
}
