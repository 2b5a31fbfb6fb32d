package service

import (
	"context"
	"fmt"
	"strings"

	"vitalog/internal/modules/workouts/domain"
	workoutsout "vitalog/internal/modules/workouts/port/out"
	"vitalog/internal/platform/clock"
	apperrors "vitalog/internal/platform/errors"
	"vitalog/internal/platform/id"
)

type WorkoutService struct {
	clock clock.Clock
	idGen id.Generator
	plans workoutsout.PlanStore
	log   workoutsout.LogStore
}

func NewWorkoutService(clk clock.Clock, idGen id.Generator, plans workoutsout.PlanStore, log workoutsout.LogStore) *WorkoutService {
	return &WorkoutService{clock: clk, idGen: idGen, plans: plans, log: log}
}

func (s *WorkoutService) AddPlan(ctx context.Context, name, focus string, minutes int, calories float64, exercises []domain.Exercise) (domain.Plan, error) {
	plan := domain.Plan{
		ID:          s.idGen.New(),
		Name:        strings.TrimSpace(name),
		Focus:       strings.TrimSpace(focus),
		EstMinutes:  minutes,
		EstCalories: calories,
		Exercises:   exercises,
	}
	if err := plan.Validate(); err != nil {
		return domain.Plan{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	plans, err := s.plans.Load(ctx)
	if err != nil {
		return domain.Plan{}, err
	}
	plans = append(plans, plan)
	if err := s.plans.Save(ctx, plans); err != nil {
		return domain.Plan{}, err
	}
	return plan, nil
}

func (s *WorkoutService) Plans(ctx context.Context) ([]domain.Plan, error) {
	return s.plans.Load(ctx)
}

func (s *WorkoutService) Plan(ctx context.Context, planID string) (domain.Plan, error) {
	plans, err := s.plans.Load(ctx)
	if err != nil {
		return domain.Plan{}, err
	}
	for _, plan := range plans {
		if plan.ID == planID {
			return plan, nil
		}
	}
	return domain.Plan{}, fmt.Errorf("%w: plan %s", apperrors.ErrNotFound, planID)
}

func (s *WorkoutService) Start(_ context.Context, plan domain.Plan) domain.ActiveWorkout {
	return domain.ActiveWorkout{
		WorkoutID: s.idGen.New(),
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		StartedAt: s.clock.Now(),
	}
}

// Finish closes the active workout, computes its duration and burned
// calories against the plan estimate, and appends it to the log.
func (s *WorkoutService) Finish(ctx context.Context, active domain.ActiveWorkout, plan domain.Plan, notes string) (domain.Workout, error) {
	endedAt := s.clock.Now()
	duration := int(endedAt.Sub(active.StartedAt).Minutes())
	if duration < 0 {
		duration = 0
	}
	workout := domain.Workout{
		ID:          active.WorkoutID,
		PlanID:      active.PlanID,
		PlanName:    active.PlanName,
		StartedAt:   active.StartedAt,
		EndedAt:     endedAt,
		DurationMin: duration,
		Calories:    plan.BurnedCalories(duration),
		Notes:       notes,
	}
	if err := s.log.Append(ctx, workout); err != nil {
		return domain.Workout{}, err
	}
	return workout, nil
}

func (s *WorkoutService) History(ctx context.Context) ([]domain.Workout, error) {
	return s.log.Load(ctx)
}
