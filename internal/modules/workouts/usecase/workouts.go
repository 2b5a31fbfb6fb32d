package usecase

import (
	"context"
	"errors"

	goalsdto "vitalog/internal/modules/goals/dto"
	goalsin "vitalog/internal/modules/goals/port/in"
	"vitalog/internal/modules/workouts/domain"
	"vitalog/internal/modules/workouts/dto"
	workoutsin "vitalog/internal/modules/workouts/port/in"
	workoutsout "vitalog/internal/modules/workouts/port/out"
	"vitalog/internal/modules/workouts/service"
	apperrors "vitalog/internal/platform/errors"
)

type Interactor struct {
	svc         *service.WorkoutService
	goals       goalsin.Usecase
	activeStore workoutsout.ActiveWorkoutStore
}

func NewInteractor(svc *service.WorkoutService, goals goalsin.Usecase, activeStore workoutsout.ActiveWorkoutStore) workoutsin.Usecase {
	return &Interactor{svc: svc, goals: goals, activeStore: activeStore}
}

func (i *Interactor) AddPlan(ctx context.Context, input dto.AddPlanInput) (dto.PlanOutput, error) {
	exercises := make([]domain.Exercise, 0, len(input.Exercises))
	for _, exercise := range input.Exercises {
		exercises = append(exercises, domain.Exercise{Name: exercise.Name, Sets: exercise.Sets, Reps: exercise.Reps})
	}
	plan, err := i.svc.AddPlan(ctx, input.Name, input.Focus, input.Minutes, input.Calories, exercises)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toPlanOutput(plan), nil
}

func (i *Interactor) ListPlans(ctx context.Context) ([]dto.PlanOutput, error) {
	plans, err := i.svc.Plans(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlanOutput, 0, len(plans))
	for _, plan := range plans {
		out = append(out, toPlanOutput(plan))
	}
	return out, nil
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return dto.StartOutput{}, apperrors.ErrActiveWorkoutExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveWorkout) {
		return dto.StartOutput{}, err
	}

	plan, err := i.svc.Plan(ctx, input.PlanID)
	if err != nil {
		return dto.StartOutput{}, err
	}
	active := i.svc.Start(ctx, plan)
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{
		WorkoutID: active.WorkoutID,
		PlanID:    active.PlanID,
		PlanName:  active.PlanName,
		StartedAt: active.StartedAt,
	}, nil
}

// Finish closes the active workout and credits its minutes to the
// active minutes goal when one is tracked.
func (i *Interactor) Finish(ctx context.Context, input dto.FinishInput) (dto.FinishOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return dto.FinishOutput{}, err
	}
	plan, err := i.svc.Plan(ctx, active.PlanID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return dto.FinishOutput{}, err
	}

	workout, err := i.svc.Finish(ctx, active, plan, input.Notes)
	if err != nil {
		return dto.FinishOutput{}, err
	}
	// The slot is cleared as soon as the workout is logged so a retry
	// after a failed goal credit cannot append a duplicate log entry.
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return dto.FinishOutput{}, err
	}
	credited, err := i.creditActiveMinutes(ctx, workout.DurationMin)
	if err != nil {
		return dto.FinishOutput{}, err
	}

	return dto.FinishOutput{
		WorkoutID:       workout.ID,
		PlanName:        workout.PlanName,
		DurationMin:     workout.DurationMin,
		Calories:        workout.Calories,
		MinutesCredited: credited,
	}, nil
}

func (i *Interactor) Active(ctx context.Context) (dto.ActiveOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return dto.ActiveOutput{}, err
	}
	return dto.ActiveOutput{
		WorkoutID: active.WorkoutID,
		PlanID:    active.PlanID,
		PlanName:  active.PlanName,
		StartedAt: active.StartedAt,
	}, nil
}

func (i *Interactor) History(ctx context.Context) ([]dto.WorkoutOutput, error) {
	workouts, err := i.svc.History(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WorkoutOutput, 0, len(workouts))
	for _, workout := range workouts {
		out = append(out, dto.WorkoutOutput{
			ID:          workout.ID,
			PlanName:    workout.PlanName,
			StartedAt:   workout.StartedAt,
			DurationMin: workout.DurationMin,
			Calories:    workout.Calories,
			Notes:       workout.Notes,
		})
	}
	return out, nil
}

func (i *Interactor) creditActiveMinutes(ctx context.Context, minutes int) (bool, error) {
	if minutes <= 0 || i.goals == nil {
		return false, nil
	}
	goal, err := i.goals.FindByKind(ctx, "active_minutes")
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	_, err = i.goals.SetCurrent(ctx, goalsdto.SetCurrentInput{
		GoalID: goal.ID,
		Value:  goal.Current + float64(minutes),
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func toPlanOutput(plan domain.Plan) dto.PlanOutput {
	exercises := make([]dto.ExerciseOutput, 0, len(plan.Exercises))
	for _, exercise := range plan.Exercises {
		exercises = append(exercises, dto.ExerciseOutput{Name: exercise.Name, Sets: exercise.Sets, Reps: exercise.Reps})
	}
	return dto.PlanOutput{
		ID:        plan.ID,
		Name:      plan.Name,
		Focus:     plan.Focus,
		Minutes:   plan.EstMinutes,
		Calories:  plan.EstCalories,
		Exercises: exercises,
	}
}
