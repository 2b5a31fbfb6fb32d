package out

import (
	"context"

	"vitalog/internal/modules/workouts/domain"
)

type PlanStore interface {
	Load(ctx context.Context) ([]domain.Plan, error)
	Save(ctx context.Context, plans []domain.Plan) error
}

type LogStore interface {
	Load(ctx context.Context) ([]domain.Workout, error)
	Append(ctx context.Context, workout domain.Workout) error
}

type ActiveWorkoutStore interface {
	SaveActive(ctx context.Context, active domain.ActiveWorkout) error
	LoadActive(ctx context.Context) (domain.ActiveWorkout, error)
	ClearActive(ctx context.Context) error
}
