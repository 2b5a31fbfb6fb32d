package out

import (
	"context"

	"vitalog/internal/modules/workouts/domain"
	workoutsout "vitalog/internal/modules/workouts/port/out"
	"vitalog/internal/platform/kv"
)

const (
	PlansKey = "workout-plans"
	LogKey   = "workout-log"
)

// StatePlanStore keeps all plans in one JSON document. A missing
// document reads as the seed plans.
type StatePlanStore struct {
	store *kv.Store
}

func NewStatePlanStore(store *kv.Store) workoutsout.PlanStore {
	return &StatePlanStore{store: store}
}

func (s *StatePlanStore) Load(_ context.Context) ([]domain.Plan, error) {
	var plans []domain.Plan
	if !s.store.Load(PlansKey, &plans) {
		return domain.DefaultPlans(), nil
	}
	return plans, nil
}

func (s *StatePlanStore) Save(_ context.Context, plans []domain.Plan) error {
	return s.store.Save(PlansKey, plans)
}

// StateLogStore appends finished workouts to a single JSON log
// document, newest last.
type StateLogStore struct {
	store *kv.Store
}

func NewStateLogStore(store *kv.Store) workoutsout.LogStore {
	return &StateLogStore{store: store}
}

func (s *StateLogStore) Load(_ context.Context) ([]domain.Workout, error) {
	var workouts []domain.Workout
	s.store.Load(LogKey, &workouts)
	return workouts, nil
}

func (s *StateLogStore) Append(ctx context.Context, workout domain.Workout) error {
	workouts, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return s.store.Save(LogKey, append(workouts, workout))
}
