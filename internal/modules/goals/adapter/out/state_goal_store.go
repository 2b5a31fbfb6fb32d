package out

import (
	"context"

	"vitalog/internal/modules/goals/domain"
	goalsout "vitalog/internal/modules/goals/port/out"
	"vitalog/internal/platform/kv"
)

// StoreKey is the durable key holding the whole goal collection.
const StoreKey = "fitness-goals"

// StateGoalStore persists the collection as one JSON document in the
// key-value state store. An absent or corrupt document reads as the
// seed collection; nothing is written back until the first mutation.
type StateGoalStore struct {
	store *kv.Store
}

func NewStateGoalStore(store *kv.Store) goalsout.GoalStore {
	return &StateGoalStore{store: store}
}

func (s *StateGoalStore) Load(_ context.Context) ([]domain.Goal, error) {
	var goals []domain.Goal
	if !s.store.Load(StoreKey, &goals) {
		return domain.DefaultGoals(), nil
	}
	return goals, nil
}

func (s *StateGoalStore) Save(_ context.Context, goals []domain.Goal) error {
	return s.store.Save(StoreKey, goals)
}
