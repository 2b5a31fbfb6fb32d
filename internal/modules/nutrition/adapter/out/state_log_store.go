package out

import (
	"context"

	"vitalog/internal/modules/nutrition/domain"
	nutritionout "vitalog/internal/modules/nutrition/port/out"
	"vitalog/internal/platform/kv"
)

// StoreKey is the durable key holding the nutrition aggregate.
const StoreKey = "nutrition-data"

// StateLogStore persists the nutrition log as one JSON document.
// Absent or corrupt state reads as the zero log.
type StateLogStore struct {
	store *kv.Store
}

func NewStateLogStore(store *kv.Store) nutritionout.LogStore {
	return &StateLogStore{store: store}
}

func (s *StateLogStore) Load(_ context.Context) (domain.Log, error) {
	var log domain.Log
	if !s.store.Load(StoreKey, &log) {
		return domain.Log{}, nil
	}
	return log, nil
}

func (s *StateLogStore) Save(_ context.Context, log domain.Log) error {
	return s.store.Save(StoreKey, log)
}
