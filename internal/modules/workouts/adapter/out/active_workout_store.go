package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vitalog/internal/modules/workouts/domain"
	workoutsout "vitalog/internal/modules/workouts/port/out"
	apperrors "vitalog/internal/platform/errors"
)

// FileActiveWorkoutStore holds at most one in-progress workout as a
// small JSON file, so an interrupted session survives a restart.
type FileActiveWorkoutStore struct {
	path string
}

func NewFileActiveWorkoutStore(rootPath string) workoutsout.ActiveWorkoutStore {
	return &FileActiveWorkoutStore{path: filepath.Join(rootPath, ".vitalog", "active-workout.json")}
}

func (s *FileActiveWorkoutStore) SaveActive(_ context.Context, active domain.ActiveWorkout) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create active workout dir: %w", err)
	}
	payload, err := json.MarshalIndent(active, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal active workout: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write active workout: %w", err)
	}
	return nil
}

func (s *FileActiveWorkoutStore) LoadActive(_ context.Context) (domain.ActiveWorkout, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ActiveWorkout{}, apperrors.ErrNoActiveWorkout
		}
		return domain.ActiveWorkout{}, fmt.Errorf("read active workout: %w", err)
	}
	active := domain.ActiveWorkout{}
	if err := json.Unmarshal(payload, &active); err != nil {
		return domain.ActiveWorkout{}, fmt.Errorf("decode active workout: %w", err)
	}
	if active.WorkoutID == "" {
		return domain.ActiveWorkout{}, apperrors.ErrNoActiveWorkout
	}
	return active, nil
}

func (s *FileActiveWorkoutStore) ClearActive(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear active workout: %w", err)
	}
	return nil
}
