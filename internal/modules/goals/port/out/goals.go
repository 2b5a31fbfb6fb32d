package out

import (
	"context"

	"vitalog/internal/modules/goals/domain"
)

// GoalStore owns the durable serialized form of the whole collection.
// Load falls back to the seed collection when nothing usable is stored.
type GoalStore interface {
	Load(ctx context.Context) ([]domain.Goal, error)
	Save(ctx context.Context, goals []domain.Goal) error
}

// HistoryProjector mirrors committed state into the rebuildable index
// used for time-series queries.
type HistoryProjector interface {
	UpsertGoal(ctx context.Context, goal domain.Goal) error
	AppendEntry(ctx context.Context, goalID string, entry domain.HistoryEntry) error
	Reset(ctx context.Context) error
}
