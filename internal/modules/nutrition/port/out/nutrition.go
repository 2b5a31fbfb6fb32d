package out

import (
	"context"

	"vitalog/internal/modules/nutrition/domain"
)

// LogStore owns the durable form of the nutrition aggregate. Load
// falls back to the zero log on first run or corrupt state.
type LogStore interface {
	Load(ctx context.Context) (domain.Log, error)
	Save(ctx context.Context, log domain.Log) error
}

// TargetsStore reads the user-editable daily macro targets.
type TargetsStore interface {
	Load(ctx context.Context) (domain.Targets, error)
}
