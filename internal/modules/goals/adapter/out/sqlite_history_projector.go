package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vitalog/internal/modules/goals/domain"
	goalsout "vitalog/internal/modules/goals/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteHistoryProjector mirrors goals and their committed history
// entries into SQLite. The index is a projection: it can always be
// rebuilt from the state store with a reindex.
type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (*SQLiteHistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

var _ goalsout.HistoryProjector = (*SQLiteHistoryProjector)(nil)

func (p *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS goals (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  kind TEXT NOT NULL,
  category TEXT NOT NULL,
  target REAL NOT NULL,
  current REAL NOT NULL,
  unit TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS goal_history (
  goal_id TEXT NOT NULL,
  day TEXT NOT NULL,
  value REAL NOT NULL,
  recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS goal_history_day ON goal_history (goal_id, day);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create goal tables: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return fmt.Errorf("reset goals: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, `DELETE FROM goal_history`); err != nil {
		return fmt.Errorf("reset goal history: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) UpsertGoal(ctx context.Context, goal domain.Goal) error {
	const stmt = `
INSERT INTO goals (id, name, kind, category, target, current, unit)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  kind=excluded.kind,
  category=excluded.category,
  target=excluded.target,
  current=excluded.current,
  unit=excluded.unit;
`
	_, err := p.db.ExecContext(ctx, stmt,
		goal.ID,
		goal.Name,
		string(goal.Kind),
		string(goal.Category),
		goal.Target,
		goal.Current,
		goal.Unit,
	)
	if err != nil {
		return fmt.Errorf("upsert goal: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) AppendEntry(ctx context.Context, goalID string, entry domain.HistoryEntry) error {
	const stmt = `INSERT INTO goal_history (goal_id, day, value, recorded_at) VALUES (?, ?, ?, ?)`
	_, err := p.db.ExecContext(ctx, stmt, goalID, entry.Day, entry.Value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

// Series returns the settled (last-recorded) value per day for one goal
// over a closed day range. Days without entries are simply missing from
// the map.
func (p *SQLiteHistoryProjector) Series(ctx context.Context, goalID, fromDay, toDay string) (map[string]float64, error) {
	const query = `
SELECT day, value FROM goal_history
WHERE goal_id = ? AND day >= ? AND day <= ?
ORDER BY rowid ASC;
`
	rows, err := p.db.QueryContext(ctx, query, goalID, fromDay, toDay)
	if err != nil {
		return nil, fmt.Errorf("query history series: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := map[string]float64{}
	for rows.Next() {
		var day string
		var value float64
		if err := rows.Scan(&day, &value); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		// Later rows overwrite earlier ones: the last commit of a day
		// is its settled value.
		out[day] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return out, nil
}

func (p *SQLiteHistoryProjector) Close() error {
	return p.db.Close()
}
