package out

import (
	"context"
	"database/sql"
	"fmt"

	insightsout "vitalog/internal/modules/insights/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteSeriesSource reads the goal history index maintained by the
// goals module. It holds its own read connection; the goals projector
// owns the schema and all writes.
type SQLiteSeriesSource struct {
	db *sql.DB
}

func NewSQLiteSeriesSource(dbPath string) (*SQLiteSeriesSource, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &SQLiteSeriesSource{db: db}, nil
}

var _ insightsout.SeriesSource = (*SQLiteSeriesSource)(nil)

func (s *SQLiteSeriesSource) Series(ctx context.Context, goalID, fromDay, toDay string) (map[string]float64, error) {
	const query = `
SELECT day, value FROM goal_history
WHERE goal_id = ? AND day >= ? AND day <= ?
ORDER BY rowid ASC;
`
	rows, err := s.db.QueryContext(ctx, query, goalID, fromDay, toDay)
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
		// Insertion order means the last commit of a day wins.
		out[day] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return out, nil
}

func (s *SQLiteSeriesSource) Close() error {
	return s.db.Close()
}
