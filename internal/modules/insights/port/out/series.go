package out

import "context"

// SeriesSource reads recorded per-day values for a goal from the
// history index. Keys are day strings, values the last recorded
// value for that day.
type SeriesSource interface {
	Series(ctx context.Context, goalID, fromDay, toDay string) (map[string]float64, error)
}
