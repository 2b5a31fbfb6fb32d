package service

import (
	"context"
	"fmt"
	"time"

	"vitalog/internal/modules/insights/domain"
	insightsout "vitalog/internal/modules/insights/port/out"
)

// InsightsService turns raw history rows into the seven day trend
// window the dashboard renders.
type InsightsService struct {
	series insightsout.SeriesSource
}

func NewInsightsService(series insightsout.SeriesSource) *InsightsService {
	return &InsightsService{series: series}
}

// WeekSeries returns the day keys and values for the seven calendar
// days ending at ref. Days without a recorded sample report 0.
func (s *InsightsService) WeekSeries(ctx context.Context, goalID string, ref time.Time) ([]string, []float64, error) {
	days := domain.WeekDays(ref)
	recorded, err := s.series.Series(ctx, goalID, days[0], days[len(days)-1])
	if err != nil {
		return nil, nil, fmt.Errorf("read history series: %w", err)
	}
	return days, domain.WeekSeries(recorded, ref), nil
}
