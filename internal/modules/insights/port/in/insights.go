package in

import (
	"context"
	"time"

	"vitalog/internal/modules/insights/dto"
)

type Usecase interface {
	TodayStats(ctx context.Context) (dto.TodayStatsOutput, error)
	Weekly(ctx context.Context, kind string, ref time.Time) (dto.WeeklyOutput, error)
	MacroStatus(ctx context.Context) (dto.MacroStatusOutput, error)
}
