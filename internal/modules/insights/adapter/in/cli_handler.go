package in

import (
	"context"
	"time"

	"vitalog/internal/modules/insights/dto"
	insightsin "vitalog/internal/modules/insights/port/in"
)

type CLIHandler struct {
	usecase insightsin.Usecase
}

func NewCLIHandler(usecase insightsin.Usecase) *CLIHandler {
	return &CLIHandler{usecase: usecase}
}

func (h *CLIHandler) TodayStats(ctx context.Context) (dto.TodayStatsOutput, error) {
	return h.usecase.TodayStats(ctx)
}

func (h *CLIHandler) Weekly(ctx context.Context, kind string, ref time.Time) (dto.WeeklyOutput, error) {
	return h.usecase.Weekly(ctx, kind, ref)
}

func (h *CLIHandler) MacroStatus(ctx context.Context) (dto.MacroStatusOutput, error) {
	return h.usecase.MacroStatus(ctx)
}
