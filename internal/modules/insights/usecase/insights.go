package usecase

import (
	"context"
	"errors"
	"time"

	goalsin "vitalog/internal/modules/goals/port/in"
	"vitalog/internal/modules/insights/domain"
	"vitalog/internal/modules/insights/dto"
	insightsin "vitalog/internal/modules/insights/port/in"
	"vitalog/internal/modules/insights/service"
	nutritiondto "vitalog/internal/modules/nutrition/dto"
	nutritionin "vitalog/internal/modules/nutrition/port/in"
	"vitalog/internal/platform/clock"
	apperrors "vitalog/internal/platform/errors"
)

type Interactor struct {
	svc       *service.InsightsService
	clock     clock.Clock
	goals     goalsin.Usecase
	nutrition nutritionin.Usecase
}

func NewInteractor(svc *service.InsightsService, clk clock.Clock, goals goalsin.Usecase, nutrition nutritionin.Usecase) insightsin.Usecase {
	return &Interactor{svc: svc, clock: clk, goals: goals, nutrition: nutrition}
}

// TodayStats assembles the four dashboard stat cards. A missing goal
// leaves its card empty instead of failing the whole dashboard.
func (i *Interactor) TodayStats(ctx context.Context) (dto.TodayStatsOutput, error) {
	steps, err := i.goalStat(ctx, "steps", "Steps")
	if err != nil {
		return dto.TodayStatsOutput{}, err
	}
	active, err := i.goalStat(ctx, "active_minutes", "Active Minutes")
	if err != nil {
		return dto.TodayStatsOutput{}, err
	}

	summary, err := i.nutrition.Summary(ctx)
	if err != nil {
		return dto.TodayStatsOutput{}, err
	}
	calorieTarget := summary.Calories.Target
	if calorieTarget <= 0 {
		calorieTarget = domain.FallbackCalorieTarget
	}
	calories := dto.StatOutput{
		Label:   "Calories",
		Current: summary.Calories.Current,
		Target:  calorieTarget,
		Percent: domain.PercentOf(summary.Calories.Current, calorieTarget),
		Unit:    "kcal",
	}

	score := domain.SleepScore(i.sleepHours(ctx))
	return dto.TodayStatsOutput{
		Steps:         steps,
		ActiveMinutes: active,
		Calories:      calories,
		SleepScore:    score,
	}, nil
}

// Weekly reports the seven day trend for the goal of the given kind,
// ending at ref. A zero ref means today.
func (i *Interactor) Weekly(ctx context.Context, kind string, ref time.Time) (dto.WeeklyOutput, error) {
	if ref.IsZero() {
		ref = i.clock.Now()
	}
	detail, err := i.goals.FindByKind(ctx, kind)
	if err != nil {
		return dto.WeeklyOutput{}, err
	}
	days, values, err := i.svc.WeekSeries(ctx, detail.ID, ref)
	if err != nil {
		return dto.WeeklyOutput{}, err
	}
	points := make([]dto.WeeklyPoint, len(days))
	for idx, day := range days {
		points[idx] = dto.WeeklyPoint{Day: day, Value: values[idx]}
	}
	return dto.WeeklyOutput{
		GoalID: detail.ID,
		Kind:   detail.Kind,
		Name:   detail.Name,
		Unit:   detail.Unit,
		Target: detail.Target,
		Points: points,
	}, nil
}

func (i *Interactor) MacroStatus(ctx context.Context) (dto.MacroStatusOutput, error) {
	summary, err := i.nutrition.Summary(ctx)
	if err != nil {
		return dto.MacroStatusOutput{}, err
	}
	return dto.MacroStatusOutput{
		Calories: toMacroLine(summary.Calories),
		Protein:  toMacroLine(summary.Protein),
		Carbs:    toMacroLine(summary.Carbs),
		Fat:      toMacroLine(summary.Fat),
	}, nil
}

func (i *Interactor) goalStat(ctx context.Context, kind, label string) (dto.StatOutput, error) {
	detail, err := i.goals.FindByKind(ctx, kind)
	if errors.Is(err, apperrors.ErrNotFound) {
		return dto.StatOutput{Label: label}, nil
	}
	if err != nil {
		return dto.StatOutput{}, err
	}
	return dto.StatOutput{
		Label:   label,
		Current: detail.Current,
		Target:  detail.Target,
		Percent: domain.PercentOf(detail.Current, detail.Target),
		Unit:    detail.Unit,
	}, nil
}

func (i *Interactor) sleepHours(ctx context.Context) (current, target float64) {
	detail, err := i.goals.FindByKind(ctx, "sleep")
	if err != nil {
		return 0, domain.FallbackSleepTarget
	}
	return detail.Current, detail.Target
}

func toMacroLine(macro nutritiondto.MacroOutput) dto.MacroLine {
	return dto.MacroLine{Current: macro.Current, Target: macro.Target, Percent: macro.Percent}
}
