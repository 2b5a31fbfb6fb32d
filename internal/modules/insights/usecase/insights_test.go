package usecase_test

import (
	"context"
	"testing"
	"time"

	goalsdto "vitalog/internal/modules/goals/dto"
	"vitalog/internal/modules/insights/service"
	"vitalog/internal/modules/insights/usecase"
	nutritiondto "vitalog/internal/modules/nutrition/dto"
	apperrors "vitalog/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

type fakeGoals struct {
	byKind map[string]goalsdto.GoalDetailOutput
}

func (f *fakeGoals) Add(context.Context, goalsdto.AddGoalInput) (goalsdto.GoalOutput, error) {
	return goalsdto.GoalOutput{}, nil
}
func (f *fakeGoals) List(context.Context) ([]goalsdto.GoalOutput, error) { return nil, nil }
func (f *fakeGoals) Get(context.Context, string) (goalsdto.GoalDetailOutput, error) {
	return goalsdto.GoalDetailOutput{}, apperrors.ErrNotFound
}
func (f *fakeGoals) FindByKind(_ context.Context, kind string) (goalsdto.GoalDetailOutput, error) {
	detail, ok := f.byKind[kind]
	if !ok {
		return goalsdto.GoalDetailOutput{}, apperrors.ErrNotFound
	}
	return detail, nil
}
func (f *fakeGoals) SetCurrent(context.Context, goalsdto.SetCurrentInput) (goalsdto.GoalOutput, error) {
	return goalsdto.GoalOutput{}, nil
}
func (f *fakeGoals) Increment(context.Context, string) (goalsdto.GoalOutput, error) {
	return goalsdto.GoalOutput{}, nil
}
func (f *fakeGoals) Decrement(context.Context, string) (goalsdto.GoalOutput, error) {
	return goalsdto.GoalOutput{}, nil
}
func (f *fakeGoals) SlideCurrent(context.Context, goalsdto.SetCurrentInput) error { return nil }
func (f *fakeGoals) Flush(context.Context) error                                  { return nil }
func (f *fakeGoals) RecordSample(context.Context, goalsdto.RecordSampleInput) (goalsdto.GoalOutput, error) {
	return goalsdto.GoalOutput{}, nil
}
func (f *fakeGoals) Reindex(context.Context) error { return nil }

type fakeNutrition struct {
	summary nutritiondto.SummaryOutput
}

func (f *fakeNutrition) AddMeal(context.Context, nutritiondto.AddMealInput) (nutritiondto.MealOutput, error) {
	return nutritiondto.MealOutput{}, nil
}
func (f *fakeNutrition) Summary(context.Context) (nutritiondto.SummaryOutput, error) {
	return f.summary, nil
}

type fakeSeries struct {
	rows map[string]float64
}

func (f *fakeSeries) Series(context.Context, string, string, string) (map[string]float64, error) {
	return f.rows, nil
}

func TestTodayStatsComposesTheFourCards(t *testing.T) {
	t.Parallel()
	goals := &fakeGoals{byKind: map[string]goalsdto.GoalDetailOutput{
		"steps":          {ID: "g-1", Kind: "steps", Current: 7500, Target: 10000, Unit: "steps"},
		"active_minutes": {ID: "g-2", Kind: "active_minutes", Current: 30, Target: 60, Unit: "min"},
		"sleep":          {ID: "g-3", Kind: "sleep", Current: 7.5, Target: 8, Unit: "hours"},
	}}
	nutrition := &fakeNutrition{summary: nutritiondto.SummaryOutput{
		Calories: nutritiondto.MacroOutput{Current: 1850, Target: 2000, Percent: 92.5},
	}}
	uc := usecase.NewInteractor(service.NewInsightsService(&fakeSeries{}), fakeClock{}, goals, nutrition)

	stats, err := uc.TodayStats(context.Background())
	if err != nil {
		t.Fatalf("today stats: %v", err)
	}
	if stats.Steps.Percent != 75 {
		t.Fatalf("steps percent wrong: %+v", stats.Steps)
	}
	if stats.ActiveMinutes.Percent != 50 {
		t.Fatalf("active minutes percent wrong: %+v", stats.ActiveMinutes)
	}
	if stats.Calories.Current != 1850 || stats.Calories.Target != 2000 {
		t.Fatalf("calories card wrong: %+v", stats.Calories)
	}
	if stats.SleepScore != 94 {
		t.Fatalf("sleep score wrong: %d", stats.SleepScore)
	}
}

func TestTodayStatsSurvivesMissingGoals(t *testing.T) {
	t.Parallel()
	nutrition := &fakeNutrition{summary: nutritiondto.SummaryOutput{
		Calories: nutritiondto.MacroOutput{Current: 400, Target: 0},
	}}
	uc := usecase.NewInteractor(service.NewInsightsService(&fakeSeries{}), fakeClock{}, &fakeGoals{}, nutrition)

	stats, err := uc.TodayStats(context.Background())
	if err != nil {
		t.Fatalf("today stats: %v", err)
	}
	if stats.Steps.Current != 0 || stats.Steps.Percent != 0 {
		t.Fatalf("missing steps goal must leave an empty card: %+v", stats.Steps)
	}
	if stats.Calories.Target != 2200 {
		t.Fatalf("missing calorie target must fall back, got %v", stats.Calories.Target)
	}
	if stats.SleepScore != 0 {
		t.Fatalf("missing sleep goal must score 0, got %d", stats.SleepScore)
	}
}

func TestWeeklyFillsTheSevenDayWindow(t *testing.T) {
	t.Parallel()
	goals := &fakeGoals{byKind: map[string]goalsdto.GoalDetailOutput{
		"steps": {ID: "g-1", Kind: "steps", Name: "Daily Steps", Unit: "steps", Target: 10000},
	}}
	series := &fakeSeries{rows: map[string]float64{
		"2026-02-25": 8000,
		"2026-03-03": 4300,
	}}
	uc := usecase.NewInteractor(service.NewInsightsService(series), fakeClock{}, goals, &fakeNutrition{})

	ref := time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)
	weekly, err := uc.Weekly(context.Background(), "steps", ref)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if len(weekly.Points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(weekly.Points))
	}
	if weekly.Points[0].Day != "2026-02-25" || weekly.Points[0].Value != 8000 {
		t.Fatalf("oldest point wrong: %+v", weekly.Points[0])
	}
	if weekly.Points[3].Value != 0 {
		t.Fatalf("day without samples must report 0: %+v", weekly.Points[3])
	}
	if weekly.Points[6].Day != "2026-03-03" || weekly.Points[6].Value != 4300 {
		t.Fatalf("latest point wrong: %+v", weekly.Points[6])
	}
	if weekly.GoalID != "g-1" || weekly.Target != 10000 {
		t.Fatalf("goal metadata wrong: %+v", weekly)
	}
}

func TestWeeklyDefaultsToToday(t *testing.T) {
	t.Parallel()
	goals := &fakeGoals{byKind: map[string]goalsdto.GoalDetailOutput{
		"water": {ID: "g-2", Kind: "water", Unit: "L", Target: 8},
	}}
	series := &fakeSeries{rows: map[string]float64{"2026-03-03": 6}}
	clk := fakeClock{now: time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC)}
	uc := usecase.NewInteractor(service.NewInsightsService(series), clk, goals, &fakeNutrition{})

	weekly, err := uc.Weekly(context.Background(), "water", time.Time{})
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if weekly.Points[6].Day != "2026-03-03" || weekly.Points[6].Value != 6 {
		t.Fatalf("zero ref must use the clock's today: %+v", weekly.Points[6])
	}
}

func TestWeeklyUnknownKindFails(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewInsightsService(&fakeSeries{}), fakeClock{}, &fakeGoals{}, &fakeNutrition{})
	if _, err := uc.Weekly(context.Background(), "steps", time.Now()); err == nil {
		t.Fatalf("weekly for an untracked kind must fail")
	}
}

func TestMacroStatusMirrorsTheNutritionSummary(t *testing.T) {
	t.Parallel()
	nutrition := &fakeNutrition{summary: nutritiondto.SummaryOutput{
		Calories: nutritiondto.MacroOutput{Current: 750, Target: 2000, Percent: 37.5},
		Protein:  nutritiondto.MacroOutput{Current: 35, Target: 150, Percent: 23.3},
	}}
	uc := usecase.NewInteractor(service.NewInsightsService(&fakeSeries{}), fakeClock{}, &fakeGoals{}, nutrition)

	status, err := uc.MacroStatus(context.Background())
	if err != nil {
		t.Fatalf("macro status: %v", err)
	}
	if status.Calories.Percent != 37.5 || status.Protein.Current != 35 {
		t.Fatalf("macro status wrong: %+v", status)
	}
}
