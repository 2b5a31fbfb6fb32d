package usecase_test

import (
	"context"
	"testing"
	"time"

	nutritionout "vitalog/internal/modules/nutrition/adapter/out"
	"vitalog/internal/modules/nutrition/dto"
	nutritionin "vitalog/internal/modules/nutrition/port/in"
	"vitalog/internal/modules/nutrition/service"
	"vitalog/internal/modules/nutrition/usecase"
	"vitalog/internal/platform/kv"
)

type fakeClock struct{}

func (fakeClock) Now() time.Time {
	return time.Date(2026, 3, 3, 13, 15, 0, 0, time.UTC)
}

type seqID struct {
	n int
}

func (s *seqID) New() string {
	s.n++
	return map[int]string{1: "m-1", 2: "m-2"}[s.n]
}

func newUsecase(t *testing.T) (nutritionin.Usecase, string) {
	t.Helper()
	dir := t.TempDir()
	svc := service.NewNutritionService(
		fakeClock{},
		&seqID{},
		nutritionout.NewStateLogStore(kv.New(dir)),
		nutritionout.NewYAMLTargetsStore(dir+"/targets.yaml"),
	)
	return usecase.NewInteractor(svc), dir
}

func TestFirstRunSummaryIsZeroAgainstDefaults(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)

	summary, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Calories.Current != 0 || len(summary.Meals) != 0 {
		t.Fatalf("first run must start from the zero log: %+v", summary)
	}
	if summary.Calories.Target != 2000 || summary.Fat.Target != 65 {
		t.Fatalf("first run must use default targets: %+v", summary)
	}
}

func TestAddMealAccumulatesAndPersists(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)
	ctx := context.Background()

	meal, err := uc.AddMeal(ctx, dto.AddMealInput{Name: "Omelette", Calories: 500, Protein: 30, Carbs: 40, Fat: 15})
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if meal.ID != "m-1" || !meal.LoggedAt.Equal(time.Date(2026, 3, 3, 13, 15, 0, 0, time.UTC)) {
		t.Fatalf("meal identity wrong: %+v", meal)
	}

	if _, err := uc.AddMeal(ctx, dto.AddMealInput{Name: "Salad", Calories: 250, Protein: 5, Carbs: 20, Fat: 12}); err != nil {
		t.Fatalf("add second meal: %v", err)
	}

	summary, err := uc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Calories.Current != 750 || summary.Protein.Current != 35 {
		t.Fatalf("totals wrong: %+v", summary)
	}
	if len(summary.Meals) != 2 || summary.Meals[1].Name != "Salad" {
		t.Fatalf("meal list wrong: %+v", summary.Meals)
	}
	if summary.Calories.Percent != 37.5 {
		t.Fatalf("expected calories at 37.5%% of target, got %v", summary.Calories.Percent)
	}
}

func TestAddMealRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)

	if _, err := uc.AddMeal(context.Background(), dto.AddMealInput{Name: "", Calories: 100}); err == nil {
		t.Fatalf("blank meal name must be rejected")
	}
	if _, err := uc.AddMeal(context.Background(), dto.AddMealInput{Name: "Bad", Protein: -2}); err == nil {
		t.Fatalf("negative macros must be rejected")
	}
}
