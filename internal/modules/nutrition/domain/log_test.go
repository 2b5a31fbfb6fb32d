package domain_test

import (
	"testing"

	"vitalog/internal/modules/nutrition/domain"
)

func TestAddAccumulatesTotalsAndAppendsMeal(t *testing.T) {
	t.Parallel()
	log := domain.Log{}

	log.Add(domain.Meal{ID: "m1", Name: "Omelette", Calories: 500, Protein: 30, Carbs: 40, Fat: 15})
	if log.Calories != 500 || log.Protein != 30 || log.Carbs != 40 || log.Fat != 15 {
		t.Fatalf("totals wrong after first meal: %+v", log)
	}
	if len(log.Meals) != 1 {
		t.Fatalf("expected one meal, got %d", len(log.Meals))
	}

	log.Add(domain.Meal{ID: "m2", Name: "Salad", Calories: 250, Protein: 5, Carbs: 20, Fat: 12})
	if log.Calories != 750 || log.Protein != 35 || log.Carbs != 60 || log.Fat != 27 {
		t.Fatalf("totals wrong after second meal: %+v", log)
	}
	if len(log.Meals) != 2 {
		t.Fatalf("meal list must only grow, got %d", len(log.Meals))
	}
}

func TestRatiosOf(t *testing.T) {
	t.Parallel()
	log := domain.Log{Calories: 1000, Protein: 75, Carbs: 125, Fat: 13}
	ratios := domain.RatiosOf(log, domain.DefaultTargets())

	if ratios.Calories != 50 || ratios.Protein != 50 || ratios.Carbs != 50 {
		t.Fatalf("expected 50%% across calories/protein/carbs, got %+v", ratios)
	}
	if ratios.Fat != 20 {
		t.Fatalf("expected fat at 20%%, got %v", ratios.Fat)
	}

	zero := domain.RatiosOf(log, domain.Targets{})
	if zero != (domain.Ratios{}) {
		t.Fatalf("zero targets must report zero ratios, got %+v", zero)
	}
}

func TestMealValidation(t *testing.T) {
	t.Parallel()
	meal := domain.Meal{ID: "m1", Name: "Shake", Calories: -1}
	if err := meal.Validate(); err == nil {
		t.Fatalf("negative macros must be rejected")
	}
	meal = domain.Meal{ID: "m1", Name: " "}
	if err := meal.Validate(); err == nil {
		t.Fatalf("blank name must be rejected")
	}
}
