package domain_test

import (
	"testing"

	"vitalog/internal/modules/goals/domain"
)

func TestClampBounds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		requested float64
		target    float64
		want      float64
	}{
		{"overshoot capped at 150%", 17000, 10000, 15000},
		{"negative floored at zero", -5, 10, 0},
		{"in range passes through", 8432, 10000, 8432},
		{"above target but under ceiling passes through", 12000, 10000, 12000},
		{"exact ceiling kept", 12, 8, 12},
	}
	for _, tc := range cases {
		if got := domain.Clamp(tc.requested, tc.target); got != tc.want {
			t.Fatalf("%s: Clamp(%v, %v) = %v, want %v", tc.name, tc.requested, tc.target, got, tc.want)
		}
	}
}

func TestValidateRejectsZeroTarget(t *testing.T) {
	t.Parallel()
	goal := domain.Goal{
		ID:       "g1",
		Name:     "Daily Steps",
		Kind:     domain.KindSteps,
		Target:   0,
		Unit:     "steps",
		Category: domain.CategoryFitness,
	}
	if err := goal.Validate(); err == nil {
		t.Fatalf("expected zero target to be rejected at creation")
	}
}

func TestValidateRejectsUnknownCategoryAndKind(t *testing.T) {
	t.Parallel()
	goal := domain.Goal{ID: "g1", Name: "X", Target: 1, Unit: "u", Category: "cardio", Kind: domain.KindCustom}
	if err := goal.Validate(); err == nil {
		t.Fatalf("expected unknown category to be rejected")
	}
	goal.Category = domain.CategoryFitness
	goal.Kind = "distance"
	if err := goal.Validate(); err == nil {
		t.Fatalf("expected unknown kind to be rejected")
	}
}

func TestDefaultGoalsAreValid(t *testing.T) {
	t.Parallel()
	for _, goal := range domain.DefaultGoals() {
		if err := goal.Validate(); err != nil {
			t.Fatalf("seed goal %s invalid: %v", goal.Name, err)
		}
		if len(goal.History) != 0 {
			t.Fatalf("seed goal %s must start with empty history", goal.Name)
		}
	}
}
