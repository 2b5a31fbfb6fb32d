package domain

import (
	"fmt"
	"strings"
)

const SchemaVersion = 1

// Overshoot caps how far current may exceed target. Progress bars and
// derived percentages stay bounded because of this ceiling.
const Overshoot = 1.5

type Category string

const (
	CategoryFitness   Category = "fitness"
	CategoryNutrition Category = "nutrition"
	CategorySleep     Category = "sleep"
	CategoryWater     Category = "water"
)

func (c Category) Validate() error {
	switch c {
	case CategoryFitness, CategoryNutrition, CategorySleep, CategoryWater:
		return nil
	default:
		return fmt.Errorf("unsupported category %q", string(c))
	}
}

// Kind tags the well-known goals the dashboard reads, so lookups key on
// a stable tag instead of a display string. User-created goals are
// KindCustom.
type Kind string

const (
	KindSteps         Kind = "steps"
	KindWater         Kind = "water"
	KindSleep         Kind = "sleep"
	KindCalories      Kind = "calories"
	KindProtein       Kind = "protein"
	KindActiveMinutes Kind = "active_minutes"
	KindCustom        Kind = "custom"
)

func (k Kind) Validate() error {
	switch k {
	case KindSteps, KindWater, KindSleep, KindCalories, KindProtein, KindActiveMinutes, KindCustom:
		return nil
	default:
		return fmt.Errorf("unsupported goal kind %q", string(k))
	}
}

// HistoryEntry is a dated snapshot of a goal's current value at the
// moment of a committed update. Entries are append-only; the same day
// may appear more than once and the last entry for a day is the
// settled value.
type HistoryEntry struct {
	Day   string  `json:"date"`
	Value float64 `json:"value"`
}

type Goal struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Kind     Kind           `json:"kind"`
	Target   float64        `json:"target"`
	Current  float64        `json:"current"`
	Unit     string         `json:"unit"`
	Category Category       `json:"category"`
	History  []HistoryEntry `json:"history"`
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(g.Unit) == "" {
		return fmt.Errorf("unit is required")
	}
	if g.Target <= 0 {
		return fmt.Errorf("target must be positive")
	}
	if err := g.Category.Validate(); err != nil {
		return err
	}
	return g.Kind.Validate()
}

// Ceiling is the highest value current may take.
func (g Goal) Ceiling() float64 {
	return g.Target * Overshoot
}

// Clamp maps a requested current value onto [0, target*Overshoot].
func Clamp(requested, target float64) float64 {
	ceiling := target * Overshoot
	if requested > ceiling {
		return ceiling
	}
	if requested < 0 {
		return 0
	}
	return requested
}

// DefaultGoals seeds the collection on first run, before anything has
// been persisted.
func DefaultGoals() []Goal {
	return []Goal{
		{ID: "1", Name: "Daily Steps", Kind: KindSteps, Target: 10000, Current: 8432, Unit: "steps", Category: CategoryFitness},
		{ID: "2", Name: "Water Intake", Kind: KindWater, Target: 8, Current: 6, Unit: "L", Category: CategoryWater},
		{ID: "3", Name: "Sleep Duration", Kind: KindSleep, Target: 8, Current: 7.5, Unit: "hours", Category: CategorySleep},
		{ID: "4", Name: "Calorie Intake", Kind: KindCalories, Target: 2000, Current: 1850, Unit: "kcal", Category: CategoryNutrition},
		{ID: "5", Name: "Protein Intake", Kind: KindProtein, Target: 120, Current: 90, Unit: "g", Category: CategoryNutrition},
	}
}
