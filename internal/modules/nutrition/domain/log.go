package domain

import (
	"fmt"
	"strings"
	"time"
)

const SchemaVersion = 1

// Meal is one logged meal with its macro breakdown.
type Meal struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	LoggedAt time.Time `json:"time"`
}

func (m Meal) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("meal id is required")
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("meal name is required")
	}
	for _, v := range []float64{m.Calories, m.Protein, m.Carbs, m.Fat} {
		if v < 0 {
			return fmt.Errorf("macro values must be non-negative")
		}
	}
	return nil
}

// Log is the nutrition aggregate: running macro totals plus the
// append-only list of meals behind them. Totals are maintained
// incrementally on every add, never recomputed.
type Log struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Meals    []Meal  `json:"meals"`
}

// Add appends the meal and folds its macros into the running totals.
func (l *Log) Add(meal Meal) {
	l.Calories += meal.Calories
	l.Protein += meal.Protein
	l.Carbs += meal.Carbs
	l.Fat += meal.Fat
	l.Meals = append(l.Meals, meal)
}

// Targets are the fixed daily macro targets ratios are derived against.
type Targets struct {
	Calories float64 `yaml:"calories"`
	Protein  float64 `yaml:"protein"`
	Carbs    float64 `yaml:"carbs"`
	Fat      float64 `yaml:"fat"`
}

func DefaultTargets() Targets {
	return Targets{Calories: 2000, Protein: 150, Carbs: 250, Fat: 65}
}

func (t Targets) Validate() error {
	for _, v := range []float64{t.Calories, t.Protein, t.Carbs, t.Fat} {
		if v <= 0 {
			return fmt.Errorf("targets must be positive")
		}
	}
	return nil
}

// Ratios are display percentages of each total against its target.
type Ratios struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// RatiosOf derives percent-of-target per macro. A non-positive target
// reports 0 rather than dividing by zero.
func RatiosOf(log Log, targets Targets) Ratios {
	return Ratios{
		Calories: ratio(log.Calories, targets.Calories),
		Protein:  ratio(log.Protein, targets.Protein),
		Carbs:    ratio(log.Carbs, targets.Carbs),
		Fat:      ratio(log.Fat, targets.Fat),
	}
}

func ratio(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return current / target * 100
}
