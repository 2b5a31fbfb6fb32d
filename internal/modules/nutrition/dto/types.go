package dto

import "time"

type AddMealInput struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

type MealOutput struct {
	ID       string
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	LoggedAt time.Time
}

type MacroOutput struct {
	Current float64
	Target  float64
	Percent float64
}

type SummaryOutput struct {
	Calories MacroOutput
	Protein  MacroOutput
	Carbs    MacroOutput
	Fat      MacroOutput
	Meals    []MealOutput
}
