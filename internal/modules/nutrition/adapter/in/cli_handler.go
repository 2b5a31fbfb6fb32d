package in

import (
	"context"

	"vitalog/internal/modules/nutrition/dto"
	nutritionin "vitalog/internal/modules/nutrition/port/in"
)

type CLIHandler struct {
	usecase nutritionin.Usecase
}

func NewCLIHandler(usecase nutritionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AddMeal(ctx context.Context, name string, calories, protein, carbs, fat float64) (dto.MealOutput, error) {
	return h.usecase.AddMeal(ctx, dto.AddMealInput{
		Name:     name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	})
}

func (h CLIHandler) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}
