package in

import (
	"context"

	"vitalog/internal/modules/nutrition/dto"
)

type Usecase interface {
	AddMeal(ctx context.Context, input dto.AddMealInput) (dto.MealOutput, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
}
