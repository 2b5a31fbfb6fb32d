package usecase

import (
	"context"

	"vitalog/internal/modules/nutrition/domain"
	"vitalog/internal/modules/nutrition/dto"
	nutritionin "vitalog/internal/modules/nutrition/port/in"
	"vitalog/internal/modules/nutrition/service"
)

type Interactor struct {
	svc *service.NutritionService
}

func NewInteractor(svc *service.NutritionService) nutritionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddMeal(ctx context.Context, input dto.AddMealInput) (dto.MealOutput, error) {
	meal, err := i.svc.AddMeal(ctx, input.Name, input.Calories, input.Protein, input.Carbs, input.Fat)
	if err != nil {
		return dto.MealOutput{}, err
	}
	return toMealOutput(meal), nil
}

func (i *Interactor) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	log, err := i.svc.Log(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	targets, err := i.svc.Targets(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	ratios := domain.RatiosOf(log, targets)

	meals := make([]dto.MealOutput, 0, len(log.Meals))
	for _, meal := range log.Meals {
		meals = append(meals, toMealOutput(meal))
	}
	return dto.SummaryOutput{
		Calories: dto.MacroOutput{Current: log.Calories, Target: targets.Calories, Percent: ratios.Calories},
		Protein:  dto.MacroOutput{Current: log.Protein, Target: targets.Protein, Percent: ratios.Protein},
		Carbs:    dto.MacroOutput{Current: log.Carbs, Target: targets.Carbs, Percent: ratios.Carbs},
		Fat:      dto.MacroOutput{Current: log.Fat, Target: targets.Fat, Percent: ratios.Fat},
		Meals:    meals,
	}, nil
}

func toMealOutput(meal domain.Meal) dto.MealOutput {
	return dto.MealOutput{
		ID:       meal.ID,
		Name:     meal.Name,
		Calories: meal.Calories,
		Protein:  meal.Protein,
		Carbs:    meal.Carbs,
		Fat:      meal.Fat,
		LoggedAt: meal.LoggedAt,
	}
}
