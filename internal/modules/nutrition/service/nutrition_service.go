package service

import (
	"context"
	"fmt"
	"strings"

	"vitalog/internal/modules/nutrition/domain"
	nutritionout "vitalog/internal/modules/nutrition/port/out"
	"vitalog/internal/platform/clock"
	apperrors "vitalog/internal/platform/errors"
	"vitalog/internal/platform/id"
)

type NutritionService struct {
	clock   clock.Clock
	idGen   id.Generator
	store   nutritionout.LogStore
	targets nutritionout.TargetsStore
}

func NewNutritionService(clk clock.Clock, idGen id.Generator, store nutritionout.LogStore, targets nutritionout.TargetsStore) *NutritionService {
	return &NutritionService{clock: clk, idGen: idGen, store: store, targets: targets}
}

// AddMeal folds one meal into the aggregate and persists the whole log
// before returning.
func (s *NutritionService) AddMeal(ctx context.Context, name string, calories, protein, carbs, fat float64) (domain.Meal, error) {
	meal := domain.Meal{
		ID:       s.idGen.New(),
		Name:     strings.TrimSpace(name),
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		LoggedAt: s.clock.Now(),
	}
	if err := meal.Validate(); err != nil {
		return domain.Meal{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	log, err := s.store.Load(ctx)
	if err != nil {
		return domain.Meal{}, err
	}
	log.Add(meal)
	if err := s.store.Save(ctx, log); err != nil {
		return domain.Meal{}, err
	}
	return meal, nil
}

func (s *NutritionService) Log(ctx context.Context) (domain.Log, error) {
	return s.store.Load(ctx)
}

func (s *NutritionService) Targets(ctx context.Context) (domain.Targets, error) {
	targets, err := s.targets.Load(ctx)
	if err != nil {
		return domain.Targets{}, err
	}
	if err := targets.Validate(); err != nil {
		return domain.Targets{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	return targets, nil
}
