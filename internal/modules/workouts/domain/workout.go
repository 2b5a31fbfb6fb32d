// Package domain models workout plans and the sessions logged against
// them. Plans are templates; a workout is one timed run of a plan.
package domain

import (
	"fmt"
	"strings"
	"time"
)

const SchemaVersion = 1

type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
}

func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("exercise name is required")
	}
	if e.Sets < 0 || e.Reps < 0 {
		return fmt.Errorf("exercise sets and reps must be non-negative")
	}
	return nil
}

type Plan struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Focus       string     `json:"focus"`
	EstMinutes  int        `json:"est_minutes"`
	EstCalories float64    `json:"est_calories"`
	Exercises   []Exercise `json:"exercises"`
}

func (p Plan) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("plan id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("plan name is required")
	}
	if p.EstMinutes <= 0 {
		return fmt.Errorf("plan duration must be positive")
	}
	if p.EstCalories < 0 {
		return fmt.Errorf("plan calories must be non-negative")
	}
	for _, exercise := range p.Exercises {
		if err := exercise.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// BurnedCalories scales the plan estimate to how long the workout
// actually ran.
func (p Plan) BurnedCalories(durationMin int) float64 {
	if p.EstMinutes <= 0 || durationMin <= 0 {
		return 0
	}
	return p.EstCalories * float64(durationMin) / float64(p.EstMinutes)
}

type ActiveWorkout struct {
	WorkoutID string    `json:"workout_id"`
	PlanID    string    `json:"plan_id"`
	PlanName  string    `json:"plan_name"`
	StartedAt time.Time `json:"started_at"`
}

type Workout struct {
	ID          string    `json:"id"`
	PlanID      string    `json:"plan_id"`
	PlanName    string    `json:"plan_name"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
	DurationMin int       `json:"duration_min"`
	Calories    float64   `json:"calories"`
	Notes       string    `json:"notes,omitempty"`
}

// DefaultPlans seeds a fresh install with two ready-to-run templates.
func DefaultPlans() []Plan {
	return []Plan{
		{
			ID:          "1",
			Name:        "Full Body Strength",
			Focus:       "strength",
			EstMinutes:  45,
			EstCalories: 350,
			Exercises: []Exercise{
				{Name: "Squats", Sets: 4, Reps: 10},
				{Name: "Push-ups", Sets: 3, Reps: 15},
				{Name: "Deadlifts", Sets: 4, Reps: 8},
			},
		},
		{
			ID:          "2",
			Name:        "Morning Cardio",
			Focus:       "cardio",
			EstMinutes:  30,
			EstCalories: 280,
			Exercises: []Exercise{
				{Name: "Jumping Jacks", Sets: 3, Reps: 30},
				{Name: "Burpees", Sets: 3, Reps: 12},
			},
		},
	}
}
