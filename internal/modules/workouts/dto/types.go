package dto

import "time"

type ExerciseInput struct {
	Name string
	Sets int
	Reps int
}

type AddPlanInput struct {
	Name      string
	Focus     string
	Minutes   int
	Calories  float64
	Exercises []ExerciseInput
}

type ExerciseOutput struct {
	Name string
	Sets int
	Reps int
}

type PlanOutput struct {
	ID        string
	Name      string
	Focus     string
	Minutes   int
	Calories  float64
	Exercises []ExerciseOutput
}

type StartInput struct {
	PlanID string
}

type StartOutput struct {
	WorkoutID string
	PlanID    string
	PlanName  string
	StartedAt time.Time
}

type FinishInput struct {
	Notes string
}

type FinishOutput struct {
	WorkoutID       string
	PlanName        string
	DurationMin     int
	Calories        float64
	MinutesCredited bool
}

type ActiveOutput struct {
	WorkoutID string
	PlanID    string
	PlanName  string
	StartedAt time.Time
}

type WorkoutOutput struct {
	ID          string
	PlanName    string
	StartedAt   time.Time
	DurationMin int
	Calories    float64
	Notes       string
}
