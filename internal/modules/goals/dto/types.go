package dto

type AddGoalInput struct {
	Name     string
	Kind     string
	Target   float64
	Current  float64
	Unit     string
	Category string
}

type SetCurrentInput struct {
	GoalID string
	Value  float64
}

type RecordSampleInput struct {
	GoalID string
	Day    string
	Value  float64
}

type HistoryPoint struct {
	Day   string
	Value float64
}

type GoalOutput struct {
	ID       string
	Name     string
	Kind     string
	Target   float64
	Current  float64
	Unit     string
	Category string
}

type GoalDetailOutput struct {
	ID       string
	Name     string
	Kind     string
	Target   float64
	Current  float64
	Unit     string
	Category string
	History  []HistoryPoint
}
