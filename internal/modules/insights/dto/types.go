package dto

type StatOutput struct {
	Label   string
	Current float64
	Target  float64
	Percent float64
	Unit    string
}

type TodayStatsOutput struct {
	Steps         StatOutput
	ActiveMinutes StatOutput
	Calories      StatOutput
	SleepScore    int
}

type WeeklyPoint struct {
	Day   string
	Value float64
}

type WeeklyOutput struct {
	GoalID string
	Kind   string
	Name   string
	Unit   string
	Target float64
	Points []WeeklyPoint
}

type MacroLine struct {
	Current float64
	Target  float64
	Percent float64
}

type MacroStatusOutput struct {
	Calories MacroLine
	Protein  MacroLine
	Carbs    MacroLine
	Fat      MacroLine
}
