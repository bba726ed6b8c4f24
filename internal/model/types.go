package model

// Sex selects the BMR formula branch.
type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ActivityLevel is one of the five fixed daily activity levels, numbered
// 1 (sedentary) through 5 (extra active) as presented during init.
type ActivityLevel int

const (
	Sedentary ActivityLevel = iota + 1
	LightActivity
	ModerateActivity
	VeryActive
	ExtraActive
)

// Profile holds the answers collected during init. It is consumed
// immediately by the goal computation and never persisted.
type Profile struct {
	Age          int
	Sex          Sex
	HeightCm     float64
	WeightKg     float64
	WeeklyTarget float64 // lbs/week, positive = loss
	Activity     ActivityLevel
}

// GoalMode discriminates the shape of a persisted goal row.
type GoalMode string

const (
	ModeFlat   GoalMode = "flat"
	ModeZigzag GoalMode = "zigzag"
)

// Goal is one persisted row of the goal log. Exactly one of Budget or
// Week is meaningful, selected by Mode. Week is ordered Monday..Sunday.
type Goal struct {
	ID           int64
	WeeklyTarget float64
	Mode         GoalMode
	Budget       float64
	Week         [7]float64
	Time         string
	Date         string
}

// FoodEntry is one logged food item. Calories and Protein carry no sign
// constraint: a negative entry is the supported way to back out a mistake.
type FoodEntry struct {
	ID       int64
	Name     string
	Calories int
	Protein  int
	Time     string
	Date     string
}

// WeightEntry is one logged weight measurement. The weight log is
// append-only.
type WeightEntry struct {
	ID     int64
	Weight float64
	Time   string
	Date   string
}
