package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dch42/calcount/internal/model"
)

// kcalPerLb is the daily caloric adjustment per pound of weekly weight
// change (3500 kcal/lb spread over 7 days).
const kcalPerLb = 500.0

// FlatGoal converts a TDEE and weekly weight-change target (lbs/week,
// positive = loss) into a single daily calorie budget. The result is not
// clamped: extreme inputs can legitimately produce a negative budget.
func FlatGoal(tdee, weeklyTarget float64) float64 {
	return tdee - weeklyTarget*kcalPerLb
}

// zigzagMultipliers scales the flat daily budget per weekday, Monday..Sunday.
// Days 0..5 alternate low/high (x0.75 / x1.25), Tuesday and Wednesday are
// further damped (x0.9), Thursday and Friday further boosted (x1.1), and
// Sunday stays at the flat value. The set sums to exactly 7.0, so the weekly
// total matches a flat plan.
var zigzagMultipliers = [7]float64{
	0.75,        // Mon
	1.25 * 0.9,  // Tue
	0.75 * 0.9,  // Wed
	1.25 * 1.1,  // Thu
	0.75 * 1.1,  // Fri
	1.25,        // Sat
	1.0,         // Sun
}

// ZigzagSchedule distributes the flat daily budget unevenly across the
// week. Deterministic: identical inputs always yield the same vector.
func ZigzagSchedule(tdee, weeklyTarget float64) [7]float64 {
	base := FlatGoal(tdee, weeklyTarget)
	var week [7]float64
	for i, m := range zigzagMultipliers {
		week[i] = base * m
	}
	return week
}

// PlanGoal computes the goal record for a profile: BMR, TDEE, and either a
// flat daily budget or a zigzag weekly schedule. The returned goal carries
// no timestamp; SetGoal stamps it on insert.
func PlanGoal(p model.Profile, zigzag bool) (goal model.Goal, bmr, tdee float64, err error) {
	bmr = BMR(p.WeightKg, p.HeightCm, p.Sex, p.Age)
	tdee, err = TDEE(bmr, p.Activity)
	if err != nil {
		return model.Goal{}, 0, 0, err
	}
	goal = model.Goal{WeeklyTarget: p.WeeklyTarget}
	if zigzag {
		goal.Mode = model.ModeZigzag
		goal.Week = ZigzagSchedule(tdee, p.WeeklyTarget)
	} else {
		goal.Mode = model.ModeFlat
		goal.Budget = FlatGoal(tdee, p.WeeklyTarget)
	}
	return goal, bmr, tdee, nil
}

// SetGoal appends one goal row stamped with now. Prior rows are kept: the
// goal log is append-only history and queries take the most recent row.
func SetGoal(db *sql.DB, goal model.Goal, now time.Time) error {
	switch goal.Mode {
	case model.ModeFlat, model.ModeZigzag:
	default:
		return fmt.Errorf("%w: unknown goal mode %q", ErrInconsistentScheduleShape, goal.Mode)
	}

	var budget any
	week := make([]any, 7)
	if goal.Mode == model.ModeFlat {
		budget = goal.Budget
	} else {
		for i, v := range goal.Week {
			week[i] = v
		}
	}

	args := append([]any{goal.WeeklyTarget, string(goal.Mode), budget}, week...)
	args = append(args, now.Format("15:04:05"), now.Format("2006-01-02"))
	_, err := db.Exec(`
INSERT INTO goal_log(weekly_target, mode, budget, budget_mon, budget_tue, budget_wed, budget_thu, budget_fri, budget_sat, budget_sun, time, date)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, args...)
	if err != nil {
		return fmt.Errorf("%w: insert goal: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// ActiveGoal returns the most recently inserted goal row. Superseded rows
// remain queryable through GoalHistory.
func ActiveGoal(db *sql.DB) (*model.Goal, error) {
	row := db.QueryRow(`
SELECT id, weekly_target, mode, budget, budget_mon, budget_tue, budget_wed, budget_thu, budget_fri, budget_sat, budget_sun, time, date
FROM goal_log
ORDER BY id DESC
LIMIT 1
`)
	goal, err := scanGoal(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: run `calcount init` first", ErrNoGoal)
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// GoalHistory lists every persisted goal row, most recent first.
func GoalHistory(db *sql.DB) ([]model.Goal, error) {
	rows, err := db.Query(`
SELECT id, weekly_target, mode, budget, budget_mon, budget_tue, budget_wed, budget_thu, budget_fri, budget_sat, budget_sun, time, date
FROM goal_log
ORDER BY id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("%w: list goal history: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	goals := make([]model.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan goal history: %w", err)
		}
		goals = append(goals, *goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goal history: %w", err)
	}
	return goals, nil
}

func scanGoal(scan func(dest ...any) error) (*model.Goal, error) {
	var g model.Goal
	var mode string
	var budget sql.NullFloat64
	var week [7]sql.NullFloat64
	err := scan(&g.ID, &g.WeeklyTarget, &mode, &budget,
		&week[0], &week[1], &week[2], &week[3], &week[4], &week[5], &week[6],
		&g.Time, &g.Date)
	if err != nil {
		return nil, err
	}
	g.Mode = model.GoalMode(mode)

	switch g.Mode {
	case model.ModeFlat:
		if !budget.Valid {
			return nil, fmt.Errorf("%w: flat goal row %d has no budget", ErrInconsistentScheduleShape, g.ID)
		}
		g.Budget = budget.Float64
	case model.ModeZigzag:
		for i, v := range week {
			if !v.Valid {
				return nil, fmt.Errorf("%w: zigzag goal row %d is missing weekday %d", ErrInconsistentScheduleShape, g.ID, i)
			}
			g.Week[i] = v.Float64
		}
	default:
		return nil, fmt.Errorf("%w: goal row %d has unknown mode %q", ErrInconsistentScheduleShape, g.ID, mode)
	}
	return &g, nil
}

// BudgetFor resolves the calorie budget applying to date: the scalar for a
// flat goal, the weekday slot for a zigzag goal.
func BudgetFor(goal *model.Goal, date time.Time) (float64, error) {
	switch goal.Mode {
	case model.ModeFlat:
		return goal.Budget, nil
	case model.ModeZigzag:
		return goal.Week[mondayIndex(date.Weekday())], nil
	default:
		return 0, fmt.Errorf("%w: unknown goal mode %q", ErrInconsistentScheduleShape, goal.Mode)
	}
}

// mondayIndex maps time.Weekday (Sunday=0) onto the Monday=0..Sunday=6
// ordering the schedule vector uses.
func mondayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
