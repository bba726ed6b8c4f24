package service

import (
	"database/sql"
	"math"
	"time"

	"github.com/dch42/calcount/internal/model"
)

// BudgetStatus labels the sign of a day's budget reconciliation. Amounts
// are always reported non-negative with the status carrying the direction,
// never as negative numbers.
type BudgetStatus string

const (
	StatusRemaining BudgetStatus = "remaining"
	StatusOver      BudgetStatus = "over"
)

// DayReport is the plain result record for one day's ledger. The caller
// formats it; services never render text.
type DayReport struct {
	Date          string
	Entries       []model.FoodEntry
	TotalCalories int
	TotalProtein  int
	Budget        float64
	Amount        int
	Status        BudgetStatus
}

// DailyTotals sums calories and protein over one day's entries. An empty
// sequence yields (0, 0).
func DailyTotals(entries []model.FoodEntry) (totalCalories, totalProtein int) {
	for _, e := range entries {
		totalCalories += e.Calories
		totalProtein += e.Protein
	}
	return totalCalories, totalProtein
}

// Remaining reconciles a day's intake against its budget. The returned
// amount is non-negative; the status says which side of the budget it is.
func Remaining(budget float64, totalCalories int) (int, BudgetStatus) {
	diff := int(math.Round(budget - float64(totalCalories)))
	if diff >= 0 {
		return diff, StatusRemaining
	}
	return -diff, StatusOver
}

// ReportDay builds the full ledger report for one date: stored entries,
// totals, and the reconciliation against the active goal's budget for that
// weekday. Requires a prior init (ErrNoGoal otherwise).
func ReportDay(db *sql.DB, date string) (*DayReport, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, err
	}
	goal, err := ActiveGoal(db)
	if err != nil {
		return nil, err
	}
	budget, err := BudgetFor(goal, day)
	if err != nil {
		return nil, err
	}
	entries, err := FoodForDay(db, date)
	if err != nil {
		return nil, err
	}

	report := &DayReport{Date: date, Entries: entries, Budget: budget}
	report.TotalCalories, report.TotalProtein = DailyTotals(entries)
	report.Amount, report.Status = Remaining(budget, report.TotalCalories)
	return report, nil
}

// ReportDays builds reports for the last n distinct logged days in
// chronological order.
func ReportDays(db *sql.DB, n int) ([]DayReport, error) {
	days, err := RecentDays(db, n)
	if err != nil {
		return nil, err
	}
	reports := make([]DayReport, 0, len(days))
	for _, day := range days {
		report, err := ReportDay(db, day)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}
