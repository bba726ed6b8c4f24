package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/dch42/calcount/internal/model"
)

const addUsageHint = "expected: 'food name' calories protein, e.g. add 'Protein Bar' 190 16"

// ParseFoodEntry validates the three positional fields of an add/remove
// invocation. The name is taken verbatim; calories and protein must parse
// as integers but may carry any sign, so a negative entry can back out a
// mistaken one.
func ParseFoodEntry(args []string) (model.FoodEntry, error) {
	if len(args) != 3 {
		return model.FoodEntry{}, fmt.Errorf("%w: got %d field(s), %s", ErrMalformedEntry, len(args), addUsageHint)
	}
	if args[0] == "" {
		return model.FoodEntry{}, fmt.Errorf("%w: food name is empty, %s", ErrMalformedEntry, addUsageHint)
	}
	calories, err := strconv.Atoi(args[1])
	if err != nil {
		return model.FoodEntry{}, fmt.Errorf("%w: calories %q is not an integer, %s", ErrMalformedEntry, args[1], addUsageHint)
	}
	protein, err := strconv.Atoi(args[2])
	if err != nil {
		return model.FoodEntry{}, fmt.Errorf("%w: protein %q is not an integer, %s", ErrMalformedEntry, args[2], addUsageHint)
	}
	return model.FoodEntry{Name: args[0], Calories: calories, Protein: protein}, nil
}

// AddFood inserts one food entry stamped with now.
func AddFood(db *sql.DB, entry model.FoodEntry, now time.Time) error {
	_, err := db.Exec(`
INSERT INTO food_log(name, calories, protein, time, date)
VALUES(?, ?, ?, ?, ?)
`, entry.Name, entry.Calories, entry.Protein, now.Format("15:04:05"), now.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("%w: insert food entry: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// RemoveFood deletes every row exact-matching the entry's date, name,
// calories, and protein, and reports how many rows were removed.
func RemoveFood(db *sql.DB, entry model.FoodEntry, date string) (int64, error) {
	res, err := db.Exec(`
DELETE FROM food_log
WHERE date = ? AND name = ? AND calories = ? AND protein = ?
`, date, entry.Name, entry.Calories, entry.Protein)
	if err != nil {
		return 0, fmt.Errorf("%w: delete food entry: %v", ErrStorageUnavailable, err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("read rows affected: %w", err)
	}
	return removed, nil
}

// FoodForDay lists the entries logged on date in insertion order.
func FoodForDay(db *sql.DB, date string) ([]model.FoodEntry, error) {
	rows, err := db.Query(`
SELECT id, name, calories, protein, time, date
FROM food_log
WHERE date = ?
ORDER BY id ASC
`, date)
	if err != nil {
		return nil, fmt.Errorf("%w: list food entries: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	entries := make([]model.FoodEntry, 0)
	for rows.Next() {
		var e model.FoodEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Calories, &e.Protein, &e.Time, &e.Date); err != nil {
			return nil, fmt.Errorf("scan food entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food entries: %w", err)
	}
	return entries, nil
}

// RecentDays returns up to n distinct logged dates, oldest first, so a
// multi-day report reads chronologically.
func RecentDays(db *sql.DB, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: day count must be > 0", ErrMalformedEntry)
	}
	rows, err := db.Query(`
SELECT DISTINCT date FROM food_log ORDER BY date DESC LIMIT ?
`, n)
	if err != nil {
		return nil, fmt.Errorf("%w: list logged days: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	days := make([]string, 0, n)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan logged day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate logged days: %w", err)
	}
	// reverse newest-first into chronological order
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}
	return days, nil
}
