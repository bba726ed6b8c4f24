package service

import (
	"database/sql"
	"fmt"

	"github.com/dch42/calcount/internal/model"
)

// AllFood returns the entire food log ordered by (date, time) ascending,
// for export.
func AllFood(db *sql.DB) ([]model.FoodEntry, error) {
	rows, err := db.Query(`
SELECT id, name, calories, protein, time, date
FROM food_log
ORDER BY date ASC, time ASC
`)
	if err != nil {
		return nil, fmt.Errorf("%w: export food log: %v", ErrStorageUnavailable, err)
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
