package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/dch42/calcount/internal/model"
)

// ParseWeightEntry validates a single weight field as a decimal.
func ParseWeightEntry(arg string) (model.WeightEntry, error) {
	weight, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return model.WeightEntry{}, fmt.Errorf("%w: weight %q is not a number", ErrMalformedEntry, arg)
	}
	return model.WeightEntry{Weight: weight}, nil
}

// AddWeight appends one weight entry stamped with now. The weight log is
// append-only; there is no removal.
func AddWeight(db *sql.DB, entry model.WeightEntry, now time.Time) error {
	_, err := db.Exec(`
INSERT INTO weight_log(weight, time, date)
VALUES(?, ?, ?)
`, entry.Weight, now.Format("15:04:05"), now.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("%w: insert weight entry: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// WeightHistory returns the full weight log ordered by (date, time)
// ascending. An empty log is ErrNoWeightData: a history view has nothing
// to show and the caller should hint at recording a first weight.
func WeightHistory(db *sql.DB) ([]model.WeightEntry, error) {
	rows, err := db.Query(`
SELECT id, weight, time, date
FROM weight_log
ORDER BY date ASC, time ASC
`)
	if err != nil {
		return nil, fmt.Errorf("%w: list weight entries: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	entries := make([]model.WeightEntry, 0)
	for rows.Next() {
		var e model.WeightEntry
		if err := rows.Scan(&e.ID, &e.Weight, &e.Time, &e.Date); err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: record one with `calcount weight add <lbs>`", ErrNoWeightData)
	}
	return entries, nil
}

// Change computes the cumulative weight change over an ordered history:
// first minus last, so a positive result is a net loss and a negative
// result a net gain. Callers label the value accordingly. A single entry
// is valid for display but not for a trend.
func Change(history []model.WeightEntry) (float64, error) {
	switch len(history) {
	case 0:
		return 0, ErrNoWeightData
	case 1:
		return 0, fmt.Errorf("%w: need at least two measurements for a trend", ErrInsufficientWeightData)
	}
	return history[0].Weight - history[len(history)-1].Weight, nil
}
