package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dch42/calcount/internal/model"
	"github.com/dch42/calcount/internal/service"
)

func TestParseWeightEntry(t *testing.T) {
	t.Parallel()

	entry, err := service.ParseWeightEntry("183.2")
	if err != nil {
		t.Fatalf("parse valid weight: %v", err)
	}
	if entry.Weight != 183.2 {
		t.Errorf("weight = %v, want 183.2", entry.Weight)
	}

	if _, err := service.ParseWeightEntry("heavy"); !errors.Is(err, service.ErrMalformedEntry) {
		t.Errorf("parse bad weight: got %v, want ErrMalformedEntry", err)
	}
}

func TestWeightRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	now := time.Date(2026, 8, 31, 6, 45, 0, 0, time.Local)
	if err := service.AddWeight(db, model.WeightEntry{Weight: 183.2}, now); err != nil {
		t.Fatalf("add weight: %v", err)
	}

	history, err := service.WeightHistory(db)
	if err != nil {
		t.Fatalf("weight history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("got %d entries, want 1", len(history))
	}
	got := history[0]
	if got.Weight != 183.2 || got.Date != "2026-08-31" || got.Time != "06:45:00" {
		t.Errorf("round-tripped entry = %+v", got)
	}
}

func TestWeightHistoryIsDateTimeOrdered(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	// inserted out of order; history must come back (date, time) ascending
	stamps := []struct {
		weight float64
		at     time.Time
	}{
		{128, time.Date(2026, 8, 30, 7, 0, 0, 0, time.Local)},
		{130, time.Date(2026, 8, 28, 7, 0, 0, 0, time.Local)},
		{129, time.Date(2026, 8, 28, 19, 0, 0, 0, time.Local)},
	}
	for _, s := range stamps {
		if err := service.AddWeight(db, model.WeightEntry{Weight: s.weight}, s.at); err != nil {
			t.Fatalf("add weight: %v", err)
		}
	}

	history, err := service.WeightHistory(db)
	if err != nil {
		t.Fatalf("weight history: %v", err)
	}
	want := []float64{130, 129, 128}
	for i, w := range want {
		if history[i].Weight != w {
			t.Errorf("history[%d].Weight = %v, want %v", i, history[i].Weight, w)
		}
	}
}

func TestWeightHistoryEmpty(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := service.WeightHistory(db); !errors.Is(err, service.ErrNoWeightData) {
		t.Errorf("empty history: got %v, want ErrNoWeightData", err)
	}
}

func TestChangeSignConvention(t *testing.T) {
	t.Parallel()

	// first minus last: positive means net loss
	loss := []model.WeightEntry{
		{Weight: 130, Date: "2026-08-01"},
		{Weight: 125, Date: "2026-08-05"},
	}
	change, err := service.Change(loss)
	if err != nil {
		t.Fatalf("change over loss history: %v", err)
	}
	if change != 5 {
		t.Errorf("change = %v, want 5 (loss)", change)
	}

	gain := []model.WeightEntry{
		{Weight: 125, Date: "2026-08-01"},
		{Weight: 130, Date: "2026-08-05"},
	}
	change, err = service.Change(gain)
	if err != nil {
		t.Fatalf("change over gain history: %v", err)
	}
	if change != -5 {
		t.Errorf("change = %v, want -5 (gain)", change)
	}
}

func TestChangeRequiresTwoEntries(t *testing.T) {
	t.Parallel()

	if _, err := service.Change(nil); !errors.Is(err, service.ErrNoWeightData) {
		t.Errorf("change over empty history: got %v, want ErrNoWeightData", err)
	}
	one := []model.WeightEntry{{Weight: 130}}
	if _, err := service.Change(one); !errors.Is(err, service.ErrInsufficientWeightData) {
		t.Errorf("change over one entry: got %v, want ErrInsufficientWeightData", err)
	}
}
