package service

import "errors"

var (
	// ErrMalformedEntry marks input that failed shape or type validation
	// before reaching storage. Messages wrapping it carry a usage hint.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrInvalidActivityLevel marks an activity selection outside 1-5.
	// There is deliberately no silent default.
	ErrInvalidActivityLevel = errors.New("invalid activity level")

	// ErrNoGoal is returned when a budget is needed before any init has
	// persisted one.
	ErrNoGoal = errors.New("no caloric goal configured")

	// ErrNoWeightData is returned when the weight log is empty.
	ErrNoWeightData = errors.New("no weight data")

	// ErrInsufficientWeightData is returned when a trend is requested
	// over a single measurement. One entry is still valid for display.
	ErrInsufficientWeightData = errors.New("insufficient weight data")

	// ErrInconsistentScheduleShape marks a goal row whose mode does not
	// match the shape being read, e.g. weekday indexing into a flat goal.
	ErrInconsistentScheduleShape = errors.New("inconsistent schedule shape")

	// ErrStorageUnavailable wraps storage backend failures.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
