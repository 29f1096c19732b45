package util

import "errors"

var (
	ErrGoalNotFound       = errors.New("goal not found")
	ErrGoalConflict       = errors.New("goal was modified concurrently")
	ErrInvalidMoodType    = errors.New("invalid mood type")
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrGoalDateOutOfRange = errors.New("date must be within one year of today")
)
