// Package usecase implements the business logic for the schedule feature.
package usecase

import "errors"

var (
	// ErrNoStepsForPlan is returned when registering a schedule against a plan
	// that has no steps. No schedule row is created in that case.
	ErrNoStepsForPlan = errors.New("no steps found for the given plan_id")

	// ErrScheduleNotFound is returned when a schedule cannot be found by ID.
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrNoSchedulesForUser is returned when a user has no schedules at all.
	ErrNoSchedulesForUser = errors.New("no schedules found for user")

	// ErrRegisterFailed is returned when the store rejects the schedule insert.
	ErrRegisterFailed = errors.New("failed to register schedule")

	// ErrScheduleIDMissing is returned when the insert succeeded but no
	// generated identifier came back. This is a server-side integrity fault,
	// distinct from an ordinary not-found.
	ErrScheduleIDMissing = errors.New("failed to retrieve schedule id")
)
