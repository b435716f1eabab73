// Package usecase implements the business logic for the plan feature.
package usecase

import "errors"

var (
	// ErrPlanNotFound is returned when a plan cannot be found by ID.
	ErrPlanNotFound = errors.New("plan not found")

	// ErrPlanNameRequired is returned when a plan is created without a name.
	ErrPlanNameRequired = errors.New("plan name is required")

	// ErrInvalidStepTime is returned when a step carries a negative duration.
	ErrInvalidStepTime = errors.New("invalid step duration")

	// ErrNoPlansForUser is returned when a user has no plans at all.
	ErrNoPlansForUser = errors.New("no plans found for user")
)
