// Package entity defines the domain entities for the schedule feature.
package entity

import "time"

// Schedule is a dated instantiation of a plan for a specific departure
// time, with a wake-up time derived from the plan's steps at creation.
// A schedule is an immutable snapshot: later plan changes never update it.
type Schedule struct {
	// ID is the unique identifier for the schedule.
	ID uint `gorm:"primaryKey"`

	// UserID is the identifier of the user who owns the schedule.
	UserID uint `gorm:"index;not null"`

	// PlanID references the plan the schedule was derived from.
	// The schedule does not own the plan.
	PlanID uint `gorm:"index;not null"`

	// Date is the calendar date, stored verbatim as supplied.
	Date string `gorm:"size:32;not null"`

	// DepartureTime is the HH:MM:SS departure time supplied by the client.
	DepartureTime string `gorm:"size:16;not null"`

	// WakeUpTime is the derived HH:MM:SS wake-up time. Never client-supplied.
	WakeUpTime string `gorm:"size:16;not null"`

	// CreatedAt is the timestamp when the schedule was registered.
	CreatedAt time.Time
}
