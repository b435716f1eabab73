// Package entity defines the domain entities for the plan feature.
package entity

import "time"

// Plan represents a named, ordered template of preparation steps
// belonging to a user. Its steps are created together with the plan
// and are immutable afterwards.
type Plan struct {
	// ID is the unique identifier for the plan.
	ID uint `gorm:"primaryKey"`

	// UserID is the identifier of the user who owns the plan.
	UserID uint `gorm:"index;not null"`

	// PlanName is the display name of the plan.
	PlanName string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the plan was created.
	CreatedAt time.Time
}
