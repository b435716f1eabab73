package entity

// Step is one timed action within a Plan. ProcessOrder is the 1-based
// position the step is performed in after waking up (1 = first).
// StepTime is the number of minutes the step consumes before departure.
type Step struct {
	// ID is the unique identifier for the step.
	ID uint `gorm:"primaryKey"`

	// PlanID is the identifier of the plan that owns the step.
	// Steps are deleted together with their plan (cascade on the store side).
	PlanID uint `gorm:"index;not null"`

	// StepName is the display name of the step.
	StepName string `gorm:"size:255;not null"`

	// StepTime is the duration of the step in minutes. Never negative.
	StepTime int `gorm:"not null"`

	// ProcessOrder is the 1-based execution position, unique within a plan.
	ProcessOrder int `gorm:"not null"`
}
