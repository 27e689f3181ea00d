package models

type ConstraintType string

const (
	ConstraintRecurring ConstraintType = "recurring"
	ConstraintPeriod    ConstraintType = "period"
)

// Constraint reduces nominal weekly availability over a window. Only
// period constraints carry a date range and an hours override.
type Constraint struct {
	ID             string         `json:"id"`
	Type           ConstraintType `json:"type"`
	Label          string         `json:"label,omitempty"`
	StartDate      string         `json:"start_date,omitempty"` // YYYY-MM-DD format
	EndDate        string         `json:"end_date,omitempty"`   // YYYY-MM-DD format
	HoursAvailable float64        `json:"hours_available,omitempty"`
}

// Profile is the user's availability profile.
type Profile struct {
	HoursPerWeek float64      `json:"hours_per_week"`
	Constraints  []Constraint `json:"constraints"`
}
