package models

import "time"

type PhaseKind string

const (
	PhaseResearch   PhaseKind = "research"
	PhaseIdeation   PhaseKind = "ideation"
	PhaseProduction PhaseKind = "production"
	PhasePolish     PhaseKind = "polish"
	PhaseSubmission PhaseKind = "submission"
)

type PhaseStatus string

const (
	PhasePending    PhaseStatus = "pending"
	PhaseInProgress PhaseStatus = "in_progress"
	PhaseCompleted  PhaseStatus = "completed"
)

// NextPhaseStatus advances a phase status one step around the
// pending -> in_progress -> completed -> pending cycle. Unknown
// values reset to pending.
func NextPhaseStatus(s PhaseStatus) PhaseStatus {
	switch s {
	case PhasePending:
		return PhaseInProgress
	case PhaseInProgress:
		return PhaseCompleted
	default:
		return PhasePending
	}
}

type PhasePriority string

const (
	PriorityMust PhasePriority = "must"
	PriorityNice PhasePriority = "nice"
)

// Phase is a labeled sub-interval of the preparation period. All phases of
// a schedule are created together at generation time; Status is the only
// field that mutates afterward.
type Phase struct {
	ID             PhaseKind     `json:"id"`
	Label          string        `json:"label"`
	Icon           string        `json:"icon,omitempty"`
	EstimatedHours int           `json:"estimated_hours"`
	StartDate      string        `json:"start_date"` // YYYY-MM-DD format
	EndDate        string        `json:"end_date"`   // YYYY-MM-DD format
	Status         PhaseStatus   `json:"status"`
	Priority       PhasePriority `json:"priority"`
	Tasks          []string      `json:"tasks"`
}

// WeekPlan is one calendar week of the plan. Derived, read-only; replaced
// wholesale whenever the schedule regenerates.
type WeekPlan struct {
	WeekNumber  int         `json:"week_number"` // 1-based
	WeekStart   string      `json:"week_start"`  // YYYY-MM-DD format
	Focus       string      `json:"focus"`
	Phases      []PhaseKind `json:"phases"`
	TargetHours int         `json:"target_hours"`
}

type VerdictLevel string

const (
	VerdictComfortable VerdictLevel = "comfortable"
	VerdictAchievable  VerdictLevel = "achievable"
	VerdictTight       VerdictLevel = "tight"
	VerdictRisky       VerdictLevel = "risky"
)

// Verdict is the feasibility tier with its user-facing message and
// presentation color (success/warning/danger).
type Verdict struct {
	Level   VerdictLevel `json:"level"`
	Message string       `json:"message"`
	Color   string       `json:"color"`
}

type Feasibility struct {
	Score       int     `json:"score"` // round(ratio*100), uncapped
	Verdict     Verdict `json:"verdict"`
	BufferHours int     `json:"buffer_hours"` // signed; available - estimated
}

type WarningType string

const (
	WarningShortTimeline    WarningType = "short_timeline"
	WarningInsufficientTime WarningType = "insufficient_time"
)

type Warning struct {
	Type    WarningType `json:"type"`
	Message string      `json:"message"`
}

// Schedule is the generated work plan for one contest. It is owned by its
// contest and replaced wholesale on regeneration.
type Schedule struct {
	GeneratedAt         time.Time   `json:"generated_at"`
	TotalEstimatedHours int         `json:"total_estimated_hours"`
	AvailableHours      int         `json:"available_hours"`
	Feasibility         Feasibility `json:"feasibility"`
	Phases              []Phase     `json:"phases"`
	WeeklyPlan          []WeekPlan  `json:"weekly_plan"`
	Warnings            []Warning   `json:"warnings"`
}
