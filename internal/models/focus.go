package models

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// FocusItem is a transient "what to work on today" entry for one contest.
// Computed on demand, never persisted.
type FocusItem struct {
	ContestID           string  `json:"contest_id"`
	ContestTitle        string  `json:"contest_title"`
	Phase               Phase   `json:"phase"`
	DaysLeft            int     `json:"days_left"`
	IsBehind            bool    `json:"is_behind"`
	Urgency             Urgency `json:"urgency"`
	SuggestedHoursToday int     `json:"suggested_hours_today"`
}
