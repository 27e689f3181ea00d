package models

import "time"

// DailyLog records hours worked on a single day. Dates are unique within
// a contest's progress; logging the same day again replaces the entry.
type DailyLog struct {
	Date        string  `json:"date"` // YYYY-MM-DD format
	HoursWorked float64 `json:"hours_worked"`
	Notes       string  `json:"notes,omitempty"`
}

// Progress tracks actual work against a contest. Its lifecycle is
// independent of the schedule: removing a schedule keeps logged hours.
type Progress struct {
	LastActivityAt   time.Time  `json:"last_activity_at"`
	DailyLogs        []DailyLog `json:"daily_logs"`
	ActualHoursSpent float64    `json:"actual_hours_spent"`
}
