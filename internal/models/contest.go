package models

import "time"

type ContestStatus string

const (
	ContestInterested ContestStatus = "interested"
	ContestApplying   ContestStatus = "applying"
	ContestCompleted  ContestStatus = "completed"
)

// Contest is a tracked competition opportunity. The deadline is immutable
// once set; Schedule and Progress have independent lifecycles.
type Contest struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Category string        `json:"category,omitempty"`
	Deadline string        `json:"deadline,omitempty"` // YYYY-MM-DD format
	Status   ContestStatus `json:"status"`
	AddedAt  time.Time     `json:"added_at"`
	Analysis *Analysis     `json:"analysis,omitempty"`
	Schedule *Schedule     `json:"schedule,omitempty"`
	Progress *Progress     `json:"progress,omitempty"`
}
