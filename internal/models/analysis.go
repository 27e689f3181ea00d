package models

import "github.com/jiwoolee/contestpilot/internal/constants"

// Score holds a single 0-100 score from the external analysis provider.
type Score struct {
	Score int `json:"score"`
}

// AnalysisScores is the subset of the provider's score map the core reads.
type AnalysisScores struct {
	Difficulty       *Score `json:"difficulty,omitempty"`
	SchedulePressure *Score `json:"schedule_pressure,omitempty"`
}

// Analysis is the externally supplied contest analysis payload. Only the
// fields below are consumed; anything else the provider returns is dropped
// at the boundary. All fields are optional and fall back to defaults.
type Analysis struct {
	EstimatedHours int            `json:"estimated_hours,omitempty"`
	Scores         AnalysisScores `json:"scores"`
	Category       string         `json:"category,omitempty"`
}

// ScheduleParams are the resolved numeric inputs for schedule generation.
type ScheduleParams struct {
	TotalEstimatedHours int
	Difficulty          int
	SchedulePressure    int
	Category            string
}

// Params resolves the contest's analysis payload into schedule parameters,
// applying defaults for missing fields. A nil analysis yields all defaults.
func (c Contest) Params() ScheduleParams {
	p := ScheduleParams{
		TotalEstimatedHours: constants.DefaultEstimatedHours,
		Difficulty:          constants.DefaultDifficulty,
		SchedulePressure:    constants.DefaultSchedulePressure,
		Category:            c.Category,
	}
	if p.Category == "" {
		p.Category = constants.CategoryGeneral
	}

	a := c.Analysis
	if a == nil {
		return p
	}
	if a.EstimatedHours > 0 {
		p.TotalEstimatedHours = a.EstimatedHours
	}
	if a.Scores.Difficulty != nil {
		p.Difficulty = a.Scores.Difficulty.Score
	}
	if a.Scores.SchedulePressure != nil {
		p.SchedulePressure = a.Scores.SchedulePressure.Score
	}
	if a.Category != "" {
		p.Category = a.Category
	}
	return p
}
