package models

import (
	"encoding/json"
	"testing"

	"github.com/jiwoolee/contestpilot/internal/constants"
)

func TestNextPhaseStatus(t *testing.T) {
	tests := []struct {
		in   PhaseStatus
		want PhaseStatus
	}{
		{PhasePending, PhaseInProgress},
		{PhaseInProgress, PhaseCompleted},
		{PhaseCompleted, PhasePending},
		{PhaseStatus("garbage"), PhasePending},
	}
	for _, tt := range tests {
		if got := NextPhaseStatus(tt.in); got != tt.want {
			t.Errorf("NextPhaseStatus(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParams_NilAnalysisUsesDefaults(t *testing.T) {
	c := Contest{Title: "공모전"}
	p := c.Params()

	if p.TotalEstimatedHours != constants.DefaultEstimatedHours {
		t.Errorf("hours = %d, want default %d", p.TotalEstimatedHours, constants.DefaultEstimatedHours)
	}
	if p.Difficulty != constants.DefaultDifficulty || p.SchedulePressure != constants.DefaultSchedulePressure {
		t.Errorf("scores = %d/%d, want defaults", p.Difficulty, p.SchedulePressure)
	}
	if p.Category != constants.CategoryGeneral {
		t.Errorf("category = %q, want %q", p.Category, constants.CategoryGeneral)
	}
}

func TestParams_ContestCategoryWithoutAnalysis(t *testing.T) {
	c := Contest{Category: constants.CategoryDesign}
	if p := c.Params(); p.Category != constants.CategoryDesign {
		t.Errorf("category = %q, want %q", p.Category, constants.CategoryDesign)
	}
}

func TestParams_AnalysisOverrides(t *testing.T) {
	c := Contest{
		Category: constants.CategoryGeneral,
		Analysis: &Analysis{
			EstimatedHours: 80,
			Scores: AnalysisScores{
				Difficulty:       &Score{Score: 75},
				SchedulePressure: &Score{Score: 60},
			},
			Category: constants.CategoryAIML,
		},
	}
	p := c.Params()

	if p.TotalEstimatedHours != 80 || p.Difficulty != 75 || p.SchedulePressure != 60 {
		t.Errorf("resolved params = %+v", p)
	}
	if p.Category != constants.CategoryAIML {
		t.Errorf("analysis category should win, got %q", p.Category)
	}
}

func TestParams_PartialAnalysisKeepsDefaults(t *testing.T) {
	c := Contest{
		Analysis: &Analysis{
			Scores: AnalysisScores{Difficulty: &Score{Score: 90}},
		},
	}
	p := c.Params()

	if p.Difficulty != 90 {
		t.Errorf("difficulty = %d, want 90", p.Difficulty)
	}
	if p.TotalEstimatedHours != constants.DefaultEstimatedHours {
		t.Errorf("missing hours should fall back, got %d", p.TotalEstimatedHours)
	}
	if p.SchedulePressure != constants.DefaultSchedulePressure {
		t.Errorf("missing pressure should fall back, got %d", p.SchedulePressure)
	}
}

func TestAnalysisJSONShape(t *testing.T) {
	payload := `{
		"estimated_hours": 50,
		"scores": {
			"difficulty": {"score": 70},
			"schedule_pressure": {"score": 55},
			"creativity": {"score": 99}
		},
		"category": "개발",
		"summary": "ignored free text"
	}`

	var a Analysis
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if a.EstimatedHours != 50 || a.Category != "개발" {
		t.Errorf("parsed analysis = %+v", a)
	}
	if a.Scores.Difficulty == nil || a.Scores.Difficulty.Score != 70 {
		t.Error("difficulty score not parsed")
	}
	if a.Scores.SchedulePressure == nil || a.Scores.SchedulePressure.Score != 55 {
		t.Error("schedule pressure score not parsed")
	}
}
