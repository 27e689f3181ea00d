package scheduler

import (
	"testing"

	"github.com/jiwoolee/contestpilot/internal/models"
)

func hasWarning(warnings []models.Warning, kind models.WarningType) bool {
	for _, w := range warnings {
		if w.Type == kind {
			return true
		}
	}
	return false
}

func TestEvaluateFeasibility_Comfortable(t *testing.T) {
	f, warnings := EvaluateFeasibility(52, 40, 30)

	if f.Verdict.Level != models.VerdictComfortable {
		t.Errorf("expected comfortable verdict, got %s", f.Verdict.Level)
	}
	if f.Score != 130 {
		t.Errorf("expected score 130, got %d", f.Score)
	}
	if f.BufferHours != 12 {
		t.Errorf("expected buffer of 12 hours, got %d", f.BufferHours)
	}
	if f.Verdict.Color != "success" {
		t.Errorf("expected success color, got %s", f.Verdict.Color)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestEvaluateFeasibility_Tiers(t *testing.T) {
	tests := []struct {
		name      string
		available int
		total     int
		want      models.VerdictLevel
	}{
		{"exactly comfortable", 52, 40, models.VerdictComfortable},
		{"exactly achievable", 40, 40, models.VerdictAchievable},
		{"just under achievable", 39, 40, models.VerdictTight},
		{"exactly tight", 28, 40, models.VerdictTight},
		{"risky", 25, 40, models.VerdictRisky},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := EvaluateFeasibility(tt.available, tt.total, 30)
			if f.Verdict.Level != tt.want {
				t.Errorf("ratio %d/%d: verdict = %s, want %s", tt.available, tt.total, f.Verdict.Level, tt.want)
			}
		})
	}
}

func TestEvaluateFeasibility_RiskyEmitsInsufficientTime(t *testing.T) {
	f, warnings := EvaluateFeasibility(25, 40, 30)

	if f.Verdict.Level != models.VerdictRisky {
		t.Fatalf("expected risky verdict, got %s", f.Verdict.Level)
	}
	if f.Score != 63 {
		t.Errorf("expected score 63 (0.625 rounded), got %d", f.Score)
	}
	if !hasWarning(warnings, models.WarningInsufficientTime) {
		t.Error("expected insufficient_time warning")
	}
}

func TestEvaluateFeasibility_ShortTimelineWarning(t *testing.T) {
	// Both warnings fire independently
	_, warnings := EvaluateFeasibility(20, 40, 10)
	if !hasWarning(warnings, models.WarningShortTimeline) {
		t.Error("expected short_timeline warning for 10 days and 40 hours")
	}
	if !hasWarning(warnings, models.WarningInsufficientTime) {
		t.Error("expected insufficient_time warning for ratio 0.5")
	}

	// Light workloads get no short-timeline warning even under 14 days
	_, warnings = EvaluateFeasibility(40, 30, 10)
	if hasWarning(warnings, models.WarningShortTimeline) {
		t.Error("short_timeline warning should require more than 30 estimated hours")
	}
}

func TestEvaluateFeasibility_ZeroEstimateIsNotACrash(t *testing.T) {
	f, warnings := EvaluateFeasibility(20, 0, 30)

	if f.Verdict.Level != models.VerdictComfortable {
		t.Errorf("zero estimate should read as trivially comfortable, got %s", f.Verdict.Level)
	}
	if f.Score != 0 {
		t.Errorf("expected score 0 for zero estimate, got %d", f.Score)
	}
	if f.BufferHours != 20 {
		t.Errorf("expected all available hours as buffer, got %d", f.BufferHours)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestEvaluateFeasibility_ScoreUncapped(t *testing.T) {
	f, _ := EvaluateFeasibility(100, 40, 30)
	if f.Score != 250 {
		t.Errorf("score should not cap at 100, got %d", f.Score)
	}
}
