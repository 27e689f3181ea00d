package scheduler

import (
	"strings"
	"testing"

	"github.com/jiwoolee/contestpilot/internal/models"
)

func TestGenerateWeeklyPlan_WeekCountAndNumbering(t *testing.T) {
	in := baseInput()
	in.WorkDays = 26 // daysRemaining 30, buffer 4
	phases := GeneratePhases(in)

	plan := GenerateWeeklyPlan(phases, 30, 60, in.StartDate)

	if len(plan) != 5 {
		t.Fatalf("expected ceil(30/7)=5 weeks, got %d", len(plan))
	}
	for i, w := range plan {
		if w.WeekNumber != i+1 {
			t.Errorf("week at index %d numbered %d", i, w.WeekNumber)
		}
	}
	if plan[0].WeekStart != "2026-03-02" {
		t.Errorf("first week should start today, got %s", plan[0].WeekStart)
	}
	if plan[1].WeekStart != "2026-03-09" {
		t.Errorf("second week should start 7 days later, got %s", plan[1].WeekStart)
	}
}

func TestGenerateWeeklyPlan_FlatTargetHours(t *testing.T) {
	// Even split across weeks is a deliberate simplification; it does not
	// weight by the phases active in each week.
	in := baseInput()
	phases := GeneratePhases(in)

	plan := GenerateWeeklyPlan(phases, 28, 60, in.StartDate)

	if len(plan) != 4 {
		t.Fatalf("expected 4 weeks, got %d", len(plan))
	}
	for _, w := range plan {
		if w.TargetHours != 15 {
			t.Errorf("week %d target = %d, want flat 15", w.WeekNumber, w.TargetHours)
		}
	}
}

func TestGenerateWeeklyPlan_PhaseMembershipByOverlap(t *testing.T) {
	phases := []models.Phase{
		{ID: models.PhaseResearch, Label: "리서치", StartDate: "2026-03-02", EndDate: "2026-03-06"},
		{ID: models.PhaseProduction, Label: "제작/개발", StartDate: "2026-03-06", EndDate: "2026-03-20"},
	}

	plan := GenerateWeeklyPlan(phases, 20, 40, date("2026-03-02"))

	// Week 1 covers 03-02..03-09: both phases overlap
	if len(plan[0].Phases) != 2 {
		t.Errorf("week 1 should contain both phases, got %v", plan[0].Phases)
	}
	if !strings.Contains(plan[0].Focus, " + ") {
		t.Errorf("week 1 focus should join labels, got %q", plan[0].Focus)
	}

	// Week 2 covers 03-09..03-16: only production overlaps
	if len(plan[1].Phases) != 1 || plan[1].Phases[0] != models.PhaseProduction {
		t.Errorf("week 2 should contain only production, got %v", plan[1].Phases)
	}
	if plan[1].Focus != "제작/개발" {
		t.Errorf("week 2 focus = %q", plan[1].Focus)
	}
}

func TestGenerateWeeklyPlan_PhaseEndingOnWeekStartStillCounts(t *testing.T) {
	// The overlap test is phaseEnd >= weekStart, so a phase ending exactly
	// on a week boundary belongs to that week.
	phases := []models.Phase{
		{ID: models.PhaseResearch, Label: "리서치", StartDate: "2026-03-02", EndDate: "2026-03-09"},
	}

	plan := GenerateWeeklyPlan(phases, 14, 40, date("2026-03-02"))

	if len(plan[1].Phases) != 1 {
		t.Errorf("phase ending on week 2's start date should appear in week 2, got %v", plan[1].Phases)
	}
}
