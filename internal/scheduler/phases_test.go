package scheduler

import (
	"testing"
	"time"

	"github.com/jiwoolee/contestpilot/internal/constants"
	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

func date(s string) time.Time {
	t, err := utils.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func baseInput() PhaseInput {
	return PhaseInput{
		WorkDays:            30,
		TotalEstimatedHours: 60,
		Difficulty:          50,
		SchedulePressure:    50,
		Category:            constants.CategoryGeneral,
		StartDate:           date("2026-03-02"),
	}
}

func TestGeneratePhases_FivePhaseTemplate(t *testing.T) {
	phases := GeneratePhases(baseInput())

	if len(phases) != 5 {
		t.Fatalf("expected 5 phases for a 30-day window, got %d", len(phases))
	}

	wantOrder := []models.PhaseKind{
		models.PhaseResearch,
		models.PhaseIdeation,
		models.PhaseProduction,
		models.PhasePolish,
		models.PhaseSubmission,
	}
	for i, kind := range wantOrder {
		if phases[i].ID != kind {
			t.Errorf("phase %d: expected %s, got %s", i, kind, phases[i].ID)
		}
	}
}

func TestGeneratePhases_ShortTimelineUsesMergedTemplate(t *testing.T) {
	// daysRemaining=10, pressure=50 -> buffer 3 -> 7 work days -> short timeline
	daysRemaining := 10
	buffer := utils.BufferDays(50)
	if buffer != 3 {
		t.Fatalf("expected buffer of 3 days at pressure 50, got %d", buffer)
	}
	workDays := utils.WorkDays(daysRemaining, buffer)
	if workDays != 7 {
		t.Fatalf("expected 7 work days, got %d", workDays)
	}
	if !utils.IsShortTimeline(workDays) {
		t.Fatal("expected 7 work days to be a short timeline")
	}

	in := baseInput()
	in.WorkDays = workDays
	in.TotalEstimatedHours = 40
	phases := GeneratePhases(in)

	if len(phases) != 3 {
		t.Fatalf("expected merged 3-phase template, got %d phases", len(phases))
	}
	if phases[0].ID != models.PhaseResearch || phases[1].ID != models.PhaseProduction || phases[2].ID != models.PhaseSubmission {
		t.Errorf("unexpected phase order: %v %v %v", phases[0].ID, phases[1].ID, phases[2].ID)
	}
}

func TestGeneratePhases_DaysCoverWorkWindowExactly(t *testing.T) {
	for _, workDays := range []int{5, 7, 14, 21, 30, 60} {
		in := baseInput()
		in.WorkDays = workDays
		phases := GeneratePhases(in)

		last := phases[len(phases)-1]
		wantEnd := utils.FormatDate(utils.AddDays(in.StartDate, workDays))
		if last.EndDate != wantEnd {
			t.Errorf("workDays=%d: last phase ends %s, want %s", workDays, last.EndDate, wantEnd)
		}
	}
}

func TestGeneratePhases_ContiguousDateRanges(t *testing.T) {
	phases := GeneratePhases(baseInput())

	if phases[0].StartDate != "2026-03-02" {
		t.Errorf("first phase should start today, got %s", phases[0].StartDate)
	}
	for i := 1; i < len(phases); i++ {
		if phases[i].StartDate != phases[i-1].EndDate {
			t.Errorf("phase %d starts %s but previous ends %s", i, phases[i].StartDate, phases[i-1].EndDate)
		}
	}
}

func TestGeneratePhases_HourSumWithinRoundingBound(t *testing.T) {
	tests := []struct {
		workDays int
		hours    int
	}{
		{7, 40},
		{30, 60},
		{30, 17},
		{45, 120},
		{14, 1},
	}

	for _, tt := range tests {
		in := baseInput()
		in.WorkDays = tt.workDays
		in.TotalEstimatedHours = tt.hours
		phases := GeneratePhases(in)

		sum := 0
		for _, p := range phases {
			sum += p.EstimatedHours
		}
		drift := sum - tt.hours
		if drift < 0 {
			drift = -drift
		}
		if drift > len(phases) {
			t.Errorf("workDays=%d hours=%d: phase hours sum to %d, drift %d exceeds bound %d",
				tt.workDays, tt.hours, sum, drift, len(phases))
		}
	}
}

func TestGeneratePhases_FirstPhaseInProgress(t *testing.T) {
	phases := GeneratePhases(baseInput())

	if phases[0].Status != models.PhaseInProgress {
		t.Errorf("first phase should start in_progress, got %s", phases[0].Status)
	}
	for _, p := range phases[1:] {
		if p.Status != models.PhasePending {
			t.Errorf("phase %s should start pending, got %s", p.ID, p.Status)
		}
	}
}

func TestGeneratePhases_DesignCategoryBoostsResearchAndPolish(t *testing.T) {
	base := GeneratePhases(baseInput())

	in := baseInput()
	in.Category = constants.CategoryDesign
	design := GeneratePhases(in)

	// Research gets x1.1 and polish x1.3 before normalization, so both
	// should take at least as many hours as in the general plan while
	// production shrinks.
	if design[3].EstimatedHours < base[3].EstimatedHours {
		t.Errorf("polish hours should not shrink for design: %d < %d", design[3].EstimatedHours, base[3].EstimatedHours)
	}
	if design[2].EstimatedHours >= base[2].EstimatedHours {
		t.Errorf("production share should shrink for design: %d >= %d", design[2].EstimatedHours, base[2].EstimatedHours)
	}
}

func TestGeneratePhases_HighDifficultyBoostsResearch(t *testing.T) {
	base := GeneratePhases(baseInput())

	in := baseInput()
	in.Difficulty = 70
	hard := GeneratePhases(in)

	if hard[0].EstimatedHours <= base[0].EstimatedHours {
		t.Errorf("research hours should grow with difficulty: %d <= %d", hard[0].EstimatedHours, base[0].EstimatedHours)
	}
}

func TestGeneratePhases_PrioritiesFollowTemplate(t *testing.T) {
	phases := GeneratePhases(baseInput())

	for _, p := range phases {
		want := models.PriorityMust
		if p.ID == models.PhasePolish {
			want = models.PriorityNice
		}
		if p.Priority != want {
			t.Errorf("phase %s priority = %s, want %s", p.ID, p.Priority, want)
		}
	}
}

func TestGeneratePhases_MinimumOneDayPerPhase(t *testing.T) {
	in := baseInput()
	in.WorkDays = 1
	phases := GeneratePhases(in)

	for _, p := range phases {
		start := date(p.StartDate)
		end := date(p.EndDate)
		if end.Before(start) {
			t.Errorf("phase %s has inverted range %s..%s", p.ID, p.StartDate, p.EndDate)
		}
	}
}

func TestGeneratePhases_TinyWindowCollapsesAtBoundary(t *testing.T) {
	// Windows smaller than the phase count cannot give every phase a real
	// day. Trailing phases collapse to zero-length at the window edge and
	// never run past it.
	for _, workDays := range []int{1, 2} {
		in := baseInput()
		in.WorkDays = workDays
		phases := GeneratePhases(in)

		boundary := utils.AddDays(utils.DateOnly(in.StartDate), workDays)
		for i, p := range phases {
			start := date(p.StartDate)
			end := date(p.EndDate)
			if end.Before(start) {
				t.Errorf("workDays=%d: phase %s has inverted range %s..%s", workDays, p.ID, p.StartDate, p.EndDate)
			}
			if end.After(boundary) {
				t.Errorf("workDays=%d: phase %s ends %s past the window boundary", workDays, p.ID, p.EndDate)
			}
			if i > 0 && start.Before(date(phases[i-1].StartDate)) {
				t.Errorf("workDays=%d: phase %s starts before its predecessor", workDays, p.ID)
			}
		}
		last := phases[len(phases)-1]
		if !date(last.EndDate).Equal(boundary) {
			t.Errorf("workDays=%d: last phase ends %s, want the boundary", workDays, last.EndDate)
		}
	}
}
