package scheduler

import (
	"math"
	"time"

	"github.com/jiwoolee/contestpilot/internal/constants"
	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

type phaseTemplate struct {
	id       models.PhaseKind
	label    string
	ratio    float64
	priority models.PhasePriority
}

// defaultPhases is the 5-phase breakdown for normal timelines.
var defaultPhases = []phaseTemplate{
	{id: models.PhaseResearch, label: "리서치", ratio: 0.15, priority: models.PriorityMust},
	{id: models.PhaseIdeation, label: "아이디어 구상", ratio: 0.15, priority: models.PriorityMust},
	{id: models.PhaseProduction, label: "제작/개발", ratio: 0.45, priority: models.PriorityMust},
	{id: models.PhasePolish, label: "다듬기", ratio: 0.15, priority: models.PriorityNice},
	{id: models.PhaseSubmission, label: "제출 준비", ratio: 0.10, priority: models.PriorityMust},
}

// shortTimelinePhases merges research+ideation and production+polish for
// work windows under two weeks.
var shortTimelinePhases = []phaseTemplate{
	{id: models.PhaseResearch, label: "리서치·아이디어", ratio: 0.35, priority: models.PriorityMust},
	{id: models.PhaseProduction, label: "제작·다듬기", ratio: 0.50, priority: models.PriorityMust},
	{id: models.PhaseSubmission, label: "제출 준비", ratio: 0.15, priority: models.PriorityMust},
}

// PhaseInput carries the resolved parameters for phase generation.
type PhaseInput struct {
	WorkDays            int
	TotalEstimatedHours int
	Difficulty          int
	SchedulePressure    int
	Category            string
	StartDate           time.Time
}

// adjustedRatio applies the category/difficulty/pressure heuristics to a
// template ratio. Multipliers compose when several conditions hold.
func adjustedRatio(kind models.PhaseKind, base float64, difficulty int, category string, schedulePressure int) float64 {
	ratio := base

	if kind == models.PhaseResearch || kind == models.PhaseIdeation {
		if difficulty >= constants.HighDifficulty {
			ratio *= 1.2
		}
		if category == constants.CategoryDesign {
			ratio *= 1.1
		}
	}

	if kind == models.PhaseProduction {
		if category == constants.CategoryDev || category == constants.CategoryAIML {
			ratio *= 1.1
		}
		if schedulePressure >= constants.HighSchedulePressure {
			ratio *= 0.95
		}
	}

	if kind == models.PhasePolish && category == constants.CategoryDesign {
		ratio *= 1.3
	}

	if kind == models.PhaseSubmission && schedulePressure >= constants.SubmissionPressureThreshold {
		ratio *= 1.2
	}

	return ratio
}

// GeneratePhases builds the ordered phase sequence covering the work window.
// Phase days come from normalized ratios; the last phase absorbs rounding
// drift so the total exactly equals WorkDays. Phase hours are rounded
// independently of days, so their sum may drift from the total by a few
// units. That approximation is accepted, not reconciled.
func GeneratePhases(in PhaseInput) []models.Phase {
	template := defaultPhases
	if utils.IsShortTimeline(in.WorkDays) {
		template = shortTimelinePhases
	}

	adjusted := make([]float64, len(template))
	var total float64
	for i, p := range template {
		adjusted[i] = adjustedRatio(p.id, p.ratio, in.Difficulty, in.Category, in.SchedulePressure)
		total += adjusted[i]
	}

	start := utils.DateOnly(in.StartDate)
	cursor := 0
	phases := make([]models.Phase, 0, len(template))

	for i, p := range template {
		ratio := adjusted[i] / total

		var phaseDays int
		if i == len(template)-1 {
			phaseDays = in.WorkDays - cursor
		} else {
			phaseDays = int(math.Round(float64(in.WorkDays) * ratio))
		}
		if phaseDays < constants.MinimumWorkDays {
			phaseDays = constants.MinimumWorkDays
		}

		// Both offsets clamp at the window boundary. When the window is
		// smaller than the phase count the trailing phases collapse to
		// zero-length at the edge instead of running past the deadline.
		startOffset := cursor
		if startOffset > in.WorkDays {
			startOffset = in.WorkDays
		}
		phaseStart := utils.AddDays(start, startOffset)
		cursor += phaseDays
		endOffset := cursor
		if endOffset > in.WorkDays {
			endOffset = in.WorkDays
		}
		phaseEnd := utils.AddDays(start, endOffset)

		status := models.PhasePending
		if i == 0 {
			status = models.PhaseInProgress
		}

		phases = append(phases, models.Phase{
			ID:             p.id,
			Label:          p.label,
			EstimatedHours: int(math.Round(float64(in.TotalEstimatedHours) * ratio)),
			StartDate:      utils.FormatDate(phaseStart),
			EndDate:        utils.FormatDate(phaseEnd),
			Status:         status,
			Priority:       p.priority,
			Tasks:          []string{},
		})
	}

	return phases
}
