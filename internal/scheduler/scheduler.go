package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

var (
	// ErrNoDeadline is returned when schedule generation is requested for
	// a contest without a deadline.
	ErrNoDeadline = errors.New("contest has no deadline")

	// ErrPastDeadline is returned when the deadline is today or already
	// passed, leaving no days to schedule.
	ErrPastDeadline = errors.New("deadline has passed")
)

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// Generate builds a complete schedule for the contest from its analysis
// parameters and the caller-computed available hours. The today snapshot
// is threaded through every sub-computation so a single clock read drives
// the whole schedule. No partial schedule is produced on error.
func (s *Scheduler) Generate(contest models.Contest, availableHours int, today time.Time) (models.Schedule, error) {
	if contest.Deadline == "" {
		return models.Schedule{}, ErrNoDeadline
	}
	deadline, err := utils.ParseDate(contest.Deadline)
	if err != nil {
		return models.Schedule{}, fmt.Errorf("invalid deadline %q: %w", contest.Deadline, err)
	}

	todayDate := utils.DateOnly(today)
	daysRemaining := utils.DaysRemaining(deadline, todayDate)
	if daysRemaining <= 0 {
		return models.Schedule{}, ErrPastDeadline
	}

	params := contest.Params()
	bufferDays := utils.BufferDays(params.SchedulePressure)
	workDays := utils.WorkDays(daysRemaining, bufferDays)

	phases := GeneratePhases(PhaseInput{
		WorkDays:            workDays,
		TotalEstimatedHours: params.TotalEstimatedHours,
		Difficulty:          params.Difficulty,
		SchedulePressure:    params.SchedulePressure,
		Category:            params.Category,
		StartDate:           todayDate,
	})

	weeklyPlan := GenerateWeeklyPlan(phases, daysRemaining, params.TotalEstimatedHours, todayDate)
	feasibility, warnings := EvaluateFeasibility(availableHours, params.TotalEstimatedHours, daysRemaining)

	return models.Schedule{
		GeneratedAt:         today,
		TotalEstimatedHours: params.TotalEstimatedHours,
		AvailableHours:      availableHours,
		Feasibility:         feasibility,
		Phases:              phases,
		WeeklyPlan:          weeklyPlan,
		Warnings:            warnings,
	}, nil
}
