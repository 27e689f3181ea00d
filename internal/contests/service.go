// Package contests owns the contest collection: lifecycle, schedule
// generation, phase-status transitions, daily progress logs, and the
// daily focus view. All mutations flow through the injected store.
package contests

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jiwoolee/contestpilot/internal/focus"
	"github.com/jiwoolee/contestpilot/internal/logger"
	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/scheduler"
	"github.com/jiwoolee/contestpilot/internal/storage"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

type Service struct {
	store storage.Provider
	sched *scheduler.Scheduler

	// Now supplies the wall clock. Each operation reads it exactly once
	// and threads that snapshot through all sub-computations. Tests
	// override it for deterministic dates.
	Now func() time.Time
}

func NewService(store storage.Provider) *Service {
	return &Service{
		store: store,
		sched: scheduler.New(),
		Now:   time.Now,
	}
}

// AddContest registers a new contest. The analysis payload is optional;
// schedule generation falls back to defaults without it.
func (s *Service) AddContest(title, category, deadline string, analysis *models.Analysis) (models.Contest, error) {
	if deadline != "" {
		if _, err := utils.ParseDate(deadline); err != nil {
			return models.Contest{}, fmt.Errorf("invalid deadline %q: %w", deadline, err)
		}
	}

	contest := models.Contest{
		ID:       uuid.NewString(),
		Title:    title,
		Category: category,
		Deadline: deadline,
		Status:   models.ContestInterested,
		AddedAt:  s.Now(),
		Analysis: analysis,
	}
	if err := s.store.AddContest(contest); err != nil {
		return models.Contest{}, err
	}
	logger.Info("Contest added", "id", contest.ID, "title", title)
	return contest, nil
}

func (s *Service) GetContest(id string) (models.Contest, error) {
	return s.store.GetContest(id)
}

func (s *Service) ListContests() ([]models.Contest, error) {
	return s.store.GetAllContests()
}

func (s *Service) RemoveContest(id string) error {
	return s.store.DeleteContest(id)
}

// SetStatus updates the contest lifecycle status.
func (s *Service) SetStatus(id string, status models.ContestStatus) error {
	contest, err := s.store.GetContest(id)
	if err != nil {
		return err
	}
	contest.Status = status
	return s.store.UpdateContest(contest)
}

// GenerateSchedule builds a fresh schedule for the contest and replaces any
// existing one wholesale. In-progress phase statuses and task edits on the
// old schedule are lost; progress logs are untouched.
func (s *Service) GenerateSchedule(contestID string, availableHours int) (models.Schedule, error) {
	contest, err := s.store.GetContest(contestID)
	if err != nil {
		return models.Schedule{}, err
	}

	schedule, err := s.sched.Generate(contest, availableHours, s.Now())
	if err != nil {
		return models.Schedule{}, err
	}

	contest.Schedule = &schedule
	if err := s.store.UpdateContest(contest); err != nil {
		return models.Schedule{}, err
	}
	logger.Info("Schedule generated",
		"contest", contestID,
		"verdict", schedule.Feasibility.Verdict.Level,
		"phases", len(schedule.Phases))
	return schedule, nil
}

// RemoveSchedule clears the contest's schedule. Progress logs survive.
func (s *Service) RemoveSchedule(contestID string) error {
	contest, err := s.store.GetContest(contestID)
	if err != nil {
		return err
	}
	contest.Schedule = nil
	return s.store.UpdateContest(contest)
}

// UpdatePhaseStatus sets one phase's status in place. No other phase and
// no feasibility field is touched.
func (s *Service) UpdatePhaseStatus(contestID string, phaseID models.PhaseKind, status models.PhaseStatus) error {
	contest, err := s.store.GetContest(contestID)
	if err != nil {
		return err
	}
	if contest.Schedule == nil {
		return fmt.Errorf("contest %s has no schedule", contestID)
	}

	for i := range contest.Schedule.Phases {
		if contest.Schedule.Phases[i].ID == phaseID {
			contest.Schedule.Phases[i].Status = status
			return s.store.UpdateContest(contest)
		}
	}
	return fmt.Errorf("phase not found: %s", phaseID)
}

// AdvancePhaseStatus cycles one phase's status a single step
// (pending -> in_progress -> completed -> pending) and returns the new value.
func (s *Service) AdvancePhaseStatus(contestID string, phaseID models.PhaseKind) (models.PhaseStatus, error) {
	contest, err := s.store.GetContest(contestID)
	if err != nil {
		return "", err
	}
	if contest.Schedule == nil {
		return "", fmt.Errorf("contest %s has no schedule", contestID)
	}

	for i := range contest.Schedule.Phases {
		if contest.Schedule.Phases[i].ID == phaseID {
			next := models.NextPhaseStatus(contest.Schedule.Phases[i].Status)
			contest.Schedule.Phases[i].Status = next
			if err := s.store.UpdateContest(contest); err != nil {
				return "", err
			}
			return next, nil
		}
	}
	return "", fmt.Errorf("phase not found: %s", phaseID)
}

// LogDailyProgress upserts today's log entry. Logging the same day again
// replaces the earlier entry and recomputes the running total from the
// difference, so hours never double-count.
func (s *Service) LogDailyProgress(contestID string, hoursWorked float64, notes string) error {
	contest, err := s.store.GetContest(contestID)
	if err != nil {
		return err
	}

	now := s.Now()
	today := utils.FormatDate(now)

	progress := contest.Progress
	if progress == nil {
		progress = &models.Progress{DailyLogs: []models.DailyLog{}}
	}

	replaced := false
	for i := range progress.DailyLogs {
		if progress.DailyLogs[i].Date == today {
			progress.ActualHoursSpent += hoursWorked - progress.DailyLogs[i].HoursWorked
			progress.DailyLogs[i].HoursWorked = hoursWorked
			progress.DailyLogs[i].Notes = notes
			replaced = true
			break
		}
	}
	if !replaced {
		progress.DailyLogs = append(progress.DailyLogs, models.DailyLog{
			Date:        today,
			HoursWorked: hoursWorked,
			Notes:       notes,
		})
		progress.ActualHoursSpent += hoursWorked
	}
	progress.LastActivityAt = now

	contest.Progress = progress
	return s.store.UpdateContest(contest)
}

// TodaysFocus returns the ranked focus list across all tracked contests.
func (s *Service) TodaysFocus() ([]models.FocusItem, error) {
	contests, err := s.store.GetAllContests()
	if err != nil {
		return nil, err
	}
	return focus.Compute(contests, s.Now()), nil
}

// UpcomingContests returns active contests with a deadline, soonest first.
func (s *Service) UpcomingContests() ([]models.Contest, error) {
	contests, err := s.store.GetAllContests()
	if err != nil {
		return nil, err
	}
	upcoming := make([]models.Contest, 0, len(contests))
	for _, c := range contests {
		if c.Status == models.ContestCompleted || c.Deadline == "" {
			continue
		}
		upcoming = append(upcoming, c)
	}
	sortByDeadline(upcoming)
	return upcoming, nil
}

// UrgentContests returns upcoming contests whose deadline falls within the
// next days days.
func (s *Service) UrgentContests(days int) ([]models.Contest, error) {
	upcoming, err := s.UpcomingContests()
	if err != nil {
		return nil, err
	}
	today := utils.DateOnly(s.Now())

	urgent := make([]models.Contest, 0, len(upcoming))
	for _, c := range upcoming {
		deadline, err := utils.ParseDate(c.Deadline)
		if err != nil {
			continue
		}
		left := utils.DaysRemaining(deadline, today)
		if left >= 0 && left <= days {
			urgent = append(urgent, c)
		}
	}
	return urgent, nil
}

func sortByDeadline(contests []models.Contest) {
	sort.Slice(contests, func(i, j int) bool {
		return contests[i].Deadline < contests[j].Deadline
	})
}
