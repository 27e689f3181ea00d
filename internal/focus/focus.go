// Package focus ranks tracked contests into a prioritized daily focus list
// from their schedules and logged progress.
package focus

import (
	"math"
	"sort"
	"time"

	"github.com/jiwoolee/contestpilot/internal/constants"
	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

// UrgencyFor classifies how time-pressured a contest is from its days left.
func UrgencyFor(daysLeft int) models.Urgency {
	if daysLeft <= constants.UrgentDays {
		return models.UrgencyHigh
	}
	if daysLeft <= constants.MediumUrgencyDays {
		return models.UrgencyMedium
	}
	return models.UrgencyLow
}

var urgencyRank = map[models.Urgency]int{
	models.UrgencyHigh:   0,
	models.UrgencyMedium: 1,
	models.UrgencyLow:    2,
}

// currentPhase finds the phase whose date range contains today and whose
// status is not completed. The range test is date-inclusive on both ends.
func currentPhase(phases []models.Phase, today time.Time) (models.Phase, int, bool) {
	for i, p := range phases {
		start, err := utils.ParseDate(p.StartDate)
		if err != nil {
			continue
		}
		end, err := utils.ParseDate(p.EndDate)
		if err != nil {
			continue
		}
		if !today.Before(start) && !today.After(end) && p.Status != models.PhaseCompleted {
			return p, i, true
		}
	}
	return models.Phase{}, 0, false
}

// Compute builds the ranked focus list for all tracked contests. Contests
// without a schedule, completed contests, and passed deadlines contribute
// nothing; so do contests whose current phase is already completed or that
// sit in a gap between phases.
func Compute(contests []models.Contest, today time.Time) []models.FocusItem {
	todayDate := utils.DateOnly(today)
	items := []models.FocusItem{}

	for _, c := range contests {
		if c.Schedule == nil || c.Status == models.ContestCompleted || c.Deadline == "" {
			continue
		}
		deadline, err := utils.ParseDate(c.Deadline)
		if err != nil || deadline.Before(todayDate) {
			continue
		}

		phase, phaseIdx, ok := currentPhase(c.Schedule.Phases, todayDate)
		if !ok {
			continue
		}

		// Expected progress weights phases equally by position, using the
		// midpoint of the current phase as the checkpoint.
		var actualHours float64
		if c.Progress != nil {
			actualHours = c.Progress.ActualHoursSpent
		}
		expectedHours := float64(c.Schedule.TotalEstimatedHours) *
			(float64(phaseIdx) + 0.5) / float64(len(c.Schedule.Phases))
		isBehind := actualHours < expectedHours*constants.ProgressBehindThreshold

		daysLeft := utils.DaysRemaining(deadline, todayDate)

		// Flat split of the remaining total over the remaining days; not
		// phase-scoped and not reduced by hours already spent.
		totalDays := daysLeft
		if totalDays < 1 {
			totalDays = 1
		}
		suggested := int(math.Ceil(float64(c.Schedule.TotalEstimatedHours) / float64(totalDays)))

		items = append(items, models.FocusItem{
			ContestID:           c.ID,
			ContestTitle:        c.Title,
			Phase:               phase,
			DaysLeft:            daysLeft,
			IsBehind:            isBehind,
			Urgency:             UrgencyFor(daysLeft),
			SuggestedHoursToday: suggested,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsBehind != items[j].IsBehind {
			return items[i].IsBehind
		}
		if items[i].Urgency != items[j].Urgency {
			return urgencyRank[items[i].Urgency] < urgencyRank[items[j].Urgency]
		}
		return items[i].DaysLeft < items[j].DaysLeft
	})

	return items
}
