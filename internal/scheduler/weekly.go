package scheduler

import (
	"math"
	"strings"
	"time"

	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

// GenerateWeeklyPlan groups phases into calendar weeks anchored on today.
// A phase belongs to a week when its [start, end) range overlaps the week
// window. Target hours are an even split of the total across all weeks,
// not weighted by which phases fall in each week.
func GenerateWeeklyPlan(phases []models.Phase, daysRemaining, totalEstimatedHours int, today time.Time) []models.WeekPlan {
	anchor := utils.DateOnly(today)
	weeksRemaining := utils.WeeksRemaining(daysRemaining)
	if weeksRemaining < 1 {
		return []models.WeekPlan{}
	}

	targetHours := int(math.Round(float64(totalEstimatedHours) / float64(weeksRemaining)))
	plan := make([]models.WeekPlan, 0, weeksRemaining)

	for i := 0; i < weeksRemaining; i++ {
		weekStart, weekEnd := utils.WeekWindow(anchor, i)

		var labels []string
		var kinds []models.PhaseKind
		for _, p := range phases {
			phaseStart, err := utils.ParseDate(p.StartDate)
			if err != nil {
				continue
			}
			phaseEnd, err := utils.ParseDate(p.EndDate)
			if err != nil {
				continue
			}
			if phaseStart.Before(weekEnd) && !phaseEnd.Before(weekStart) {
				labels = append(labels, p.Label)
				kinds = append(kinds, p.ID)
			}
		}

		plan = append(plan, models.WeekPlan{
			WeekNumber:  i + 1,
			WeekStart:   utils.FormatDate(weekStart),
			Focus:       strings.Join(labels, " + "),
			Phases:      kinds,
			TargetHours: targetHours,
		})
	}

	return plan
}
