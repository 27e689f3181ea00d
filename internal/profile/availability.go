// Package profile computes the user's real availability for a window from
// their nominal weekly hours and time constraints.
package profile

import (
	"math"
	"time"

	"github.com/jiwoolee/contestpilot/internal/constants"
	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

func ceilDays(from, to time.Time) float64 {
	return math.Ceil(to.Sub(from).Hours() / 24)
}

// CalculateAvailableHours returns the hours the profile makes available in
// [start, end). Base is nominal hours-per-week scaled to the window; each
// overlapping period constraint swaps the nominal rate for its reduced
// hours-available rate over the overlap. Never negative.
func CalculateAvailableHours(p models.Profile, start, end time.Time) int {
	days := ceilDays(start, end)
	if days <= 0 {
		return 0
	}
	weeks := days / float64(constants.DaysPerWeek)
	hours := p.HoursPerWeek * weeks

	for _, c := range p.Constraints {
		if c.Type != models.ConstraintPeriod {
			continue
		}
		cStart, err := utils.ParseDate(c.StartDate)
		if err != nil {
			continue
		}
		cEnd, err := utils.ParseDate(c.EndDate)
		if err != nil {
			continue
		}

		overlapStart := start
		if cStart.After(overlapStart) {
			overlapStart = cStart
		}
		overlapEnd := end
		if cEnd.Before(overlapEnd) {
			overlapEnd = cEnd
		}
		if !overlapStart.Before(overlapEnd) {
			continue
		}

		overlapWeeks := ceilDays(overlapStart, overlapEnd) / float64(constants.DaysPerWeek)
		hours -= overlapWeeks*p.HoursPerWeek - overlapWeeks*c.HoursAvailable
	}

	if hours < 0 {
		return 0
	}
	return int(math.Round(hours))
}
