package utils

import (
	"math"
	"time"

	"github.com/jiwoolee/contestpilot/internal/constants"
)

// DateOnly truncates a time to UTC midnight of its calendar day. All
// day-level arithmetic runs on truncated times, matching what ParseDate
// returns, so time-of-day and timezone never skew day comparisons.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate formats a time as a standard date string (YYYY-MM-DD).
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// AddDays returns the date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysRemaining returns the number of days from today until the deadline,
// rounded up. The result may be zero or negative when the deadline is today
// or already passed; callers must treat that as unschedulable.
func DaysRemaining(deadline, today time.Time) int {
	return int(math.Ceil(deadline.Sub(today).Hours() / 24))
}

// BufferDays returns the safety buffer reserved before the deadline for a
// given schedule pressure. Higher pressure gets a smaller buffer, trading
// safety margin for usable work time.
func BufferDays(schedulePressure int) int {
	if schedulePressure >= constants.HighSchedulePressure {
		return constants.BufferDaysHighPressure
	}
	if schedulePressure >= constants.MediumSchedulePressure {
		return constants.BufferDaysMediumPressure
	}
	return constants.BufferDaysLowPressure
}

// WorkDays returns the usable work days after subtracting the buffer.
// Never less than 1, so phase generation cannot degenerate.
func WorkDays(daysRemaining, bufferDays int) int {
	if d := daysRemaining - bufferDays; d > constants.MinimumWorkDays {
		return d
	}
	return constants.MinimumWorkDays
}

// IsShortTimeline reports whether the work window is too short for the
// full phase breakdown.
func IsShortTimeline(workDays int) bool {
	return workDays < constants.ShortTimelineDays
}

// WeeksRemaining returns the number of calendar weeks needed to cover the
// remaining days, rounded up.
func WeeksRemaining(daysRemaining int) int {
	return int(math.Ceil(float64(daysRemaining) / float64(constants.DaysPerWeek)))
}

// WeekWindow returns the half-open 7-day window [start, end) for week
// index i anchored on the given date. The same anchoring is used for
// weekly-plan generation and calendar display so week boundaries agree.
func WeekWindow(anchor time.Time, i int) (start, end time.Time) {
	start = AddDays(anchor, i*constants.DaysPerWeek)
	end = AddDays(start, constants.DaysPerWeek)
	return start, end
}
