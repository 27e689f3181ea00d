package validation

import (
	"fmt"

	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

// ConflictType represents the type of schedule conflict
type ConflictType string

const (
	ConflictEmptySchedule   ConflictType = "empty_schedule"
	ConflictPhaseGap        ConflictType = "phase_gap"
	ConflictPhaseOverlap    ConflictType = "phase_overlap"
	ConflictInvalidDate     ConflictType = "invalid_date"
	ConflictInvertedRange   ConflictType = "inverted_range"
	ConflictHourDrift       ConflictType = "hour_drift"
	ConflictInvalidStatus   ConflictType = "invalid_status"
	ConflictWeekNumbering   ConflictType = "week_numbering"
	ConflictNegativeTargets ConflictType = "negative_targets"
)

// Conflict represents a detected inconsistency in a generated schedule
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // Phase labels or week numbers involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}
	report := "Conflicts detected:\n"
	for _, c := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", c.Description)
	}
	return report
}

var validStatuses = map[models.PhaseStatus]bool{
	models.PhasePending:    true,
	models.PhaseInProgress: true,
	models.PhaseCompleted:  true,
}

// ValidateSchedule checks a generated schedule against its structural
// invariants: phases cover their window contiguously without overlaps,
// phase hours stay within the rounding bound of the total, statuses are
// well-formed, and the weekly plan is numbered sequentially.
func ValidateSchedule(s models.Schedule) ValidationResult {
	var result ValidationResult

	if len(s.Phases) == 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptySchedule,
			Description: "schedule has no phases",
		})
		return result
	}

	hourSum := 0
	for i, p := range s.Phases {
		start, err := utils.ParseDate(p.StartDate)
		if err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("phase %q has invalid start date %q", p.Label, p.StartDate),
				Items:       []string{p.Label},
			})
			continue
		}
		end, err := utils.ParseDate(p.EndDate)
		if err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("phase %q has invalid end date %q", p.Label, p.EndDate),
				Items:       []string{p.Label},
			})
			continue
		}
		if end.Before(start) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvertedRange,
				Description: fmt.Sprintf("phase %q ends before it starts", p.Label),
				Items:       []string{p.Label},
			})
		}
		if !validStatuses[p.Status] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidStatus,
				Description: fmt.Sprintf("phase %q has unknown status %q", p.Label, p.Status),
				Items:       []string{p.Label},
			})
		}
		hourSum += p.EstimatedHours

		if i == 0 {
			continue
		}
		prev := s.Phases[i-1]
		prevEnd, err := utils.ParseDate(prev.EndDate)
		if err != nil {
			continue
		}
		// Phase ranges are half-open: each phase starts exactly where
		// the previous one ends, even when trailing phases collapse to
		// zero length at the window boundary.
		if start.After(prevEnd) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictPhaseGap,
				Description: fmt.Sprintf("gap between phases %q and %q", prev.Label, p.Label),
				Items:       []string{prev.Label, p.Label},
			})
		} else if start.Before(prevEnd) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictPhaseOverlap,
				Description: fmt.Sprintf("phases %q and %q overlap", prev.Label, p.Label),
				Items:       []string{prev.Label, p.Label},
			})
		}
	}

	// Days and hours are rounded independently, so the phase hour sum may
	// drift from the total by up to one unit per phase.
	drift := hourSum - s.TotalEstimatedHours
	if drift < 0 {
		drift = -drift
	}
	if drift > len(s.Phases) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type: ConflictHourDrift,
			Description: fmt.Sprintf("phase hours sum to %d, total is %d (drift %d exceeds bound %d)",
				hourSum, s.TotalEstimatedHours, drift, len(s.Phases)),
		})
	}

	for i, w := range s.WeeklyPlan {
		if w.WeekNumber != i+1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictWeekNumbering,
				Description: fmt.Sprintf("week at index %d is numbered %d", i, w.WeekNumber),
			})
		}
		if w.TargetHours < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeTargets,
				Description: fmt.Sprintf("week %d has negative target hours", w.WeekNumber),
			})
		}
	}

	return result
}
