package scheduler

import (
	"math"

	"github.com/jiwoolee/contestpilot/internal/constants"
	"github.com/jiwoolee/contestpilot/internal/models"
)

// verdictFor maps a feasibility ratio to its tier.
func verdictFor(ratio float64) models.Verdict {
	if ratio >= constants.FeasibilityComfortable {
		return models.Verdict{
			Level:   models.VerdictComfortable,
			Message: "여유있게 완수 가능해요",
			Color:   "success",
		}
	}
	if ratio >= constants.FeasibilityAchievable {
		return models.Verdict{
			Level:   models.VerdictAchievable,
			Message: "계획대로 하면 완수 가능해요",
			Color:   "success",
		}
	}
	if ratio >= constants.FeasibilityTight {
		return models.Verdict{
			Level:   models.VerdictTight,
			Message: "핵심만 집중하면 가능해요",
			Color:   "warning",
		}
	}
	return models.Verdict{
		Level:   models.VerdictRisky,
		Message: "일정이 빠듯해요. 우선순위를 정해주세요",
		Color:   "danger",
	}
}

// EvaluateFeasibility compares available hours to the estimated workload.
// A zero estimate has no defined ratio; it is treated as a trivially
// comfortable plan rather than dividing by zero.
func EvaluateFeasibility(availableHours, totalEstimatedHours, daysRemaining int) (models.Feasibility, []models.Warning) {
	if totalEstimatedHours == 0 {
		return models.Feasibility{
			Score:       0,
			Verdict:     verdictFor(constants.FeasibilityComfortable),
			BufferHours: availableHours,
		}, []models.Warning{}
	}

	ratio := float64(availableHours) / float64(totalEstimatedHours)

	warnings := []models.Warning{}
	if daysRemaining < constants.ShortTimelineDays && totalEstimatedHours > constants.HighWorkloadHours {
		warnings = append(warnings, models.Warning{
			Type:    models.WarningShortTimeline,
			Message: "남은 기간이 2주 미만이에요. 집중적인 작업이 필요해요.",
		})
	}
	if ratio < constants.FeasibilityTight {
		warnings = append(warnings, models.Warning{
			Type:    models.WarningInsufficientTime,
			Message: "가용 시간이 부족해요. 필수 항목에만 집중하세요.",
		})
	}

	return models.Feasibility{
		Score:       int(math.Round(ratio * 100)),
		Verdict:     verdictFor(ratio),
		BufferHours: availableHours - totalEstimatedHours,
	}, warnings
}
