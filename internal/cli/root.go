package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jiwoolee/contestpilot/internal/contests"
	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/storage"
)

type Context struct {
	Store    storage.Provider
	Contests *contests.Service
}

// Severity styles matching the verdict/warning colors the engine emits.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dangerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// RenderSeverity styles text by the engine's presentation color
// (success/warning/danger).
func RenderSeverity(color, text string) string {
	switch color {
	case "success":
		return successStyle.Render(text)
	case "warning":
		return warningStyle.Render(text)
	case "danger":
		return dangerStyle.Render(text)
	default:
		return text
	}
}

// RenderUrgency styles an urgency badge.
func RenderUrgency(u models.Urgency) string {
	switch u {
	case models.UrgencyHigh:
		return dangerStyle.Render("high")
	case models.UrgencyMedium:
		return warningStyle.Render("medium")
	default:
		return successStyle.Render("low")
	}
}

// FormatVerdict renders the feasibility verdict line.
func FormatVerdict(f models.Feasibility) string {
	return fmt.Sprintf("%s (score %d, buffer %+dh): %s",
		RenderSeverity(f.Verdict.Color, string(f.Verdict.Level)),
		f.Score, f.BufferHours, f.Verdict.Message)
}
