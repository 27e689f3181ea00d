package cli

import (
	"fmt"

	"github.com/jiwoolee/contestpilot/internal/models"
)

type PhaseAdvanceCmd struct {
	ID    string `arg:"" help:"Contest ID."`
	Phase string `arg:"" help:"Phase ID (research|ideation|production|polish|submission)."`
}

func (c *PhaseAdvanceCmd) Run(ctx *Context) error {
	next, err := ctx.Contests.AdvancePhaseStatus(c.ID, models.PhaseKind(c.Phase))
	if err != nil {
		return err
	}
	fmt.Printf("Phase %s is now %s.\n", c.Phase, next)
	return nil
}

type PhaseSetCmd struct {
	ID     string `arg:"" help:"Contest ID."`
	Phase  string `arg:"" help:"Phase ID."`
	Status string `arg:"" help:"New status (pending|in_progress|completed)."`
}

func (c *PhaseSetCmd) Validate() error {
	switch c.Status {
	case "pending", "in_progress", "completed":
		return nil
	}
	return fmt.Errorf("invalid status %q", c.Status)
}

func (c *PhaseSetCmd) Run(ctx *Context) error {
	if err := ctx.Contests.UpdatePhaseStatus(c.ID, models.PhaseKind(c.Phase), models.PhaseStatus(c.Status)); err != nil {
		return err
	}
	fmt.Printf("Phase %s set to %s.\n", c.Phase, c.Status)
	return nil
}
