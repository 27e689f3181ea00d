package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

type ProfileSetCmd struct {
	HoursPerWeek float64 `arg:"" help:"Nominal hours available per week."`
}

func (c *ProfileSetCmd) Validate() error {
	if c.HoursPerWeek < 0 {
		return fmt.Errorf("hours per week must not be negative")
	}
	return nil
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	prof, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}
	prof.HoursPerWeek = c.HoursPerWeek
	if err := ctx.Store.SaveProfile(prof); err != nil {
		return err
	}
	fmt.Printf("Weekly availability set to %.1fh.\n", c.HoursPerWeek)
	return nil
}

type ConstraintAddCmd struct {
	Start string  `arg:"" help:"Constraint start date (YYYY-MM-DD)."`
	End   string  `arg:"" help:"Constraint end date (YYYY-MM-DD)."`
	Hours float64 `arg:"" help:"Hours per week available during the window."`
	Label string  `short:"l" help:"Optional label (e.g. exams)."`
}

func (c *ConstraintAddCmd) Validate() error {
	start, err := utils.ParseDate(c.Start)
	if err != nil {
		return fmt.Errorf("invalid start date: %w", err)
	}
	end, err := utils.ParseDate(c.End)
	if err != nil {
		return fmt.Errorf("invalid end date: %w", err)
	}
	if !start.Before(end) {
		return fmt.Errorf("start date must be before end date")
	}
	if c.Hours < 0 {
		return fmt.Errorf("hours must not be negative")
	}
	return nil
}

func (c *ConstraintAddCmd) Run(ctx *Context) error {
	prof, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}
	prof.Constraints = append(prof.Constraints, models.Constraint{
		ID:             uuid.NewString(),
		Type:           models.ConstraintPeriod,
		Label:          c.Label,
		StartDate:      c.Start,
		EndDate:        c.End,
		HoursAvailable: c.Hours,
	})
	if err := ctx.Store.SaveProfile(prof); err != nil {
		return err
	}
	fmt.Printf("Constraint added: %s to %s at %.1fh/week.\n", c.Start, c.End, c.Hours)
	return nil
}

type ConstraintRemoveCmd struct {
	ID string `arg:"" help:"Constraint ID."`
}

func (c *ConstraintRemoveCmd) Run(ctx *Context) error {
	prof, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}
	kept := prof.Constraints[:0]
	found := false
	for _, con := range prof.Constraints {
		if con.ID == c.ID {
			found = true
			continue
		}
		kept = append(kept, con)
	}
	if !found {
		return fmt.Errorf("constraint not found: %s", c.ID)
	}
	prof.Constraints = kept
	if err := ctx.Store.SaveProfile(prof); err != nil {
		return err
	}
	fmt.Println("Constraint removed.")
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	prof, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}
	fmt.Printf("Weekly availability: %.1fh\n", prof.HoursPerWeek)
	if len(prof.Constraints) == 0 {
		fmt.Println(faintStyle.Render("No constraints."))
		return nil
	}
	for _, con := range prof.Constraints {
		label := con.Label
		if label == "" {
			label = string(con.Type)
		}
		fmt.Printf("%s  %s  %s to %s  %.1fh/week\n", con.ID, label, con.StartDate, con.EndDate, con.HoursAvailable)
	}
	return nil
}
