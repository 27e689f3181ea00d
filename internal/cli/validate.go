package cli

import (
	"fmt"

	"github.com/jiwoolee/contestpilot/internal/validation"
)

type ValidateCmd struct {
	ID string `arg:"" optional:"" help:"Contest ID. Validates all schedules when omitted."`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	contests, err := ctx.Contests.ListContests()
	if err != nil {
		return err
	}

	checked := 0
	broken := 0
	for _, contest := range contests {
		if c.ID != "" && contest.ID != c.ID {
			continue
		}
		if contest.Schedule == nil {
			continue
		}
		checked++
		result := validation.ValidateSchedule(*contest.Schedule)
		if result.HasConflicts() {
			broken++
			fmt.Printf("%s:\n%s", boldStyle.Render(contest.Title), result.FormatReport())
		}
	}

	if checked == 0 {
		fmt.Println("No schedules to validate.")
		return nil
	}
	if broken == 0 {
		fmt.Printf("All %d schedule(s) consistent.\n", checked)
	}
	return nil
}
