package cli

import (
	"fmt"

	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

type ContestListCmd struct {
	Urgent bool `short:"u" help:"Only show contests with a deadline within 7 days."`
}

func (c *ContestListCmd) Run(ctx *Context) error {
	contests, err := ctx.Contests.UpcomingContests()
	if err != nil {
		return err
	}
	if c.Urgent {
		contests, err = ctx.Contests.UrgentContests(7)
		if err != nil {
			return err
		}
	}

	if len(contests) == 0 {
		fmt.Println("No contests tracked.")
		return nil
	}

	today := utils.DateOnly(ctx.Contests.Now())
	for _, contest := range contests {
		line := fmt.Sprintf("%s  %s", contest.ID, boldStyle.Render(contest.Title))
		if contest.Deadline != "" {
			if deadline, err := utils.ParseDate(contest.Deadline); err == nil {
				line += faintStyle.Render(fmt.Sprintf("  D-%d (%s)", utils.DaysRemaining(deadline, today), contest.Deadline))
			}
		}
		if contest.Schedule != nil {
			line += "  " + RenderSeverity(contest.Schedule.Feasibility.Verdict.Color,
				string(contest.Schedule.Feasibility.Verdict.Level))
		}
		fmt.Println(line)
	}
	return nil
}

type ContestRemoveCmd struct {
	ID string `arg:"" help:"Contest ID."`
}

func (c *ContestRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Contests.RemoveContest(c.ID); err != nil {
		return err
	}
	fmt.Println("Contest removed.")
	return nil
}

type ContestStatusCmd struct {
	ID     string `arg:"" help:"Contest ID."`
	Status string `arg:"" help:"New status (interested|applying|completed)."`
}

func (c *ContestStatusCmd) Validate() error {
	switch c.Status {
	case "interested", "applying", "completed":
		return nil
	}
	return fmt.Errorf("invalid status %q", c.Status)
}

func (c *ContestStatusCmd) Run(ctx *Context) error {
	if err := ctx.Contests.SetStatus(c.ID, models.ContestStatus(c.Status)); err != nil {
		return err
	}
	fmt.Printf("Contest status set to %s.\n", c.Status)
	return nil
}
