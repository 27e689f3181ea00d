package cli

import (
	"fmt"

	"github.com/jiwoolee/contestpilot/internal/profile"
	"github.com/jiwoolee/contestpilot/internal/scheduler"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

type ScheduleGenerateCmd struct {
	ID string `arg:"" help:"Contest ID."`
	// Pointer so an explicit --hours 0 is distinct from the flag being
	// absent; zero is a legitimate override.
	Hours *int `short:"H" help:"Override available hours instead of computing them from the profile."`
}

func (c *ScheduleGenerateCmd) Validate() error {
	if c.Hours != nil && *c.Hours < 0 {
		return fmt.Errorf("hours must not be negative")
	}
	return nil
}

func (c *ScheduleGenerateCmd) Run(ctx *Context) error {
	var availableHours int
	if c.Hours != nil {
		availableHours = *c.Hours
	} else {
		contest, err := ctx.Contests.GetContest(c.ID)
		if err != nil {
			return err
		}
		if contest.Deadline == "" {
			return scheduler.ErrNoDeadline
		}
		deadline, err := utils.ParseDate(contest.Deadline)
		if err != nil {
			return fmt.Errorf("invalid deadline %q: %w", contest.Deadline, err)
		}

		prof, err := ctx.Store.GetProfile()
		if err != nil {
			return err
		}
		if prof.HoursPerWeek == 0 {
			return fmt.Errorf("profile has no weekly hours: run 'contestpilot profile set' or pass --hours")
		}
		today := utils.DateOnly(ctx.Contests.Now())
		availableHours = profile.CalculateAvailableHours(prof, today, deadline)
	}

	schedule, err := ctx.Contests.GenerateSchedule(c.ID, availableHours)
	if err != nil {
		return err
	}

	fmt.Printf("Schedule generated: %d phases over %d weeks\n", len(schedule.Phases), len(schedule.WeeklyPlan))
	fmt.Println("Feasibility:", FormatVerdict(schedule.Feasibility))
	for _, w := range schedule.Warnings {
		fmt.Println(warningStyle.Render("warning:"), w.Message)
	}
	return nil
}

type ScheduleShowCmd struct {
	ID string `arg:"" help:"Contest ID."`
}

func (c *ScheduleShowCmd) Run(ctx *Context) error {
	contest, err := ctx.Contests.GetContest(c.ID)
	if err != nil {
		return err
	}
	if contest.Schedule == nil {
		fmt.Println("No schedule generated for this contest.")
		return nil
	}

	s := contest.Schedule
	fmt.Printf("%s\n", boldStyle.Render(contest.Title))
	fmt.Printf("Estimated %dh, available %dh\n", s.TotalEstimatedHours, s.AvailableHours)
	fmt.Println("Feasibility:", FormatVerdict(s.Feasibility))
	fmt.Println()

	for _, p := range s.Phases {
		marker := " "
		switch p.Status {
		case "in_progress":
			marker = ">"
		case "completed":
			marker = "x"
		}
		fmt.Printf("%s %-14s %s .. %s  %3dh  [%s] %s\n",
			marker, p.ID, p.StartDate, p.EndDate, p.EstimatedHours, p.Priority, p.Label)
	}

	fmt.Println()
	for _, w := range s.WeeklyPlan {
		fmt.Printf("week %d (%s)  target %dh  %s\n", w.WeekNumber, w.WeekStart, w.TargetHours, w.Focus)
	}
	for _, w := range s.Warnings {
		fmt.Println(warningStyle.Render("warning:"), w.Message)
	}
	return nil
}

type ScheduleRemoveCmd struct {
	ID string `arg:"" help:"Contest ID."`
}

func (c *ScheduleRemoveCmd) Run(ctx *Context) error {
	if err := ctx.Contests.RemoveSchedule(c.ID); err != nil {
		return err
	}
	fmt.Println("Schedule removed. Progress logs are kept.")
	return nil
}
