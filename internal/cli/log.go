package cli

import "fmt"

type LogCmd struct {
	ID    string  `arg:"" help:"Contest ID."`
	Hours float64 `arg:"" help:"Hours worked today."`
	Notes string  `short:"n" help:"Optional note for the log entry."`
}

func (c *LogCmd) Validate() error {
	if c.Hours < 0 {
		return fmt.Errorf("hours must not be negative")
	}
	return nil
}

func (c *LogCmd) Run(ctx *Context) error {
	if err := ctx.Contests.LogDailyProgress(c.ID, c.Hours, c.Notes); err != nil {
		return err
	}
	fmt.Printf("Logged %.1fh for today. Logging again today replaces this entry.\n", c.Hours)
	return nil
}
