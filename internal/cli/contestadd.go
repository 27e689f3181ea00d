package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jiwoolee/contestpilot/internal/models"
	"github.com/jiwoolee/contestpilot/internal/utils"
)

type ContestAddCmd struct {
	Title    string `arg:"" help:"Contest title."`
	Deadline string `short:"d" help:"Submission deadline (YYYY-MM-DD)."`
	Category string `short:"c" help:"Contest category (e.g. 디자인, 개발, AI/ML)."`
	Analysis string `short:"a" help:"Path to an analysis JSON payload from the analysis provider." type:"existingfile"`
}

func (c *ContestAddCmd) Validate() error {
	if c.Deadline != "" {
		if _, err := utils.ParseDate(c.Deadline); err != nil {
			return fmt.Errorf("invalid deadline format (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

func (c *ContestAddCmd) Run(ctx *Context) error {
	var analysis *models.Analysis
	if c.Analysis != "" {
		data, err := os.ReadFile(c.Analysis)
		if err != nil {
			return fmt.Errorf("failed to read analysis file: %w", err)
		}
		analysis = &models.Analysis{}
		if err := json.Unmarshal(data, analysis); err != nil {
			return fmt.Errorf("failed to parse analysis file: %w", err)
		}
	}

	contest, err := ctx.Contests.AddContest(c.Title, c.Category, c.Deadline, analysis)
	if err != nil {
		return err
	}

	fmt.Printf("Added contest %q (%s)\n", contest.Title, contest.ID)
	if contest.Deadline == "" {
		fmt.Println(faintStyle.Render("No deadline set. Set one before generating a schedule."))
	}
	return nil
}
