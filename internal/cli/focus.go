package cli

import "fmt"

type FocusCmd struct{}

func (c *FocusCmd) Run(ctx *Context) error {
	items, err := ctx.Contests.TodaysFocus()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Nothing to focus on today. Add a contest and generate a schedule.")
		return nil
	}

	for i, item := range items {
		prefix := "  "
		if i == 0 {
			prefix = "* "
		}
		line := fmt.Sprintf("%s%s  %s  D-%d  %s  ~%dh today",
			prefix,
			boldStyle.Render(item.ContestTitle),
			item.Phase.Label,
			item.DaysLeft,
			RenderUrgency(item.Urgency),
			item.SuggestedHoursToday)
		if item.IsBehind {
			line += "  " + dangerStyle.Render("behind")
		}
		fmt.Println(line)
	}
	return nil
}
