package tasks

import (
	"fmt"

	"github.com/lakshmikanth26/new-job-journey/internal/cli"
	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/views"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	return printDay(ctx, ctx.CurrentDay())
}

type DayCmd struct {
	Day int `arg:"" help:"Plan day number (1-30)."`
}

func (c *DayCmd) Validate() error {
	if c.Day < 1 || c.Day > constants.PlanDays {
		return fmt.Errorf("day must be between 1 and %d", constants.PlanDays)
	}
	return nil
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	return printDay(ctx, c.Day)
}

func printDay(ctx *cli.Context, day int) error {
	tasks := ctx.Views.Day(day)
	if len(tasks) == 0 {
		fmt.Printf("No tasks for day %d.\n", day)
		return nil
	}

	completed := 0
	for _, t := range tasks {
		if t.Completion.Completed {
			completed++
		}
	}

	fmt.Printf("Day %d of %d  (%d/%d done)\n\n", day, constants.PlanDays, completed, len(tasks))
	for _, t := range tasks {
		marker := cli.Checkbox(t.Completion.Completed)
		label := t.Category
		if t.Custom {
			label += ", custom"
		}
		fmt.Printf("  %s %-10s %s (%s)\n", marker, t.Key, t.Title, label)
		if t.Completion.Revised {
			fmt.Printf("      revised\n")
		}
		if t.Completion.Notes != "" {
			fmt.Printf("      notes: %s\n", t.Completion.Notes)
		}
		if t.Completion.ReferenceLink != "" {
			fmt.Printf("      link: %s\n", t.Completion.ReferenceLink)
		}
		for _, a := range t.Completion.Attachments {
			fmt.Printf("      attachment: %s\n", a)
		}
	}

	return nil
}

type ProgressCmd struct{}

func (c *ProgressCmd) Run(ctx *cli.Context) error {
	today := ctx.CurrentDay()
	progress := ctx.Views.Progress()

	for _, p := range progress {
		marker := "  "
		if p.Day == today {
			marker = "> "
		}
		fmt.Printf("%sDay %2d: %d/%d\n", marker, p.Day, p.Completed, p.Total)
	}

	done, total := ctx.Views.Overall()
	fmt.Printf("\nOverall: %d/%d tasks (%d%%)\n", done, total, views.ProgressPercent(done, total))
	return nil
}
