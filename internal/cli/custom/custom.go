package custom

import (
	"fmt"

	"github.com/lakshmikanth26/new-job-journey/internal/cli"
	"github.com/lakshmikanth26/new-job-journey/internal/ledger"
	"github.com/lakshmikanth26/new-job-journey/internal/validation"
)

type AddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Day         int    `short:"d" required:"" help:"Plan day (1-30) the task belongs to."`
	Description string `help:"Task description."`
	Category    string `short:"c" default:"Custom" help:"Task category."`
}

func (c *AddCmd) Validate() error {
	return validation.ValidateCustomTask(c.Day, c.Title)
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Registry.Add(c.Day, c.Title, c.Description, c.Category)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Added custom task to day %d\n", task.Day)
	fmt.Printf("  id: %s\n", task.ID)
	fmt.Printf("  key: %s\n", ledger.CustomKey(task.ID))
	return nil
}

type DeleteCmd struct {
	ID  string `arg:"" help:"Custom task id."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	task, ok := ctx.Registry.Get(c.ID)
	if !ok {
		return fmt.Errorf("custom task not found: %s", c.ID)
	}

	if !c.Yes && !cli.Confirm(fmt.Sprintf("Delete custom task %q?", task.Title)) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := ctx.Registry.Remove(c.ID); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted custom task %q (day %d)\n", task.Title, task.Day)
	return nil
}

type ListCmd struct {
	Day int `short:"d" help:"Only show tasks for this day."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	tasks := ctx.Registry.List()
	if c.Day > 0 {
		tasks = ctx.Registry.ForDay(c.Day)
	}

	if len(tasks) == 0 {
		fmt.Println("No custom tasks.")
		return nil
	}

	for _, t := range tasks {
		done := ctx.Ledger.Get(ledger.CustomKey(t.ID)).Completed
		fmt.Printf("  %s day %2d  %s (%s)\n", cli.Checkbox(done), t.Day, t.Title, t.Category)
		fmt.Printf("      id: %s\n", t.ID)
	}
	return nil
}
