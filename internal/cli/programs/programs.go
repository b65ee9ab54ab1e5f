package programs

import (
	"fmt"

	"github.com/lakshmikanth26/new-job-journey/internal/cli"
	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
	"github.com/lakshmikanth26/new-job-journey/internal/validation"
)

type AddCmd struct {
	Name       string `arg:"" help:"Problem name."`
	Link       string `short:"l" help:"Problem URL."`
	Category   string `short:"c" default:"DSA" help:"Problem category."`
	Difficulty string `help:"Difficulty (Easy|Medium|Hard)."`
	Status     string `short:"s" default:"Not Started" help:"Status (Not Started|In Progress|Completed)."`
	Notes      string `help:"Free-form notes."`
}

func (c *AddCmd) toModel() models.Program {
	return models.Program{
		Name:       c.Name,
		Link:       c.Link,
		Category:   c.Category,
		Difficulty: constants.Difficulty(c.Difficulty),
		Status:     constants.ProgramStatus(c.Status),
		Notes:      c.Notes,
	}
}

func (c *AddCmd) Validate() error {
	return validation.ValidateProgram(c.toModel())
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	p := ctx.Programs.Add(c.toModel())
	fmt.Printf("✓ Added program %q\n", p.Name)
	fmt.Printf("  id: %s\n", p.ID)
	return nil
}

type ListCmd struct {
	Status   string `short:"s" help:"Filter by status."`
	Category string `short:"c" help:"Filter by category."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	items := ctx.Programs.List()
	if len(items) == 0 {
		fmt.Println("No programs yet.")
		return nil
	}

	shown := 0
	for _, p := range items {
		if c.Status != "" && string(p.Status) != c.Status {
			continue
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		shown++
		diff := ""
		if p.Difficulty != "" {
			diff = fmt.Sprintf(" [%s]", p.Difficulty)
		}
		fmt.Printf("  %-12s %s%s (%s)\n", p.Status, p.Name, diff, p.Category)
		if p.Link != "" {
			fmt.Printf("      %s\n", p.Link)
		}
		fmt.Printf("      id: %s\n", p.ID)
	}

	if shown == 0 {
		fmt.Println("No programs match the filter.")
	}
	return nil
}

type EditCmd struct {
	ID         string `arg:"" help:"Program id."`
	Name       string `help:"New name."`
	Link       string `short:"l" help:"New problem URL."`
	Category   string `short:"c" help:"New category."`
	Difficulty string `help:"New difficulty."`
	Status     string `short:"s" help:"New status."`
	Notes      string `help:"New notes."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	p, ok := ctx.Programs.Get(c.ID)
	if !ok {
		return fmt.Errorf("program not found: %s", c.ID)
	}

	if c.Name != "" {
		p.Name = c.Name
	}
	if c.Link != "" {
		p.Link = c.Link
	}
	if c.Category != "" {
		p.Category = c.Category
	}
	if c.Difficulty != "" {
		p.Difficulty = constants.Difficulty(c.Difficulty)
	}
	if c.Status != "" {
		p.Status = constants.ProgramStatus(c.Status)
	}
	if c.Notes != "" {
		p.Notes = c.Notes
	}

	if err := validation.ValidateProgram(p); err != nil {
		return err
	}

	if err := ctx.Programs.Update(p); err != nil {
		return err
	}

	fmt.Printf("✓ Updated program %q\n", p.Name)
	return nil
}

type DeleteCmd struct {
	ID  string `arg:"" help:"Program id."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	p, ok := ctx.Programs.Get(c.ID)
	if !ok {
		return fmt.Errorf("program not found: %s", c.ID)
	}

	if !c.Yes && !cli.Confirm(fmt.Sprintf("Delete program %q?", p.Name)) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := ctx.Programs.Remove(c.ID); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted program %q\n", p.Name)
	return nil
}
