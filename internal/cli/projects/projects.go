package projects

import (
	"fmt"
	"strings"

	"github.com/lakshmikanth26/new-job-journey/internal/cli"
	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
	"github.com/lakshmikanth26/new-job-journey/internal/validation"
)

type AddCmd struct {
	Title        string   `arg:"" help:"Project title."`
	Description  string   `short:"d" help:"What the project does."`
	RepoLink     string   `help:"Repository URL."`
	DeployedLink string   `help:"Live deployment URL."`
	Tech         []string `short:"t" help:"Technologies used (repeatable)."`
	Status       string   `short:"s" default:"Planning" help:"Status (Planning|In Progress|Completed)."`
	Notes        string   `help:"Free-form notes."`
}

func (c *AddCmd) toModel() models.Project {
	return models.Project{
		Title:        c.Title,
		Description:  c.Description,
		RepoLink:     c.RepoLink,
		DeployedLink: c.DeployedLink,
		Technologies: c.Tech,
		Status:       constants.ProjectStatus(c.Status),
		Notes:        c.Notes,
	}
}

func (c *AddCmd) Validate() error {
	return validation.ValidateProject(c.toModel())
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	p := ctx.Projects.Add(c.toModel())
	fmt.Printf("✓ Added project %q\n", p.Title)
	fmt.Printf("  id: %s\n", p.ID)
	return nil
}

type ListCmd struct {
	Status string `short:"s" help:"Filter by status."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	items := ctx.Projects.List()
	if len(items) == 0 {
		fmt.Println("No projects yet.")
		return nil
	}

	shown := 0
	for _, p := range items {
		if c.Status != "" && string(p.Status) != c.Status {
			continue
		}
		shown++
		fmt.Printf("  %-12s %s\n", p.Status, p.Title)
		if p.Description != "" {
			fmt.Printf("      %s\n", p.Description)
		}
		if len(p.Technologies) > 0 {
			fmt.Printf("      tech: %s\n", strings.Join(p.Technologies, ", "))
		}
		if p.RepoLink != "" {
			fmt.Printf("      repo: %s\n", p.RepoLink)
		}
		if p.DeployedLink != "" {
			fmt.Printf("      live: %s\n", p.DeployedLink)
		}
		fmt.Printf("      id: %s\n", p.ID)
	}

	if shown == 0 {
		fmt.Println("No projects match the filter.")
	}
	return nil
}

type EditCmd struct {
	ID           string   `arg:"" help:"Project id."`
	Title        string   `help:"New title."`
	Description  string   `short:"d" help:"New description."`
	RepoLink     string   `help:"New repository URL."`
	DeployedLink string   `help:"New deployment URL."`
	Tech         []string `short:"t" help:"Replace the technology list."`
	Status       string   `short:"s" help:"New status."`
	Notes        string   `help:"New notes."`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	p, ok := ctx.Projects.Get(c.ID)
	if !ok {
		return fmt.Errorf("project not found: %s", c.ID)
	}

	if c.Title != "" {
		p.Title = c.Title
	}
	if c.Description != "" {
		p.Description = c.Description
	}
	if c.RepoLink != "" {
		p.RepoLink = c.RepoLink
	}
	if c.DeployedLink != "" {
		p.DeployedLink = c.DeployedLink
	}
	if len(c.Tech) > 0 {
		p.Technologies = c.Tech
	}
	if c.Status != "" {
		p.Status = constants.ProjectStatus(c.Status)
	}
	if c.Notes != "" {
		p.Notes = c.Notes
	}

	if err := validation.ValidateProject(p); err != nil {
		return err
	}

	if err := ctx.Projects.Update(p); err != nil {
		return err
	}

	fmt.Printf("✓ Updated project %q\n", p.Title)
	return nil
}

type DeleteCmd struct {
	ID  string `arg:"" help:"Project id."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	p, ok := ctx.Projects.Get(c.ID)
	if !ok {
		return fmt.Errorf("project not found: %s", c.ID)
	}

	if !c.Yes && !cli.Confirm(fmt.Sprintf("Delete project %q?", p.Title)) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := ctx.Projects.Remove(c.ID); err != nil {
		return err
	}

	fmt.Printf("✓ Deleted project %q\n", p.Title)
	return nil
}
