package tasks

import (
	"fmt"
	"strings"

	"github.com/lakshmikanth26/new-job-journey/internal/cli"
	"github.com/lakshmikanth26/new-job-journey/internal/validation"
)

type ToggleCmd struct {
	Key string `arg:"" help:"Task key, e.g. \"5-1\" or \"custom-<id>\"."`
}

func (c *ToggleCmd) Validate() error {
	return cli.ParseTaskKey(c.Key)
}

func (c *ToggleCmd) Run(ctx *cli.Context) error {
	rec := ctx.Ledger.ToggleCompleted(c.Key)
	if rec.Completed {
		fmt.Printf("✓ Marked %s complete\n", c.Key)
	} else {
		fmt.Printf("Marked %s incomplete\n", c.Key)
	}
	return nil
}

type NoteCmd struct {
	Key  string   `arg:"" help:"Task key."`
	Note []string `arg:"" optional:"" help:"Note text; empty clears the note."`
}

func (c *NoteCmd) Validate() error {
	return cli.ParseTaskKey(c.Key)
}

func (c *NoteCmd) Run(ctx *cli.Context) error {
	note := strings.Join(c.Note, " ")
	ctx.Ledger.SetNotes(c.Key, note)
	if note == "" {
		fmt.Printf("Cleared notes for %s\n", c.Key)
	} else {
		fmt.Printf("Saved notes for %s\n", c.Key)
	}
	return nil
}

type LinkCmd struct {
	Key string `arg:"" help:"Task key."`
	URL string `arg:"" optional:"" help:"Reference link; empty clears it."`
}

func (c *LinkCmd) Validate() error {
	if err := cli.ParseTaskKey(c.Key); err != nil {
		return err
	}
	return validation.ValidateLink(c.URL)
}

func (c *LinkCmd) Run(ctx *cli.Context) error {
	ctx.Ledger.SetReferenceLink(c.Key, c.URL)
	if c.URL == "" {
		fmt.Printf("Cleared reference link for %s\n", c.Key)
	} else {
		fmt.Printf("Saved reference link for %s\n", c.Key)
	}
	return nil
}

type ReviseCmd struct {
	Key string `arg:"" help:"Task key."`
}

func (c *ReviseCmd) Validate() error {
	return cli.ParseTaskKey(c.Key)
}

func (c *ReviseCmd) Run(ctx *cli.Context) error {
	rec := ctx.Ledger.ToggleRevised(c.Key)
	if rec.Revised {
		fmt.Printf("✓ Marked %s revised\n", c.Key)
	} else {
		fmt.Printf("Marked %s not revised\n", c.Key)
	}
	return nil
}

type RevisionCmd struct {
	Search   string `short:"s" help:"Filter by title/description substring."`
	Category string `short:"c" help:"Filter by category."`
}

func (c *RevisionCmd) Run(ctx *cli.Context) error {
	completed := ctx.Views.Completed(c.Search, c.Category)
	if len(completed) == 0 {
		fmt.Println("No completed tasks yet.")
		return nil
	}

	revised, pending := ctx.Views.RevisionCounts()
	fmt.Printf("Completed tasks: %d revised, %d pending revision\n\n", revised, pending)

	for _, t := range completed {
		status := "pending"
		if t.Completion.Revised {
			status = "revised"
		}
		fmt.Printf("  %-10s day %2d  %-8s %s (%s)\n", t.Key, t.Day, status, t.Title, t.Category)
	}

	return nil
}
