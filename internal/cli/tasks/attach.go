package tasks

import (
	"context"
	"fmt"

	"github.com/lakshmikanth26/new-job-journey/internal/cli"
	"github.com/lakshmikanth26/new-job-journey/internal/constants"
)

type AttachAddCmd struct {
	Key   string   `arg:"" help:"Task key."`
	Files []string `arg:"" help:"Files to upload." type:"existingfile"`
}

func (c *AttachAddCmd) Validate() error {
	return cli.ParseTaskKey(c.Key)
}

func (c *AttachAddCmd) Run(ctx *cli.Context) error {
	if !ctx.Files.Available() {
		return fmt.Errorf("remote not configured: attachments need the remote gateway (set %s)", constants.EnvRemoteURL)
	}

	urls, errs := ctx.Files.UploadBatch(context.Background(), c.Files)

	// Merge against the latest state in one replace so interleaved edits
	// never lose attachments
	if len(urls) > 0 {
		current := ctx.Ledger.Get(c.Key).Attachments
		ctx.Ledger.SetAttachments(c.Key, append(current, urls...))
	}

	for _, u := range urls {
		fmt.Printf("✓ Uploaded: %s\n", u)
	}
	for _, e := range errs {
		fmt.Printf("✗ %s\n", e)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed", len(errs), len(c.Files))
	}
	return nil
}

type AttachRemoveCmd struct {
	Key string `arg:"" help:"Task key."`
	URL string `arg:"" help:"Attachment URL to remove."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *AttachRemoveCmd) Validate() error {
	return cli.ParseTaskKey(c.Key)
}

func (c *AttachRemoveCmd) Run(ctx *cli.Context) error {
	current := ctx.Ledger.Get(c.Key).Attachments

	found := false
	kept := make([]string, 0, len(current))
	for _, u := range current {
		if u == c.URL {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return fmt.Errorf("attachment not found on %s", c.Key)
	}

	if !c.Yes && !cli.Confirm("Delete this attachment?") {
		fmt.Println("Cancelled.")
		return nil
	}

	// Remote removal is best effort; the ledger entry goes away regardless
	if !ctx.Files.Delete(context.Background(), c.URL) {
		fmt.Println("Warning: could not delete the remote file; removing the reference anyway.")
	}

	ctx.Ledger.SetAttachments(c.Key, kept)
	fmt.Printf("Removed attachment from %s\n", c.Key)
	return nil
}
