package system

import (
	"errors"
	"fmt"

	"github.com/lakshmikanth26/new-job-journey/internal/cli"
	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/keyring"
)

// RemoteSetKeyCmd stores the remote access key in the OS keyring.
type RemoteSetKeyCmd struct {
	Key string `arg:"" help:"Access key for the remote gateway."`
}

func (cmd *RemoteSetKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAccessKey(cmd.Key); err != nil {
		return fmt.Errorf("failed to store access key in keyring: %w", err)
	}
	fmt.Println("✓ Access key stored in OS keyring")
	fmt.Printf("  Set %s to finish configuring the remote gateway\n", constants.EnvRemoteURL)
	return nil
}

// RemoteClearKeyCmd removes the remote access key from the OS keyring.
type RemoteClearKeyCmd struct{}

func (cmd *RemoteClearKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAccessKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no access key found in keyring")
		}
		return err
	}
	fmt.Println("✓ Access key deleted from OS keyring")
	return nil
}

// RemoteStatusCmd reports how the remote gateway is configured.
type RemoteStatusCmd struct{}

func (cmd *RemoteStatusCmd) Run(ctx *cli.Context) error {
	if ctx.Gateway.Available() {
		fmt.Println("✓ Remote gateway configured")
	} else {
		fmt.Println("ℹ Remote gateway not configured; running local-only")
	}

	_, err := keyring.GetAccessKey()
	switch {
	case err == nil:
		fmt.Println("✓ Access key present in OS keyring")
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("ℹ No access key stored in keyring")
	default:
		fmt.Println("❌ OS keyring is not available on this system")
		return errors.New("keyring unavailable")
	}
	return nil
}
