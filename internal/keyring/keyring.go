package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
)

var (
	// ErrNotFound is returned when no access key is stored in the keyring
	ErrNotFound = errors.New("access key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAccessKey retrieves the remote access key from the OS keyring.
// Returns ErrNotFound if no key is stored.
func GetAccessKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetAccessKey stores the remote access key in the OS keyring.
func SetAccessKey(key string) error {
	if key == "" {
		return errors.New("access key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, key); err != nil {
		return fmt.Errorf("failed to store access key in keyring: %w", err)
	}
	return nil
}

// DeleteAccessKey removes the remote access key from the OS keyring.
func DeleteAccessKey() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete access key from keyring: %w", err)
	}
	return nil
}
