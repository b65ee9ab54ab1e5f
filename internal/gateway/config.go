package gateway

import (
	"errors"
	"os"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/keyring"
	"github.com/lakshmikanth26/new-job-journey/internal/logger"
)

// Config holds the two secrets gating every remote operation. Both must be
// non-empty for the remote path to be available; otherwise the application
// runs local-only.
type Config struct {
	URL string
	Key string
}

// Available reports whether the remote gateway is configured.
func (c Config) Available() bool {
	return c.URL != "" && c.Key != ""
}

// ConfigFromEnv builds the gateway configuration once at process start. The
// endpoint URL comes from the environment; the access key comes from the
// environment with the OS keyring as the durable fallback.
func ConfigFromEnv() Config {
	cfg := Config{
		URL: os.Getenv(constants.EnvRemoteURL),
		Key: os.Getenv(constants.EnvRemoteKey),
	}

	if cfg.Key == "" {
		key, err := keyring.GetAccessKey()
		if err == nil {
			cfg.Key = key
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Failed to read access key from keyring", "error", err)
		}
	}

	if !cfg.Available() {
		// One-time diagnostic; the local store carries everything from here
		logger.Warn("Remote gateway not configured, using local storage only",
			"url_set", cfg.URL != "", "key_set", cfg.Key != "")
	}

	return cfg
}
