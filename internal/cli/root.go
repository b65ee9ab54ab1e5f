package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/lakshmikanth26/new-job-journey/internal/catalog"
	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/files"
	"github.com/lakshmikanth26/new-job-journey/internal/gateway"
	"github.com/lakshmikanth26/new-job-journey/internal/ledger"
	"github.com/lakshmikanth26/new-job-journey/internal/plan"
	"github.com/lakshmikanth26/new-job-journey/internal/registry"
	"github.com/lakshmikanth26/new-job-journey/internal/storage"
	"github.com/lakshmikanth26/new-job-journey/internal/views"
)

// Context carries the shared collaborators into every command. The
// persistence collaborators are constructed once at startup and own their
// collections; commands only read copies and call mutators.
type Context struct {
	Store     storage.Provider
	Ledger    *ledger.Ledger
	Registry  *registry.Registry
	Programs  *catalog.Programs
	Projects  *catalog.Projects
	Gateway   *gateway.Client
	Files     *files.Adapter
	Views     *views.Aggregator
	StartDate string
}

// CurrentDay resolves today's plan day from the configured start date.
func (c *Context) CurrentDay() int {
	return plan.CurrentDay(c.StartDate, time.Now())
}

// Confirm presents a destructive-action guard and reports the user's choice.
// Any prompt failure counts as a refusal.
func Confirm(title string) bool {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false
	}
	return ok
}

// ParseTaskKey validates a task key: either "<day>-<index>" for static plan
// tasks or "custom-<id>" for user-authored ones.
func ParseTaskKey(key string) error {
	if strings.HasPrefix(key, constants.CustomKeyPrefix) {
		if key == constants.CustomKeyPrefix {
			return fmt.Errorf("invalid task key: %s", key)
		}
		return nil
	}

	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid task key %q (expected \"<day>-<index>\" or \"custom-<id>\")", key)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > constants.PlanDays {
		return fmt.Errorf("invalid task key %q: day out of range", key)
	}
	if _, err := strconv.Atoi(parts[1]); err != nil {
		return fmt.Errorf("invalid task key %q: bad index", key)
	}
	return nil
}

// Checkbox renders a completion marker for list output.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
