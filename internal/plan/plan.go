package plan

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
)

//go:embed plan.json
var planJSON []byte

var days []models.PlanDay

func init() {
	if err := json.Unmarshal(planJSON, &days); err != nil {
		panic(fmt.Sprintf("malformed embedded plan: %v", err))
	}
}

// Days returns the full static plan, ordered by day.
func Days() []models.PlanDay {
	return days
}

// ForDay returns the static plan entry for the given day number.
func ForDay(day int) (models.PlanDay, bool) {
	for _, d := range days {
		if d.Day == day {
			return d, true
		}
	}
	return models.PlanDay{}, false
}

// TotalTasks returns the number of tasks across the whole static plan.
func TotalTasks() int {
	n := 0
	for _, d := range days {
		n += len(d.Tasks)
	}
	return n
}

// StartDate returns the configured plan start date (YYYY-MM-DD), falling back
// to the default when the environment variable is unset or malformed.
func StartDate() string {
	v := os.Getenv(constants.EnvStartDate)
	if v == "" {
		return constants.DefaultStartDate
	}
	if _, err := time.Parse(constants.DateFormat, v); err != nil {
		return constants.DefaultStartDate
	}
	return v
}

// CurrentDay maps the start date and a wall-clock instant to a plan day
// number: floor of the calendar-day difference plus one, clamped to
// [1, PlanDays]. Deterministic and side-effect free.
func CurrentDay(startDate string, now time.Time) int {
	start, err := time.Parse(constants.DateFormat, startDate)
	if err != nil {
		start, _ = time.Parse(constants.DateFormat, constants.DefaultStartDate)
	}

	// Compare at date granularity so partial days never shift the result
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startDate0 := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	day := int(nowDate.Sub(startDate0).Hours()/24) + 1

	if day < 1 {
		return 1
	}
	if day > constants.PlanDays {
		return constants.PlanDays
	}
	return day
}
