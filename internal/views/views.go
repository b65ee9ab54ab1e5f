// Package views provides read-only projections joining the static plan, the
// custom-task registry, and the completion ledger. Views hold no state of
// their own; every mutation goes back through the owning layer.
package views

import (
	"math"
	"sort"
	"strings"

	"github.com/lakshmikanth26/new-job-journey/internal/ledger"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
	"github.com/lakshmikanth26/new-job-journey/internal/plan"
	"github.com/lakshmikanth26/new-job-journey/internal/registry"
)

// TaskView is one renderable task: a plan or custom task joined with its
// ledger record.
type TaskView struct {
	Key         string
	Day         int
	Title       string
	Description string
	Category    string
	Custom      bool
	CustomID    string
	Completion  models.Completion
}

// DayProgress summarizes one day's completion state.
type DayProgress struct {
	Day       int
	Total     int
	Completed int
}

type Aggregator struct {
	ledger   *ledger.Ledger
	registry *registry.Registry
}

func New(led *ledger.Ledger, reg *registry.Registry) *Aggregator {
	return &Aggregator{
		ledger:   led,
		registry: reg,
	}
}

// Day returns the merged task list for a plan day: static tasks first (in
// plan order), then custom tasks for that day.
func (a *Aggregator) Day(day int) []TaskView {
	var out []TaskView

	if d, ok := plan.ForDay(day); ok {
		for i, t := range d.Tasks {
			key := ledger.Key(day, i)
			out = append(out, TaskView{
				Key:         key,
				Day:         day,
				Title:       t.Title,
				Description: t.Description,
				Category:    t.Category,
				Completion:  a.ledger.Get(key),
			})
		}
	}

	for _, t := range a.registry.ForDay(day) {
		key := ledger.CustomKey(t.ID)
		out = append(out, TaskView{
			Key:         key,
			Day:         day,
			Title:       t.Title,
			Description: t.Description,
			Category:    t.Category,
			Custom:      true,
			CustomID:    t.ID,
			Completion:  a.ledger.Get(key),
		})
	}

	return out
}

// Progress returns per-day completion for every plan day.
func (a *Aggregator) Progress() []DayProgress {
	out := make([]DayProgress, 0, len(plan.Days()))
	for _, d := range plan.Days() {
		tasks := a.Day(d.Day)
		p := DayProgress{Day: d.Day, Total: len(tasks)}
		for _, t := range tasks {
			if t.Completion.Completed {
				p.Completed++
			}
		}
		out = append(out, p)
	}
	return out
}

// Overall returns completed and total counts across the whole journey,
// custom tasks included.
func (a *Aggregator) Overall() (completed, total int) {
	for _, p := range a.Progress() {
		completed += p.Completed
		total += p.Total
	}
	return completed, total
}

// Completed returns all completed tasks, optionally filtered by a
// case-insensitive search over title/description and by exact category.
func (a *Aggregator) Completed(search, category string) []TaskView {
	search = strings.ToLower(strings.TrimSpace(search))

	var out []TaskView
	for _, d := range plan.Days() {
		for _, t := range a.Day(d.Day) {
			if !t.Completion.Completed {
				continue
			}
			if category != "" && t.Category != category {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(t.Title), search) &&
				!strings.Contains(strings.ToLower(t.Description), search) {
				continue
			}
			out = append(out, t)
		}
	}
	return out
}

// RevisionCounts reports how many completed tasks have been revised.
func (a *Aggregator) RevisionCounts() (revised, pending int) {
	for _, t := range a.Completed("", "") {
		if t.Completion.Revised {
			revised++
		} else {
			pending++
		}
	}
	return revised, pending
}

// Categories returns the distinct categories across plan and custom tasks,
// sorted for stable display.
func (a *Aggregator) Categories() []string {
	seen := map[string]bool{}
	for _, d := range plan.Days() {
		for _, t := range d.Tasks {
			seen[t.Category] = true
		}
	}
	for _, t := range a.registry.List() {
		if t.Category != "" {
			seen[t.Category] = true
		}
	}

	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ProgressPercent converts counts to a rounded percentage.
func ProgressPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
