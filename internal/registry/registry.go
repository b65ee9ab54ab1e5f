package registry

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/ledger"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
	"github.com/lakshmikanth26/new-job-journey/internal/storage"
)

// Registry holds user-authored tasks tagged to a plan day. The list is
// persisted whole through the local store and unioned with the static plan
// at render time. Deleting a task cascades into the completion ledger so no
// orphaned completion record survives.
type Registry struct {
	mu     sync.Mutex
	store  storage.Provider
	ledger *ledger.Ledger
	tasks  []models.CustomTask
}

// New loads the registry from the local store.
func New(store storage.Provider, led *ledger.Ledger) *Registry {
	r := &Registry{
		store:  store,
		ledger: led,
	}

	var saved []models.CustomTask
	if store.Get(constants.KeyCustomTasks, &saved) && saved != nil {
		r.tasks = saved
	}

	return r
}

// persist must be called with mu held.
func (r *Registry) persist() {
	tasks := r.tasks
	if tasks == nil {
		tasks = []models.CustomTask{}
	}
	r.store.Set(constants.KeyCustomTasks, tasks)
}

// List returns a copy of all custom tasks. Order is insertion order; callers
// filter by day when rendering.
func (r *Registry) List() []models.CustomTask {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.CustomTask, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// ForDay returns the custom tasks pinned to the given day.
func (r *Registry) ForDay(day int) []models.CustomTask {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.CustomTask
	for _, t := range r.tasks {
		if t.Day == day {
			out = append(out, t)
		}
	}
	return out
}

// Get returns the custom task with the given id.
func (r *Registry) Get(id string) (models.CustomTask, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.CustomTask{}, false
}

// Add appends a new custom task and persists the whole list.
func (r *Registry) Add(day int, title, description, category string) (models.CustomTask, error) {
	if day < 1 || day > constants.PlanDays {
		return models.CustomTask{}, fmt.Errorf("day must be between 1 and %d", constants.PlanDays)
	}
	if title == "" {
		return models.CustomTask{}, fmt.Errorf("title is required")
	}

	task := models.CustomTask{
		ID:          uuid.New().String(),
		Day:         day,
		Title:       title,
		Description: description,
		Category:    category,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, task)
	r.persist()
	return task, nil
}

// Remove deletes the custom task with the given id, then deletes its ledger
// entry. Confirmation of this destructive action is the caller's job.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()

	found := false
	kept := r.tasks[:0]
	for _, t := range r.tasks {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}

	if !found {
		r.mu.Unlock()
		return fmt.Errorf("custom task not found: %s", id)
	}

	r.tasks = kept
	r.persist()
	r.mu.Unlock()

	// Cascade outside our own lock; the ledger serializes itself.
	r.ledger.Delete(ledger.CustomKey(id))
	return nil
}
