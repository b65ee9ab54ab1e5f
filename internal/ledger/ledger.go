package ledger

import (
	"fmt"
	"sync"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
	"github.com/lakshmikanth26/new-job-journey/internal/storage"
)

// Key composes the task key for a static plan task: "<day>-<index>".
// Keys identify position, never content, and are stable for the task's life.
func Key(day, index int) string {
	return fmt.Sprintf("%d-%d", day, index)
}

// CustomKey composes the task key for a user-authored task: "custom-<id>".
func CustomKey(id string) string {
	return constants.CustomKeyPrefix + id
}

// Ledger is the sparse mapping from task key to completion state. It owns the
// collection: callers get copies and route every mutation back through the
// mutators here. Each mutation rewrites the whole mapping to the local store
// under a single well-known key.
type Ledger struct {
	mu      sync.Mutex
	store   storage.Provider
	records map[string]models.Completion
}

// New loads the ledger from the local store. A missing or unreadable blob
// starts an empty ledger.
func New(store storage.Provider) *Ledger {
	l := &Ledger{
		store:   store,
		records: make(map[string]models.Completion),
	}

	var saved map[string]models.Completion
	if store.Get(constants.KeyCompletions, &saved) && saved != nil {
		l.records = saved
	}

	return l
}

// persist must be called with mu held.
func (l *Ledger) persist() {
	l.store.Set(constants.KeyCompletions, l.records)
}

// Get returns the completion record for key. Absent keys yield the zero
// record, so untouched tasks read as not completed.
func (l *Ledger) Get(key string) models.Completion {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records[key]
}

// Has reports whether an entry exists for key.
func (l *Ledger) Has(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.records[key]
	return ok
}

// All returns a copy of the full mapping.
func (l *Ledger) All() map[string]models.Completion {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]models.Completion, len(l.records))
	for k, v := range l.records {
		out[k] = v
	}
	return out
}

// CompletedCount returns the number of entries marked completed.
func (l *Ledger) CompletedCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, rec := range l.records {
		if rec.Completed {
			n++
		}
	}
	return n
}

// ToggleCompleted flips the completed flag for key, creating the record with
// completed=true when none exists. All other fields are preserved.
func (l *Ledger) ToggleCompleted(key string) models.Completion {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.records[key]
	rec.Completed = !rec.Completed
	l.records[key] = rec
	l.persist()
	return rec
}

// SetReferenceLink upserts only the reference link for key.
func (l *Ledger) SetReferenceLink(key, link string) models.Completion {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.records[key]
	rec.ReferenceLink = link
	l.records[key] = rec
	l.persist()
	return rec
}

// SetNotes upserts only the notes for key.
func (l *Ledger) SetNotes(key, notes string) models.Completion {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.records[key]
	rec.Notes = notes
	l.records[key] = rec
	l.persist()
	return rec
}

// SetAttachments replaces the attachment URL list for key in one write.
// Callers accumulating batch upload results must merge against the latest
// state and hand over the final list, not append piecemeal.
func (l *Ledger) SetAttachments(key string, urls []string) models.Completion {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.records[key]
	rec.Attachments = urls
	l.records[key] = rec
	l.persist()
	return rec
}

// ToggleRevised flips the revised flag for key.
func (l *Ledger) ToggleRevised(key string) models.Completion {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := l.records[key]
	rec.Revised = !rec.Revised
	l.records[key] = rec
	l.persist()
	return rec
}

// Delete removes the entry for key if present. Used by the custom-task
// registry to cascade deletes so no orphaned record survives its task.
func (l *Ledger) Delete(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.records[key]; !ok {
		return
	}
	delete(l.records, key)
	l.persist()
}
