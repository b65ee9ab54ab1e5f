// Package catalog holds the two standalone collections: coding-problem
// entries (programs) and project entries. Each list is persisted whole
// through the local store, which stays authoritative; when the remote
// gateway is configured, writes are mirrored best-effort and mirror failures
// only ever reach the logs.
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/gateway"
	"github.com/lakshmikanth26/new-job-journey/internal/logger"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
	"github.com/lakshmikanth26/new-job-journey/internal/storage"
)

const mirrorTimeout = 10 * time.Second

func nowStamp() *string {
	s := time.Now().UTC().Format(time.RFC3339)
	return &s
}

// Programs is the coding-problem collection.
type Programs struct {
	mu    sync.Mutex
	store storage.Provider
	gw    *gateway.Client
	items []models.Program
}

func NewPrograms(store storage.Provider, gw *gateway.Client) *Programs {
	p := &Programs{
		store: store,
		gw:    gw,
	}

	var saved []models.Program
	if store.Get(constants.KeyPrograms, &saved) && saved != nil {
		p.items = saved
	}

	return p
}

func (p *Programs) persist() {
	items := p.items
	if items == nil {
		items = []models.Program{}
	}
	p.store.Set(constants.KeyPrograms, items)
}

// List returns a copy, newest first.
func (p *Programs) List() []models.Program {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]models.Program, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Programs) Get(id string) (models.Program, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, it := range p.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Program{}, false
}

// Add assigns an id and creation time, prepends, persists, and mirrors.
func (p *Programs) Add(prog models.Program) models.Program {
	prog.ID = uuid.New().String()
	prog.CreatedAt = nowStamp()
	if prog.Status == "" {
		prog.Status = constants.ProgramNotStarted
	}
	if prog.Status == constants.ProgramCompleted {
		prog.CompletedAt = nowStamp()
	}

	p.mu.Lock()
	p.items = append([]models.Program{prog}, p.items...)
	p.persist()
	p.mu.Unlock()

	if p.gw != nil && p.gw.Available() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		if _, err := p.gw.CreateProgram(ctx, prog); err != nil {
			logger.Warn("Program mirror create failed", "id", prog.ID, "error", err)
		}
	}

	return prog
}

// Update replaces the stored entry with the same id.
func (p *Programs) Update(prog models.Program) error {
	if prog.ID == "" {
		return fmt.Errorf("program id required")
	}

	p.mu.Lock()
	found := false
	for i, it := range p.items {
		if it.ID == prog.ID {
			prog.CreatedAt = it.CreatedAt
			prog.UpdatedAt = nowStamp()
			if prog.Status == constants.ProgramCompleted && it.CompletedAt == nil {
				prog.CompletedAt = nowStamp()
			}
			p.items[i] = prog
			found = true
			break
		}
	}
	if !found {
		p.mu.Unlock()
		return fmt.Errorf("program not found: %s", prog.ID)
	}
	p.persist()
	p.mu.Unlock()

	if p.gw != nil && p.gw.Available() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		patch := map[string]any{
			"name":       prog.Name,
			"link":       prog.Link,
			"category":   prog.Category,
			"difficulty": prog.Difficulty,
			"status":     prog.Status,
			"notes":      prog.Notes,
		}
		if _, err := p.gw.UpdateProgram(ctx, prog.ID, patch); err != nil {
			logger.Warn("Program mirror update failed", "id", prog.ID, "error", err)
		}
	}

	return nil
}

// Remove deletes the entry. Confirmation is the caller's responsibility.
func (p *Programs) Remove(id string) error {
	p.mu.Lock()
	found := false
	kept := p.items[:0]
	for _, it := range p.items {
		if it.ID == id {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		p.mu.Unlock()
		return fmt.Errorf("program not found: %s", id)
	}
	p.items = kept
	p.persist()
	p.mu.Unlock()

	if p.gw != nil && p.gw.Available() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		if err := p.gw.DeleteProgram(ctx, id); err != nil {
			logger.Warn("Program mirror delete failed", "id", id, "error", err)
		}
	}

	return nil
}

// Projects is the project collection. Same shape and rules as Programs.
type Projects struct {
	mu    sync.Mutex
	store storage.Provider
	gw    *gateway.Client
	items []models.Project
}

func NewProjects(store storage.Provider, gw *gateway.Client) *Projects {
	p := &Projects{
		store: store,
		gw:    gw,
	}

	var saved []models.Project
	if store.Get(constants.KeyProjects, &saved) && saved != nil {
		p.items = saved
	}

	return p
}

func (p *Projects) persist() {
	items := p.items
	if items == nil {
		items = []models.Project{}
	}
	p.store.Set(constants.KeyProjects, items)
}

func (p *Projects) List() []models.Project {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]models.Project, len(p.items))
	copy(out, p.items)
	return out
}

func (p *Projects) Get(id string) (models.Project, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, it := range p.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Project{}, false
}

func (p *Projects) Add(proj models.Project) models.Project {
	proj.ID = uuid.New().String()
	proj.CreatedAt = nowStamp()
	if proj.Status == "" {
		proj.Status = constants.ProjectPlanning
	}
	if proj.Status == constants.ProjectCompleted {
		proj.CompletedAt = nowStamp()
	}

	p.mu.Lock()
	p.items = append([]models.Project{proj}, p.items...)
	p.persist()
	p.mu.Unlock()

	if p.gw != nil && p.gw.Available() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		if _, err := p.gw.CreateProject(ctx, proj); err != nil {
			logger.Warn("Project mirror create failed", "id", proj.ID, "error", err)
		}
	}

	return proj
}

func (p *Projects) Update(proj models.Project) error {
	if proj.ID == "" {
		return fmt.Errorf("project id required")
	}

	p.mu.Lock()
	found := false
	for i, it := range p.items {
		if it.ID == proj.ID {
			proj.CreatedAt = it.CreatedAt
			proj.UpdatedAt = nowStamp()
			if proj.Status == constants.ProjectCompleted && it.CompletedAt == nil {
				proj.CompletedAt = nowStamp()
			}
			p.items[i] = proj
			found = true
			break
		}
	}
	if !found {
		p.mu.Unlock()
		return fmt.Errorf("project not found: %s", proj.ID)
	}
	p.persist()
	p.mu.Unlock()

	if p.gw != nil && p.gw.Available() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		patch := map[string]any{
			"title":         proj.Title,
			"description":   proj.Description,
			"repo_link":     proj.RepoLink,
			"deployed_link": proj.DeployedLink,
			"technologies":  proj.Technologies,
			"status":        proj.Status,
			"notes":         proj.Notes,
		}
		if _, err := p.gw.UpdateProject(ctx, proj.ID, patch); err != nil {
			logger.Warn("Project mirror update failed", "id", proj.ID, "error", err)
		}
	}

	return nil
}

func (p *Projects) Remove(id string) error {
	p.mu.Lock()
	found := false
	kept := p.items[:0]
	for _, it := range p.items {
		if it.ID == id {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		p.mu.Unlock()
		return fmt.Errorf("project not found: %s", id)
	}
	p.items = kept
	p.persist()
	p.mu.Unlock()

	if p.gw != nil && p.gw.Available() {
		ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
		defer cancel()
		if err := p.gw.DeleteProject(ctx, id); err != nil {
			logger.Warn("Project mirror delete failed", "id", id, "error", err)
		}
	}

	return nil
}
