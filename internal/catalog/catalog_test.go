package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/lakshmikanth26/new-job-journey/internal/constants"
	"github.com/lakshmikanth26/new-job-journey/internal/gateway"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
	"github.com/lakshmikanth26/new-job-journey/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "compass.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func localOnlyGateway() *gateway.Client {
	return gateway.NewClient(gateway.Config{}, nil)
}

func TestPrograms_Add(t *testing.T) {
	progs := NewPrograms(newTestStore(t), localOnlyGateway())

	p := progs.Add(models.Program{Name: "Two Sum", Category: "DSA"})
	if p.ID == "" {
		t.Error("expected generated id")
	}
	if p.CreatedAt == nil {
		t.Error("expected creation timestamp")
	}
	if p.Status != constants.ProgramNotStarted {
		t.Errorf("expected default status, got %q", p.Status)
	}
	if p.CompletedAt != nil {
		t.Error("not-started program should have no completion timestamp")
	}
}

func TestPrograms_AddCompletedStampsCompletedAt(t *testing.T) {
	progs := NewPrograms(newTestStore(t), localOnlyGateway())

	p := progs.Add(models.Program{Name: "Solved already", Status: constants.ProgramCompleted})
	if p.CompletedAt == nil {
		t.Error("expected completion timestamp")
	}
}

func TestPrograms_ListNewestFirst(t *testing.T) {
	progs := NewPrograms(newTestStore(t), localOnlyGateway())

	progs.Add(models.Program{Name: "first"})
	progs.Add(models.Program{Name: "second"})

	list := progs.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 programs, got %d", len(list))
	}
	if list[0].Name != "second" {
		t.Errorf("expected newest first, got %+v", list)
	}
}

func TestPrograms_Update(t *testing.T) {
	progs := NewPrograms(newTestStore(t), localOnlyGateway())

	p := progs.Add(models.Program{Name: "Two Sum", Status: constants.ProgramNotStarted})
	created := p.CreatedAt

	p.Status = constants.ProgramCompleted
	if err := progs.Update(p); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, ok := progs.Get(p.ID)
	if !ok {
		t.Fatal("expected program to exist")
	}
	if got.Status != constants.ProgramCompleted {
		t.Errorf("status = %q", got.Status)
	}
	if got.CreatedAt == nil || created == nil || *got.CreatedAt != *created {
		t.Error("update must preserve the creation timestamp")
	}
	if got.UpdatedAt == nil {
		t.Error("expected update timestamp")
	}
	if got.CompletedAt == nil {
		t.Error("completing should stamp completed_at")
	}
}

func TestPrograms_UpdateUnknownID(t *testing.T) {
	progs := NewPrograms(newTestStore(t), localOnlyGateway())

	if err := progs.Update(models.Program{ID: "ghost", Name: "x"}); err == nil {
		t.Error("expected error for unknown id")
	}
	if err := progs.Update(models.Program{Name: "no id"}); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestPrograms_Remove(t *testing.T) {
	progs := NewPrograms(newTestStore(t), localOnlyGateway())

	p := progs.Add(models.Program{Name: "doomed"})
	if err := progs.Remove(p.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := progs.Get(p.ID); ok {
		t.Error("expected program removed")
	}
	if err := progs.Remove("ghost"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestPrograms_PersistAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compass.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	progs := NewPrograms(store, localOnlyGateway())
	p := progs.Add(models.Program{Name: "persisted"})

	reloaded := storage.NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	progs2 := NewPrograms(reloaded, localOnlyGateway())
	if _, ok := progs2.Get(p.ID); !ok {
		t.Error("expected program to survive reload")
	}
}

func TestPrograms_MirrorFailureDoesNotFailAdd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := gateway.NewClient(gateway.Config{URL: srv.URL, Key: "k"}, srv.Client())
	progs := NewPrograms(newTestStore(t), gw)

	p := progs.Add(models.Program{Name: "still stored"})
	if _, ok := progs.Get(p.ID); !ok {
		t.Error("local store must keep the entry despite mirror failure")
	}
}

func TestPrograms_MirrorsWhenConfigured(t *testing.T) {
	created := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			created++
		}
		var rows []models.Program
		json.NewDecoder(r.Body).Decode(&rows)
		json.NewEncoder(w).Encode(rows)
	}))
	defer srv.Close()

	gw := gateway.NewClient(gateway.Config{URL: srv.URL, Key: "k"}, srv.Client())
	progs := NewPrograms(newTestStore(t), gw)
	progs.Add(models.Program{Name: "mirrored"})

	if created != 1 {
		t.Errorf("expected 1 mirror create, got %d", created)
	}
}

func TestProjects_AddAndUpdate(t *testing.T) {
	projs := NewProjects(newTestStore(t), localOnlyGateway())

	p := projs.Add(models.Project{Title: "URL shortener", Technologies: []string{"Go"}})
	if p.Status != constants.ProjectPlanning {
		t.Errorf("expected default status, got %q", p.Status)
	}

	p.Status = constants.ProjectCompleted
	if err := projs.Update(p); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := projs.Get(p.ID)
	if got.CompletedAt == nil {
		t.Error("completing should stamp completed_at")
	}
}

func TestProjects_Remove(t *testing.T) {
	projs := NewProjects(newTestStore(t), localOnlyGateway())

	p := projs.Add(models.Project{Title: "temp"})
	if err := projs.Remove(p.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(projs.List()) != 0 {
		t.Error("expected empty list")
	}
}
