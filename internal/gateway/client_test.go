package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lakshmikanth26/new-job-journey/internal/models"
)

// countingTransport fails any request it sees and counts them; operations that
// must not touch the network use it to prove no I/O happened.
type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, errors.New("unexpected network call")
}

func TestUnconfiguredClientDoesNoIO(t *testing.T) {
	transport := &countingTransport{}
	c := NewClient(Config{}, &http.Client{Transport: transport})

	if c.Available() {
		t.Fatal("empty config must not be available")
	}

	if _, err := c.ListTasks(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("ListTasks error = %v, want ErrNotConfigured", err)
	}
	if _, err := c.CreateProgram(context.Background(), models.Program{Name: "x"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("CreateProgram error = %v, want ErrNotConfigured", err)
	}
	if err := c.DeleteProject(context.Background(), "some-id"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("DeleteProject error = %v, want ErrNotConfigured", err)
	}

	if transport.calls != 0 {
		t.Errorf("expected zero network calls, got %d", transport.calls)
	}
}

func TestPartialConfigIsUnavailable(t *testing.T) {
	if (Config{URL: "https://x.example.com"}).Available() {
		t.Error("URL without key must not be available")
	}
	if (Config{Key: "k"}).Available() {
		t.Error("key without URL must not be available")
	}
}

func TestUpdate_MissingIDFailsBeforeIO(t *testing.T) {
	transport := &countingTransport{}
	c := NewClient(Config{URL: "https://x.example.com", Key: "k"}, &http.Client{Transport: transport})

	if _, err := c.UpdateTask(context.Background(), "", map[string]any{"completed": true}); !errors.Is(err, ErrIDRequired) {
		t.Errorf("UpdateTask error = %v, want ErrIDRequired", err)
	}
	if err := c.DeleteProgram(context.Background(), ""); !errors.Is(err, ErrIDRequired) {
		t.Errorf("DeleteProgram error = %v, want ErrIDRequired", err)
	}

	if transport.calls != 0 {
		t.Errorf("expected zero network calls, got %d", transport.calls)
	}
}

func TestListTasks(t *testing.T) {
	var gotPath, gotOrder, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotOrder = r.URL.Query().Get("order")
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.RemoteTask{
			{ID: "1", Day: 1, Title: "Arrays warmup"},
			{ID: "2", Day: 2, Title: "Two pointers"},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Key: "secret"}, srv.Client())
	tasks, err := c.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}

	if gotPath != "/rest/v1/tasks" {
		t.Errorf("path = %q", gotPath)
	}
	if gotOrder != "day.asc" {
		t.Errorf("order = %q, want day.asc", gotOrder)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if len(tasks) != 2 || tasks[0].Title != "Arrays warmup" {
		t.Errorf("tasks = %+v", tasks)
	}
}

func TestCreateProgram(t *testing.T) {
	var gotMethod, gotPrefer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPrefer = r.Header.Get("Prefer")

		var rows []models.Program
		if err := json.NewDecoder(r.Body).Decode(&rows); err != nil || len(rows) != 1 {
			t.Errorf("expected single-element array body, got %v rows (err %v)", len(rows), err)
		}
		rows[0].ID = "generated-id"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rows)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Key: "k"}, srv.Client())
	created, err := c.CreateProgram(context.Background(), models.Program{Name: "Two Sum"})
	if err != nil {
		t.Fatalf("CreateProgram failed: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q", gotMethod)
	}
	if gotPrefer != "return=representation" {
		t.Errorf("Prefer = %q", gotPrefer)
	}
	if created.ID != "generated-id" {
		t.Errorf("created = %+v", created)
	}
}

func TestUpdateTask(t *testing.T) {
	var gotFilter string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("id")
		json.NewEncoder(w).Encode([]models.RemoteTask{{ID: "abc", Completed: true}})
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Key: "k"}, srv.Client())
	updated, err := c.UpdateTask(context.Background(), "abc", map[string]any{"completed": true})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	if gotFilter != "eq.abc" {
		t.Errorf("id filter = %q, want eq.abc", gotFilter)
	}
	if !updated.Completed {
		t.Errorf("updated = %+v", updated)
	}
}

func TestRemoteErrorsAreGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied for table tasks"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Key: "k"}, srv.Client())
	_, err := c.ListTasks(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "failed to fetch tasks" {
		t.Errorf("error = %q, want the generic message", err.Error())
	}
	if strings.Contains(err.Error(), "permission denied") {
		t.Error("remote detail must not leak past the gateway")
	}
}

func TestDeleteProject(t *testing.T) {
	var gotMethod, gotFilter string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotFilter = r.URL.Query().Get("id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Key: "k"}, srv.Client())
	if err := c.DeleteProject(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteProject failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotFilter != "eq.p1" {
		t.Errorf("method = %q, filter = %q", gotMethod, gotFilter)
	}
}
