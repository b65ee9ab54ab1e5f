package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lakshmikanth26/new-job-journey/internal/logger"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
)

var (
	// ErrNotConfigured signals the recognized degraded mode: no endpoint or
	// key is set, so no I/O is attempted.
	ErrNotConfigured = errors.New("remote not configured, using local storage fallback")
	// ErrIDRequired signals a missing id on update/delete, detected before
	// any network call.
	ErrIDRequired = errors.New("id required")
)

// Client is the remote entity gateway: CRUD over the tasks, programs, and
// projects collections of a PostgREST-style endpoint. It is a secondary,
// optional persistence path and is never reconciled with the local store.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a gateway client. A nil httpClient selects a default
// with a request timeout; tests inject their own transport here.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		cfg:  cfg,
		http: httpClient,
	}
}

// Available reports whether remote operations will attempt I/O.
func (c *Client) Available() bool {
	return c.cfg.Available()
}

// do performs one REST call against /rest/v1/<resource>. Every operation
// gates on availability before touching the network.
func (c *Client) do(ctx context.Context, method, resource string, query url.Values, body any, out any) error {
	if !c.cfg.Available() {
		return ErrNotConfigured
	}

	endpoint := strings.TrimSuffix(c.cfg.URL, "/") + "/rest/v1/" + resource
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}

	req.Header.Set("apikey", c.cfg.Key)
	req.Header.Set("Authorization", "Bearer "+c.cfg.Key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost || method == http.MethodPatch {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("remote returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// fail logs the remote error detail and returns the generic message callers
// may surface. Original causes never cross this boundary structurally.
func fail(op, resource string, err error) error {
	if errors.Is(err, ErrNotConfigured) {
		return err
	}
	logger.Error("Remote operation failed", "op", op, "resource", resource, "error", err)
	return fmt.Errorf("failed to %s %s", op, resource)
}

// list fetches all rows of a resource with the given ordering.
func list[T any](ctx context.Context, c *Client, resource, order string) ([]T, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", order)

	var rows []T
	if err := c.do(ctx, http.MethodGet, resource, q, nil, &rows); err != nil {
		return nil, fail("fetch", resource, err)
	}
	return rows, nil
}

// create inserts one row and returns the created representation.
func create[T any](ctx context.Context, c *Client, resource string, row T) (T, error) {
	var out []T
	var zero T
	if err := c.do(ctx, http.MethodPost, resource, nil, []T{row}, &out); err != nil {
		return zero, fail("create", resource, err)
	}
	if len(out) == 0 {
		return zero, fail("create", resource, fmt.Errorf("empty response"))
	}
	return out[0], nil
}

// update patches the row with the given id and returns the updated
// representation. A missing id fails fast before any network call.
func update[T any](ctx context.Context, c *Client, resource, id string, patch map[string]any) (T, error) {
	var zero T
	if id == "" {
		return zero, fmt.Errorf("%s: %w", resource, ErrIDRequired)
	}

	q := url.Values{}
	q.Set("id", "eq."+id)

	var out []T
	if err := c.do(ctx, http.MethodPatch, resource, q, patch, &out); err != nil {
		return zero, fail("update", resource, err)
	}
	if len(out) == 0 {
		return zero, fail("update", resource, fmt.Errorf("no row with id %s", id))
	}
	return out[0], nil
}

// remove deletes the row with the given id.
func remove(ctx context.Context, c *Client, resource, id string) error {
	if id == "" {
		return fmt.Errorf("%s: %w", resource, ErrIDRequired)
	}

	q := url.Values{}
	q.Set("id", "eq."+id)

	if err := c.do(ctx, http.MethodDelete, resource, q, nil, nil); err != nil {
		return fail("delete", resource, err)
	}
	return nil
}

// Tasks are ordered by plan day ascending.

func (c *Client) ListTasks(ctx context.Context) ([]models.RemoteTask, error) {
	return list[models.RemoteTask](ctx, c, "tasks", "day.asc")
}

func (c *Client) CreateTask(ctx context.Context, t models.RemoteTask) (models.RemoteTask, error) {
	return create(ctx, c, "tasks", t)
}

func (c *Client) UpdateTask(ctx context.Context, id string, patch map[string]any) (models.RemoteTask, error) {
	return update[models.RemoteTask](ctx, c, "tasks", id, patch)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return remove(ctx, c, "tasks", id)
}

// Programs and projects are ordered by creation time, newest first.

func (c *Client) ListPrograms(ctx context.Context) ([]models.Program, error) {
	return list[models.Program](ctx, c, "programs", "created_at.desc")
}

func (c *Client) CreateProgram(ctx context.Context, p models.Program) (models.Program, error) {
	return create(ctx, c, "programs", p)
}

func (c *Client) UpdateProgram(ctx context.Context, id string, patch map[string]any) (models.Program, error) {
	return update[models.Program](ctx, c, "programs", id, patch)
}

func (c *Client) DeleteProgram(ctx context.Context, id string) error {
	return remove(ctx, c, "programs", id)
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	return list[models.Project](ctx, c, "projects", "created_at.desc")
}

func (c *Client) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	return create(ctx, c, "projects", p)
}

func (c *Client) UpdateProject(ctx context.Context, id string, patch map[string]any) (models.Project, error) {
	return update[models.Project](ctx, c, "projects", id, patch)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return remove(ctx, c, "projects", id)
}
