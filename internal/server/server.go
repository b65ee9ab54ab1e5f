// Package server exposes the remote entity gateway over a small REST API,
// one route per collection. Every response uses the same envelope; remote
// error detail stays in the logs and never reaches the wire.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lakshmikanth26/new-job-journey/internal/gateway"
	"github.com/lakshmikanth26/new-job-journey/internal/logger"
	"github.com/lakshmikanth26/new-job-journey/internal/models"
)

type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, response{Success: true, Data: data})
}

// writeError maps the gateway error taxonomy onto status codes: absent
// configuration is 503, validation is 400, anything else is a generic 500.
func writeError(w http.ResponseWriter, resource string, err error) {
	switch {
	case errors.Is(err, gateway.ErrNotConfigured):
		writeJSON(w, http.StatusServiceUnavailable, response{
			Error: "Remote not configured. Using local storage fallback.",
		})
	case errors.Is(err, gateway.ErrIDRequired):
		singular := strings.TrimSuffix(resource, "s")
		writeJSON(w, http.StatusBadRequest, response{
			Error: fmt.Sprintf("%s%s ID required", strings.ToUpper(singular[:1]), singular[1:]),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, response{Error: err.Error()})
	}
}

// Handler routes the three collection endpoints.
type Handler struct {
	gw *gateway.Client
}

func NewHandler(gw *gateway.Client) *Handler {
	return &Handler{gw: gw}
}

// Register attaches the API routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/tasks", h.handleTasks)
	mux.HandleFunc("/api/programs", h.handlePrograms)
	mux.HandleFunc("/api/projects", h.handleProjects)
}

// decodeUpdate splits an update body into the row id and the patch fields.
func decodeUpdate(r *http.Request) (string, map[string]any, error) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", nil, fmt.Errorf("invalid request body")
	}
	id, _ := body["id"].(string)
	delete(body, "id")
	return id, body, nil
}

func (h *Handler) handleTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		rows, err := h.gw.ListTasks(ctx)
		if err != nil {
			writeError(w, "tasks", err)
			return
		}
		writeData(w, http.StatusOK, rows)

	case http.MethodPost:
		var t models.RemoteTask
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			writeJSON(w, http.StatusBadRequest, response{Error: "invalid request body"})
			return
		}
		created, err := h.gw.CreateTask(ctx, t)
		if err != nil {
			writeError(w, "tasks", err)
			return
		}
		writeData(w, http.StatusCreated, created)

	case http.MethodPut:
		id, patch, err := decodeUpdate(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, response{Error: err.Error()})
			return
		}
		updated, err := h.gw.UpdateTask(ctx, id, patch)
		if err != nil {
			writeError(w, "tasks", err)
			return
		}
		writeData(w, http.StatusOK, updated)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if err := h.gw.DeleteTask(ctx, id); err != nil {
			writeError(w, "tasks", err)
			return
		}
		writeData(w, http.StatusOK, struct{}{})

	default:
		writeJSON(w, http.StatusMethodNotAllowed, response{Error: "method not allowed"})
	}
}

func (h *Handler) handlePrograms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		rows, err := h.gw.ListPrograms(ctx)
		if err != nil {
			writeError(w, "programs", err)
			return
		}
		writeData(w, http.StatusOK, rows)

	case http.MethodPost:
		var p models.Program
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, response{Error: "invalid request body"})
			return
		}
		created, err := h.gw.CreateProgram(ctx, p)
		if err != nil {
			writeError(w, "programs", err)
			return
		}
		writeData(w, http.StatusCreated, created)

	case http.MethodPut:
		id, patch, err := decodeUpdate(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, response{Error: err.Error()})
			return
		}
		updated, err := h.gw.UpdateProgram(ctx, id, patch)
		if err != nil {
			writeError(w, "programs", err)
			return
		}
		writeData(w, http.StatusOK, updated)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if err := h.gw.DeleteProgram(ctx, id); err != nil {
			writeError(w, "programs", err)
			return
		}
		writeData(w, http.StatusOK, struct{}{})

	default:
		writeJSON(w, http.StatusMethodNotAllowed, response{Error: "method not allowed"})
	}
}

func (h *Handler) handleProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		rows, err := h.gw.ListProjects(ctx)
		if err != nil {
			writeError(w, "projects", err)
			return
		}
		writeData(w, http.StatusOK, rows)

	case http.MethodPost:
		var p models.Project
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeJSON(w, http.StatusBadRequest, response{Error: "invalid request body"})
			return
		}
		created, err := h.gw.CreateProject(ctx, p)
		if err != nil {
			writeError(w, "projects", err)
			return
		}
		writeData(w, http.StatusCreated, created)

	case http.MethodPut:
		id, patch, err := decodeUpdate(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, response{Error: err.Error()})
			return
		}
		updated, err := h.gw.UpdateProject(ctx, id, patch)
		if err != nil {
			writeError(w, "projects", err)
			return
		}
		writeData(w, http.StatusOK, updated)

	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if err := h.gw.DeleteProject(ctx, id); err != nil {
			writeError(w, "projects", err)
			return
		}
		writeData(w, http.StatusOK, struct{}{})

	default:
		writeJSON(w, http.StatusMethodNotAllowed, response{Error: "method not allowed"})
	}
}

// ListenAndServe runs the API server until the context is canceled.
func ListenAndServe(ctx context.Context, addr string, h *Handler) error {
	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("API server listening", "addr", addr)

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
