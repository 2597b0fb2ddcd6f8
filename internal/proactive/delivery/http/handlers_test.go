package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	pkgLog "executive-assistant-ai/pkg/log"
)

type mockUseCase struct {
	ranAction string
	known     bool
	names     []string
}

func (m *mockUseCase) Start()             {}
func (m *mockUseCase) Stop()              {}
func (m *mockUseCase) JobNames() []string { return m.names }

func (m *mockUseCase) RunAction(_ context.Context, name string) bool {
	m.ranAction = name
	return m.known
}

func newTestRouter(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(pkgLog.NewNop(), uc)
	r.POST("/run-action", h.RunAction)
	r.GET("/jobs", h.ListJobs)
	return r
}

func TestRunActionHandler(t *testing.T) {
	uc := &mockUseCase{known: true}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/run-action", strings.NewReader(`{"action":"daily_briefing"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if uc.ranAction != "daily_briefing" {
		t.Errorf("ran action %q", uc.ranAction)
	}

	var resp struct {
		Data struct {
			Action    string `json:"action"`
			Triggered bool   `json:"triggered"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Data.Triggered {
		t.Error("expected triggered=true")
	}
}

func TestRunActionHandlerUnknownAction(t *testing.T) {
	uc := &mockUseCase{known: false}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/run-action", strings.NewReader(`{"action":"bogus"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Data struct {
			Triggered bool `json:"triggered"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Triggered {
		t.Error("expected triggered=false for unknown action")
	}
}

func TestRunActionHandlerRejectsMissingAction(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/run-action", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListJobsHandler(t *testing.T) {
	uc := &mockUseCase{names: []string{"daily_briefing", "urgent_task_sweep"}}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Data struct {
			Jobs []string `json:"jobs"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Jobs) != 2 || resp.Data.Jobs[0] != "daily_briefing" {
		t.Errorf("jobs = %v", resp.Data.Jobs)
	}
}
