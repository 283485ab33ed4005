package viewer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fairai-labs/fairctl/internal/domain"
)

// mockRunRepo is an in-memory RunRepository for viewer tests.
type mockRunRepo struct {
	runs []*domain.EvaluationRun
}

func (m *mockRunRepo) Create(_ context.Context, run *domain.EvaluationRun) error {
	m.runs = append(m.runs, run)
	return nil
}

func (m *mockRunRepo) GetByID(_ context.Context, id string) (*domain.EvaluationRun, error) {
	for _, run := range m.runs {
		if run.ID == id {
			return run, nil
		}
	}
	return nil, nil
}

func (m *mockRunRepo) List(_ context.Context, limit int64) ([]*domain.EvaluationRun, error) {
	if int64(len(m.runs)) < limit {
		limit = int64(len(m.runs))
	}
	return m.runs[:limit], nil
}

func testServer(t *testing.T, repo *mockRunRepo) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(repo, logger, 0)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestRunList_Empty(t *testing.T) {
	s := testServer(t, &mockRunRepo{})
	rec := get(t, s, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No evaluations recorded yet") {
		t.Error("empty state message missing")
	}
}

func TestRunList_ShowsRuns(t *testing.T) {
	repo := &mockRunRepo{runs: []*domain.EvaluationRun{{
		ID:        "run-1",
		Kind:      domain.RunKindLoan,
		ModelFile: "model.pkl",
		Threshold: 0.5,
		Status:    domain.RunStatusSuccess,
		Metrics:   `{"overall":{"total_records":614}}`,
		CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}}}
	s := testServer(t, repo)

	rec := get(t, s, "/")
	body := rec.Body.String()
	if !strings.Contains(body, "model.pkl") {
		t.Error("model file missing from run list")
	}
	if !strings.Contains(body, "/runs/run-1") {
		t.Error("detail link missing")
	}
}

func TestRunDetail_NotFound(t *testing.T) {
	s := testServer(t, &mockRunRepo{})
	rec := get(t, s, "/runs/nope")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestAPIRun(t *testing.T) {
	repo := &mockRunRepo{runs: []*domain.EvaluationRun{{
		ID:        "run-2",
		Kind:      domain.RunKindFace,
		ModelFile: "(default)",
		Threshold: 0.5,
		Status:    domain.RunStatusSuccess,
		Metrics:   `{"bias":0}`,
		CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}}}
	s := testServer(t, repo)

	rec := get(t, s, "/api/runs/run-2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out struct {
		Status string `json:"status"`
		Run    struct {
			ID      string          `json:"id"`
			Kind    string          `json:"kind"`
			Metrics json.RawMessage `json:"metrics"`
		} `json:"run"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Status != "success" || out.Run.Kind != domain.RunKindFace {
		t.Errorf("unexpected payload: %+v", out)
	}
	if string(out.Run.Metrics) != `{"bias":0}` {
		t.Errorf("metrics = %s", out.Run.Metrics)
	}
}

func TestHealth(t *testing.T) {
	s := testServer(t, &mockRunRepo{})
	rec := get(t, s, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
