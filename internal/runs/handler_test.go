package runs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/franciscoturdera00/resume-automation/internal/shared/storage/object/local"
)

func newTestRouter(t *testing.T, h *Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func seedRun(t *testing.T, repo Repo, run Run) {
	t.Helper()
	if err := repo.Create(context.Background(), run); err != nil {
		t.Fatalf("seed run: %v", err)
	}
}

func TestListReturnsNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Now().UTC()
	seedRun(t, repo, Run{ID: "old", Company: "Acme", JobTitle: "Engineer", CreatedAt: now.Add(-time.Hour)})
	seedRun(t, repo, Run{ID: "new", Company: "Beta", JobTitle: "Staff Engineer", CreatedAt: now})

	router := newTestRouter(t, NewHandler(repo, local.New(t.TempDir())))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var got []RunResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].RunID != "new" || got[1].RunID != "old" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestGetUnknownRunReturns404(t *testing.T) {
	router := newTestRouter(t, NewHandler(NewMemoryRepo(), local.New(t.TempDir())))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestDownloadStreamsStoredDocx(t *testing.T) {
	repo := NewMemoryRepo()
	store := local.New(t.TempDir())

	payload := "PK docx bytes"
	if _, err := store.Save(context.Background(), "acme/engineer/resume.docx", docxContentType, strings.NewReader(payload)); err != nil {
		t.Fatalf("store save: %v", err)
	}
	seedRun(t, repo, Run{
		ID:        "run-1",
		Company:   "Acme",
		JobTitle:  "Engineer",
		DocxKey:   "acme/engineer/resume.docx",
		CreatedAt: time.Now().UTC(),
	})

	router := newTestRouter(t, NewHandler(repo, store))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/run-1/download", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != docxContentType {
		t.Fatalf("unexpected content type: %s", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); cd != "attachment; filename=\"Acme-Engineer.docx\"" {
		t.Fatalf("unexpected content disposition: %s", cd)
	}
	if resp.Body.String() != payload {
		t.Fatalf("unexpected body: %q", resp.Body.String())
	}
}

func TestDownloadRunWithoutDocxReturns404(t *testing.T) {
	repo := NewMemoryRepo()
	seedRun(t, repo, Run{ID: "run-1", Company: "Acme", JobTitle: "Engineer", CreatedAt: time.Now().UTC()})

	router := newTestRouter(t, NewHandler(repo, local.New(t.TempDir())))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/runs/run-1/download", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
