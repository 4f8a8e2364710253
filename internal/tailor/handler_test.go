package tailor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/franciscoturdera00/resume-automation/internal/jobinput"
	"github.com/franciscoturdera00/resume-automation/internal/runs"
	"github.com/franciscoturdera00/resume-automation/internal/shared/storage/object/local"
)

var errTest = errors.New("llm down")

func newTestHandler(t *testing.T, stub *stubLLM, defaultMaster json.RawMessage) (*gin.Engine, *runs.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := runs.NewMemoryRepo()
	svc := NewService(stub, local.New(t.TempDir()), repo)
	h := NewHandler(svc, jobinput.NewResolver(), defaultMaster)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r, repo
}

func postTailor(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tailor", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestTailorEndpointCreatesRun(t *testing.T) {
	router, repo := newTestHandler(t, &stubLLM{response: tailoredJSON}, json.RawMessage(`{"meta":{"name":"Ada"}}`))

	resp := postTailor(t, router, `{"jobInput":"Staff Engineer role at Acme Corp."}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var got tailorResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Company != "Acme Corp" || got.JobTitle != "Staff Engineer" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.DownloadURL != "/api/v1/runs/"+got.RunID+"/download" {
		t.Fatalf("unexpected download url: %s", got.DownloadURL)
	}

	all, err := repo.List(context.Background(), 10, 0)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected 1 recorded run, got %d (err %v)", len(all), err)
	}
}

func TestTailorEndpointRequiresJobInput(t *testing.T) {
	router, _ := newTestHandler(t, &stubLLM{response: tailoredJSON}, json.RawMessage(`{}`))

	resp := postTailor(t, router, `{"jobInput":"  "}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestTailorEndpointRequiresMasterResume(t *testing.T) {
	router, _ := newTestHandler(t, &stubLLM{response: tailoredJSON}, nil)

	resp := postTailor(t, router, `{"jobInput":"role"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestTailorEndpointAcceptsInlineMasterResume(t *testing.T) {
	router, _ := newTestHandler(t, &stubLLM{response: tailoredJSON}, nil)

	resp := postTailor(t, router, `{"jobInput":"role","masterResume":{"meta":{"name":"Ada"}}}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestTailorEndpointRejectsLinkedInURL(t *testing.T) {
	router, _ := newTestHandler(t, &stubLLM{response: tailoredJSON}, json.RawMessage(`{}`))

	resp := postTailor(t, router, `{"jobInput":"https://www.linkedin.com/jobs/view/123"}`)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestTailorEndpointMapsLLMFailureTo502(t *testing.T) {
	router, _ := newTestHandler(t, &stubLLM{err: errTest}, json.RawMessage(`{}`))

	resp := postTailor(t, router, `{"jobInput":"role"}`)
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
}

func TestTailorEndpointMapsBadOutputTo422(t *testing.T) {
	router, _ := newTestHandler(t, &stubLLM{response: "not json"}, json.RawMessage(`{}`))

	resp := postTailor(t, router, `{"jobInput":"role"}`)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}
