package tailor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/franciscoturdera00/resume-automation/internal/jobinput"
	"github.com/franciscoturdera00/resume-automation/internal/shared/server/respond"
)

// Handler wires the tailoring pipeline to HTTP.
type Handler struct {
	Svc           *Service
	Resolver      *jobinput.Resolver
	DefaultMaster json.RawMessage
}

// NewHandler constructs a Handler. defaultMaster is the master resume used
// when a request does not carry its own.
func NewHandler(svc *Service, resolver *jobinput.Resolver, defaultMaster json.RawMessage) *Handler {
	return &Handler{Svc: svc, Resolver: resolver, DefaultMaster: defaultMaster}
}

// RegisterRoutes attaches tailoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tailor", h.tailor)
}

type tailorRequest struct {
	JobInput     string          `json:"jobInput"`
	MasterResume json.RawMessage `json:"masterResume,omitempty"`
}

type tailorResponse struct {
	RunID       string `json:"runId"`
	Company     string `json:"company"`
	JobTitle    string `json:"jobTitle"`
	DownloadURL string `json:"downloadUrl"`
}

func (h *Handler) tailor(c *gin.Context) {
	var req tailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.JobInput) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "jobInput is required", nil)
		return
	}

	master := req.MasterResume
	if len(master) == 0 {
		master = h.DefaultMaster
	}
	if len(master) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "no master resume configured; provide masterResume", nil)
		return
	}

	jobText, err := h.Resolver.Resolve(c.Request.Context(), req.JobInput)
	if err != nil {
		if errors.Is(err, jobinput.ErrLinkedIn) {
			respond.Error(c, http.StatusUnprocessableEntity, "unsupported_source", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusBadGateway, "fetch_failed", "failed to resolve job input", err.Error())
		return
	}

	result, err := h.Svc.Run(c.Request.Context(), RunInput{
		MasterResume:   master,
		JobDescription: jobText,
	})
	if err != nil {
		var llmErr *LLMError
		var badOutput *BadOutputError
		switch {
		case errors.As(err, &llmErr):
			respond.Error(c, http.StatusBadGateway, "llm_error", "tailoring model failed", nil)
		case errors.As(err, &badOutput):
			respond.Error(c, http.StatusUnprocessableEntity, "bad_model_output", badOutput.Reason, nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "tailoring failed", nil)
		}
		return
	}

	c.Set("runId", result.Run.ID)
	respond.JSON(c, http.StatusCreated, tailorResponse{
		RunID:       result.Run.ID,
		Company:     result.Run.Company,
		JobTitle:    result.Run.JobTitle,
		DownloadURL: "/api/v1/runs/" + result.Run.ID + "/download",
	})
}
