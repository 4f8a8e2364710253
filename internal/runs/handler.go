package runs

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/franciscoturdera00/resume-automation/internal/shared/server/respond"
	"github.com/franciscoturdera00/resume-automation/internal/shared/storage/object"
	"github.com/franciscoturdera00/resume-automation/internal/shared/util"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Handler wires HTTP handlers to the run repository and artifact store.
type Handler struct {
	Repo  Repo
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo, store object.ObjectStore) *Handler {
	return &Handler{Repo: repo, Store: store}
}

// RegisterRoutes attaches run routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/runs", h.list)
	rg.GET("/runs/:id", h.get)
	rg.GET("/runs/:id/download", h.download)
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	all, err := h.Repo.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list runs", nil)
		return
	}

	resp := make([]RunResponse, 0, len(all))
	for _, run := range all {
		resp = append(resp, toResponse(run))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) get(c *gin.Context) {
	run, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "run not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch run", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(run))
}

func (h *Handler) download(c *gin.Context) {
	run, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "run not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch run", nil)
		}
		return
	}
	if run.DocxKey == "" {
		respond.Error(c, http.StatusNotFound, "not_found", "run has no document", nil)
		return
	}

	reader, err := h.Store.Open(c.Request.Context(), run.DocxKey)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open document", nil)
		return
	}
	defer reader.Close()

	filename := "resume.docx"
	if safe, err := util.SanitizeFileName(run.Company + "-" + run.JobTitle + ".docx"); err == nil {
		filename = safe
	}

	c.Header("Content-Type", docxContentType)
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, reader)
}
