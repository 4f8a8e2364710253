package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscoturdera00/resume-automation/internal/shared/server/respond"
	"github.com/franciscoturdera00/resume-automation/resume/model"
	"github.com/franciscoturdera00/resume-automation/resume/render"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func registerRenderRoutes(rg *gin.RouterGroup) {
	rg.POST("/render", renderResume)
}

// renderResume turns a resume JSON body into a DOCX attachment without
// touching the LLM or storage.
func renderResume(c *gin.Context) {
	var doc model.ResumeDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid resume body", err.Error())
		return
	}

	data, err := render.Render(doc, render.DefaultStyle())
	if err != nil {
		var missing model.MissingFieldError
		if errors.As(err, &missing) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume is missing a required field", gin.H{"field": missing.Field})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "render_error", "failed to render resume", nil)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\"resume.docx\"")
	c.Data(http.StatusOK, docxContentType, data)
}
