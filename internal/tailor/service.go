package tailor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/franciscoturdera00/resume-automation/internal/llm"
	"github.com/franciscoturdera00/resume-automation/internal/runs"
	"github.com/franciscoturdera00/resume-automation/internal/shared/metrics"
	"github.com/franciscoturdera00/resume-automation/internal/shared/storage/object"
	"github.com/franciscoturdera00/resume-automation/internal/shared/telemetry"
	"github.com/franciscoturdera00/resume-automation/internal/shared/util"
	"github.com/franciscoturdera00/resume-automation/resume/model"
	"github.com/franciscoturdera00/resume-automation/resume/render"
)

// Artifact file names within a run's storage directory.
const (
	jobDescFileName    = "job_description.txt"
	resumeJSONFileName = "tailored_resume.json"
	docxFileName       = "resume.docx"
)

// LLMError wraps a provider failure so callers can map it to an upstream error.
type LLMError struct {
	Err error
}

func (e *LLMError) Error() string { return fmt.Sprintf("llm: %v", e.Err) }
func (e *LLMError) Unwrap() error { return e.Err }

// BadOutputError indicates the model returned JSON that does not describe a
// renderable resume.
type BadOutputError struct {
	Reason string
	Err    error
}

func (e *BadOutputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bad model output: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("bad model output: %s", e.Reason)
}

func (e *BadOutputError) Unwrap() error { return e.Err }

// Service runs the tailoring pipeline: LLM call, validation, DOCX render,
// artifact storage, run record.
type Service struct {
	LLM   llm.Client
	Store object.ObjectStore
	Runs  runs.Repo
	Style render.StyleSpec
}

// NewService constructs a Service with the default document style.
func NewService(client llm.Client, store object.ObjectStore, repo runs.Repo) *Service {
	return &Service{
		LLM:   client,
		Store: store,
		Runs:  repo,
		Style: render.DefaultStyle(),
	}
}

// RunInput is one tailoring request.
type RunInput struct {
	MasterResume   json.RawMessage
	JobDescription string
}

// RunResult describes a completed pipeline execution.
type RunResult struct {
	Run      runs.Run
	Tailored model.TailoredResume
	Docx     []byte
}

// Run executes the pipeline and returns the recorded run with the rendered
// document bytes.
func (s *Service) Run(ctx context.Context, input RunInput) (RunResult, error) {
	metrics.IncTailorStarted()
	started := time.Now()
	result, err := s.run(ctx, input)
	metrics.ObserveTailorDurationMs(float64(time.Since(started)) / float64(time.Millisecond))
	if err != nil {
		metrics.IncTailorFailed()
		return RunResult{}, err
	}
	metrics.IncTailorCompleted()
	return result, nil
}

func (s *Service) run(ctx context.Context, input RunInput) (RunResult, error) {
	if strings.TrimSpace(input.JobDescription) == "" {
		return RunResult{}, &BadOutputError{Reason: "empty job description"}
	}
	if len(bytes.TrimSpace(input.MasterResume)) == 0 {
		return RunResult{}, &BadOutputError{Reason: "empty master resume"}
	}

	raw, err := s.LLM.TailorResume(ctx, llm.TailorInput{
		MasterResume:   input.MasterResume,
		JobDescription: input.JobDescription,
	})
	if err != nil {
		return RunResult{}, &LLMError{Err: err}
	}

	cleaned := llm.StripFences(string(raw))

	var tailored model.TailoredResume
	if err := json.Unmarshal([]byte(cleaned), &tailored); err != nil {
		return RunResult{}, &BadOutputError{Reason: "unparseable JSON", Err: err}
	}
	if strings.TrimSpace(tailored.Company) == "" {
		return RunResult{}, &BadOutputError{Reason: "missing company"}
	}
	if strings.TrimSpace(tailored.JobTitle) == "" {
		return RunResult{}, &BadOutputError{Reason: "missing job_title"}
	}
	if err := tailored.Validate(); err != nil {
		return RunResult{}, &BadOutputError{Reason: "incomplete resume", Err: err}
	}

	docx, err := render.Render(tailored.ResumeDocument, s.Style)
	if err != nil {
		return RunResult{}, fmt.Errorf("render: %w", err)
	}

	baseKey := util.Slugify(tailored.Company) + "/" + util.Slugify(tailored.JobTitle)

	if _, err := s.Store.Save(ctx, baseKey+"/"+jobDescFileName, "text/plain; charset=utf-8", strings.NewReader(input.JobDescription)); err != nil {
		return RunResult{}, fmt.Errorf("save job description: %w", err)
	}

	resumeJSON, err := json.MarshalIndent(tailored, "", "  ")
	if err != nil {
		return RunResult{}, fmt.Errorf("marshal tailored resume: %w", err)
	}
	if _, err := s.Store.Save(ctx, baseKey+"/"+resumeJSONFileName, "application/json", bytes.NewReader(resumeJSON)); err != nil {
		return RunResult{}, fmt.Errorf("save tailored resume: %w", err)
	}

	if _, err := s.Store.Save(ctx, baseKey+"/"+docxFileName, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", bytes.NewReader(docx)); err != nil {
		return RunResult{}, fmt.Errorf("save docx: %w", err)
	}

	run := runs.Run{
		ID:            uuid.NewString(),
		Company:       tailored.Company,
		JobTitle:      tailored.JobTitle,
		JobDescKey:    baseKey + "/" + jobDescFileName,
		ResumeJSONKey: baseKey + "/" + resumeJSONFileName,
		DocxKey:       baseKey + "/" + docxFileName,
		Status:        runs.StatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Runs.Create(ctx, run); err != nil {
		return RunResult{}, fmt.Errorf("record run: %w", err)
	}

	telemetry.Info("tailor.complete", map[string]any{
		"run_id":    run.ID,
		"company":   run.Company,
		"job_title": run.JobTitle,
		"docx_key":  run.DocxKey,
	})

	return RunResult{Run: run, Tailored: tailored, Docx: docx}, nil
}
