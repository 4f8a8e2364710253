package runs

import "time"

// RunResponse is the outward-facing representation of a run.
type RunResponse struct {
	RunID     string    `json:"runId"`
	Company   string    `json:"company"`
	JobTitle  string    `json:"jobTitle"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toResponse(run Run) RunResponse {
	return RunResponse{
		RunID:     run.ID,
		Company:   run.Company,
		JobTitle:  run.JobTitle,
		Status:    run.Status,
		CreatedAt: run.CreatedAt,
	}
}
