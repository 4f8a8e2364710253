package runs

import (
	"errors"
	"time"
)

// Run statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run records one tailoring pipeline execution and where its artifacts live.
type Run struct {
	ID            string
	Company       string
	JobTitle      string
	JobDescKey    string
	ResumeJSONKey string
	DocxKey       string
	Status        string
	CreatedAt     time.Time
}

// ErrNotFound indicates the run does not exist.
var ErrNotFound = errors.New("run not found")
