package llm

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// Client abstracts LLM providers for resume tailoring.
type Client interface {
	TailorResume(ctx context.Context, input TailorInput) (json.RawMessage, error)
}

// TailorInput captures the inputs needed to tailor a resume to a posting.
type TailorInput struct {
	MasterResume   json.RawMessage
	JobDescription string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("LLM not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// TailorResume returns ErrNotImplemented.
func (PlaceholderClient) TailorResume(ctx context.Context, input TailorInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotImplemented
}

var (
	fenceOpen  = regexp.MustCompile("(?m)^```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("(?m)```\\s*$")
)

// StripFences removes accidental markdown code fences around model output.
func StripFences(raw string) string {
	raw = fenceOpen.ReplaceAllString(raw, "")
	raw = fenceClose.ReplaceAllString(raw, "")
	return strings.TrimSpace(raw)
}
