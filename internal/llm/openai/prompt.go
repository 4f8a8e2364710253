package openai

import (
	"fmt"

	"github.com/franciscoturdera00/resume-automation/internal/llm"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const systemPromptFixJSON = "You are a JSON repair tool. Return only valid JSON that matches the schema exactly."

// BuildPrompt creates the chat messages for a tailoring request.
func BuildPrompt(input llm.TailorInput) []Message {
	return []Message{
		{Role: "system", Content: llm.TailorPrompt()},
		{Role: "user", Content: buildUserPrompt(input)},
	}
}

func buildFixPrompt(raw []byte) []Message {
	return []Message{
		{Role: "system", Content: systemPromptFixJSON},
		{Role: "user", Content: fixUserPrompt(raw)},
	}
}

func buildUserPrompt(input llm.TailorInput) string {
	return fmt.Sprintf("Job Posting:\n%s\n\nMaster Resume:\n%s", input.JobDescription, string(input.MasterResume))
}

func fixUserPrompt(raw []byte) string {
	return fmt.Sprintf("Fix this JSON to match the schema exactly. Output JSON only:\n%s", string(raw))
}
