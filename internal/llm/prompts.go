package llm

import _ "embed"

//go:embed prompts/tailor_prompt.txt
var tailorPrompt string

// TailorPrompt returns the system prompt used for resume tailoring.
func TailorPrompt() string {
	return tailorPrompt
}
