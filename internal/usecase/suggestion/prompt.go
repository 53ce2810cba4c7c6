package suggestion

import (
	"encoding/json"
	"fmt"
	"strings"
)

const promptTemplate = `Act as a professional blog editor. Review the following draft:
Title: "%s"
Content: "%s"

Provide two related blog topics and one introductory paragraph suggestion to help the author.
Format your response STRICTLY as a JSON array of strings, like this:
[
  "Related topic: [Topic 1]",
  "Related topic: [Topic 2]",
  "Intro paragraph: [Your intro paragraph]"
]`

// BuildPrompt embeds title and content verbatim in the editor prompt.
func BuildPrompt(title, content string) string {
	return fmt.Sprintf(promptTemplate, title, content)
}

var fenceStripper = strings.NewReplacer("```json", "", "```", "")

// StripFences removes every "```json" and "```" marker from s and trims the
// surrounding whitespace.
func StripFences(s string) string {
	return strings.TrimSpace(fenceStripper.Replace(s))
}

// ParseSuggestions parses a model answer as a JSON array of strings after
// stripping code fences. Any other JSON shape is an error.
func ParseSuggestions(raw string) ([]string, error) {
	cleaned := StripFences(raw)

	var out []string
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}
	// "null" decodes without error into a nil slice
	if out == nil {
		return nil, fmt.Errorf("parse suggestions: response is not a JSON array")
	}
	return out, nil
}
