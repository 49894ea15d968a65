package services

import (
	"strings"

	"github.com/tidwall/gjson"
)

// TaskDraft is an extracted, not-yet-persisted task proposal. AssignedTo
// holds whatever free-text mention the model produced; it is only resolved
// to a real user at export time.
type TaskDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
}

// ExtractionResult is the structured reading of a model response. It is
// always valid: when the response could not be decoded, Summary carries the
// fence-stripped text and Tasks is empty.
type ExtractionResult struct {
	Summary string      `json:"summary"`
	Tasks   []TaskDraft `json:"tasks"`
}

// ParseExtraction decodes a raw model response into an ExtractionResult.
// The model is untrusted: output may be fenced, truncated, or plain prose.
// This function is total: it never fails. A response that does not decode
// as a JSON object degrades to the stripped text with no tasks, which is
// more useful to the caller than an error.
func ParseExtraction(raw string) ExtractionResult {
	clean := stripCodeFences(raw)

	fallback := ExtractionResult{Summary: clean, Tasks: []TaskDraft{}}

	if !gjson.Valid(clean) {
		return fallback
	}

	root := gjson.Parse(clean)
	if !root.IsObject() {
		return fallback
	}

	// Missing or wrong-typed fields coerce to zero values rather than
	// failing the whole response.
	result := ExtractionResult{
		Summary: root.Get("summary").String(),
		Tasks:   []TaskDraft{},
	}

	tasks := root.Get("tasks")
	if tasks.IsArray() {
		tasks.ForEach(func(_, task gjson.Result) bool {
			result.Tasks = append(result.Tasks, TaskDraft{
				Title:       task.Get("title").String(),
				Description: task.Get("description").String(),
				AssignedTo:  task.Get("assignedTo").String(),
			})
			return true
		})
	}

	return result
}

// stripCodeFences removes triple-backtick fences, with or without a language
// hint, that models commonly wrap structured output in.
func stripCodeFences(text string) string {
	clean := strings.ReplaceAll(text, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}
