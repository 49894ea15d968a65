package services

import (
	"strings"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

// FormatTranscript serializes ordered messages into a flat speaker-attributed
// text block, one "sender: content" line per message, preserving
// chronological order. No truncation here: the window upstream bounds the
// input, and an oversized prompt is the invoker's failure mode.
func FormatTranscript(messages []repository.Message) string {
	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(msg.SenderName)
		b.WriteString(": ")
		b.WriteString(msg.Content)
	}
	return b.String()
}
