package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskloom/taskloom-backend/internal/repository"
)

func TestFormatTranscript(t *testing.T) {
	messages := []repository.Message{
		{SenderName: "Alice", Content: "we need to fix the login bug"},
		{SenderName: "Bob", Content: "I can take it"},
		{SenderName: "Alice", Content: "great, also update the docs"},
	}

	got := FormatTranscript(messages)

	want := "Alice: we need to fix the login bug\n" +
		"Bob: I can take it\n" +
		"Alice: great, also update the docs"
	assert.Equal(t, want, got)
}

func TestFormatTranscript_Empty(t *testing.T) {
	assert.Equal(t, "", FormatTranscript(nil))
	assert.Equal(t, "", FormatTranscript([]repository.Message{}))
}

func TestFormatTranscript_SingleMessage(t *testing.T) {
	got := FormatTranscript([]repository.Message{{SenderName: "Bob", Content: "hello"}})
	assert.Equal(t, "Bob: hello", got)
}

func TestFormatTranscript_PreservesMessageText(t *testing.T) {
	// Content with colons and newlines passes through untouched
	got := FormatTranscript([]repository.Message{
		{SenderName: "Alice", Content: "note: see line 1\nand line 2"},
	})
	assert.Equal(t, "Alice: note: see line 1\nand line 2", got)
}
