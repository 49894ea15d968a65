package llm

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the text-generation service could not be reached,
// rejected the request, or timed out.
var ErrUnavailable = errors.New("model unavailable")

// ErrEmptyResponse indicates the service answered but produced no text.
var ErrEmptyResponse = errors.New("model returned empty response")

// Invoker sends a prompt to an external text-generation service and returns
// the raw response text. Implementations must not retry and must not inspect
// or transform the model's output; interpreting the text belongs to the
// caller. The interface is deliberately narrow so tests can substitute a
// deterministic stub.
type Invoker interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
