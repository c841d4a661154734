// Package llm wraps the language-model provider behind a small interface:
// text generation with a structured output contract, and speech-to-text
// transcription for audio answers.
package llm

import (
	"context"
	"fmt"
)

// SchemaKind selects the structured output contract for a generation request.
// It is a closed set; provider implementations map each kind to their native
// schema mechanism.
type SchemaKind int

const (
	// SchemaMessage requests free-form text with no output contract.
	SchemaMessage SchemaKind = iota
	// SchemaChallenge requests the challenge payload shape.
	SchemaChallenge
	// SchemaFeedback requests the feedback payload shape.
	SchemaFeedback
)

func (k SchemaKind) String() string {
	switch k {
	case SchemaMessage:
		return "message"
	case SchemaChallenge:
		return "challenge"
	case SchemaFeedback:
		return "feedback"
	default:
		return fmt.Sprintf("SchemaKind(%d)", int(k))
	}
}

// Provider is the LLM client used by the generation engine. Implementations
// must honor context cancellation; both calls are network round-trips.
type Provider interface {
	// GenerateText sends a prompt and returns the raw response content.
	// When schema is not SchemaMessage, the response is JSON conforming to
	// the kind's output contract.
	GenerateText(ctx context.Context, prompt string, schema SchemaKind) (string, error)

	// TranscribeAudio converts the audio file at path to text.
	TranscribeAudio(ctx context.Context, path string) (string, error)
}

// ErrProviderUnavailable wraps transport and provider-side failures.
// Callers treat it as "could not generate", never as a caller fault.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "llm provider unavailable"
	}
	return fmt.Sprintf("llm provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider answered but the response was
// unusable (empty choices, empty transcription).
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid llm response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
