// canvas/service/prompt_service.go
package service

import (
	"context"
	"log"
)

// Completer is the contract of the generative-text collaborator: one
// prompt in, one completion out. canvas/genai provides the real client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// PromptService relays prompts to the generative-text collaborator
// verbatim. It holds no state and performs no retry; the caller decides
// what to do with a failed relay.
type PromptService struct {
	completer Completer
}

// NewPromptService creates a new PromptService instance.
func NewPromptService(c Completer) *PromptService {
	return &PromptService{
		completer: c,
	}
}

// Relay forwards the prompt and returns the completion text. An empty
// prompt is rejected before the upstream is touched.
func (ps *PromptService) Relay(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	text, err := ps.completer.Complete(ctx, prompt)
	if err != nil {
		log.Printf("ERROR: Generative-text upstream failed: %v", err)
		return "", ErrUpstreamUnavailable
	}
	return text, nil
}
