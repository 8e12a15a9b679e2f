// Package llm is the text-generation capability consumed by the assistant.
// The assistant treats providers as unreliable collaborators: any error or
// empty completion downgrades the turn to a canned fallback, so providers
// here only need to report failures honestly.
package llm

import "context"

// Provider defines the interface for text-generation providers.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
