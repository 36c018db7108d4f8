package providers

import "context"

// ChatProvider relays a user prompt to a generative-language API.
type ChatProvider interface {
	// Relay wraps the prompt in the advisory instruction template, forwards it
	// upstream and returns the text of the first response candidate.
	Relay(ctx context.Context, prompt string) (string, error)
}
