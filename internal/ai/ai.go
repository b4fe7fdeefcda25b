package ai

import "context"

// Model is the generative collaborator: opaque text in, free text out. No
// output schema is guaranteed; callers that need structure parse it
// themselves.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
