package ports

import "context"

// IdentifierPrompt collects a license number from the user when a gated
// assignment needs one. ok is false when the prompt was cancelled; an
// empty value with ok true means the participant declined.
type IdentifierPrompt interface {
	Prompt(ctx context.Context, title, message string) (value string, ok bool, err error)
}

// IdentifierPromptFunc adapts a function to IdentifierPrompt.
type IdentifierPromptFunc func(ctx context.Context, title, message string) (string, bool, error)

func (f IdentifierPromptFunc) Prompt(ctx context.Context, title, message string) (string, bool, error) {
	return f(ctx, title, message)
}
