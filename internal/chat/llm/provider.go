package llm

import "context"

type Provider interface {
	Generate(ctx context.Context, query string, matches []string, messageHistory []string) (string, error)
	// GenerateStream calls emit once per model chunk, in order. Returning an
	// error from emit aborts the stream.
	GenerateStream(ctx context.Context, query string, matches []string, messageHistory []string, emit func(chunk string) error) error
}
