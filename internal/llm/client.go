package llm

import "context"

// Message is one turn of a model conversation. Role follows the
// OpenAI convention: "system", "user", or "assistant".
type Message struct {
	Role    string
	Content string
}

// Usage is the token accounting reported by the provider.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// Client is the narrative-model boundary. Implementations must honour
// ctx cancellation and deadlines; every call site in this codebase
// passes a bounded context and degrades to canned content on error.
type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}
