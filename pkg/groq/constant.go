package groq

import "time"

const (
	// DefaultModel is the default Groq model
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultBaseURL is the OpenAI-compatible Groq endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// codeToolUseFailed is returned by Groq when the model emits a tool call
	// that does not match the declared schema.
	codeToolUseFailed = "tool_use_failed"
)
