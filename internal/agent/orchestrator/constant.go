package orchestrator

// Log prefixes
const (
	LogPrefixReply = "internal.agent.orchestrator.Reply"
)

// Time context template
const (
	TimeContextTemplate = `

[SYSTEM CONTEXT - current time]
- Today: %s (%s)
- Timezone: %s
Use this date when the user refers to "today", "this year" or recent events.`
)

// System prompt
const (
	SystemPromptAgent = `You are a helpful assistant that can search the web.
You have access to a web search tool, an arXiv lookup tool and a Wikipedia lookup tool.
Use a tool when the question needs current or factual information you are unsure about, otherwise answer directly.
Call tools with a JSON object of the form {"query": "..."}.
Answer in Markdown and keep answers concise.`
)

// Error messages
const (
	ErrMsgAgentLLMError    = "agent LLM error at step %d"
	ErrMsgToolNotFound     = "tool not found"
	ErrMsgMaxStepsExceeded = "Sorry, I could not finish reasoning within the allowed number of steps. Please try splitting your question into smaller parts."
)

// Log messages
const (
	LogMsgAgentStep          = "Agent step %d/%d"
	LogMsgAgentFinished      = "Agent finished at step %d"
	LogMsgAgentCallingTool   = "Agent calling tool: %s with args: %+v"
	LogMsgToolNotFound       = "Tool %s not found"
	LogMsgToolExecutionError = "Tool %s failed: %v"
	LogMsgAgentMaxSteps      = "Agent exceeded max steps (%d)"
)

// Configuration
const (
	DefaultMaxAgentSteps = 5
	DefaultTimezone      = "UTC"
)
