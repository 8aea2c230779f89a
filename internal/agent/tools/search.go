package tools

import (
	"context"

	"chat-with-search/internal/agent"
	"chat-with-search/pkg/duckduckgo"
)

// SearchToolName is the name the model calls web search by.
const SearchToolName = "Search"

// SearchTool searches the web through DuckDuckGo.
type SearchTool struct {
	client duckduckgo.IDuckDuckGo
}

// NewSearchTool creates a new web search tool.
func NewSearchTool(client duckduckgo.IDuckDuckGo) agent.Tool {
	return &SearchTool{client: client}
}

func (t *SearchTool) Name() string {
	return SearchToolName
}

func (t *SearchTool) Description() string {
	return "Search the web with DuckDuckGo. Useful for answering questions about current events. Input should be a search query."
}

func (t *SearchTool) Parameters() map[string]interface{} {
	return queryParameters("Web search query")
}

func (t *SearchTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	return runQuery(ctx, SearchToolName, t.client, params)
}
