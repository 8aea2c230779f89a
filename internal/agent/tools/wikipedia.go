package tools

import (
	"context"

	"chat-with-search/internal/agent"
	"chat-with-search/pkg/wikipedia"
)

const WikipediaToolName = "wikipedia"

// WikipediaTool returns page summaries from Wikipedia.
type WikipediaTool struct {
	client wikipedia.IWikipedia
}

// NewWikipediaTool creates a new Wikipedia lookup tool.
func NewWikipediaTool(client wikipedia.IWikipedia) agent.Tool {
	return &WikipediaTool{client: client}
}

func (t *WikipediaTool) Name() string {
	return WikipediaToolName
}

func (t *WikipediaTool) Description() string {
	return "Look up Wikipedia. Useful for general questions about people, places, companies, facts, historical events or other subjects. Input should be a search query."
}

func (t *WikipediaTool) Parameters() map[string]interface{} {
	return queryParameters("Wikipedia search query")
}

func (t *WikipediaTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	return runQuery(ctx, WikipediaToolName, t.client, params)
}
