package tools

import (
	"context"

	"chat-with-search/internal/agent"
	"chat-with-search/pkg/arxiv"
)

const ArxivToolName = "arxiv"

// ArxivTool looks up scientific papers on arxiv.org.
type ArxivTool struct {
	client arxiv.IArxiv
}

// NewArxivTool creates a new arXiv lookup tool.
func NewArxivTool(client arxiv.IArxiv) agent.Tool {
	return &ArxivTool{client: client}
}

func (t *ArxivTool) Name() string {
	return ArxivToolName
}

func (t *ArxivTool) Description() string {
	return "Look up scientific articles on arxiv.org. Useful for questions about physics, mathematics, computer science, " +
		"quantitative biology, quantitative finance, statistics, electrical engineering and economics. " +
		"Input should be a search query or arXiv identifiers."
}

func (t *ArxivTool) Parameters() map[string]interface{} {
	return queryParameters("Search query or space separated arXiv identifiers")
}

func (t *ArxivTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	return runQuery(ctx, ArxivToolName, t.client, params)
}
