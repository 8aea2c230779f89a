package tools

import (
	"fmt"

	"chat-with-search/config"
	"chat-with-search/internal/agent"
	"chat-with-search/pkg/arxiv"
	"chat-with-search/pkg/duckduckgo"
	"chat-with-search/pkg/wikipedia"
)

// NewRegistry builds the search, arxiv and wikipedia tools, in that order,
// skipping the ones disabled in cfg.
func NewRegistry(cfg config.ToolsConfig) (*agent.ToolRegistry, error) {
	registry := agent.NewToolRegistry()

	if cfg.Search.Enabled {
		client, err := duckduckgo.New(duckduckgo.Config{
			BaseURL:       cfg.Search.BaseURL,
			MaxResults:    cfg.Search.MaxResults,
			RatePerSecond: cfg.Search.RatePerSecond,
			Timeout:       cfg.Search.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("search tool: %w", err)
		}
		registry.Register(NewSearchTool(client))
	}

	if cfg.Arxiv.Enabled {
		client, err := arxiv.New(arxiv.Config{
			BaseURL:            cfg.Arxiv.BaseURL,
			TopKResults:        cfg.Arxiv.TopKResults,
			DocContentCharsMax: cfg.Arxiv.DocContentCharsMax,
			Timeout:            cfg.Arxiv.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("arxiv tool: %w", err)
		}
		registry.Register(NewArxivTool(client))
	}

	if cfg.Wikipedia.Enabled {
		client, err := wikipedia.New(wikipedia.Config{
			BaseURL:            cfg.Wikipedia.BaseURL,
			TopKResults:        cfg.Wikipedia.TopKResults,
			DocContentCharsMax: cfg.Wikipedia.DocContentCharsMax,
			Timeout:            cfg.Wikipedia.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("wikipedia tool: %w", err)
		}
		registry.Register(NewWikipediaTool(client))
	}

	return registry, nil
}
