package tools

import (
	"context"
	"fmt"
	"strings"
)

// runner is the text interface shared by the search clients.
type runner interface {
	Run(ctx context.Context, query string) (string, error)
}

// queryParameters is the JSON schema every lookup tool takes.
func queryParameters(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": description,
			},
		},
		"required": []string{"query"},
	}
}

// runQuery extracts the query argument and formats the client text for the model.
func runQuery(ctx context.Context, name string, r runner, params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query parameter is required")
	}

	text, err := r.Run(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", name, err)
	}

	return map[string]interface{}{"result": text}, nil
}
