package tools

import (
	"latticework/backend/internal/adapter"
)

// GetWebTools returns tools that reach out to the web
func GetWebTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolReadArticle,
				Description: "Fetch a mental model's article page and extract its readable text. Use this when a user wants more depth than the stored description, passing the link from get_mental_model or search_mental_models.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"url": map[string]interface{}{
							"type":        "string",
							"description": "The article URL to fetch",
						},
					},
					"required": []string{"url"},
				},
			},
		},
	}
}
