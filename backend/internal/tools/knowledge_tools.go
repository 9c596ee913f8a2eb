package tools

import (
	"latticework/backend/internal/adapter"
)

// GetKnowledgeTools returns the mental model lookup tools
func GetKnowledgeTools() []adapter.Tool {
	return []adapter.Tool{
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolListModels,
				Description: "List all mental models in the knowledge graph, grouped by category. Use this to get an overview of the available models or when a search turns up nothing.",
				Parameters: map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
					"required":   []string{},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolSearchModels,
				Description: "Search for mental models matching a query. Searches titles, categories, and descriptions and returns the best matches with their links.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"query": map[string]interface{}{
							"type":        "string",
							"description": "The search term to find relevant mental models",
						},
					},
					"required": []string{"query"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetModel,
				Description: "Get detailed information about a specific mental model, including its description, cross-linked models, and other models in the same category.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"name": map[string]interface{}{
							"type":        "string",
							"description": "The name or slug of the mental model to look up",
						},
					},
					"required": []string{"name"},
				},
			},
		},
		{
			Type: "function",
			Function: adapter.FunctionDefinition{
				Name:        ToolGetConnections,
				Description: "Get the connections a mental model has to other models in the knowledge graph, with the reason for each link.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"name": map[string]interface{}{
							"type":        "string",
							"description": "The name or slug of the mental model",
						},
					},
					"required": []string{"name"},
				},
			},
		},
	}
}
