package tools

import (
	"latticework/backend/internal/adapter"
)

// Tool names - Knowledge Tools
const (
	ToolListModels     = "list_mental_models"
	ToolSearchModels   = "search_mental_models"
	ToolGetModel       = "get_mental_model"
	ToolGetConnections = "get_model_connections"
)

// Tool names - Web Tools
const (
	ToolReadArticle = "read_article"
)

// GetAllTools returns all available tools for the agent
func GetAllTools() []adapter.Tool {
	tools := []adapter.Tool{}

	// Knowledge Tools
	tools = append(tools, GetKnowledgeTools()...)

	// Web Tools
	tools = append(tools, GetWebTools()...)

	return tools
}
