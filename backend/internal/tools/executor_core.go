package tools

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"latticework/backend/internal/adapter"
	"latticework/backend/internal/catalog"
	"latticework/backend/pkg/logger"
)

// ExecutionContext holds context for tool execution
type ExecutionContext struct {
	SessionID string
	Platform  string // "api", "cli"
}

// ToolResult represents the result of a tool execution
type ToolResult struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Executor handles tool execution against the loaded catalog
type Executor struct {
	catalog    *catalog.Catalog
	httpClient *http.Client
	logger     *zap.Logger
}

// NewExecutor creates a new tool executor
func NewExecutor(c *catalog.Catalog) *Executor {
	return &Executor{
		catalog: c,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.Get(),
	}
}

// Execute runs a tool call and returns the result
func (e *Executor) Execute(ctx context.Context, execCtx *ExecutionContext, toolCall adapter.ToolCall) *ToolResult {
	e.logger.Debug("Executing tool",
		zap.String("tool", toolCall.Name),
		zap.String("session_id", execCtx.SessionID),
	)

	switch toolCall.Name {
	// Knowledge Tools
	case ToolListModels:
		return e.executeListModels()
	case ToolSearchModels:
		return e.executeSearchModels(toolCall.Arguments)
	case ToolGetModel:
		return e.executeGetModel(toolCall.Arguments)
	case ToolGetConnections:
		return e.executeGetConnections(toolCall.Arguments)

	// Web Tools
	case ToolReadArticle:
		return e.executeReadArticle(ctx, toolCall.Arguments)

	default:
		e.logger.Warn("Unknown tool", zap.String("tool", toolCall.Name))
		return &ToolResult{
			Success: false,
			Error:   fmt.Sprintf("Unknown tool: %s", toolCall.Name),
		}
	}
}
