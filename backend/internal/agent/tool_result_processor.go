package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"latticework/backend/internal/adapter"
	"latticework/backend/internal/tools"
)

// ToolResultProcessor handles processing of tool execution results
type ToolResultProcessor struct {
	logger *zap.Logger
}

// NewToolResultProcessor creates a new tool result processor
func NewToolResultProcessor(logger *zap.Logger) *ToolResultProcessor {
	return &ToolResultProcessor{
		logger: logger,
	}
}

// ProcessToolResults executes each tool call and folds the outcomes into
// strings the next LLM pass can read as context
func (p *ToolResultProcessor) ProcessToolResults(ctx context.Context, toolCalls []adapter.ToolCall, execCtx *tools.ExecutionContext, executor *tools.Executor) []string {
	var toolResults []string

	for _, toolCall := range toolCalls {
		result := executor.Execute(ctx, execCtx, toolCall)

		if result.Success {
			p.logger.Info("Tool executed successfully",
				zap.String("tool", toolCall.Name),
				zap.String("message", result.Message),
			)

			if result.Message != "" {
				toolResults = append(toolResults, fmt.Sprintf("[%s]: %s", toolCall.Name, result.Message))
			} else if result.Data != nil {
				// read_article carries the extracted page as structured data
				// with no display text. Hand the model the JSON so it can
				// quote from the article.
				payload, err := json.Marshal(result.Data)
				if err != nil {
					p.logger.Warn("Failed to marshal tool data",
						zap.String("tool", toolCall.Name),
						zap.Error(err),
					)
					continue
				}
				toolResults = append(toolResults, fmt.Sprintf("[%s]: %s", toolCall.Name, payload))
			}
		} else {
			p.logger.Warn("Tool execution failed",
				zap.String("tool", toolCall.Name),
				zap.String("error", result.Error),
			)
			toolResults = append(toolResults, fmt.Sprintf("[%s] ERROR: %s", toolCall.Name, result.Error))
		}
	}

	return toolResults
}
