package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"latticework/backend/internal/adapter"
	"latticework/backend/internal/catalog"
	"latticework/backend/internal/constants"
	"latticework/backend/internal/tools"
	apperrors "latticework/backend/pkg/errors"
	"latticework/backend/pkg/logger"
)

// LLMClient is the generation surface the orchestrator needs from the adapter
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt, userMsg string, tools []adapter.Tool) (*adapter.Response, error)
}

// Orchestrator manages the agent's reasoning and action loop
type Orchestrator struct {
	catalog      *catalog.Catalog
	llm          LLMClient
	toolExecutor *tools.Executor
	processor    *ToolResultProcessor
	logger       *zap.Logger
}

// NewOrchestrator creates a new agent orchestrator over the loaded catalog
func NewOrchestrator(c *catalog.Catalog, llm LLMClient) *Orchestrator {
	return &Orchestrator{
		catalog:      c,
		llm:          llm,
		toolExecutor: tools.NewExecutor(c),
		processor:    NewToolResultProcessor(logger.Get()),
		logger:       logger.Get(),
	}
}

// TurnResult represents the result of a single agent turn
type TurnResult struct {
	Content   string
	ToolCalls []string // Names of the tools invoked during the turn, in call order
}

// RunTurn executes a single turn of the agent's reasoning loop
func (o *Orchestrator) RunTurn(ctx context.Context, sessionID, message string) (*TurnResult, error) {
	return o.RunTurnWithContext(ctx, sessionID, "api", message)
}

// RunTurnWithContext executes a turn with full context
func (o *Orchestrator) RunTurnWithContext(ctx context.Context, sessionID, platform, message string) (*TurnResult, error) {
	execCtx := &tools.ExecutionContext{
		SessionID: sessionID,
		Platform:  platform,
	}
	return o.runTurnRecursive(ctx, execCtx, message, 0, nil)
}

// runTurnRecursive executes a turn with recursion tracking. calledTools
// accumulates tool names across recursive passes so the final result
// reports everything the turn did.
func (o *Orchestrator) runTurnRecursive(ctx context.Context, execCtx *tools.ExecutionContext, message string, depth int, calledTools []string) (*TurnResult, error) {
	if depth >= constants.MaxRecursionDepth {
		return nil, apperrors.ErrAgentMaxRecursion
	}

	o.logger.Debug("Starting agent turn",
		zap.String("session_id", execCtx.SessionID),
		zap.String("platform", execCtx.Platform),
		zap.Int("depth", depth),
	)

	// 1. Build system prompt from the live catalog
	systemPrompt := o.buildSystemPrompt()

	// 2. Get all tools
	allTools := tools.GetAllTools()

	// 3. Think - call the LLM
	llmResponse, err := o.llm.Generate(ctx, systemPrompt, message, allTools)
	if err != nil {
		return nil, fmt.Errorf("failed to generate LLM response: %w", err)
	}

	// 4. Act - execute tool calls
	if len(llmResponse.ToolCalls) > 0 {
		toolResults := o.processor.ProcessToolResults(ctx, llmResponse.ToolCalls, execCtx, o.toolExecutor)
		for _, toolCall := range llmResponse.ToolCalls {
			calledTools = append(calledTools, toolCall.Name)
		}

		// If we have tool results but no content, and haven't hit max depth, recurse WITH tool context
		if llmResponse.Content == "" && depth < constants.MaxRecursionDepth-1 && len(toolResults) > 0 {
			// Include tool results in the next message so the LLM knows what happened
			contextMessage := fmt.Sprintf("%s\n\n[Tool Results]:\n%s\n\nNow provide a helpful response to the user based on these results.",
				message, strings.Join(toolResults, "\n"))
			o.logger.Debug("Recursing with tool context",
				zap.Int("new_depth", depth+1),
				zap.Int("tool_results", len(toolResults)),
			)
			return o.runTurnRecursive(ctx, execCtx, contextMessage, depth+1, calledTools)
		}

		// Default response if we hit max depth without content
		if llmResponse.Content == "" {
			if len(toolResults) > 0 {
				// Use the tool results as the response
				llmResponse.Content = strings.Join(toolResults, "\n")
			} else {
				llmResponse.Content = "I've completed the requested actions."
			}
		}
	}

	// Neither prose nor a tool call means the model gave us nothing to work with
	if llmResponse.Content == "" && len(calledTools) == 0 {
		return nil, apperrors.ErrAgentNoResponse
	}

	return &TurnResult{
		Content:   llmResponse.Content,
		ToolCalls: calledTools,
	}, nil
}
