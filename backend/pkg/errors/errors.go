package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeFeed represents feed loading/parsing errors
	ErrorTypeFeed ErrorType = "feed"
	// ErrorTypeCrosslinks represents cross-link document errors
	ErrorTypeCrosslinks ErrorType = "crosslinks"
	// ErrorTypeAgent represents agent/LLM-related errors
	ErrorTypeAgent ErrorType = "agent"
	// ErrorTypeTool represents tool execution errors
	ErrorTypeTool ErrorType = "tool"
	// ErrorTypeGraph represents graph database errors
	ErrorTypeGraph ErrorType = "graph"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// ErrorType returns the error category. Promotion makes every typed
// error in this package answer for its embedded base.
func (e *BaseError) ErrorType() ErrorType {
	return e.Type
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Feed Errors

// ErrFeedParseFailed is returned when a feed document cannot be parsed
type ErrFeedParseFailed struct {
	*BaseError
	Path string
}

func NewFeedParseFailed(path string, err error) *ErrFeedParseFailed {
	return &ErrFeedParseFailed{
		BaseError: NewBaseError(ErrorTypeFeed, fmt.Sprintf("failed to parse feed: %s", path), err),
		Path:      path,
	}
}

// ErrFeedSourceUnavailable is returned when a registered feed source cannot be fetched
type ErrFeedSourceUnavailable struct {
	*BaseError
	Source string
}

func NewFeedSourceUnavailable(source string, err error) *ErrFeedSourceUnavailable {
	return &ErrFeedSourceUnavailable{
		BaseError: NewBaseError(ErrorTypeFeed, fmt.Sprintf("feed source unavailable: %s", source), err),
		Source:    source,
	}
}

// Crosslink Errors

// ErrCrosslinksMalformed is returned when the cross-link document exists but cannot be decoded
type ErrCrosslinksMalformed struct {
	*BaseError
	Path string
}

func NewCrosslinksMalformed(path string, err error) *ErrCrosslinksMalformed {
	return &ErrCrosslinksMalformed{
		BaseError: NewBaseError(ErrorTypeCrosslinks, fmt.Sprintf("malformed cross-link document: %s", path), err),
		Path:      path,
	}
}

// Agent Errors

// ErrAgentMaxRecursion is returned when tool-call recursion exceeds the depth limit
var ErrAgentMaxRecursion = NewBaseError(ErrorTypeAgent, "max tool recursion depth reached", nil)

// ErrAgentNoResponse is returned when the LLM returns no usable response
var ErrAgentNoResponse = NewBaseError(ErrorTypeAgent, "no response from LLM", nil)

// ErrAgentNotConfigured is returned when the chat surface is used without an LLM endpoint
var ErrAgentNotConfigured = NewBaseError(ErrorTypeAgent, "no LLM endpoint configured", nil)

// ErrAgentLLMFailed is returned when an LLM request fails after retries
type ErrAgentLLMFailed struct {
	*BaseError
	Model     string
	Attempts  int
	Retryable bool
}

func NewAgentLLMFailed(model string, attempts int, retryable bool, err error) *ErrAgentLLMFailed {
	return &ErrAgentLLMFailed{
		BaseError: NewBaseError(ErrorTypeAgent, fmt.Sprintf("LLM request failed after %d attempts", attempts), err),
		Model:     model,
		Attempts:  attempts,
		Retryable: retryable,
	}
}

// Tool Errors

// ErrToolNotFound is returned when a requested tool is not found
type ErrToolNotFound struct {
	*BaseError
	ToolName string
}

func NewToolNotFound(toolName string) *ErrToolNotFound {
	return &ErrToolNotFound{
		BaseError: NewBaseError(ErrorTypeTool, fmt.Sprintf("tool not found: %s", toolName), nil),
		ToolName:  toolName,
	}
}

// ErrToolExecutionFailed is returned when tool execution fails
type ErrToolExecutionFailed struct {
	*BaseError
	ToolName string
	Reason   string
}

func NewToolExecutionFailed(toolName, reason string, err error) *ErrToolExecutionFailed {
	return &ErrToolExecutionFailed{
		BaseError: NewBaseError(ErrorTypeTool, fmt.Sprintf("tool execution failed: %s", toolName), err),
		ToolName:  toolName,
		Reason:    reason,
	}
}

// Graph Errors

// ErrGraphConnectionFailed is returned when Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphPublishFailed is returned when writing the lattice to Neo4j fails
type ErrGraphPublishFailed struct {
	*BaseError
	Query string
}

func NewGraphPublishFailed(query string, err error) *ErrGraphPublishFailed {
	return &ErrGraphPublishFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("publish failed: %s", query), err),
		Query:     query,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	if typed, ok := err.(interface{ ErrorType() ErrorType }); ok {
		return typed.ErrorType() == errType
	}
	// Check wrapped errors
	if wrapped, ok := err.(interface{ Unwrap() error }); ok {
		return IsErrorType(wrapped.Unwrap(), errType)
	}
	return false
}

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	if llmErr, ok := err.(*ErrAgentLLMFailed); ok {
		return llmErr.Retryable
	}
	// Remote source fetches and graph connections can be retried;
	// malformed documents and config problems need human attention
	if _, ok := err.(*ErrFeedSourceUnavailable); ok {
		return true
	}
	return IsErrorType(err, ErrorTypeGraph)
}
