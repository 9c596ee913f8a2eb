package tools

import (
	"fmt"
	"strings"

	"latticework/backend/internal/catalog"
	"latticework/backend/internal/constants"
)

// ============================================================================
// Knowledge Tool Implementations
// ============================================================================

const feedNotLoadedMsg = "No mental models found. The RSS feed may not be loaded."

func (e *Executor) executeListModels() *ToolResult {
	if e.catalog.Empty() {
		return &ToolResult{Success: true, Message: feedNotLoadedMsg}
	}

	var lines []string
	for _, category := range e.catalog.Categories() {
		lines = append(lines, fmt.Sprintf("\n## %s", category))
		for _, p := range e.catalog.PostsInCategory(category) {
			lines = append(lines, fmt.Sprintf("- %s", p.Title))
		}
	}

	header := fmt.Sprintf("Found %d mental models across %d categories:\n",
		e.catalog.Len(), len(e.catalog.Categories()))

	return &ToolResult{
		Success: true,
		Message: header + strings.Join(lines, "\n"),
	}
}

func (e *Executor) executeSearchModels(args map[string]interface{}) *ToolResult {
	query, _ := args["query"].(string)
	if query == "" {
		return &ToolResult{Success: false, Error: "query is required"}
	}
	if e.catalog.Empty() {
		return &ToolResult{Success: true, Message: feedNotLoadedMsg}
	}

	results := e.catalog.Search(query)
	if len(results) == 0 {
		return &ToolResult{
			Success: true,
			Message: fmt.Sprintf("No mental models found matching '%s'. Try listing all models with list_mental_models.", query),
		}
	}

	lines := []string{fmt.Sprintf("Found %d mental model(s) matching '%s':\n", len(results), query)}
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("### %s (%s)", r.Post.Title, r.Post.Category))
		lines = append(lines, r.Post.Description)
		lines = append(lines, fmt.Sprintf("Published: %s", r.Post.Published))
		lines = append(lines, fmt.Sprintf("Link: %s\n", r.Post.Link))
	}

	return &ToolResult{
		Success: true,
		Data:    results,
		Message: strings.Join(lines, "\n"),
	}
}

func (e *Executor) executeGetModel(args map[string]interface{}) *ToolResult {
	name, _ := args["name"].(string)
	if name == "" {
		return &ToolResult{Success: false, Error: "name is required"}
	}
	if e.catalog.Empty() {
		return &ToolResult{Success: true, Message: feedNotLoadedMsg}
	}

	post, ok := e.catalog.Resolve(name)
	if !ok {
		return &ToolResult{
			Success: true,
			Message: fmt.Sprintf("Mental model '%s' not found. Use list_mental_models to see available models.", name),
		}
	}

	lines := []string{
		fmt.Sprintf("# %s", post.Title),
		fmt.Sprintf("**Category:** %s", post.Category),
		fmt.Sprintf("**Published:** %s", post.Published),
		fmt.Sprintf("\n## Description\n%s", post.Description),
		fmt.Sprintf("\n**Read more:** %s", post.Link),
	}

	if conns := e.catalog.Relationships(post.ID); len(conns) > 0 {
		lines = append(lines, "\n## Related Mental Models (Cross-links)")
		for _, c := range conns {
			reason := c.Reason
			if reason == "" {
				reason = "related concept"
			}
			lines = append(lines, fmt.Sprintf("- %s: %s", c.Post.Title, reason))
		}
	}

	var peers []string
	for _, p := range e.catalog.PostsInCategory(post.Category) {
		if p.ID != post.ID {
			peers = append(peers, p.Title)
		}
	}
	if len(peers) > 0 {
		if len(peers) > constants.MaxRelatedModels {
			peers = peers[:constants.MaxRelatedModels]
		}
		lines = append(lines, fmt.Sprintf("\n## Other %s Models", post.Category))
		lines = append(lines, strings.Join(peers, ", "))
	}

	return &ToolResult{
		Success: true,
		Data:    post,
		Message: strings.Join(lines, "\n"),
	}
}

func (e *Executor) executeGetConnections(args map[string]interface{}) *ToolResult {
	name, _ := args["name"].(string)
	if name == "" {
		return &ToolResult{Success: false, Error: "name is required"}
	}

	post, ok := e.catalog.Resolve(name)
	if !ok {
		return &ToolResult{
			Success: true,
			Message: fmt.Sprintf("Mental model '%s' not found.", name),
		}
	}

	conns := e.catalog.Relationships(post.ID)
	if len(conns) == 0 {
		return &ToolResult{
			Success: true,
			Message: fmt.Sprintf("'%s' has no explicit cross-links to other models, but it belongs to the %s category.", post.Title, post.Category),
		}
	}

	lines := []string{fmt.Sprintf("Connections for '%s':\n", post.Title)}
	for _, c := range conns {
		arrow := "→"
		if c.Direction == catalog.DirectionIncoming {
			arrow = "←"
		}
		reason := c.Reason
		if reason == "" {
			reason = "conceptually related"
		}
		lines = append(lines, fmt.Sprintf("%s **%s** (%s)", arrow, c.Post.Title, c.Post.Category))
		lines = append(lines, fmt.Sprintf("  _%s_\n", reason))
	}

	return &ToolResult{
		Success: true,
		Data:    conns,
		Message: strings.Join(lines, "\n"),
	}
}
