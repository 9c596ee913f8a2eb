package tools

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ============================================================================
// Web Tool Implementations
// ============================================================================

const articleTextLimit = 4000

func (e *Executor) executeReadArticle(ctx context.Context, args map[string]interface{}) *ToolResult {
	rawURL, _ := args["url"].(string)
	if rawURL == "" {
		return &ToolResult{Success: false, Error: "url is required"}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return &ToolResult{Success: false, Error: fmt.Sprintf("Failed to create request: %v", err)}
	}

	// Set headers to look like a browser
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return &ToolResult{Success: false, Error: fmt.Sprintf("Failed to fetch article: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ToolResult{Success: false, Error: fmt.Sprintf("Article returned status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return &ToolResult{Success: false, Error: fmt.Sprintf("Failed to parse article: %v", err)}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, nav, footer").Remove()

	// Substack and most blogs wrap the readable body in an article tag.
	body := doc.Find("article")
	if body.Length() == 0 {
		body = doc.Find("body")
	}
	text := strings.Join(strings.Fields(body.Text()), " ")
	if text == "" {
		return &ToolResult{Success: false, Error: "No readable text found in article"}
	}
	if runes := []rune(text); len(runes) > articleTextLimit {
		text = string(runes[:articleTextLimit-3]) + "..."
	}

	return &ToolResult{
		Success: true,
		Data: map[string]interface{}{
			"title": title,
			"text":  text,
			"url":   rawURL,
		},
	}
}
