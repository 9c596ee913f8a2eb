package agent

import (
	"fmt"
	"strings"
	"time"
)

// buildSystemPrompt assembles the assistant persona plus live catalog
// context so the model knows what the knowledge base currently holds
func (o *Orchestrator) buildSystemPrompt() string {
	currentDate := time.Now().Format("Monday, January 2, 2006")

	categories := o.catalog.Categories()
	categoryList := "none loaded yet"
	if len(categories) > 0 {
		categoryList = strings.Join(categories, ", ")
	}

	prompt := fmt.Sprintf(`You are an expert on mental models and the "Latticework of Mental Models" knowledge base.

You have access to tools that let you search and explore a collection of mental models from various categories
(Economics, Psychology, Mathematics, Logic, etc.). Each mental model is a concept or framework that helps
understand how the world works.

## Current Date
Today is %s.

## Knowledge Base
%d mental models across %d categories: %s.

When users ask about mental models:
1. Use your tools to find relevant information
2. Explain concepts clearly and provide examples
3. Show connections between related models
4. Always include links to the original articles when available

Be helpful, educational, and encourage users to explore the interconnections between different mental models.`,
		currentDate, o.catalog.Len(), len(categories), categoryList)

	return prompt
}
