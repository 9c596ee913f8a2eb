package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"latticework/backend/internal/adapter"
	"latticework/backend/internal/agent"
	"latticework/backend/internal/catalog"
	"latticework/backend/internal/constants"
	"latticework/backend/internal/feed"
	"latticework/backend/internal/state"
	"latticework/backend/pkg/config"
	"latticework/backend/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if !cfg.ChatEnabled() {
		log.Fatal("LLM_BASE_URL is required for chat")
	}

	// Load the knowledge base
	cat := loadCatalog(cfg, log)

	llmAdapter := adapter.NewLLMAdapter(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.ModelID)
	orch := agent.NewOrchestrator(cat, llmAdapter)

	// One session for the whole terminal conversation
	sessionID := state.NewSessionID()

	fmt.Printf("%s knows %d mental models across %d categories.\n",
		constants.DefaultAgentName, cat.Len(), len(cat.Categories()))
	fmt.Printf("Model: %s. Type 'exit' to quit.\n\n", cfg.ModelID)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		result, err := orch.RunTurnWithContext(context.Background(), sessionID, "cli", line)
		if err != nil {
			log.Error("Turn failed", zap.Error(err))
			continue
		}

		fmt.Printf("\n%s\n\n", result.Content)
	}

	fmt.Println("Bye!")
}

// loadCatalog builds the in-memory catalog from the configured feed
// sources and cross-links file
func loadCatalog(cfg *config.Config, log *zap.Logger) *catalog.Catalog {
	posts := loadPosts(cfg, log)

	edges, err := catalog.LoadEdges(cfg.CrosslinksPath)
	if err != nil {
		log.Fatal("Failed to load cross-links", zap.Error(err))
	}

	return catalog.New(posts, edges)
}

// loadPosts prefers the multi-source registry when one is configured,
// falling back to the single local feed
func loadPosts(cfg *config.Config, log *zap.Logger) []catalog.Post {
	if cfg.SourcesPath != "" {
		reg, err := feed.LoadRegistry(cfg.SourcesPath)
		if err != nil {
			log.Fatal("Failed to load source registry", zap.Error(err))
		}
		if len(reg.Sources) > 0 {
			items := feed.FetchAll(context.Background(), reg.Sources, cfg.FetchConcurrency)
			return catalog.PostsFromItems(items, constants.DescLimitDisplay)
		}
		log.Warn("Source registry is empty, falling back to FEED_PATH",
			zap.String("path", cfg.SourcesPath),
		)
	}
	return catalog.LoadPosts(cfg.FeedPath, constants.DescLimitDisplay)
}
