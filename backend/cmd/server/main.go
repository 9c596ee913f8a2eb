package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
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
	log.Info("Starting HTTP API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Load the knowledge base
	cat := loadCatalog(cfg, log)
	log.Info("Catalog loaded",
		zap.Int("models", cat.Len()),
		zap.Strings("categories", cat.Categories()),
	)

	// Wire the chat agent when an LLM endpoint is configured
	var orch *agent.Orchestrator
	if cfg.ChatEnabled() {
		llmAdapter := adapter.NewLLMAdapter(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.ModelID)
		orch = agent.NewOrchestrator(cat, llmAdapter)
		log.Info("Chat agent enabled", zap.String("model", cfg.ModelID))
	} else {
		log.Info("Chat agent disabled (no LLM_BASE_URL)")
	}

	sessions := state.NewStore()

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(cat, sessions, orch, log)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
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
