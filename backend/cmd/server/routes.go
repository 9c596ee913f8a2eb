package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"latticework/backend/internal/agent"
	"latticework/backend/internal/catalog"
	"latticework/backend/internal/graph"
	"latticework/backend/internal/state"
	apperrors "latticework/backend/pkg/errors"
)

// setupRouter wires the HTTP surface. orch may be nil when no LLM
// endpoint is configured; the chat route then answers 503.
func setupRouter(cat *catalog.Catalog, sessions *state.Store, orch *agent.Orchestrator, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// All models grouped by category
		api.GET("/models", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"total":      cat.Len(),
				"categories": cat.ListAll(),
			})
		})

		// One model by slug or title, with its cross-links
		api.GET("/models/:id", func(c *gin.Context) {
			post, ok := cat.Resolve(c.Param("id"))
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "Model not found"})
				return
			}

			connections := cat.Relationships(post.ID)
			if connections == nil {
				connections = []catalog.Connection{}
			}

			c.JSON(http.StatusOK, gin.H{
				"model":       post,
				"connections": connections,
			})
		})

		// Weighted search
		api.GET("/search", func(c *gin.Context) {
			query := c.Query("q")
			results := cat.Search(query)
			if results == nil {
				results = []catalog.SearchResult{}
			}

			c.JSON(http.StatusOK, gin.H{
				"query":   query,
				"results": results,
			})
		})

		// Graph payload for the visualization
		api.GET("/graph", func(c *gin.Context) {
			c.JSON(http.StatusOK, graph.Build(cat.Posts(), cat.Edges()))
		})

		// Chat with the agent
		api.POST("/chat", func(c *gin.Context) {
			var req struct {
				Prompt    string `json:"prompt"`
				SessionID string `json:"session_id"`
			}

			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in request body"})
				return
			}

			if orch == nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": apperrors.ErrAgentNotConfigured.Error()})
				return
			}

			if req.Prompt == "" {
				req.Prompt = "Hello"
			}
			if req.SessionID == "" {
				req.SessionID = state.NewSessionID()
			}
			session := sessions.Touch(req.SessionID)

			result, err := orch.RunTurn(c.Request.Context(), session.ID, req.Prompt)
			if err != nil {
				log.Error("Failed to run agent turn",
					zap.String("session_id", session.ID),
					zap.Error(err),
				)
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"response":   gin.H{"message": result.Content},
				"session_id": session.ID,
			})
		})
	}

	return router
}

// corsMiddleware allows browser clients from any origin
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
