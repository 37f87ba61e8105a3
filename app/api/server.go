package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for the front-end
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	// News endpoints
	news := r.Group("/news")
	{
		news.GET("", handler.GetNews)
		news.GET("/today", handler.GetTodayBriefing)
		news.GET("/trending", handler.GetTrending)
		news.GET("/:id", handler.GetNewsDetail)
	}

	// Analysis endpoints
	analysis := r.Group("/analysis")
	{
		analysis.POST("/summary", handler.PostSummary)
		analysis.POST("/compare", handler.PostCompare)
		analysis.POST("/context", handler.PostContext)
		analysis.POST("/factcheck", handler.PostFactCheck)
		analysis.POST("/rewrite-title", handler.PostRewriteTitle)
		analysis.GET("/test", handler.GetAnalysisTest)
	}

	// Health endpoint
	r.GET("/health", handler.GetHealth)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "NewsLens",
			"description": "News briefing API with AI-assisted analysis",
			"endpoints": map[string]string{
				"news":          "/news",
				"today":         "/news/today",
				"trending":      "/news/trending",
				"detail":        "/news/<id>",
				"summary":       "/analysis/summary (POST)",
				"compare":       "/analysis/compare (POST)",
				"context":       "/analysis/context (POST)",
				"factcheck":     "/analysis/factcheck (POST)",
				"rewrite-title": "/analysis/rewrite-title (POST)",
				"test":          "/analysis/test",
				"health":        "/health",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
