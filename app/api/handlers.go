package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newslens/newslens/app/analysis"
	"github.com/newslens/newslens/app/feed"
)

// Failure payloads are delivered with HTTP 200 and an "error" field. The
// front-end contract predates this service; error payloads are data, not
// transport faults.

func NewHandler(news *feed.Service, analysisSvc *analysis.Service, sources *feed.Sources, counter ItemCounter) *Handler {
	return &Handler{
		news:     news,
		analysis: analysisSvc,
		sources:  sources,
		counter:  counter,
	}
}

func (h *Handler) GetNews(c *gin.Context) {
	items := h.news.ListNews(c.Request.Context())

	c.JSON(http.StatusOK, NewsListResponse{
		Items: items,
		Total: len(items),
	})
}

func (h *Handler) GetTodayBriefing(c *gin.Context) {
	date, items := h.news.TodayBriefing(c.Request.Context())

	c.JSON(http.StatusOK, TodayResponse{
		Date:  date,
		Items: items,
	})
}

func (h *Handler) GetTrending(c *gin.Context) {
	c.JSON(http.StatusOK, TrendingResponse{
		Topics: h.news.Trending(),
	})
}

func (h *Handler) GetNewsDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid news id"})
		return
	}

	item, err := h.news.NewsDetail(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, feed.ErrNotFound) {
			slog.Error("News detail lookup failed", "id", id, "error", err)
		}
		c.JSON(http.StatusOK, gin.H{"error": "news item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *Handler) PostSummary(c *gin.Context) {
	h.analyze(c, analysis.KindSummary, "summary")
}

func (h *Handler) PostCompare(c *gin.Context) {
	h.analyze(c, analysis.KindCompare, "comparison")
}

func (h *Handler) PostContext(c *gin.Context) {
	h.analyze(c, analysis.KindContext, "context")
}

func (h *Handler) PostFactCheck(c *gin.Context) {
	h.analyze(c, analysis.KindFactCheck, "factcheck")
}

func (h *Handler) PostRewriteTitle(c *gin.Context) {
	var req TitleRewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusOK, gin.H{"error": "title is required"})
		return
	}

	result, err := h.analysis.RewriteTitle(c.Request.Context(), req.Title, req.Content)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rewrittenTitle":  result.RewrittenTitle,
		"clickbaitReason": result.ClickbaitReason,
		"originalTitle":   result.OriginalTitle,
		"analyzedAt":      result.AnalyzedAt.Format(time.RFC3339),
	})
}

func (h *Handler) GetAnalysisTest(c *gin.Context) {
	result, err := h.analysis.Test(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "response": result.Text})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"sources":   h.sources.Count(),
	}

	if h.counter != nil {
		if count, err := h.counter.GetItemCount(); err == nil {
			health["archived_items"] = count
		}
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) analyze(c *gin.Context, kind analysis.Kind, field string) {
	var req TextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusOK, gin.H{"error": "text is required"})
		return
	}

	result, err := h.analysis.Run(c.Request.Context(), kind, req.Text)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		field:        result.Text,
		"analyzedAt": result.AnalyzedAt.Format(time.RFC3339),
	})
}
