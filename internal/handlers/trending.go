package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/services"
)

type TrendingHandler struct {
	trending *services.TrendingService
	logger   *logrus.Logger
}

func NewTrendingHandler(trending *services.TrendingService, logger *logrus.Logger) *TrendingHandler {
	return &TrendingHandler{
		trending: trending,
		logger:   logger,
	}
}

// Suggestions serves typeahead completions for a partial query.
func (h *TrendingHandler) Suggestions(c *gin.Context) {
	query := c.Query("q")
	limit := parseLimit(c, 10)

	suggestions := h.trending.GetSearchSuggestions(c.Request.Context(), query, limit)

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

// Trending serves recency-weighted trending queries.
func (h *TrendingHandler) Trending(c *gin.Context) {
	limit := parseLimit(c, 10)

	entries := h.trending.GetTrendingSearches(limit)

	c.JSON(http.StatusOK, gin.H{
		"trending": entries,
		"count":    len(entries),
	})
}

// Popular serves queries ranked by raw count.
func (h *TrendingHandler) Popular(c *gin.Context) {
	limit := parseLimit(c, 10)

	entries := h.trending.GetPopularSearches(limit)

	c.JSON(http.StatusOK, gin.H{
		"popular": entries,
		"count":   len(entries),
	})
}

// ClearHistory wipes the stored search history.
func (h *TrendingHandler) ClearHistory(c *gin.Context) {
	h.trending.ClearSearchHistory(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"message": "Search history cleared",
	})
}

func parseLimit(c *gin.Context, fallback int) int {
	limitStr := c.Query("limit")
	if limitStr == "" {
		return fallback
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > 100 {
		return fallback
	}
	return limit
}
