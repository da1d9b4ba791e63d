package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/services"
	"github.com/vistream/discovery/pkg/models"
)

type RecommendationHandler struct {
	recommendation *services.RecommendationService
	logger         *logrus.Logger
}

func NewRecommendationHandler(
	recommendation *services.RecommendationService,
	logger *logrus.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendation: recommendation,
		logger:         logger,
	}
}

// Get runs the three recommendation strategies for the supplied context.
// An empty body is a valid context; strategies without their inputs simply
// contribute nothing.
func (h *RecommendationHandler) Get(c *gin.Context) {
	rc, ok := bindRecommendationContext(c)
	if !ok {
		return
	}

	recs := h.recommendation.GetRecommendations(c.Request.Context(), rc)

	c.JSON(http.StatusOK, gin.H{
		"recommendations": recs,
		"count":           len(recs),
		"generated_at":    time.Now().UTC(),
	})
}

// Feed builds the blended home feed from the trending, personalized, and
// recently watched families.
func (h *RecommendationHandler) Feed(c *gin.Context) {
	rc, ok := bindRecommendationContext(c)
	if !ok {
		return
	}

	feed := h.recommendation.GetPersonalizedFeed(c.Request.Context(), rc)

	c.JSON(http.StatusOK, gin.H{
		"feed":         feed,
		"count":        len(feed),
		"generated_at": time.Now().UTC(),
	})
}

func bindRecommendationContext(c *gin.Context) (models.RecommendationContext, bool) {
	var rc models.RecommendationContext
	if c.Request.ContentLength == 0 {
		return rc, true
	}
	if err := c.ShouldBindJSON(&rc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST_BODY",
				"message": "Invalid recommendation context format",
			},
		})
		return rc, false
	}
	return rc, true
}
