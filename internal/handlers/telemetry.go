package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/services"
)

type TelemetryHandler struct {
	telemetry *services.TelemetryService
	logger    *logrus.Logger
}

func NewTelemetryHandler(telemetry *services.TelemetryService, logger *logrus.Logger) *TelemetryHandler {
	return &TelemetryHandler{
		telemetry: telemetry,
		logger:    logger,
	}
}

type recommendationClickRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Reason string `json:"reason"`
}

type searchClickRequest struct {
	Query  string `json:"query" binding:"required"`
	ItemID string `json:"item_id" binding:"required"`
}

// TrackRecommendation records a click on a recommended item.
func (h *TelemetryHandler) TrackRecommendation(c *gin.Context) {
	var req recommendationClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST_BODY",
				"message": "item_id is required",
			},
		})
		return
	}

	h.telemetry.TrackRecommendationClick(c.Request.Context(), req.ItemID, req.Reason)

	c.JSON(http.StatusAccepted, gin.H{"message": "Click recorded"})
}

// TrackSearch records a click on a search result.
func (h *TelemetryHandler) TrackSearch(c *gin.Context) {
	var req searchClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST_BODY",
				"message": "query and item_id are required",
			},
		})
		return
	}

	h.telemetry.TrackSearchClick(c.Request.Context(), req.Query, req.ItemID)

	c.JSON(http.StatusAccepted, gin.H{"message": "Click recorded"})
}
