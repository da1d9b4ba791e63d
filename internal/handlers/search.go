package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/services"
	"github.com/vistream/discovery/internal/validation"
	"github.com/vistream/discovery/pkg/models"
)

type SearchHandler struct {
	search    *services.SearchService
	validator *validation.SchemaValidator
	logger    *logrus.Logger
}

func NewSearchHandler(
	search *services.SearchService,
	validator *validation.SchemaValidator,
	logger *logrus.Logger,
) *SearchHandler {
	return &SearchHandler{
		search:    search,
		validator: validator,
		logger:    logger,
	}
}

// Search executes a catalog search. The body is validated against the
// embedded JSON schema before binding so unknown fields and malformed
// ranges are rejected with a useful error list.
func (h *SearchHandler) Search(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST_BODY",
				"message": "Failed to read request body",
			},
		})
		return
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	if result := h.validator.ValidateSearchFilters(body); !result.Valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_SEARCH_FILTERS",
				"message": "Search request failed schema validation",
				"details": result.Errors,
			},
		})
		return
	}

	var filters models.SearchFilters
	if err := json.Unmarshal(body, &filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_REQUEST_BODY",
				"message": "Invalid request body format",
			},
		})
		return
	}

	start := time.Now()
	results := h.search.Search(c.Request.Context(), filters)

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
		"query":   filters.Query,
		"offset":  filters.Offset,
		"took_ms": time.Since(start).Milliseconds(),
	})
}
