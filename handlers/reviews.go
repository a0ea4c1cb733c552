package handlers

import (
	"errors"
	"net/http"

	reviewsRepo "webimmo/database/repository/reviews"
	"webimmo/services/reviews"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewsHandler serves the cached review summary and the on-demand sync
// trigger.
type ReviewsHandler struct {
	Service reviews.ReviewService
}

// NewReviewsHandler creates a new ReviewsHandler.
func NewReviewsHandler(svc reviews.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{Service: svc}
}

// GetSummaryHandler returns the cached summary for the public site.
func (h *ReviewsHandler) GetSummaryHandler(c *gin.Context) {
	summary, err := h.Service.GetSummary(c.Request.Context())
	if err != nil {
		if errors.Is(err, reviewsRepo.ErrSummaryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reviews are not available yet"})
			return
		}
		zap.L().Error("Failed to load review summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// TriggerSyncHandler runs a sync pass on demand and reports the outcome in
// a {success, message | error, details} envelope.
func (h *ReviewsHandler) TriggerSyncHandler(c *gin.Context) {
	result, err := h.Service.Sync(c.Request.Context())
	if err != nil {
		zap.L().Error("On-demand review sync failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Review sync failed",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Message,
	})
}
