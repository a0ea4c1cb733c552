package handlers

import (
	"net/http"

	"webimmo/models"
	"webimmo/services/leads"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadsHandler receives the public lead-capture forms.
type LeadsHandler struct {
	Service leads.LeadService
}

// NewLeadsHandler creates a new LeadsHandler.
func NewLeadsHandler(svc leads.LeadService) *LeadsHandler {
	return &LeadsHandler{Service: svc}
}

// SubmitSaleLeadHandler receives a "sell my property" inquiry.
func (h *LeadsHandler) SubmitSaleLeadHandler(c *gin.Context) {
	var lead models.SaleLead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form payload"})
		return
	}
	sent, err := h.Service.SubmitSaleLead(c.Request.Context(), lead)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "emailSent": sent})
}

// SubmitValuationHandler receives the multi-step estimation form.
func (h *LeadsHandler) SubmitValuationHandler(c *gin.Context) {
	var req models.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form payload"})
		return
	}
	sent, err := h.Service.SubmitValuationRequest(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "emailSent": sent})
}

// SubmitContactHandler receives a plain contact message.
func (h *LeadsHandler) SubmitContactHandler(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form payload"})
		return
	}
	sent, err := h.Service.SubmitContactMessage(c.Request.Context(), msg)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "emailSent": sent})
}

// ListLeadsHandler returns every captured lead. Admin only.
func (h *LeadsHandler) ListLeadsHandler(c *gin.Context) {
	all, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch leads", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leads"})
		return
	}
	c.JSON(http.StatusOK, all)
}
