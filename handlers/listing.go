package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"webimmo/models"
	"webimmo/services/listing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler serves the public catalog and the admin CRUD surface.
type ListingHandler struct {
	Service listing.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(svc listing.ListingService) *ListingHandler {
	return &ListingHandler{Service: svc}
}

// ListListingsHandler returns the full catalog. A store failure degrades to
// an empty list: the public site shows "no properties match" either way.
func (h *ListingHandler) ListListingsHandler(c *gin.Context) {
	listings, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to load catalog", zap.Error(err))
		c.JSON(http.StatusOK, []models.Listing{})
		return
	}
	c.JSON(http.StatusOK, listings)
}

// SearchListingsHandler narrows the catalog with the visitor's criteria.
func (h *ListingHandler) SearchListingsHandler(c *gin.Context) {
	criteria := parseCriteria(c)
	c.JSON(http.StatusOK, h.Service.Search(c.Request.Context(), criteria))
}

// GetListingHandler returns one listing by ID.
func (h *ListingHandler) GetListingHandler(c *gin.Context) {
	l, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}
	c.JSON(http.StatusOK, l)
}

// CreateListingHandler inserts a new listing. Admin only.
func (h *ListingHandler) CreateListingHandler(c *gin.Context) {
	var l models.Listing
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing payload"})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), l)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateListingHandler replaces a listing in full. Admin only.
func (h *ListingHandler) UpdateListingHandler(c *gin.Context) {
	var l models.Listing
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid listing payload"})
		return
	}
	l.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), l)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteListingHandler removes a listing. Admin only.
func (h *ListingHandler) DeleteListingHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Listing not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}

// parseCriteria builds SearchCriteria from query parameters, starting from
// the permissive defaults so an absent parameter never narrows the search.
func parseCriteria(c *gin.Context) models.SearchCriteria {
	criteria := models.DefaultCriteria()

	criteria.Location = c.Query("location")
	if v, ok := parseFloatQuery(c, "maxPrice"); ok {
		criteria.MaxPrice = v
	}
	if v, ok := parseFloatQuery(c, "minSize"); ok {
		criteria.MinSize = v
	}
	if v, ok := parseFloatQuery(c, "minRooms"); ok {
		criteria.MinRooms = v
	}
	if v, ok := parseFloatQuery(c, "minBedrooms"); ok {
		criteria.MinBedrooms = v
	}
	if v, ok := parseFloatQuery(c, "minBathrooms"); ok {
		criteria.MinBathrooms = v
	}
	if types := c.Query("types"); types != "" {
		criteria.PropertyTypes = splitTags(types)
	}
	if amenities := c.Query("amenities"); amenities != "" {
		criteria.Amenities = splitTags(amenities)
	}
	if condition := c.Query("condition"); condition != "" {
		criteria.Condition = models.ListingCondition(condition)
	}
	return criteria
}

func parseFloatQuery(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
