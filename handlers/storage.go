package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"webimmo/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler handles listing media uploads. Admin only.
type StorageHandler struct {
	Service storage.StorageService
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Service: svc}
}

// UploadMediaHandler receives a multipart photo or video, stores it under a
// per-listing folder and returns the public URL to capture into the
// listing's image/video lists.
func (h *StorageHandler) UploadMediaHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'file' form field"})
		return
	}

	listingID := c.PostForm("listingId")
	if listingID == "" {
		listingID = "unassigned"
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		zap.L().Error("Failed to stage upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to receive file"})
		return
	}
	defer os.Remove(tmpPath)

	result, err := h.Service.UploadMedia(c.Request.Context(), tmpPath, "listings/"+listingID)
	if err != nil {
		zap.L().Error("Failed to upload media", zap.String("listingId", listingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// MediaURLHandler resolves the delivery URL of a stored asset from its
// public ID. The optional "type" query parameter ("image" or "video")
// selects the typed delivery path.
func (h *StorageHandler) MediaURLHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: publicId"})
		return
	}

	url, err := h.Service.MediaURL(c.Query("type"), publicID)
	if err != nil {
		zap.L().Error("Failed to resolve media URL", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve media URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicId": publicID, "url": url})
}

// DeleteMediaHandler removes a stored asset by its public ID.
func (h *StorageHandler) DeleteMediaHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: publicId"})
		return
	}

	if err := h.Service.DeleteMedia(c.Request.Context(), publicID); err != nil {
		zap.L().Error("Failed to delete media", zap.String("publicId", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "File deleted"})
}
