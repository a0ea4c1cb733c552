package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// UploadResult carries the stored asset's permanent identifier and its
// publicly resolvable URL. The URL is what gets captured into a listing's
// image/video lists.
type UploadResult struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// StorageService defines the interface for listing media storage.
type StorageService interface {
	UploadMedia(ctx context.Context, localFilePath, destFolder string) (*UploadResult, error)
	DeleteMedia(ctx context.Context, publicID string) error
	MediaURL(resourceType, publicID string) (string, error)
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}
