package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"webimmo/services/storage"

	"github.com/gin-gonic/gin"
)

type fakeStorageService struct {
	urlType string
	urlID   string
}

func (f *fakeStorageService) UploadMedia(ctx context.Context, localFilePath, destFolder string) (*storage.UploadResult, error) {
	return &storage.UploadResult{PublicID: "listings/x/abc", URL: "https://cdn.example/abc"}, nil
}

func (f *fakeStorageService) DeleteMedia(ctx context.Context, publicID string) error {
	return nil
}

func (f *fakeStorageService) MediaURL(resourceType, publicID string) (string, error) {
	f.urlType = resourceType
	f.urlID = publicID
	return "https://cdn.example/" + publicID, nil
}

func TestMediaURLHandlerResolvesTypedURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeStorageService{}
	h := NewStorageHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/admin/media/url?publicId=listings/l1/photo&type=image", nil)
	h.MediaURLHandler(c)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if svc.urlType != "image" || svc.urlID != "listings/l1/photo" {
		t.Fatalf("service called with type %q, id %q", svc.urlType, svc.urlID)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["url"] != "https://cdn.example/listings/l1/photo" {
		t.Fatalf("unexpected url in response: %q", body["url"])
	}
}

func TestMediaURLHandlerRequiresPublicID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewStorageHandler(&fakeStorageService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/admin/media/url", nil)
	h.MediaURLHandler(c)

	if w.Code != 400 {
		t.Fatalf("expected 400 for a missing publicId, got %d", w.Code)
	}
}
