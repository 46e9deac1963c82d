package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopadmin/backend/internal/domain/catalog"
	"github.com/shopadmin/backend/internal/domain/shared"
)

// ObjectStorage abstracts the presigned-URL capable object store that
// holds product images
type ObjectStorage interface {
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)
	DeleteObject(ctx context.Context, storageKey string) error
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// UploadURLRequest asks for a presigned PUT URL for one product image
type UploadURLRequest struct {
	FileName    string `json:"fileName" binding:"required,max=255"`
	ContentType string `json:"contentType" binding:"required,oneof=image/jpeg image/png image/webp image/gif"`
}

// UploadURLResponse carries the presigned URL and where the image will be
// publicly served from once uploaded
type UploadURLResponse struct {
	UploadURL  string `json:"uploadUrl"`
	StorageKey string `json:"storageKey"`
	PublicURL  string `json:"publicUrl"`
	ExpiresAt  string `json:"expiresAt"`
}

// ImageUploadService issues presigned upload URLs for product images
type ImageUploadService struct {
	products      catalog.ProductRepository
	storage       ObjectStorage
	publicBaseURL string
	presignExpiry time.Duration
}

// NewImageUploadService creates a new ImageUploadService
func NewImageUploadService(products catalog.ProductRepository, storage ObjectStorage, publicBaseURL string, presignExpiry time.Duration) *ImageUploadService {
	return &ImageUploadService{
		products:      products,
		storage:       storage,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		presignExpiry: presignExpiry,
	}
}

// GenerateUploadURL validates the target product and returns a presigned
// PUT URL under a fresh storage key. The client uploads directly to the
// store and then attaches the public URL to the product.
func (s *ImageUploadService) GenerateUploadURL(ctx context.Context, productID uuid.UUID, req UploadURLRequest) (*UploadURLResponse, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(path.Ext(req.FileName))
	if !allowedImageExtensions[ext] {
		return nil, shared.NewDomainError("INVALID_FILE_TYPE",
			fmt.Sprintf("File extension %q is not an allowed image type", ext))
	}

	storageKey := fmt.Sprintf("products/%s/%s%s", productID, uuid.New(), ext)

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, req.ContentType, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to generate upload URL: %w", err)
	}

	return &UploadURLResponse{
		UploadURL:  uploadURL,
		StorageKey: storageKey,
		PublicURL:  s.publicBaseURL + "/" + storageKey,
		ExpiresAt:  formatTime(expiresAt),
	}, nil
}

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}
