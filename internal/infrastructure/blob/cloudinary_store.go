package blob

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/sachinkumar2222/Productr/domain"
)

// CloudinaryStore implements domain.BlobStore on Cloudinary image hosting.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore creates a blob store from a CLOUDINARY_URL-style URL.
func NewCloudinaryStore(url, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary client: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

// Store implements domain.BlobStore. The returned secure URL is the stable
// reference kept on product records.
func (s *CloudinaryStore) Store(ctx context.Context, data []byte) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return res.SecureURL, nil
}

var _ domain.BlobStore = (*CloudinaryStore)(nil)
