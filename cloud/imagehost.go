// Package cloud abstracts the image host. Uploads are validated locally
// before any network call; implementations only see files that already
// passed the type and size checks.
package cloud

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"bloomsnursery/apperr"
)

const (
	// MaxFileSize is the per-file upload limit.
	MaxFileSize = 5 << 20
	// MaxFilesPerUpload caps the multi-file endpoint.
	MaxFilesPerUpload = 5
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMIMETypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadResult identifies a stored image: the public URL plus the id needed
// to delete it later.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// ImageHost is the external image storage collaborator.
type ImageHost interface {
	Upload(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) (bool, error)
}

// ValidateImage rejects unsupported types and oversized files. Runs before
// any bytes leave the process.
func ValidateImage(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return apperr.NewValidation("image", "only JPEG, PNG, GIF and WEBP files are allowed")
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !allowedMIMETypes[ct] {
		return apperr.NewValidation("image", "only JPEG, PNG, GIF and WEBP files are allowed")
	}
	if file.Size > MaxFileSize {
		return apperr.NewValidation("image", "file too large, maximum size is 5MB")
	}
	return nil
}
