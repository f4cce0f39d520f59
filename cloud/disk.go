package cloud

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"bloomsnursery/apperr"

	"github.com/google/uuid"
)

// Disk stores uploads on the local filesystem under a base directory served
// as static files. Used when no Cloudinary credentials are configured, and
// as the test double.
type Disk struct {
	dir     string
	baseURL string
}

var _ ImageHost = (*Disk)(nil)

func NewDisk(dir, baseURL string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Disk{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (d *Disk) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error) {
	folder = path.Clean("/" + folder)[1:]
	if folder == "" {
		folder = "uploads"
	}
	if err := os.MkdirAll(filepath.Join(d.dir, folder), 0755); err != nil {
		return nil, apperr.NewUpstream("disk upload", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	publicID := path.Join(folder, name)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(d.dir, folder, name))
	if err != nil {
		return nil, apperr.NewUpstream("disk upload", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, apperr.NewUpstream("disk upload", err)
	}

	return &UploadResult{
		URL:      d.baseURL + "/" + publicID,
		PublicID: publicID,
	}, nil
}

func (d *Disk) Delete(ctx context.Context, publicID string) (bool, error) {
	// publicID comes from the client; keep it inside the upload dir
	clean := path.Clean("/" + publicID)[1:]
	if clean == "" || clean != publicID {
		return false, apperr.NewValidation("publicId", "invalid public id")
	}
	err := os.Remove(filepath.Join(d.dir, filepath.FromSlash(clean)))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, apperr.NewUpstream("disk delete", err)
	}
	return true, nil
}
