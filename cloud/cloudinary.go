package cloud

import (
	"context"
	"mime/multipart"

	"bloomsnursery/apperr"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Cloudinary uploads images to a Cloudinary account.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

var _ ImageHost = (*Cloudinary)(nil)

func NewCloudinary(cloudName, apiKey, apiSecret string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &Cloudinary{cld: cld}, nil
}

func (h *Cloudinary) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	resp, err := h.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder:       folder,
		PublicID:     uuid.New().String(),
		ResourceType: "image",
	})
	if err != nil {
		return nil, apperr.NewUpstream("cloudinary upload", err)
	}
	return &UploadResult{URL: resp.SecureURL, PublicID: resp.PublicID}, nil
}

func (h *Cloudinary) Delete(ctx context.Context, publicID string) (bool, error) {
	resp, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return false, apperr.NewUpstream("cloudinary destroy", err)
	}
	return resp.Result == "ok", nil
}
