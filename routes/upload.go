package routes

import (
	"fmt"

	"bloomsnursery/apperr"
	"bloomsnursery/cloud"

	"github.com/gofiber/fiber/v2"
)

// POST /api/upload/image — single file under the "image" form field.
func (r *Router) uploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return fail(c, "No file uploaded",
			apperr.NewValidation("image", "please select an image file"))
	}
	if err := cloud.ValidateImage(file); err != nil {
		return fail(c, "Invalid file", err)
	}

	folder := c.Query("folder", "uploads")
	result, err := r.images.Upload(c.Context(), file, folder)
	if err != nil {
		return fail(c, "Failed to upload image", err)
	}
	return ok(c, "Image uploaded successfully", result)
}

// POST /api/upload/images — up to five files under the "images" form field.
// All files are validated before any of them is sent upstream.
func (r *Router) uploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fail(c, "No files uploaded",
			apperr.NewValidation("images", "please select image files"))
	}
	files := form.File["images"]
	if len(files) == 0 {
		return fail(c, "No files uploaded",
			apperr.NewValidation("images", "please select image files"))
	}
	if len(files) > cloud.MaxFilesPerUpload {
		return fail(c, "Too many files", apperr.NewValidation("images",
			fmt.Sprintf("maximum %d files per upload", cloud.MaxFilesPerUpload)))
	}
	for _, file := range files {
		if err := cloud.ValidateImage(file); err != nil {
			return fail(c, "Invalid file: "+file.Filename, err)
		}
	}

	folder := c.Query("folder", "uploads")
	results := make([]*cloud.UploadResult, 0, len(files))
	for _, file := range files {
		result, err := r.images.Upload(c.Context(), file, folder)
		if err != nil {
			return fail(c, "Failed to upload "+file.Filename, err)
		}
		results = append(results, result)
	}
	return okCount(c, "Images uploaded successfully", results, len(results))
}

// DELETE /api/upload/image?publicId=...
func (r *Router) deleteImage(c *fiber.Ctx) error {
	publicID := c.Query("publicId")
	if publicID == "" {
		return fail(c, "Missing public id",
			apperr.NewValidation("publicId", "is required"))
	}
	deleted, err := r.images.Delete(c.Context(), publicID)
	if err != nil {
		return fail(c, "Failed to delete image", err)
	}
	if !deleted {
		return fail(c, "Image not found", apperr.NewNotFound("image", publicID))
	}
	return ok(c, "Image deleted successfully", nil)
}
