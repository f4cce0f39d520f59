package routes

import (
	"strings"

	"bloomsnursery/apperr"
	"bloomsnursery/models"

	"github.com/gofiber/fiber/v2"
)

type createFeaturedInput struct {
	Category string           `json:"category" validate:"required"`
	Images   models.ImageList `json:"images" validate:"required,min=1"`
	Show     *bool            `json:"show"`
}

type updateFeaturedInput struct {
	Category *string          `json:"category"`
	Images   models.ImageList `json:"images"`
	Show     *bool            `json:"show"`
}

func (r *Router) getAllFeatured(c *fiber.Ctx) error {
	items, err := r.featured.All(c.Context())
	if err != nil {
		return fail(c, "Failed to retrieve featured items", err)
	}
	return okCount(c, "Featured items retrieved successfully", items, len(items))
}

func (r *Router) getActiveFeatured(c *fiber.Ctx) error {
	items, err := r.featured.Active(c.Context())
	if err != nil {
		return fail(c, "Failed to retrieve active featured items", err)
	}
	return okCount(c, "Active featured items retrieved successfully", items, len(items))
}

func (r *Router) getFeaturedByCategory(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Params("category"))
	if category == "" {
		return fail(c, "Invalid category", apperr.NewValidation("category", "cannot be empty"))
	}
	items, err := r.featured.ByCategory(c.Context(), category)
	if err != nil {
		return fail(c, "Failed to retrieve featured items by category", err)
	}
	return okCount(c, "Featured items retrieved successfully", items, len(items))
}

func (r *Router) getFeaturedItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid featured item ID is required", err)
	}
	item, err := r.featured.Get(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to retrieve featured item", err)
	}
	return ok(c, "Featured item retrieved successfully", item)
}

func (r *Router) createFeatured(c *fiber.Ctx) error {
	input := new(createFeaturedInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return fail(c, "Validation failed", apperr.NewValidation("category", "cannot be empty"))
	}
	exists, err := r.categories.ExistsAvailable(c.Context(), category)
	if err != nil {
		return fail(c, "Failed to create featured item", err)
	}
	if !exists {
		return fail(c, "Invalid category",
			apperr.NewValidation("category", "category does not exist or is not available"))
	}

	item := models.Featured{Category: category, Images: input.Images, Show: true}
	if input.Show != nil {
		item.Show = *input.Show
	}
	if err := r.featured.Create(c.Context(), &item); err != nil {
		return fail(c, "Failed to create featured item", err)
	}
	return created(c, "Featured item created successfully", item)
}

func (r *Router) updateFeatured(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid featured item ID is required", err)
	}

	input := new(updateFeaturedInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}

	item, err := r.featured.Get(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to update featured item", err)
	}

	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return fail(c, "Validation failed", apperr.NewValidation("category", "cannot be empty"))
		}
		exists, err := r.categories.ExistsAvailable(c.Context(), category)
		if err != nil {
			return fail(c, "Failed to update featured item", err)
		}
		if !exists {
			return fail(c, "Invalid category",
				apperr.NewValidation("category", "category does not exist or is not available"))
		}
		item.Category = category
	}
	if input.Images != nil {
		item.Images = input.Images
	}
	if input.Show != nil {
		item.Show = *input.Show
	}

	if err := r.featured.Save(c.Context(), item); err != nil {
		return fail(c, "Failed to update featured item", err)
	}
	return ok(c, "Featured item updated successfully", item)
}

func (r *Router) toggleFeaturedShow(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid featured item ID is required", err)
	}
	item, err := r.featured.ToggleShow(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to toggle show status", err)
	}
	return ok(c, "Show status toggled successfully", item)
}

func (r *Router) deleteFeatured(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid featured item ID is required", err)
	}
	item, err := r.featured.Delete(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to delete featured item", err)
	}
	return ok(c, "Featured item deleted successfully", item)
}
