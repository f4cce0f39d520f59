package routes

import (
	"strings"

	"bloomsnursery/apperr"
	"bloomsnursery/models"

	"github.com/gofiber/fiber/v2"
)

type createCategoryInput struct {
	CategoryName string `json:"category_name" validate:"required"`
	Available    *bool  `json:"available"`
}

type updateCategoryInput struct {
	CategoryName *string `json:"category_name"`
	Available    *bool   `json:"available"`
}

func (r *Router) getAllCategories(c *fiber.Ctx) error {
	cats, err := r.categories.All(c.Context())
	if err != nil {
		return fail(c, "Failed to retrieve categories", err)
	}
	return okCount(c, "Categories retrieved successfully", cats, len(cats))
}

func (r *Router) getAvailableCategories(c *fiber.Ctx) error {
	cats, err := r.categories.Available(c.Context())
	if err != nil {
		return fail(c, "Failed to retrieve available categories", err)
	}
	return okCount(c, "Available categories retrieved successfully", cats, len(cats))
}

func (r *Router) getCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid category ID is required", err)
	}
	cat, err := r.categories.Get(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to retrieve category", err)
	}
	return ok(c, "Category retrieved successfully", cat)
}

func (r *Router) getCategoryByName(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Params("categoryName"))
	if name == "" {
		return fail(c, "Invalid category name", apperr.NewValidation("categoryName", "cannot be empty"))
	}
	cat, err := r.categories.ByName(c.Context(), name)
	if err != nil {
		return fail(c, "Failed to retrieve category", err)
	}
	return ok(c, "Category retrieved successfully", cat)
}

func (r *Router) searchCategories(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Params("searchTerm"))
	if term == "" {
		return fail(c, "Invalid search term", apperr.NewValidation("searchTerm", "cannot be empty"))
	}
	cats, err := r.categories.Search(c.Context(), term)
	if err != nil {
		return fail(c, "Failed to search categories", err)
	}
	return okCount(c, "Search completed successfully", cats, len(cats))
}

func (r *Router) getCategoryStats(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid category ID is required", err)
	}
	stats, err := r.categories.Stats(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to retrieve category statistics", err)
	}
	return ok(c, "Category statistics retrieved successfully", stats)
}

func (r *Router) createCategory(c *fiber.Ctx) error {
	input := new(createCategoryInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}

	name := strings.TrimSpace(input.CategoryName)
	if name == "" {
		return fail(c, "Validation failed", apperr.NewValidation("category_name", "cannot be empty"))
	}

	taken, err := r.categories.NameTaken(c.Context(), name, 0)
	if err != nil {
		return fail(c, "Failed to create category", err)
	}
	if taken {
		return fail(c, "Category already exists",
			apperr.NewConflict("category \""+name+"\" already exists"))
	}

	cat := models.Category{CategoryName: name, Available: true}
	if input.Available != nil {
		cat.Available = *input.Available
	}
	if err := r.categories.Create(c.Context(), &cat); err != nil {
		return fail(c, "Failed to create category", err)
	}
	return created(c, "Category created successfully", cat)
}

// PUT /api/categories/:id — partial update with a duplicate-name check that
// excludes the row itself.
func (r *Router) updateCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid category ID is required", err)
	}

	input := new(updateCategoryInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}

	cat, err := r.categories.Get(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to update category", err)
	}

	if input.CategoryName != nil {
		name := strings.TrimSpace(*input.CategoryName)
		if name == "" {
			return fail(c, "Validation failed", apperr.NewValidation("category_name", "cannot be empty"))
		}
		taken, err := r.categories.NameTaken(c.Context(), name, id)
		if err != nil {
			return fail(c, "Failed to update category", err)
		}
		if taken {
			return fail(c, "Category already exists",
				apperr.NewConflict("category \""+name+"\" already exists"))
		}
		cat.CategoryName = name
	}
	if input.Available != nil {
		cat.Available = *input.Available
	}

	if err := r.categories.Save(c.Context(), cat); err != nil {
		return fail(c, "Failed to update category", err)
	}
	return ok(c, "Category updated successfully", cat)
}

func (r *Router) toggleCategoryAvailability(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid category ID is required", err)
	}
	cat, err := r.categories.ToggleAvailable(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to toggle availability", err)
	}
	return ok(c, "Availability toggled successfully", cat)
}

// DELETE /api/categories/:id — refused while any product or featured item
// still references the category name.
func (r *Router) deleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid category ID is required", err)
	}
	cat, err := r.categories.Delete(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to delete category", err)
	}
	return ok(c, "Category deleted successfully", cat)
}
