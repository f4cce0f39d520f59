package routes

import (
	"strconv"
	"strings"

	"bloomsnursery/apperr"
	"bloomsnursery/models"
	"bloomsnursery/query"
	"bloomsnursery/store"

	"github.com/gofiber/fiber/v2"
)

type createProductInput struct {
	Category    string           `json:"category" validate:"required"`
	ProductName string           `json:"product_name" validate:"required"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	Price       *float64         `json:"price" validate:"required,gte=0"`
	Available   *bool            `json:"available"`
	Images      models.ImageList `json:"images" validate:"required,min=1"`
	Rating      *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews     *int             `json:"reviews" validate:"omitempty,gte=0"`
}

type updateProductInput struct {
	Category    *string          `json:"category"`
	ProductName *string          `json:"product_name"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	Price       *float64         `json:"price" validate:"omitempty,gte=0"`
	Available   *bool            `json:"available"`
	Images      models.ImageList `json:"images"`
	Rating      *float64         `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews     *int             `json:"reviews" validate:"omitempty,gte=0"`
}

// GET /api/products — full list, or a filtered page when page/limit given.
func (r *Router) getAllProducts(c *fiber.Ctx) error {
	if c.Query("page") == "" && c.Query("limit") == "" {
		products, err := r.products.All(c.Context())
		if err != nil {
			return fail(c, "Failed to retrieve products", err)
		}
		return okCount(c, "Products retrieved successfully", products, len(products))
	}

	page, err := queryInt(c, "page", query.DefaultPage)
	if err != nil {
		return fail(c, "Invalid pagination parameters", err)
	}
	limit, err := queryInt(c, "limit", query.DefaultLimit)
	if err != nil {
		return fail(c, "Invalid pagination parameters", err)
	}

	filters, err := parseProductFilters(c)
	if err != nil {
		return fail(c, "Invalid filter parameters", err)
	}

	products, pg, err := r.products.Page(c.Context(), filters, query.NewPageRequest(page, limit))
	if err != nil {
		return fail(c, "Failed to retrieve products", err)
	}
	return okPage(c, "Products retrieved successfully", products, pg)
}

// parseProductFilters rejects malformed values and enforces the only
// cross-filter rule, minPrice <= maxPrice, at the request boundary.
func parseProductFilters(c *fiber.Ctx) (query.ProductFilters, error) {
	var f query.ProductFilters

	if category := c.Query("category"); category != "" {
		f.Category = &category
	}
	available, err := queryBool(c, "available")
	if err != nil {
		return f, err
	}
	f.Available = available

	if f.MinPrice, err = queryFloat(c, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = queryFloat(c, "maxPrice"); err != nil {
		return f, err
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return f, apperr.NewValidation("minPrice", "cannot be greater than maxPrice")
	}
	if f.MinRating, err = queryFloat(c, "minRating"); err != nil {
		return f, err
	}
	f.InStock = c.Query("inStock") == "true"
	return f, nil
}

func (r *Router) getAvailableProducts(c *fiber.Ctx) error {
	products, err := r.products.Available(c.Context())
	if err != nil {
		return fail(c, "Failed to retrieve available products", err)
	}
	return okCount(c, "Available products retrieved successfully", products, len(products))
}

func (r *Router) getInStockProducts(c *fiber.Ctx) error {
	products, err := r.products.InStock(c.Context())
	if err != nil {
		return fail(c, "Failed to retrieve in-stock products", err)
	}
	return okCount(c, "In-stock products retrieved successfully", products, len(products))
}

func (r *Router) getOutOfStockProducts(c *fiber.Ctx) error {
	products, err := r.products.OutOfStock(c.Context())
	if err != nil {
		return fail(c, "Failed to retrieve out-of-stock products", err)
	}
	return okCount(c, "Out-of-stock products retrieved successfully", products, len(products))
}

func (r *Router) getFeaturedProducts(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 10)
	if err != nil {
		return fail(c, "Invalid limit", err)
	}
	if limit < 1 {
		limit = 10
	}
	products, err := r.products.Featured(c.Context(), limit)
	if err != nil {
		return fail(c, "Failed to retrieve featured products", err)
	}
	return okCount(c, "Featured products retrieved successfully", products, len(products))
}

func (r *Router) getLowStockProducts(c *fiber.Ctx) error {
	threshold, err := queryInt(c, "threshold", 5)
	if err != nil {
		return fail(c, "Invalid threshold", err)
	}
	if threshold < 0 {
		threshold = 5
	}
	products, err := r.products.LowStock(c.Context(), threshold)
	if err != nil {
		return fail(c, "Failed to retrieve low stock products", err)
	}
	return okCount(c, "Low stock products retrieved successfully", products, len(products))
}

func (r *Router) searchProducts(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.Params("searchTerm"))
	if term == "" {
		return fail(c, "Invalid search term", apperr.NewValidation("searchTerm", "cannot be empty"))
	}
	products, err := r.products.Search(c.Context(), term)
	if err != nil {
		return fail(c, "Failed to search products", err)
	}
	return okCount(c, "Search completed successfully", products, len(products))
}

func (r *Router) getProductsByCategory(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Params("category"))
	if category == "" {
		return fail(c, "Invalid category", apperr.NewValidation("category", "cannot be empty"))
	}
	products, err := r.products.ByCategory(c.Context(), category)
	if err != nil {
		return fail(c, "Failed to retrieve products by category", err)
	}
	return okCount(c, "Products retrieved successfully", products, len(products))
}

func (r *Router) getProductsByPriceRange(c *fiber.Ctx) error {
	min, err := strconv.ParseFloat(c.Params("minPrice"), 64)
	if err != nil {
		return fail(c, "Invalid price range", apperr.NewValidation("minPrice", "must be a number"))
	}
	max, err := strconv.ParseFloat(c.Params("maxPrice"), 64)
	if err != nil {
		return fail(c, "Invalid price range", apperr.NewValidation("maxPrice", "must be a number"))
	}
	if min > max {
		return fail(c, "Invalid price range", apperr.NewValidation("minPrice", "cannot be greater than maxPrice"))
	}
	products, err := r.products.ByPriceRange(c.Context(), min, max)
	if err != nil {
		return fail(c, "Failed to retrieve products by price range", err)
	}
	return okCount(c, "Products retrieved successfully", products, len(products))
}

func (r *Router) getProductsByRating(c *fiber.Ctx) error {
	min, err := strconv.ParseFloat(c.Params("minRating"), 64)
	if err != nil {
		return fail(c, "Invalid rating", apperr.NewValidation("minRating", "must be a number"))
	}
	products, err := r.products.ByMinRating(c.Context(), min)
	if err != nil {
		return fail(c, "Failed to retrieve products by rating", err)
	}
	return okCount(c, "Products retrieved successfully", products, len(products))
}

func (r *Router) getProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid product ID is required", err)
	}
	product, err := r.products.Get(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to retrieve product", err)
	}
	return ok(c, "Product retrieved successfully", product)
}

func (r *Router) createProduct(c *fiber.Ctx) error {
	input := new(createProductInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}

	input.ProductName = strings.TrimSpace(input.ProductName)
	input.Category = strings.TrimSpace(input.Category)
	if input.ProductName == "" {
		return fail(c, "Validation failed", apperr.NewValidation("product_name", "cannot be empty"))
	}
	if input.Category == "" {
		return fail(c, "Validation failed", apperr.NewValidation("category", "cannot be empty"))
	}

	exists, err := r.categories.ExistsAvailable(c.Context(), input.Category)
	if err != nil {
		return fail(c, "Failed to create product", err)
	}
	if !exists {
		return fail(c, "Invalid category",
			apperr.NewValidation("category", "category does not exist or is not available"))
	}

	product := models.Product{
		Category:    input.Category,
		ProductName: input.ProductName,
		Price:       *input.Price,
		Available:   true,
		Images:      input.Images,
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Available != nil {
		product.Available = *input.Available
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.Reviews != nil {
		product.Reviews = *input.Reviews
	}

	if err := r.products.Create(c.Context(), &product); err != nil {
		return fail(c, "Failed to create product", err)
	}
	return created(c, "Product created successfully", product)
}

// PUT /api/products/:id — partial update: omitted fields keep their stored
// values.
func (r *Router) updateProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid product ID is required", err)
	}

	input := new(updateProductInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}

	product, err := r.products.Get(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to update product", err)
	}

	if input.ProductName != nil {
		name := strings.TrimSpace(*input.ProductName)
		if name == "" {
			return fail(c, "Validation failed", apperr.NewValidation("product_name", "cannot be empty"))
		}
		product.ProductName = name
	}
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return fail(c, "Validation failed", apperr.NewValidation("category", "cannot be empty"))
		}
		exists, err := r.categories.ExistsAvailable(c.Context(), category)
		if err != nil {
			return fail(c, "Failed to update product", err)
		}
		if !exists {
			return fail(c, "Invalid category",
				apperr.NewValidation("category", "category does not exist or is not available"))
		}
		product.Category = category
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Available != nil {
		product.Available = *input.Available
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Rating != nil {
		product.Rating = *input.Rating
	}
	if input.Reviews != nil {
		product.Reviews = *input.Reviews
	}

	if err := r.products.Save(c.Context(), product); err != nil {
		return fail(c, "Failed to update product", err)
	}
	return ok(c, "Product updated successfully", product)
}

func (r *Router) updateProductStock(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid product ID is required", err)
	}
	input := new(struct {
		Stock *int `json:"stock" validate:"required,gte=0"`
	})
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}
	product, err := r.products.UpdateStock(c.Context(), id, *input.Stock)
	if err != nil {
		return fail(c, "Failed to update stock", err)
	}
	return ok(c, "Stock updated successfully", product)
}

func (r *Router) updateProductPrice(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid product ID is required", err)
	}
	input := new(struct {
		Price *float64 `json:"price" validate:"required,gte=0"`
	})
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}
	product, err := r.products.UpdatePrice(c.Context(), id, *input.Price)
	if err != nil {
		return fail(c, "Failed to update price", err)
	}
	return ok(c, "Price updated successfully", product)
}

func (r *Router) updateProductRating(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid product ID is required", err)
	}
	input := new(struct {
		Rating  *float64 `json:"rating" validate:"required,gte=0,lte=5"`
		Reviews *int     `json:"reviews" validate:"omitempty,gte=0"`
	})
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}
	product, err := r.products.UpdateRating(c.Context(), id, *input.Rating, input.Reviews)
	if err != nil {
		return fail(c, "Failed to update rating", err)
	}
	return ok(c, "Rating updated successfully", product)
}

func (r *Router) toggleProductAvailability(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid product ID is required", err)
	}
	product, err := r.products.ToggleAvailable(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to toggle availability", err)
	}
	return ok(c, "Availability toggled successfully", product)
}

func (r *Router) bulkUpdateStock(c *fiber.Ctx) error {
	input := new(struct {
		Items []store.StockChange `json:"items" validate:"required,min=1,dive"`
	})
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}
	products, err := r.products.BulkUpdateStock(c.Context(), input.Items)
	if err != nil {
		return fail(c, "Failed to update stock in bulk", err)
	}
	return okCount(c, "Stock updated successfully", products, len(products))
}

func (r *Router) bulkUpdatePrice(c *fiber.Ctx) error {
	input := new(struct {
		Items []store.PriceChange `json:"items" validate:"required,min=1,dive"`
	})
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}
	products, err := r.products.BulkUpdatePrice(c.Context(), input.Items)
	if err != nil {
		return fail(c, "Failed to update prices in bulk", err)
	}
	return okCount(c, "Prices updated successfully", products, len(products))
}

func (r *Router) deleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid product ID is required", err)
	}
	product, err := r.products.Delete(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to delete product", err)
	}
	return ok(c, "Product deleted successfully", product)
}
