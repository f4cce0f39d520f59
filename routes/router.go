// Package routes wires the HTTP surface: route tables, handlers, the
// response envelope and the auth middleware.
package routes

import (
	"time"

	"bloomsnursery/auth"
	"bloomsnursery/cloud"
	"bloomsnursery/store"

	"github.com/gofiber/fiber/v2"
)

// Router holds the injected collaborators every handler needs.
type Router struct {
	products   store.ProductStore
	categories store.CategoryStore
	featured   store.FeaturedStore
	customers  store.CustomerStore
	admins     store.AdminStore
	auth       *auth.Manager
	images     cloud.ImageHost
}

func New(stores *store.Stores, mgr *auth.Manager, images cloud.ImageHost) *Router {
	return &Router{
		products:   stores.Products,
		categories: stores.Categories,
		featured:   stores.Featured,
		customers:  stores.Customers,
		admins:     stores.Admins,
		auth:       mgr,
		images:     images,
	}
}

// Register mounts every route group on the app.
func (r *Router) Register(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Blooms Nursery Backend API",
			"status":    "Server is running",
			"timestamp": time.Now(),
			"endpoints": fiber.Map{
				"admin":      "/api/admin",
				"featured":   "/api/featured",
				"categories": "/api/categories",
				"products":   "/api/products",
				"health":     "/health",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "timestamp": time.Now()})
	})

	admin := app.Group("/api/admin")
	admin.Post("/login", r.adminLogin)
	admin.Post("/verify-token", r.adminVerifyToken)
	admin.Get("/profile", r.requireAdmin, r.adminProfile)
	admin.Put("/change-password", r.requireAdmin, r.adminChangePassword)
	admin.Post("/logout", r.requireAdmin, r.adminLogout)
	admin.Get("/dashboard-stats", r.requireAdmin, r.adminDashboardStats)

	products := app.Group("/api/products", r.protectWrites)
	products.Get("/available", r.getAvailableProducts)
	products.Get("/in-stock", r.getInStockProducts)
	products.Get("/out-of-stock", r.getOutOfStockProducts)
	products.Get("/featured", r.getFeaturedProducts)
	products.Get("/low-stock", r.getLowStockProducts)
	products.Get("/search/:searchTerm", r.searchProducts)
	products.Get("/category/:category", r.getProductsByCategory)
	products.Get("/price/:minPrice/:maxPrice", r.getProductsByPriceRange)
	products.Get("/rating/:minRating", r.getProductsByRating)
	products.Get("/:id", r.getProduct)
	products.Get("/", r.getAllProducts)
	products.Post("/", r.createProduct)
	products.Put("/:id", r.updateProduct)
	products.Patch("/bulk/stock", r.bulkUpdateStock)
	products.Patch("/bulk/price", r.bulkUpdatePrice)
	products.Patch("/:id/stock", r.updateProductStock)
	products.Patch("/:id/price", r.updateProductPrice)
	products.Patch("/:id/rating", r.updateProductRating)
	products.Patch("/:id/toggle", r.toggleProductAvailability)
	products.Delete("/:id", r.deleteProduct)

	categories := app.Group("/api/categories", r.protectWrites)
	categories.Get("/available", r.getAvailableCategories)
	categories.Get("/search/:searchTerm", r.searchCategories)
	categories.Get("/name/:categoryName", r.getCategoryByName)
	categories.Get("/:id/stats", r.getCategoryStats)
	categories.Get("/:id", r.getCategory)
	categories.Get("/", r.getAllCategories)
	categories.Post("/", r.createCategory)
	categories.Put("/:id", r.updateCategory)
	categories.Patch("/:id/toggle", r.toggleCategoryAvailability)
	categories.Delete("/:id", r.deleteCategory)

	featured := app.Group("/api/featured", r.protectWrites)
	featured.Get("/active", r.getActiveFeatured)
	featured.Get("/category/:category", r.getFeaturedByCategory)
	featured.Get("/:id", r.getFeaturedItem)
	featured.Get("/", r.getAllFeatured)
	featured.Post("/", r.createFeatured)
	featured.Put("/:id", r.updateFeatured)
	featured.Patch("/:id/toggle", r.toggleFeaturedShow)
	featured.Delete("/:id", r.deleteFeatured)

	customers := app.Group("/api/customers")
	customers.Post("/", r.createCustomer)
	customers.Get("/export/csv", r.exportCustomersCSV)
	customers.Get("/", r.getAllCustomers)
	customers.Put("/:id", r.updateCustomer)
	customers.Delete("/:id", r.deleteCustomer)

	app.Get("/api/export", r.exportProductsCSV)

	upload := app.Group("/api/upload")
	upload.Post("/image", r.uploadImage)
	upload.Post("/images", r.uploadImages)
	upload.Delete("/image", r.deleteImage)
}
