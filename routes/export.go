package routes

import (
	"github.com/gocarina/gocsv"
	"github.com/gofiber/fiber/v2"
)

// GET /api/export — the full product table as a CSV attachment. Exports are
// never filtered or paginated.
func (r *Router) exportProductsCSV(c *fiber.Ctx) error {
	products, err := r.products.All(c.Context())
	if err != nil {
		return fail(c, "Failed to export products", err)
	}
	csv, err := gocsv.MarshalString(&products)
	if err != nil {
		return fail(c, "Failed to export products", err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.SendString(csv)
}

// GET /api/customers/export/csv
func (r *Router) exportCustomersCSV(c *fiber.Ctx) error {
	customers, err := r.customers.All(c.Context())
	if err != nil {
		return fail(c, "Failed to export customers", err)
	}
	csv, err := gocsv.MarshalString(&customers)
	if err != nil {
		return fail(c, "Failed to export customers", err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="customers_export.csv"`)
	return c.SendString(csv)
}
