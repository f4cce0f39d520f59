package routes

import (
	"strings"

	"bloomsnursery/apperr"
	"bloomsnursery/auth"

	"github.com/gofiber/fiber/v2"
)

const adminClaimsKey = "admin"

// requireAdmin verifies the bearer token and rechecks that its subject still
// resolves to an active admin account before letting the request through.
func (r *Router) requireAdmin(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return fail(c, "Access denied", apperr.NewAuth("no token provided, use: Bearer <token>"))
	}

	claims, err := r.auth.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return fail(c, "Access denied", err)
	}

	admin, err := r.admins.Get(c.Context(), claims.AdminID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return fail(c, "Access denied", apperr.NewAuth("admin not found or inactive"))
		}
		return fail(c, "Authentication failed", err)
	}

	c.Locals(adminClaimsKey, &auth.Claims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	})
	return c.Next()
}

// protectWrites guards POST/PUT/PATCH/DELETE on a resource group while
// leaving GET requests unauthenticated.
func (r *Router) protectWrites(c *fiber.Ctx) error {
	switch c.Method() {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		return r.requireAdmin(c)
	}
	return c.Next()
}

func adminClaims(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals(adminClaimsKey).(*auth.Claims)
	return claims
}
