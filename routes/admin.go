package routes

import (
	"strings"

	"bloomsnursery/apperr"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type loginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// POST /api/admin/login
func (r *Router) adminLogin(c *fiber.Ctx) error {
	input := new(loginInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Username and password are required", err)
	}

	admin, err := r.admins.ByUsername(c.Context(), strings.TrimSpace(input.Username))
	if err != nil {
		if apperr.IsNotFound(err) {
			return fail(c, "Login failed", apperr.NewAuth("invalid username or password"))
		}
		return fail(c, "Login failed", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)) != nil {
		return fail(c, "Login failed", apperr.NewAuth("invalid username or password"))
	}

	if err := r.admins.UpdateLastLogin(c.Context(), admin.ID); err != nil {
		return fail(c, "Login failed", err)
	}

	token, err := r.auth.Issue(admin)
	if err != nil {
		return fail(c, "Login failed", err)
	}

	return ok(c, "Login successful", fiber.Map{
		"admin": fiber.Map{
			"id":         admin.ID,
			"username":   admin.Username,
			"role":       admin.Role,
			"last_login": admin.LastLogin,
		},
		"token":     token,
		"expiresIn": r.auth.TTL().String(),
	})
}

// POST /api/admin/verify-token
func (r *Router) adminVerifyToken(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return fail(c, "Verification failed", apperr.NewAuth("no token provided"))
	}
	claims, err := r.auth.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return fail(c, "Verification failed", err)
	}
	admin, err := r.admins.Get(c.Context(), claims.AdminID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return fail(c, "Verification failed", apperr.NewAuth("admin not found or inactive"))
		}
		return fail(c, "Verification failed", err)
	}
	return ok(c, "Token verified successfully", fiber.Map{
		"admin": fiber.Map{
			"id":       admin.ID,
			"username": admin.Username,
			"role":     admin.Role,
		},
		"tokenValid": true,
	})
}

// GET /api/admin/profile
func (r *Router) adminProfile(c *fiber.Ctx) error {
	claims := adminClaims(c)
	admin, err := r.admins.Get(c.Context(), claims.AdminID)
	if err != nil {
		return fail(c, "Failed to retrieve profile", err)
	}
	return ok(c, "Profile retrieved successfully", admin)
}

// PUT /api/admin/change-password
func (r *Router) adminChangePassword(c *fiber.Ctx) error {
	input := new(changePasswordInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}

	claims := adminClaims(c)
	admin, err := r.admins.Get(c.Context(), claims.AdminID)
	if err != nil {
		return fail(c, "Failed to change password", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.CurrentPassword)) != nil {
		return fail(c, "Failed to change password", apperr.NewAuth("current password is incorrect"))
	}

	if err := r.admins.ChangePassword(c.Context(), admin.ID, input.NewPassword); err != nil {
		return fail(c, "Failed to change password", err)
	}
	return ok(c, "Password changed successfully", nil)
}

// POST /api/admin/logout — stateless tokens, the client discards it.
func (r *Router) adminLogout(c *fiber.Ctx) error {
	return ok(c, "Logout successful, remove the token from client storage", nil)
}

// GET /api/admin/dashboard-stats
func (r *Router) adminDashboardStats(c *fiber.Ctx) error {
	stats, err := r.admins.DashboardStats(c.Context())
	if err != nil {
		return fail(c, "Failed to retrieve dashboard statistics", err)
	}
	return ok(c, "Dashboard statistics retrieved successfully", stats)
}
