package routes

import (
	"errors"
	"strconv"

	"bloomsnursery/apperr"
	"bloomsnursery/query"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Every response is the same envelope: {success, message, data?, error?,
// count?|pagination?}.

func ok(c *fiber.Ctx, message string, data any) error {
	return c.JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func okCount(c *fiber.Ctx, message string, data any, count int) error {
	return c.JSON(fiber.Map{"success": true, "message": message, "data": data, "count": count})
}

func okPage(c *fiber.Ctx, message string, data any, pg query.Pagination) error {
	return c.JSON(fiber.Map{"success": true, "message": message, "data": data, "pagination": pg})
}

func created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": message, "data": data})
}

// fail maps the error taxonomy to a status code. Anything outside the
// taxonomy is an unexpected storage or collaborator failure; only its
// message string crosses the boundary.
func fail(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError
	var (
		ve *apperr.ValidationError
		nf *apperr.NotFoundError
		cf *apperr.ConflictError
		ae *apperr.AuthError
	)
	switch {
	case errors.As(err, &ve):
		status = fiber.StatusBadRequest
	case errors.As(err, &nf):
		status = fiber.StatusNotFound
	case errors.As(err, &cf):
		status = fiber.StatusConflict
	case errors.As(err, &ae):
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

// validateStruct folds validator output into the taxonomy so handlers report
// the first offending field.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperr.NewValidation(fe.Field(), "failed on the '"+fe.Tag()+"' rule")
	}
	return apperr.NewValidation("", err.Error())
}

// paramID parses a numeric path parameter. Non-numeric values are rejected,
// never coerced.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.NewValidation(name, "must be a valid numeric id")
	}
	return uint(id), nil
}

// queryInt parses an optional integer query parameter.
func queryInt(c *fiber.Ctx, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.NewValidation(name, "must be an integer")
	}
	return n, nil
}

// queryFloat parses an optional float query parameter, returning nil when
// the parameter is absent.
func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperr.NewValidation(name, "must be a number")
	}
	return &f, nil
}

// queryBool parses an optional boolean query parameter, returning nil when
// the parameter is absent.
func queryBool(c *fiber.Ctx, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, apperr.NewValidation(name, "must be true or false")
	}
	return &b, nil
}
