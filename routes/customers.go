package routes

import (
	"strings"

	"bloomsnursery/apperr"
	"bloomsnursery/models"

	"github.com/gofiber/fiber/v2"
)

type createCustomerInput struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Mobile          string `json:"mobile" validate:"required"`
	ProductName     string `json:"product_name" validate:"required"`
	Quantity        *int   `json:"quantity" validate:"omitempty,gte=1"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
}

type updateCustomerInput struct {
	Name            *string `json:"name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Mobile          *string `json:"mobile"`
	ProductName     *string `json:"product_name"`
	Quantity        *int    `json:"quantity" validate:"omitempty,gte=1"`
	DeliveryAddress *string `json:"delivery_address"`
}

func (r *Router) createCustomer(c *fiber.Ctx) error {
	input := new(createCustomerInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}

	customer := models.Customer{
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.TrimSpace(input.Email),
		Mobile:          strings.TrimSpace(input.Mobile),
		ProductName:     strings.TrimSpace(input.ProductName),
		Quantity:        1,
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
	}
	if customer.Name == "" {
		return fail(c, "Validation failed", apperr.NewValidation("name", "cannot be empty"))
	}
	if input.Quantity != nil {
		customer.Quantity = *input.Quantity
	}

	if err := r.customers.Create(c.Context(), &customer); err != nil {
		return fail(c, "Failed to create customer", err)
	}
	return created(c, "Customer created successfully", customer)
}

func (r *Router) getAllCustomers(c *fiber.Ctx) error {
	customers, err := r.customers.All(c.Context())
	if err != nil {
		return fail(c, "Failed to retrieve customers", err)
	}
	return okCount(c, "Customers retrieved successfully", customers, len(customers))
}

func (r *Router) updateCustomer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid customer ID is required", err)
	}

	input := new(updateCustomerInput)
	if err := c.BodyParser(input); err != nil {
		return fail(c, "Cannot parse JSON", apperr.NewValidation("body", "malformed request body"))
	}
	if err := validateStruct(input); err != nil {
		return fail(c, "Validation failed", err)
	}

	customer, err := r.customers.Get(c.Context(), id)
	if err != nil {
		return fail(c, "Failed to update customer", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return fail(c, "Validation failed", apperr.NewValidation("name", "cannot be empty"))
		}
		customer.Name = name
	}
	if input.Email != nil {
		customer.Email = strings.TrimSpace(*input.Email)
	}
	if input.Mobile != nil {
		customer.Mobile = strings.TrimSpace(*input.Mobile)
	}
	if input.ProductName != nil {
		customer.ProductName = strings.TrimSpace(*input.ProductName)
	}
	if input.Quantity != nil {
		customer.Quantity = *input.Quantity
	}
	if input.DeliveryAddress != nil {
		customer.DeliveryAddress = strings.TrimSpace(*input.DeliveryAddress)
	}

	if err := r.customers.Save(c.Context(), customer); err != nil {
		return fail(c, "Failed to update customer", err)
	}
	return ok(c, "Customer updated successfully", customer)
}

func (r *Router) deleteCustomer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, "Valid customer ID is required", err)
	}
	if err := r.customers.Delete(c.Context(), id); err != nil {
		return fail(c, "Failed to delete customer", err)
	}
	return ok(c, "Customer deleted successfully", nil)
}
