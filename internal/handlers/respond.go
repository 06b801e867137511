package handlers

import (
	"fmt"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/middleware"
	"foodcourt/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// serviceError maps the service error taxonomy to an HTTP response.
// Unclassified errors become 500s.
func serviceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		status = fiber.StatusNotFound
	case apperrors.KindForbidden:
		status = fiber.StatusForbidden
	case apperrors.KindInvalidArgument, apperrors.KindInvalidTransition:
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// validationError renders go-playground validation failures field by field.
func validationError(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// currentIdentity pulls the authenticated identity set by the auth
// middleware. A missing identity means the route was wired without it.
func currentIdentity(c *fiber.Ctx) (models.Identity, bool) {
	return middleware.CurrentIdentity(c)
}

// unauthenticated is the response for routes reached without an identity.
func unauthenticated(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Authentication required",
	})
}
