package handlers

import (
	"log"

	"foodcourt/internal/models"
	"foodcourt/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for payment methods.
type PaymentHandler struct {
	service  *services.PaymentService
	validate *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the payment method routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payment-methods")
	paymentRoutes.Get("/", h.HandleGetPaymentMethods)
	paymentRoutes.Get("/:id", h.HandleGetPaymentMethodByID)
	paymentRoutes.Post("/", h.HandleCreatePaymentMethod)
	paymentRoutes.Patch("/:id", h.HandleUpdatePaymentMethod)
	paymentRoutes.Delete("/:id", h.HandleDeletePaymentMethod)
}

// HandleGetPaymentMethods lists the caller's payment methods.
func (h *PaymentHandler) HandleGetPaymentMethods(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	methods, err := h.service.FindAll(ident)
	if err != nil {
		log.Printf("Error getting payment methods for user %s: %v", ident.ID, err)
		return serviceError(c, err)
	}
	if methods == nil {
		methods = []models.PaymentMethod{}
	}
	return c.JSON(methods)
}

// HandleGetPaymentMethodByID retrieves one of the caller's payment methods.
func (h *PaymentHandler) HandleGetPaymentMethodByID(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	pm, err := h.service.FindOne(c.Params("id"), ident)
	if err != nil {
		log.Printf("Error getting payment method %s for user %s: %v", c.Params("id"), ident.ID, err)
		return serviceError(c, err)
	}
	return c.JSON(pm)
}

// HandleCreatePaymentMethod stores a new payment method for the caller.
func (h *PaymentHandler) HandleCreatePaymentMethod(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	var pm models.PaymentMethod
	if err := c.BodyParser(&pm); err != nil {
		log.Printf("Error parsing payment method request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(pm); err != nil {
		return validationError(c, err)
	}

	created, err := h.service.Create(ident, &pm)
	if err != nil {
		log.Printf("Error creating payment method for user %s: %v", ident.ID, err)
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdatePaymentMethodRequest is the request body for updating a payment method.
type UpdatePaymentMethodRequest struct {
	Type      string `json:"type"`
	IsDefault *bool  `json:"is_default"`
}

// HandleUpdatePaymentMethod updates a payment method (admin only).
func (h *PaymentHandler) HandleUpdatePaymentMethod(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	var req UpdatePaymentMethodRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment method update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	pm, err := h.service.Update(c.Params("id"), ident, req.Type, req.IsDefault)
	if err != nil {
		log.Printf("Error updating payment method %s for user %s: %v", c.Params("id"), ident.ID, err)
		return serviceError(c, err)
	}
	return c.JSON(pm)
}

// HandleDeletePaymentMethod removes one of the caller's payment methods.
func (h *PaymentHandler) HandleDeletePaymentMethod(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	if err := h.service.Delete(c.Params("id"), ident); err != nil {
		log.Printf("Error deleting payment method %s for user %s: %v", c.Params("id"), ident.ID, err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Payment method deleted successfully",
	})
}
