package handlers

import (
	"log"

	"foodcourt/internal/models"
	"foodcourt/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/place", h.HandlePlaceOrder)
	orderRoutes.Delete("/:id", h.HandleCancelOrder)
}

// CreateOrderItemRequest is a single order line in a create request.
type CreateOrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest is the request body for creating an order.
type CreateOrderRequest struct {
	RestaurantID string                   `json:"restaurant_id" validate:"required"`
	Items        []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PlaceOrderRequest is the request body for placing an order.
type PlaceOrderRequest struct {
	PaymentMethodID *string `json:"payment_method_id"`
}

// HandleCreateOrder creates a new draft order for the caller.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	items := make([]models.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.OrderItemInput{MenuItemID: item.MenuItemID, Quantity: item.Quantity}
	}

	order, err := h.service.Create(ident, req.RestaurantID, items)
	if err != nil {
		log.Printf("Error creating order for user %s: %v", ident.ID, err)
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrders retrieves the orders visible to the caller.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	orders, err := h.service.FindAll(ident)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", ident.ID, err)
		return serviceError(c, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	order, err := h.service.FindOne(c.Params("id"), ident)
	if err != nil {
		log.Printf("Error getting order %s for user %s: %v", c.Params("id"), ident.ID, err)
		return serviceError(c, err)
	}
	return c.JSON(order)
}

// HandlePlaceOrder finalizes a draft order (admin and manager only).
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	var req PlaceOrderRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing place order request body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	order, err := h.service.PlaceOrder(c.Params("id"), ident, req.PaymentMethodID)
	if err != nil {
		log.Printf("Error placing order %s for user %s: %v", c.Params("id"), ident.ID, err)
		return serviceError(c, err)
	}
	return c.JSON(order)
}

// HandleCancelOrder terminates a draft order (admin and manager only).
func (h *OrderHandler) HandleCancelOrder(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	order, err := h.service.CancelOrder(c.Params("id"), ident)
	if err != nil {
		log.Printf("Error cancelling order %s for user %s: %v", c.Params("id"), ident.ID, err)
		return serviceError(c, err)
	}
	return c.JSON(order)
}
