package handlers

import (
	"log"

	"foodcourt/internal/models"
	"foodcourt/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RestaurantHandler handles HTTP requests for the restaurant catalog.
type RestaurantHandler struct {
	service *services.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(service *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
	}
}

// RegisterRoutes registers the restaurant routes with the Fiber app.
func (h *RestaurantHandler) RegisterRoutes(router fiber.Router) {
	restaurantRoutes := router.Group("/restaurants")
	restaurantRoutes.Get("/", h.HandleGetRestaurants)
	restaurantRoutes.Get("/:id", h.HandleGetRestaurantByID)
}

// HandleGetRestaurants lists restaurants visible to the caller.
func (h *RestaurantHandler) HandleGetRestaurants(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	restaurants, err := h.service.FindAll(ident)
	if err != nil {
		log.Printf("Error getting restaurants for user %s: %v", ident.ID, err)
		return serviceError(c, err)
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	return c.JSON(restaurants)
}

// HandleGetRestaurantByID retrieves a single restaurant by its ID.
func (h *RestaurantHandler) HandleGetRestaurantByID(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	restaurant, err := h.service.FindOne(c.Params("id"), ident)
	if err != nil {
		log.Printf("Error getting restaurant %s for user %s: %v", c.Params("id"), ident.ID, err)
		return serviceError(c, err)
	}
	return c.JSON(restaurant)
}

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	service *services.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service *services.MenuService) *MenuHandler {
	return &MenuHandler{
		service: service,
	}
}

// RegisterRoutes registers the menu routes with the Fiber app.
func (h *MenuHandler) RegisterRoutes(router fiber.Router) {
	menuRoutes := router.Group("/menu")
	menuRoutes.Get("/restaurant/:restaurantId", h.HandleGetMenuByRestaurant)
	menuRoutes.Get("/:id", h.HandleGetMenuItemByID)
}

// HandleGetMenuByRestaurant lists a restaurant's menu items visible to the caller.
func (h *MenuHandler) HandleGetMenuByRestaurant(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	items, err := h.service.FindByRestaurant(c.Params("restaurantId"), ident)
	if err != nil {
		log.Printf("Error getting menu for restaurant %s: %v", c.Params("restaurantId"), err)
		return serviceError(c, err)
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return c.JSON(items)
}

// HandleGetMenuItemByID retrieves a single menu item by its ID.
func (h *MenuHandler) HandleGetMenuItemByID(c *fiber.Ctx) error {
	ident, ok := currentIdentity(c)
	if !ok {
		return unauthenticated(c)
	}

	item, err := h.service.FindOne(c.Params("id"), ident)
	if err != nil {
		log.Printf("Error getting menu item %s for user %s: %v", c.Params("id"), ident.ID, err)
		return serviceError(c, err)
	}
	return c.JSON(item)
}
