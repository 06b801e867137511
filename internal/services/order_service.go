package services

import (
	"errors"
	"log"
	"time"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/authz"
	"foodcourt/internal/models"
	"foodcourt/internal/orderstate"
	"foodcourt/internal/repositories"
	"foodcourt/pkg/rabbitmq"
)

// orderManagerRoles are the roles allowed to place and cancel orders.
var orderManagerRoles = []models.Role{models.RoleAdmin, models.RoleManager}

// OrderService owns the order lifecycle: creation with captured prices,
// role/country-scoped visibility and the created/placed/cancelled state
// machine.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	catalogRepo repositories.CatalogRepository
	mqClient    *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil; event
// publication is then skipped.
func NewOrderService(orderRepo repositories.OrderRepository, catalogRepo repositories.CatalogRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		mqClient:    mqClient,
	}
}

// Create creates a new order in created (draft) status. All roles may create
// orders and no role may skip the draft state. The order's country is fixed
// to the caller's country, and each item's unit price is captured from the
// catalog at creation time.
func (s *OrderService) Create(ident models.Identity, restaurantID string, items []models.OrderItemInput) (*models.Order, error) {
	if restaurantID == "" {
		return nil, apperrors.InvalidArgument("restaurant id is required")
	}
	if len(items) == 0 {
		return nil, apperrors.InvalidArgument("order must contain at least one item")
	}
	for _, item := range items {
		if item.MenuItemID == "" {
			return nil, apperrors.InvalidArgument("menu item id is required")
		}
		if item.Quantity <= 0 {
			return nil, apperrors.InvalidArgument("quantity must be greater than 0")
		}
	}

	// Non-admin callers resolve the restaurant and every menu item through a
	// country-filtered lookup, so a member cannot order cross-country items
	// even if they learn an id.
	scope := countryScope(ident)

	if _, err := s.catalogRepo.GetRestaurantByID(restaurantID, scope); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("restaurant not found or not accessible in your country")
		}
		return nil, err
	}

	var totalAmount float64
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		menuItem, err := s.catalogRepo.GetMenuItemByID(item.MenuItemID, scope)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.NotFound("menu item '%s' not found or not accessible", item.MenuItemID)
			}
			return nil, err
		}
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      menuItem.Price,
		})
		totalAmount += menuItem.Price * float64(item.Quantity)
	}

	order := &models.Order{
		UserID:       ident.ID,
		RestaurantID: restaurantID,
		Items:        orderItems,
		TotalAmount:  totalAmount,
		Status:       models.OrderStatusCreated,
		Country:      ident.Country,
		CreatedAt:    time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.publishOrderEvent("order.created", order)
	return order, nil
}

// FindAll returns orders visible to the caller. Admins see everything,
// managers see their country, members see their own orders. An empty result
// is valid.
func (s *OrderService) FindAll(ident models.Identity) ([]models.Order, error) {
	switch ident.Role {
	case models.RoleAdmin:
		return s.orderRepo.GetAll()
	case models.RoleManager:
		return s.orderRepo.GetAllMatching(func(order models.Order) bool {
			return order.Country == ident.Country
		})
	case models.RoleMember:
		return s.orderRepo.GetAllMatching(func(order models.Order) bool {
			return order.UserID == ident.ID
		})
	default:
		return nil, apperrors.Forbidden("access denied: unknown role '%s'", ident.Role)
	}
}

// FindOne returns a single order by id, enforcing country and ownership
// scoping. Managers denied by country get Forbidden; members asking for an
// order they do not own get NotFound, so they never learn the id exists.
func (s *OrderService) FindOne(id string, ident models.Identity) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("order not found")
		}
		return nil, err
	}

	switch ident.Role {
	case models.RoleAdmin:
		return order, nil
	case models.RoleManager:
		if err := authz.EnforceCountryAccess(ident.Role, ident.Country, order.Country, "order"); err != nil {
			return nil, err
		}
		return order, nil
	case models.RoleMember:
		if order.UserID != ident.ID {
			return nil, apperrors.NotFound("order not found")
		}
		return order, nil
	default:
		return nil, apperrors.Forbidden("access denied: unknown role '%s'", ident.Role)
	}
}

// PlaceOrder finalizes a draft order, moving it from created to placed and
// capturing the payment method. Only admins and managers may place orders.
func (s *OrderService) PlaceOrder(id string, ident models.Identity, paymentMethodID *string) (*models.Order, error) {
	if err := authz.EnforceRoleAccess(ident.Role, orderManagerRoles, "place orders"); err != nil {
		return nil, err
	}

	order, err := s.FindOne(id, ident)
	if err != nil {
		return nil, err
	}
	if err := orderstate.ValidateCanPlace(order.Status); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.UpdateStatus(id, models.OrderStatusCreated, models.OrderStatusPlaced, paymentMethodID)
	if err != nil {
		return nil, s.transitionError(err, "place")
	}

	s.publishOrderEvent("order.placed", updated)
	return updated, nil
}

// CancelOrder terminates a draft order, moving it from created to cancelled.
// Only admins and managers may cancel orders.
func (s *OrderService) CancelOrder(id string, ident models.Identity) (*models.Order, error) {
	if err := authz.EnforceRoleAccess(ident.Role, orderManagerRoles, "cancel orders"); err != nil {
		return nil, err
	}

	order, err := s.FindOne(id, ident)
	if err != nil {
		return nil, err
	}
	if err := orderstate.ValidateCanCancel(order.Status); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.UpdateStatus(id, models.OrderStatusCreated, models.OrderStatusCancelled, nil)
	if err != nil {
		return nil, s.transitionError(err, "cancel")
	}

	s.publishOrderEvent("order.cancelled", updated)
	return updated, nil
}

// transitionError maps repository failures from the atomic status update to
// the caller-facing taxonomy. A status conflict means another caller won the
// race, which is indistinguishable from a stale read.
func (s *OrderService) transitionError(err error, action string) error {
	if errors.Is(err, repositories.ErrStatusConflict) {
		return apperrors.InvalidTransition("cannot %s order: order is no longer in 'created' status", action)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound("order not found")
	}
	return err
}

// publishOrderEvent publishes an order lifecycle event. Publish failures are
// logged, never propagated; the order mutation has already been applied.
func (s *OrderService) publishOrderEvent(event string, order *models.Order) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]any{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.TotalAmount,
		"country":  order.Country,
	}
	if err := s.mqClient.PublishOrderEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for order %s: %v", event, order.ID, err)
	}
}
