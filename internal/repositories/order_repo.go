package repositories

import (
	"errors"

	"foodcourt/internal/models"
)

// ErrNotFound is returned by repositories when a record does not exist.
// Services translate it into the caller-facing error taxonomy.
var ErrNotFound = errors.New("record not found")

// ErrStatusConflict is returned by OrderRepository.UpdateStatus when the
// order is no longer in the expected status. The read-validate-write sequence
// is serialized per order, so a conflict means the caller lost a race.
var ErrStatusConflict = errors.New("order is no longer in the expected status")

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetAllMatching(match func(models.Order) bool) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	// UpdateStatus atomically moves an order from the expected status to a
	// new one, capturing the payment method when provided. It returns
	// ErrStatusConflict when the order is not in the expected status.
	UpdateStatus(id string, from, to models.OrderStatus, paymentMethodID *string) (*models.Order, error)
}
