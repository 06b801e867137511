package repositories

import "foodcourt/internal/models"

// PaymentMethodRepository defines the interface for payment method data
// access. Ownership scoping is enforced by the service layer.
type PaymentMethodRepository interface {
	GetAllByUser(userID string) ([]models.PaymentMethod, error)
	GetByID(id string) (*models.PaymentMethod, error)
	Create(pm *models.PaymentMethod) error
	Update(pm *models.PaymentMethod) error
	Delete(id string) error
}
