package repositories

import (
	"fmt"

	"foodcourt/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with their items from the database.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetAllMatching retrieves all orders satisfying the predicate. Filtering
// happens in memory; the visibility policy lives in the service layer, not
// in SQL.
func (r *GORMOrderRepository) GetAllMatching(match func(models.Order) bool) ([]models.Order, error) {
	orders, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	var matched []models.Order
	for _, order := range orders {
		if match(order) {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

// GetByID retrieves a single order with its items by ID.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create creates a new order and its items in the database.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus performs a compare-and-set on the order status. The WHERE
// clause on the current status makes the transition atomic at the database
// level; zero affected rows means the order is missing or was moved
// concurrently.
func (r *GORMOrderRepository) UpdateStatus(id string, from, to models.OrderStatus, paymentMethodID *string) (*models.Order, error) {
	updates := map[string]any{"status": to}
	if paymentMethodID != nil {
		updates["payment_method_id"] = *paymentMethodID
	}

	res := r.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing order from a lost race.
		var count int64
		if err := r.db.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check order %s: %w", id, err)
		}
		if count == 0 {
			return nil, ErrNotFound
		}
		return nil, ErrStatusConflict
	}

	return r.GetByID(id)
}
