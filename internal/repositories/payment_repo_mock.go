package repositories

import (
	"sync"

	"foodcourt/internal/models"

	"github.com/google/uuid"
)

// MockPaymentMethodRepository is an in-memory implementation of
// PaymentMethodRepository.
type MockPaymentMethodRepository struct {
	methods map[string]models.PaymentMethod
	mu      sync.RWMutex
}

// NewMockPaymentMethodRepository creates a new instance of
// MockPaymentMethodRepository.
func NewMockPaymentMethodRepository() *MockPaymentMethodRepository {
	return &MockPaymentMethodRepository{
		methods: make(map[string]models.PaymentMethod),
	}
}

// GetAllByUser returns all payment methods belonging to a user.
func (r *MockPaymentMethodRepository) GetAllByUser(userID string) ([]models.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var methodList []models.PaymentMethod
	for _, pm := range r.methods {
		if pm.UserID == userID {
			methodList = append(methodList, pm)
		}
	}
	return methodList, nil
}

// GetByID returns a payment method by its ID.
func (r *MockPaymentMethodRepository) GetByID(id string) (*models.PaymentMethod, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pm, ok := r.methods[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &pm, nil
}

// Create adds a new payment method.
func (r *MockPaymentMethodRepository) Create(pm *models.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pm.ID == "" {
		pm.ID = uuid.New().String()
	}
	r.methods[pm.ID] = *pm
	return nil
}

// Update modifies an existing payment method.
func (r *MockPaymentMethodRepository) Update(pm *models.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.methods[pm.ID]; !ok {
		return ErrNotFound
	}
	r.methods[pm.ID] = *pm
	return nil
}

// Delete removes a payment method by its ID.
func (r *MockPaymentMethodRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.methods[id]; !ok {
		return ErrNotFound
	}
	delete(r.methods, id)
	return nil
}
