package services

import (
	"errors"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/authz"
	"foodcourt/internal/models"
	"foodcourt/internal/repositories"
)

// PaymentService manages a user's stored payment methods. A payment method
// is only ever visible to its owner; lookups for someone else's method
// report NotFound rather than Forbidden.
type PaymentService struct {
	paymentRepo repositories.PaymentMethodRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repositories.PaymentMethodRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
	}
}

// FindAll returns the caller's payment methods.
func (s *PaymentService) FindAll(ident models.Identity) ([]models.PaymentMethod, error) {
	return s.paymentRepo.GetAllByUser(ident.ID)
}

// FindOne returns one of the caller's payment methods by id.
func (s *PaymentService) FindOne(id string, ident models.Identity) (*models.PaymentMethod, error) {
	pm, err := s.paymentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("payment method not found")
		}
		return nil, err
	}
	if pm.UserID != ident.ID {
		return nil, apperrors.NotFound("payment method not found")
	}
	return pm, nil
}

// Create stores a new payment method for the caller.
func (s *PaymentService) Create(ident models.Identity, pm *models.PaymentMethod) (*models.PaymentMethod, error) {
	if pm.Type == "" {
		return nil, apperrors.InvalidArgument("payment method type is required")
	}
	pm.ID = ""
	pm.UserID = ident.ID
	if err := s.paymentRepo.Create(pm); err != nil {
		return nil, err
	}
	return pm, nil
}

// Update modifies a payment method. Admin only.
func (s *PaymentService) Update(id string, ident models.Identity, pmType string, isDefault *bool) (*models.PaymentMethod, error) {
	if err := authz.EnforceRoleAccess(ident.Role, []models.Role{models.RoleAdmin}, "update payment methods"); err != nil {
		return nil, err
	}

	pm, err := s.FindOne(id, ident)
	if err != nil {
		return nil, err
	}
	if pmType != "" {
		pm.Type = pmType
	}
	if isDefault != nil {
		pm.IsDefault = *isDefault
	}
	if err := s.paymentRepo.Update(pm); err != nil {
		return nil, err
	}
	return pm, nil
}

// Delete removes one of the caller's payment methods.
func (s *PaymentService) Delete(id string, ident models.Identity) error {
	if _, err := s.FindOne(id, ident); err != nil {
		return err
	}
	return s.paymentRepo.Delete(id)
}
