package services

import (
	"errors"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/models"
	"foodcourt/internal/repositories"
)

// MenuService exposes the country-scoped menu catalog.
type MenuService struct {
	catalogRepo repositories.CatalogRepository
}

// NewMenuService creates a new MenuService.
func NewMenuService(catalogRepo repositories.CatalogRepository) *MenuService {
	return &MenuService{
		catalogRepo: catalogRepo,
	}
}

// FindByRestaurant returns a restaurant's menu items visible to the caller.
func (s *MenuService) FindByRestaurant(restaurantID string, ident models.Identity) ([]models.MenuItem, error) {
	return s.catalogRepo.GetMenuByRestaurant(restaurantID, countryScope(ident))
}

// FindOne returns a menu item by id, honoring the caller's country scope.
func (s *MenuService) FindOne(id string, ident models.Identity) (*models.MenuItem, error) {
	item, err := s.catalogRepo.GetMenuItemByID(id, countryScope(ident))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("menu item '%s' not found or not accessible", id)
		}
		return nil, err
	}
	return item, nil
}
