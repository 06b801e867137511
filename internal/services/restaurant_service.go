package services

import (
	"errors"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/models"
	"foodcourt/internal/repositories"
)

// RestaurantService exposes the country-scoped restaurant catalog.
type RestaurantService struct {
	catalogRepo repositories.CatalogRepository
}

// NewRestaurantService creates a new RestaurantService.
func NewRestaurantService(catalogRepo repositories.CatalogRepository) *RestaurantService {
	return &RestaurantService{
		catalogRepo: catalogRepo,
	}
}

// FindAll returns restaurants visible to the caller: all of them for admins,
// the caller's country for everyone else.
func (s *RestaurantService) FindAll(ident models.Identity) ([]models.Restaurant, error) {
	return s.catalogRepo.GetRestaurants(countryScope(ident))
}

// FindOne returns a restaurant by id, honoring the caller's country scope.
func (s *RestaurantService) FindOne(id string, ident models.Identity) (*models.Restaurant, error) {
	restaurant, err := s.catalogRepo.GetRestaurantByID(id, countryScope(ident))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("restaurant not found or not accessible in your country")
		}
		return nil, err
	}
	return restaurant, nil
}
