package repositories

import (
	"sync"

	"foodcourt/internal/models"
)

// MockCatalogRepository is an in-memory implementation of CatalogRepository,
// seeded once at startup. The catalog is read-only at runtime.
type MockCatalogRepository struct {
	restaurants map[string]models.Restaurant
	menuItems   map[string]models.MenuItem
	mu          sync.RWMutex
}

// NewMockCatalogRepository creates a catalog repository seeded with the given
// restaurants and menu items.
func NewMockCatalogRepository(restaurants []models.Restaurant, menuItems []models.MenuItem) *MockCatalogRepository {
	r := &MockCatalogRepository{
		restaurants: make(map[string]models.Restaurant, len(restaurants)),
		menuItems:   make(map[string]models.MenuItem, len(menuItems)),
	}
	for _, restaurant := range restaurants {
		r.restaurants[restaurant.ID] = restaurant
	}
	for _, item := range menuItems {
		r.menuItems[item.ID] = item
	}
	return r
}

// GetRestaurants returns all restaurants, filtered by country when given.
func (r *MockCatalogRepository) GetRestaurants(country *models.Country) ([]models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurantList := make([]models.Restaurant, 0, len(r.restaurants))
	for _, restaurant := range r.restaurants {
		if country != nil && restaurant.Country != *country {
			continue
		}
		restaurantList = append(restaurantList, restaurant)
	}
	return restaurantList, nil
}

// GetRestaurantByID returns a restaurant by ID, honoring the country filter.
func (r *MockCatalogRepository) GetRestaurantByID(id string, country *models.Country) (*models.Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.restaurants[id]
	if !ok {
		return nil, ErrNotFound
	}
	if country != nil && restaurant.Country != *country {
		return nil, ErrNotFound
	}
	return &restaurant, nil
}

// GetMenuByRestaurant returns a restaurant's menu, filtered by country when given.
func (r *MockCatalogRepository) GetMenuByRestaurant(restaurantID string, country *models.Country) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []models.MenuItem
	for _, item := range r.menuItems {
		if item.RestaurantID != restaurantID {
			continue
		}
		if country != nil && item.Country != *country {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// GetMenuItemByID returns a menu item by ID, honoring the country filter.
func (r *MockCatalogRepository) GetMenuItemByID(id string, country *models.Country) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.menuItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	if country != nil && item.Country != *country {
		return nil, ErrNotFound
	}
	return &item, nil
}
