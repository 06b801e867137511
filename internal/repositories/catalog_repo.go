package repositories

import "foodcourt/internal/models"

// CatalogRepository resolves restaurants and menu items, optionally filtered
// by country. A nil country means no filtering (admin-level lookups). A
// record that exists but is country-mismatched is reported as ErrNotFound;
// callers cannot and must not distinguish the two cases.
type CatalogRepository interface {
	GetRestaurants(country *models.Country) ([]models.Restaurant, error)
	GetRestaurantByID(id string, country *models.Country) (*models.Restaurant, error)
	GetMenuByRestaurant(restaurantID string, country *models.Country) ([]models.MenuItem, error)
	GetMenuItemByID(id string, country *models.Country) (*models.MenuItem, error)
}
