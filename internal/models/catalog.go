package models

// Restaurant represents a restaurant in the catalog.
type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     Country `json:"country"`
	Description string  `json:"description"`
	Image       string  `json:"image,omitempty"`
}

// MenuItem represents a dish offered by a restaurant.
type MenuItem struct {
	ID           string  `json:"id"`
	RestaurantID string  `json:"restaurant_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Country      Country `json:"country"`
	Image        string  `json:"image,omitempty"`
}
