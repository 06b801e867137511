package services

import "foodcourt/internal/models"

// countryScope returns the country filter for catalog lookups: nil for
// admins (unfiltered), the caller's own country for everyone else.
func countryScope(ident models.Identity) *models.Country {
	if ident.Role == models.RoleAdmin {
		return nil
	}
	country := ident.Country
	return &country
}
