// Package authz centralizes role- and country-based access decisions so that
// every service routes authorization through the same rules instead of
// re-deriving them ad hoc.
package authz

import (
	"strings"

	"foodcourt/internal/apperrors"
	"foodcourt/internal/models"
)

// CanAccessCountry reports whether a caller may access a resource scoped to
// resourceCountry. Admins can access all countries; Managers and Members only
// their own.
func CanAccessCountry(role models.Role, callerCountry, resourceCountry models.Country) bool {
	if role == models.RoleAdmin {
		return true
	}
	return callerCountry == resourceCountry
}

// EnforceCountryAccess returns a Forbidden error when the caller may not
// access a resource from resourceCountry. resourceType only shapes the
// message, e.g. "order".
func EnforceCountryAccess(role models.Role, callerCountry, resourceCountry models.Country, resourceType string) error {
	if !CanAccessCountry(role, callerCountry, resourceCountry) {
		return apperrors.Forbidden("access denied: %s is not accessible from your country", resourceType)
	}
	return nil
}

// HasRole reports whether role is one of the allowed roles.
func HasRole(role models.Role, allowed ...models.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// EnforceRoleAccess returns a Forbidden error when the caller's role is not
// in the allowed set. action only shapes the message, e.g. "place orders".
func EnforceRoleAccess(role models.Role, allowed []models.Role, action string) error {
	if !HasRole(role, allowed...) {
		names := make([]string, len(allowed))
		for i, a := range allowed {
			names[i] = string(a)
		}
		return apperrors.Forbidden("access denied: only %s can %s", strings.Join(names, ", "), action)
	}
	return nil
}

// CanManageOrder reports whether the role may place or cancel orders.
// Only Admin and Manager can finalize orders.
func CanManageOrder(role models.Role) bool {
	return HasRole(role, models.RoleAdmin, models.RoleManager)
}
