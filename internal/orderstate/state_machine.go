// Package orderstate enforces the order lifecycle: an order starts as a
// created draft and moves exactly once to placed or cancelled, both terminal.
package orderstate

import (
	"foodcourt/internal/apperrors"
	"foodcourt/internal/models"
)

// validTransitions is the full transition table. Terminal states map to an
// empty list; unknown states allow nothing.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.OrderStatusCreated:   {models.OrderStatusPlaced, models.OrderStatusCancelled},
	models.OrderStatusPlaced:    {},
	models.OrderStatusCancelled: {},
}

// CanTransition reports whether an order may move from current to next.
func CanTransition(current, next models.OrderStatus) bool {
	for _, allowed := range validTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// EnforceTransition returns an InvalidTransition error when the move from
// current to next is not allowed.
func EnforceTransition(current, next models.OrderStatus) error {
	if !CanTransition(current, next) {
		return apperrors.InvalidTransition("invalid state transition: cannot change order from '%s' to '%s'", current, next)
	}
	return nil
}

// ValidateCanPlace returns an InvalidTransition error unless the order is a
// created draft. Kept separate from EnforceTransition because the
// caller-facing message differs.
func ValidateCanPlace(current models.OrderStatus) error {
	if current != models.OrderStatusCreated {
		return apperrors.InvalidTransition("cannot place order: order must be in 'created' status (current: %s)", current)
	}
	return nil
}

// ValidateCanCancel returns an InvalidTransition error unless the order is a
// created draft.
func ValidateCanCancel(current models.OrderStatus) error {
	if current != models.OrderStatusCreated {
		return apperrors.InvalidTransition("cannot cancel order: only orders in 'created' status can be cancelled (current: %s)", current)
	}
	return nil
}
