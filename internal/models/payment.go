package models

// PaymentMethod represents a stored payment method belonging to a user.
type PaymentMethod struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Type      string `json:"type" validate:"required"`
	CardLast4 string `json:"card_last4,omitempty" validate:"omitempty,len=4,numeric"`
	IsDefault bool   `json:"is_default"`
}
