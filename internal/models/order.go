package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"   // Draft order, not yet finalized
	OrderStatusPlaced    OrderStatus = "placed"    // Order confirmed and submitted
	OrderStatusCancelled OrderStatus = "cancelled" // Order terminated
)

// OrderItem represents a single line within an order. Price is captured at
// order creation time and never re-fetched.
type OrderItem struct {
	ID         uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID    string  `json:"-" gorm:"index;type:varchar(36)"`
	MenuItemID string  `json:"menu_item_id" gorm:"type:varchar(36)"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"` // Unit price at the time of order
}

// OrderItemInput is the caller-supplied shape of an order line; the unit
// price is resolved from the catalog, never trusted from the caller.
type OrderItemInput struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// Order represents a customer order. Country is fixed from the creator's
// country at creation and drives all later visibility checks.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string      `json:"user_id" gorm:"index;type:varchar(36)"`
	RestaurantID    string      `json:"restaurant_id" gorm:"type:varchar(36)"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(20);index"`
	Country         Country     `json:"country" gorm:"type:varchar(50);index"`
	PaymentMethodID *string     `json:"payment_method_id,omitempty" gorm:"type:varchar(36)"`
	CreatedAt       time.Time   `json:"created_at"`
}
