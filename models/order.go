package models

import "time"

// OrderStatus represents the states of an order's lifecycle
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"    // customer just placed the order
	StatusConfirmed OrderStatus = "CONFIRMED" // restaurant accepted it
	StatusPreparing OrderStatus = "PREPARING" // kitchen is cooking
	StatusReady     OrderStatus = "READY"     // food is ready
	StatusDelivered OrderStatus = "DELIVERED" // order completed
	StatusCancelled OrderStatus = "CANCELLED" // cancelled while PLACED
)

// PaymentStatus tracks settlement of an order
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id" gorm:"index;not null"`
	User          User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RestaurantID  uint          `json:"restaurant_id" gorm:"index;not null"`
	Restaurant    Restaurant    `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Items         []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	TotalAmount   float64       `json:"total_amount" gorm:"not null"` // computed once at placement
	Status        OrderStatus   `json:"status" gorm:"not null;default:'PLACED';index"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'PENDING'"`
	PaymentRef    string        `json:"payment_ref,omitempty"`
	CreatedAt     time.Time     `json:"created_at" gorm:"index"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// OrderItem is an immutable line-item snapshot. Name and price are copied
// from the menu item at placement time so later menu edits never change
// what the customer agreed to pay.
type OrderItem struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	OrderID       uint    `json:"order_id" gorm:"index;not null"`
	MenuItemID    uint    `json:"menu_item_id" gorm:"not null"`
	NameSnapshot  string  `json:"name_snapshot" gorm:"not null"`
	PriceSnapshot float64 `json:"price_snapshot" gorm:"not null"`
	Quantity      int     `json:"quantity" gorm:"not null"` // always >= 1
}
