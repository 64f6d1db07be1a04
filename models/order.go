package models

import "gorm.io/datatypes"

const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
)

var (
	orderStatuses = newEnum(OrderPending, OrderProcessing, OrderShipped, OrderDelivered)
	vendors       = newEnum("amazon", "walmart", "local")
)

const (
	DefaultVendor        = "local"
	DefaultPaymentMethod = "card"
)

type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Type     string  `json:"type,omitempty"`
}

// Order is a marketplace purchase. Status may be set to any allowed value
// directly; transitions are not enforced.
type Order struct {
	Record
	UserID          uint                           `json:"user_id" gorm:"not null;index"`
	Items           datatypes.JSONSlice[OrderItem] `json:"items"`
	Total           float64                        `json:"total"`
	Status          string                         `json:"status" gorm:"not null;default:'pending'"`
	Vendor          string                         `json:"vendor"`
	DeliveryAddress string                         `json:"delivery_address"`
	PaymentMethod   string                         `json:"payment_method"`
}

func ValidOrderStatus(s string) bool {
	return orderStatuses.has(s)
}

func ValidVendor(v string) bool {
	return vendors.has(v)
}
