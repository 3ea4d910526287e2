package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a delivery order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivery  OrderStatus = "delivery"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// AllStatuses lists the lifecycle in workflow order.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusDelivery,
	StatusDelivered,
	StatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// GuestCustomerID is the customer id stamped on every order placed by the anonymous customer.
const GuestCustomerID = "guest_customer"

type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	RestaurantID    string          `json:"restaurant_id"`
	RestaurantName  string          `json:"restaurant_name"`
	Items           []OrderLine     `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	DeliveryAddress string          `json:"delivery_address"`
	Phone           string          `json:"phone"`
	AdditionalInfo  string          `json:"additional_info,omitempty"`
	DispatcherID    string          `json:"dispatcher_id,omitempty"`
}

// OrderLine is a snapshot of a cart line at checkout; later menu edits never touch it.
type OrderLine struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Clone returns a deep copy so callers cannot mutate store-owned slices.
func (o Order) Clone() Order {
	o.Items = append([]OrderLine(nil), o.Items...)
	return o
}

// StatusChange tracks every status change of an order
type StatusChange struct {
	OrderID string      `json:"order_id"`
	From    OrderStatus `json:"from_status,omitempty"`
	To      OrderStatus `json:"to_status"`
	Actor   UserRole    `json:"actor,omitempty"`
	At      time.Time   `json:"at"`
}
