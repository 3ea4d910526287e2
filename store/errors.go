package store

import (
	"errors"
	"strings"
)

var (
	ErrRestaurantNotFound    = errors.New("restaurant not found")
	ErrRestaurantInactive    = errors.New("restaurant is not active")
	ErrDuplicateRestaurant   = errors.New("restaurant id already exists")
	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrDuplicateMenuItem     = errors.New("menu item id already exists in this menu")
	ErrInvalidPrice          = errors.New("price must not be negative")
	ErrCartLineNotFound      = errors.New("item is not in the cart")
	ErrInvalidQuantity       = errors.New("quantity must not be negative")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrOrderNotFound         = errors.New("order not found")
	ErrUnknownStatus         = errors.New("unknown order status")
	ErrOrderAlreadyTaken     = errors.New("order has already been taken by another dispatcher")
	ErrNotAssignedDispatcher = errors.New("dispatcher is not assigned to this order")
	ErrDispatcherNotFound    = errors.New("dispatcher not found")
	ErrDispatcherInactive    = errors.New("dispatcher is not active")
)

// IncompleteProfileError is returned by Checkout when required customer
// details are missing. Fields holds the json names of the missing fields.
type IncompleteProfileError struct {
	Fields []string
}

func (e *IncompleteProfileError) Error() string {
	return "customer details incomplete, missing: " + strings.Join(e.Fields, ", ")
}
