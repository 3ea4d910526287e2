package models

import "github.com/shopspring/decimal"

// CartLine is a denormalized copy of a menu item plus where it came from.
type CartLine struct {
	ItemID         string          `json:"item_id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Category       string          `json:"category"`
	Image          string          `json:"image"`
	RestaurantID   string          `json:"restaurant_id"`
	RestaurantName string          `json:"restaurant_name"`
	Quantity       int             `json:"quantity"`
}

// LineTotal is price × quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CustomerDetails is the single active delivery profile of the anonymous customer.
type CustomerDetails struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Address        string `json:"address" validate:"required"`
	AdditionalInfo string `json:"additional_info"`
}
