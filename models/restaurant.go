package models

import "github.com/shopspring/decimal"

type Restaurant struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Rating       float64         `json:"rating"`
	DeliveryTime string          `json:"delivery_time"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	IsActive     bool            `json:"is_active"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	Image        string          `json:"image"`
	Menu         []MenuItem      `json:"menu"`
}

// Clone returns a copy that shares no slices with r.
func (r Restaurant) Clone() Restaurant {
	r.Menu = append([]MenuItem(nil), r.Menu...)
	return r
}

// MenuItem finds an item of the restaurant's menu by id.
func (r Restaurant) MenuItem(id string) (MenuItem, bool) {
	for _, item := range r.Menu {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// RestaurantPatch carries the fields of a merge-by-id update. Nil fields are left untouched.
type RestaurantPatch struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Rating       *float64         `json:"rating"`
	DeliveryTime *string          `json:"delivery_time"`
	DeliveryFee  *decimal.Decimal `json:"delivery_fee"`
	IsActive     *bool            `json:"is_active"`
	Phone        *string          `json:"phone"`
	Address      *string          `json:"address"`
	Image        *string          `json:"image"`
}

// MenuItemPatch carries the fields of a menu item update. Nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Image       *string          `json:"image"`
}

type Dispatcher struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Phone               string  `json:"phone"`
	IsActive            bool    `json:"is_active"`
	Rating              float64 `json:"rating"`
	CompletedDeliveries int     `json:"completed_deliveries"`
}
