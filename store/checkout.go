package store

import (
	"delivery-app/models"

	"github.com/shopspring/decimal"
)

type restaurantGroup struct {
	restaurantID   string
	restaurantName string
	lines          []models.CartLine
}

// groupByRestaurant partitions lines by restaurant id, keeping the order in
// which each restaurant first appears and the line order inside each group.
func groupByRestaurant(lines []models.CartLine) []*restaurantGroup {
	var groups []*restaurantGroup
	index := map[string]*restaurantGroup{}
	for _, line := range lines {
		g, ok := index[line.RestaurantID]
		if !ok {
			g = &restaurantGroup{restaurantID: line.RestaurantID, restaurantName: line.RestaurantName}
			index[line.RestaurantID] = g
			groups = append(groups, g)
		}
		g.lines = append(g.lines, line)
	}
	return groups
}

// Checkout turns the cart into one pending order per restaurant and empties
// the cart. It fails without touching any state when the cart is empty or the
// customer details lack name, phone or address.
func (s *Store) Checkout() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}
	if err := ValidateDetails(s.customer); err != nil {
		return nil, err
	}

	now := s.now()
	groups := groupByRestaurant(s.cart)
	created := make([]models.Order, 0, len(groups))
	for _, g := range groups {
		total := decimal.Zero
		items := make([]models.OrderLine, 0, len(g.lines))
		for _, line := range g.lines {
			total = total.Add(line.LineTotal())
			items = append(items, models.OrderLine{
				ItemID:   line.ItemID,
				Name:     line.Name,
				Price:    line.Price,
				Quantity: line.Quantity,
			})
		}
		created = append(created, models.Order{
			ID:              s.newOrderID(),
			CustomerID:      models.GuestCustomerID,
			CustomerName:    s.customer.Name,
			RestaurantID:    g.restaurantID,
			RestaurantName:  g.restaurantName,
			Items:           items,
			Total:           total,
			Status:          models.StatusPending,
			CreatedAt:       now,
			DeliveryAddress: s.customer.Address,
			Phone:           s.customer.Phone,
			AdditionalInfo:  s.customer.AdditionalInfo,
		})
	}

	// Newest first: the whole batch goes in front, in group order.
	orders := make([]models.Order, 0, len(created)+len(s.orders))
	orders = append(orders, created...)
	s.orders = append(orders, s.orders...)
	for _, o := range created {
		s.history[o.ID] = []models.StatusChange{{
			OrderID: o.ID,
			To:      models.StatusPending,
			Actor:   models.RoleCustomer,
			At:      now,
		}}
	}
	s.cart = nil

	out := make([]models.Order, len(created))
	for i, o := range created {
		out[i] = o.Clone()
	}
	return out, nil
}
