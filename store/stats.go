package store

import (
	"delivery-app/models"

	"github.com/shopspring/decimal"
)

// Overview is the master dashboard summary.
type Overview struct {
	TotalOrders       int                        `json:"total_orders"`
	OrdersByStatus    map[models.OrderStatus]int `json:"orders_by_status"`
	Revenue           decimal.Decimal            `json:"revenue"`
	ActiveRestaurants int                        `json:"active_restaurants"`
	ActiveDispatchers int                        `json:"active_dispatchers"`
}

// Overview counts orders by status and sums the totals of delivered orders.
func (s *Store) Overview() Overview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ov := Overview{
		TotalOrders:    len(s.orders),
		OrdersByStatus: map[models.OrderStatus]int{},
		Revenue:        decimal.Zero,
	}
	for _, o := range s.orders {
		ov.OrdersByStatus[o.Status]++
		if o.Status == models.StatusDelivered {
			ov.Revenue = ov.Revenue.Add(o.Total)
		}
	}
	for _, r := range s.restaurants {
		if r.IsActive {
			ov.ActiveRestaurants++
		}
	}
	for _, d := range s.dispatchers {
		if d.IsActive {
			ov.ActiveDispatchers++
		}
	}
	return ov
}

// DispatcherOverview is a dispatcher's own dashboard.
type DispatcherOverview struct {
	ActiveDeliveries   int `json:"active_deliveries"`
	DeliveredToday     int `json:"delivered_today"`
	AvailableOrders    int `json:"available_orders"`
	AssignedOrdersEver int `json:"assigned_orders"`
}

// DispatcherOverview summarizes the orders assigned to dispatcherID. "Today"
// is the calendar day of the store clock in its location.
func (s *Store) DispatcherOverview(dispatcherID string) (DispatcherOverview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.findDispatcher(dispatcherID) < 0 {
		return DispatcherOverview{}, ErrDispatcherNotFound
	}

	now := s.now()
	y, m, d := now.Date()
	var ov DispatcherOverview
	for _, o := range s.orders {
		if o.Status == models.StatusReady && o.DispatcherID == "" {
			ov.AvailableOrders++
		}
		if o.DispatcherID != dispatcherID {
			continue
		}
		ov.AssignedOrdersEver++
		switch o.Status {
		case models.StatusDelivery:
			ov.ActiveDeliveries++
		case models.StatusDelivered:
			oy, om, od := o.CreatedAt.In(now.Location()).Date()
			if oy == y && om == m && od == d {
				ov.DeliveredToday++
			}
		}
	}
	return ov, nil
}
