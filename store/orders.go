package store

import (
	"strings"

	"delivery-app/models"
	"delivery-app/statemachine"
)

// OrderFilter narrows Orders. Zero fields match everything.
type OrderFilter struct {
	CustomerID   string
	RestaurantID string
	DispatcherID string
	Statuses     []models.OrderStatus
	// Search matches customer name, restaurant name or order id, case-insensitively.
	Search string
}

func (f OrderFilter) matches(o models.Order) bool {
	if f.CustomerID != "" && o.CustomerID != f.CustomerID {
		return false
	}
	if f.RestaurantID != "" && o.RestaurantID != f.RestaurantID {
		return false
	}
	if f.DispatcherID != "" && o.DispatcherID != f.DispatcherID {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, st := range f.Statuses {
			if o.Status == st {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		return strings.Contains(strings.ToLower(o.CustomerName), q) ||
			strings.Contains(strings.ToLower(o.RestaurantName), q) ||
			strings.Contains(strings.ToLower(o.ID), q)
	}
	return true
}

// Orders returns matching orders, newest first.
func (s *Store) Orders(f OrderFilter) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Order{}
	for _, o := range s.orders {
		if f.matches(o) {
			out = append(out, o.Clone())
		}
	}
	return out
}

func (s *Store) findOrder(id string) int {
	for i, o := range s.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Order(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findOrder(id)
	if i < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	return s.orders[i].Clone(), nil
}

// StatusHistory returns the recorded status changes of an order, oldest first.
func (s *Store) StatusHistory(orderID string) ([]models.StatusChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.findOrder(orderID) < 0 {
		return nil, ErrOrderNotFound
	}
	return append([]models.StatusChange{}, s.history[orderID]...), nil
}

// AvailableOrders lists ready orders nobody has taken, oldest first.
func (s *Store) AvailableOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Order{}
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if o.Status == models.StatusReady && o.DispatcherID == "" {
			out = append(out, o.Clone())
		}
	}
	return out
}

// SetOrderStatus moves an order along a legal edge of the lifecycle. Only the
// status field changes; illegal moves return a *statemachine.TransitionError.
func (s *Store) SetOrderStatus(orderID string, status models.OrderStatus) (models.Order, error) {
	return s.TransitionOrder(orderID, status, "")
}

// TransitionOrder is SetOrderStatus restricted to the edges actor may take.
// An empty actor checks the edge only.
func (s *Store) TransitionOrder(orderID string, status models.OrderStatus, actor models.UserRole) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, ErrUnknownStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findOrder(orderID)
	if i < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	if err := s.checkTransition(s.orders[i].Status, status, actor); err != nil {
		return models.Order{}, err
	}
	s.applyStatus(i, status, actor)
	return s.orders[i].Clone(), nil
}

func (s *Store) checkTransition(from, to models.OrderStatus, actor models.UserRole) error {
	if actor == "" {
		return statemachine.CanMove(from, to)
	}
	return statemachine.CanTransition(from, to, actor)
}

// applyStatus writes the new status and records it. Caller holds the lock.
func (s *Store) applyStatus(i int, status models.OrderStatus, actor models.UserRole) {
	o := &s.orders[i]
	s.history[o.ID] = append(s.history[o.ID], models.StatusChange{
		OrderID: o.ID,
		From:    o.Status,
		To:      status,
		Actor:   actor,
		At:      s.now(),
	})
	o.Status = status
}

// TakeOrder assigns a ready order to a dispatcher and moves it to delivery.
func (s *Store) TakeOrder(orderID, dispatcherID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.findDispatcher(dispatcherID)
	if d < 0 {
		return models.Order{}, ErrDispatcherNotFound
	}
	if !s.dispatchers[d].IsActive {
		return models.Order{}, ErrDispatcherInactive
	}

	i := s.findOrder(orderID)
	if i < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	if s.orders[i].DispatcherID != "" {
		return models.Order{}, ErrOrderAlreadyTaken
	}
	if err := statemachine.CanTransition(s.orders[i].Status, models.StatusDelivery, models.RoleDispatcher); err != nil {
		return models.Order{}, err
	}

	s.orders[i].DispatcherID = dispatcherID
	s.applyStatus(i, models.StatusDelivery, models.RoleDispatcher)
	return s.orders[i].Clone(), nil
}

// CompleteDelivery marks an order delivered; only its assigned dispatcher may.
func (s *Store) CompleteDelivery(orderID, dispatcherID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findOrder(orderID)
	if i < 0 {
		return models.Order{}, ErrOrderNotFound
	}
	if s.orders[i].DispatcherID == "" || s.orders[i].DispatcherID != dispatcherID {
		return models.Order{}, ErrNotAssignedDispatcher
	}
	if err := statemachine.CanTransition(s.orders[i].Status, models.StatusDelivered, models.RoleDispatcher); err != nil {
		return models.Order{}, err
	}

	s.applyStatus(i, models.StatusDelivered, models.RoleDispatcher)
	return s.orders[i].Clone(), nil
}
