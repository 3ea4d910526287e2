package store

import (
	"delivery-app/models"

	"github.com/shopspring/decimal"
)

// CartSummary aggregates the cart for display.
type CartSummary struct {
	Lines    int             `json:"lines"`
	Items    int             `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// findLine locates a cart line by its (restaurant, item) key. Caller holds the lock.
func (s *Store) findLine(restaurantID, itemID string) int {
	for i, line := range s.cart {
		if line.RestaurantID == restaurantID && line.ItemID == itemID {
			return i
		}
	}
	return -1
}

// AddToCart adds one unit of item. Lines are keyed by restaurant and item id,
// so equal item ids from different restaurants never merge.
func (s *Store) AddToCart(item models.MenuItem, restaurantID, restaurantName string) models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.findLine(restaurantID, item.ID); i >= 0 {
		s.cart[i].Quantity++
		return s.cart[i]
	}
	line := models.CartLine{
		ItemID:         item.ID,
		Name:           item.Name,
		Description:    item.Description,
		Price:          item.Price,
		Category:       item.Category,
		Image:          item.Image,
		RestaurantID:   restaurantID,
		RestaurantName: restaurantName,
		Quantity:       1,
	}
	s.cart = append(s.cart, line)
	return line
}

// AddMenuItemToCart resolves the item from the restaurant's current menu and adds it.
func (s *Store) AddMenuItemToCart(restaurantID, itemID string) (models.CartLine, error) {
	s.mu.RLock()
	i := s.findRestaurant(restaurantID)
	if i < 0 {
		s.mu.RUnlock()
		return models.CartLine{}, ErrRestaurantNotFound
	}
	r := s.restaurants[i]
	item, ok := r.MenuItem(itemID)
	s.mu.RUnlock()

	if !r.IsActive {
		return models.CartLine{}, ErrRestaurantInactive
	}
	if !ok {
		return models.CartLine{}, ErrMenuItemNotFound
	}
	return s.AddToCart(item, r.ID, r.Name), nil
}

// UpdateQuantity sets a line's quantity; zero removes the line.
func (s *Store) UpdateQuantity(restaurantID, itemID string, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLine(restaurantID, itemID)
	if i < 0 {
		return ErrCartLineNotFound
	}
	if quantity == 0 {
		s.cart = append(s.cart[:i], s.cart[i+1:]...)
		return nil
	}
	s.cart[i].Quantity = quantity
	return nil
}

// RemoveFromCart drops a line; removing a missing line is a no-op.
func (s *Store) RemoveFromCart(restaurantID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.findLine(restaurantID, itemID); i >= 0 {
		s.cart = append(s.cart[:i], s.cart[i+1:]...)
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
}

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartLine{}, s.cart...)
}

func (s *Store) CartSummary() CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := CartSummary{Lines: len(s.cart), Subtotal: decimal.Zero}
	for _, line := range s.cart {
		sum.Items += line.Quantity
		sum.Subtotal = sum.Subtotal.Add(line.LineTotal())
	}
	return sum
}

// CustomerDetails returns the active profile.
func (s *Store) CustomerDetails() models.CustomerDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customer
}

// SaveCustomerDetails overwrites the profile wholesale, trimmed.
func (s *Store) SaveCustomerDetails(d models.CustomerDetails) models.CustomerDetails {
	d = normalizeDetails(d)
	s.mu.Lock()
	s.customer = d
	s.mu.Unlock()
	return d
}
