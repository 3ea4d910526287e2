package store

import (
	"strings"

	"delivery-app/models"
)

// RestaurantFilter narrows ActiveRestaurants.
type RestaurantFilter struct {
	// Search matches name or category, case-insensitively.
	Search string
	// Category must equal the restaurant's category exactly; empty or "all" matches every one.
	Category string
}

func (f RestaurantFilter) matches(r models.Restaurant) bool {
	if f.Category != "" && f.Category != "all" && r.Category != f.Category {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.Category), q)
}

func (s *Store) findRestaurant(id string) int {
	for i, r := range s.restaurants {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Restaurants returns every restaurant, active or not.
func (s *Store) Restaurants() []models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Restaurant, len(s.restaurants))
	for i, r := range s.restaurants {
		out[i] = r.Clone()
	}
	return out
}

// ActiveRestaurants returns active restaurants matching f, in catalog order.
func (s *Store) ActiveRestaurants(f RestaurantFilter) []models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Restaurant{}
	for _, r := range s.restaurants {
		if r.IsActive && f.matches(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Categories lists the distinct categories of active restaurants in first-seen order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := map[string]bool{}
	out := []string{}
	for _, r := range s.restaurants {
		if r.IsActive && !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	return out
}

func (s *Store) Restaurant(id string) (models.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findRestaurant(id)
	if i < 0 {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	return s.restaurants[i].Clone(), nil
}

// Menu returns a restaurant's menu, optionally limited to one category.
func (s *Store) Menu(restaurantID, category string) ([]models.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findRestaurant(restaurantID)
	if i < 0 {
		return nil, ErrRestaurantNotFound
	}
	out := []models.MenuItem{}
	for _, item := range s.restaurants[i].Menu {
		if category == "" || item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

// AddRestaurant appends a new active restaurant with an empty menu and no rating.
func (s *Store) AddRestaurant(r models.Restaurant) (models.Restaurant, error) {
	if r.DeliveryFee.IsNegative() {
		return models.Restaurant{}, ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = s.newRestaurantID()
	} else if s.findRestaurant(r.ID) >= 0 {
		return models.Restaurant{}, ErrDuplicateRestaurant
	}
	r.Rating = 0
	r.IsActive = true
	r.Menu = []models.MenuItem{}
	s.restaurants = append(s.restaurants, r)
	return r.Clone(), nil
}

// UpdateRestaurant merges the non-nil fields of p into the restaurant.
func (s *Store) UpdateRestaurant(id string, p models.RestaurantPatch) (models.Restaurant, error) {
	if p.DeliveryFee != nil && p.DeliveryFee.IsNegative() {
		return models.Restaurant{}, ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findRestaurant(id)
	if i < 0 {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	r := &s.restaurants[i]
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.DeliveryTime != nil {
		r.DeliveryTime = *p.DeliveryTime
	}
	if p.DeliveryFee != nil {
		r.DeliveryFee = *p.DeliveryFee
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.Image != nil {
		r.Image = *p.Image
	}
	return r.Clone(), nil
}

// ToggleRestaurantActive flips the active flag.
func (s *Store) ToggleRestaurantActive(id string) (models.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findRestaurant(id)
	if i < 0 {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	s.restaurants[i].IsActive = !s.restaurants[i].IsActive
	return s.restaurants[i].Clone(), nil
}

// DeleteRestaurant removes the restaurant. Orders keep their copied
// restaurant id and name and are not touched.
func (s *Store) DeleteRestaurant(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findRestaurant(id)
	if i < 0 {
		return ErrRestaurantNotFound
	}
	s.restaurants = append(s.restaurants[:i], s.restaurants[i+1:]...)
	return nil
}

// ── Menu ─────────────────────────────────────────────────────────────────────

func (s *Store) AddMenuItem(restaurantID string, item models.MenuItem) (models.MenuItem, error) {
	if item.Price.IsNegative() {
		return models.MenuItem{}, ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findRestaurant(restaurantID)
	if i < 0 {
		return models.MenuItem{}, ErrRestaurantNotFound
	}
	if item.ID == "" {
		item.ID = s.newMenuItemID(i)
	}
	if _, exists := s.restaurants[i].MenuItem(item.ID); exists {
		return models.MenuItem{}, ErrDuplicateMenuItem
	}
	s.restaurants[i].Menu = append(s.restaurants[i].Menu, item)
	return item, nil
}

func (s *Store) UpdateMenuItem(restaurantID, itemID string, p models.MenuItemPatch) (models.MenuItem, error) {
	if p.Price != nil && p.Price.IsNegative() {
		return models.MenuItem{}, ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findRestaurant(restaurantID)
	if i < 0 {
		return models.MenuItem{}, ErrRestaurantNotFound
	}
	menu := s.restaurants[i].Menu
	for j := range menu {
		if menu[j].ID != itemID {
			continue
		}
		item := &menu[j]
		if p.Name != nil {
			item.Name = *p.Name
		}
		if p.Description != nil {
			item.Description = *p.Description
		}
		if p.Price != nil {
			item.Price = *p.Price
		}
		if p.Category != nil {
			item.Category = *p.Category
		}
		if p.Image != nil {
			item.Image = *p.Image
		}
		return *item, nil
	}
	return models.MenuItem{}, ErrMenuItemNotFound
}

func (s *Store) DeleteMenuItem(restaurantID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findRestaurant(restaurantID)
	if i < 0 {
		return ErrRestaurantNotFound
	}
	menu := s.restaurants[i].Menu
	for j := range menu {
		if menu[j].ID == itemID {
			s.restaurants[i].Menu = append(menu[:j], menu[j+1:]...)
			return nil
		}
	}
	return ErrMenuItemNotFound
}

// ── Dispatchers ──────────────────────────────────────────────────────────────

func (s *Store) findDispatcher(id string) int {
	for i, d := range s.dispatchers {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Dispatchers() []models.Dispatcher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Dispatcher{}, s.dispatchers...)
}

func (s *Store) Dispatcher(id string) (models.Dispatcher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.findDispatcher(id)
	if i < 0 {
		return models.Dispatcher{}, ErrDispatcherNotFound
	}
	return s.dispatchers[i], nil
}
