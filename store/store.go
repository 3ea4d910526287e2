// Package store holds the in-memory state of the delivery app: restaurants
// and their menus, dispatchers, the active cart and customer profile, and the
// order collection with its status history.
//
// A Store is the single owner of that state. Every read returns copies and
// every mutation goes through one of its methods, so handlers never share
// slices with it.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"delivery-app/models"

	"github.com/google/uuid"
)

// Store is safe for concurrent use; the HTTP server calls it from many goroutines.
type Store struct {
	mu sync.RWMutex

	restaurants []models.Restaurant
	dispatchers []models.Dispatcher
	orders      []models.Order // newest first
	history     map[string][]models.StatusChange
	cart        []models.CartLine
	customer    models.CustomerDetails

	now   func() time.Time
	token func() string
}

// Option customizes a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithTokenSource replaces the random suffix used in order ids.
func WithTokenSource(token func() string) Option {
	return func(s *Store) { s.token = token }
}

func New(opts ...Option) *Store {
	s := &Store{
		history: map[string][]models.StatusChange{},
		now:     time.Now,
		token:   randomToken,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// randomToken returns 9 lowercase hex characters taken from a v4 uuid.
func randomToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

func (s *Store) newOrderID() string {
	return fmt.Sprintf("order%d_%s", s.now().UnixMilli(), s.token())
}

// uniqueID returns prefix<unix-millis>, suffixed with _2, _3, ... while taken
// reports a clash. Caller holds the lock.
func (s *Store) uniqueID(prefix string, taken func(id string) bool) string {
	base := fmt.Sprintf("%s%d", prefix, s.now().UnixMilli())
	id := base
	for n := 2; taken(id); n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	return id
}

func (s *Store) newRestaurantID() string {
	return s.uniqueID("rest", func(id string) bool { return s.findRestaurant(id) >= 0 })
}

// newMenuItemID is unique within the menu of restaurant i.
func (s *Store) newMenuItemID(i int) string {
	return s.uniqueID("item", func(id string) bool {
		_, ok := s.restaurants[i].MenuItem(id)
		return ok
	})
}

// Load replaces the catalog and order collections, e.g. with the mock dataset.
// Orders are expected newest first.
func (s *Store) Load(restaurants []models.Restaurant, dispatchers []models.Dispatcher, orders []models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restaurants = make([]models.Restaurant, len(restaurants))
	for i, r := range restaurants {
		s.restaurants[i] = r.Clone()
	}
	s.dispatchers = append([]models.Dispatcher(nil), dispatchers...)
	s.orders = make([]models.Order, len(orders))
	s.history = map[string][]models.StatusChange{}
	for i, o := range orders {
		s.orders[i] = o.Clone()
		s.history[o.ID] = []models.StatusChange{{OrderID: o.ID, To: o.Status, At: o.CreatedAt}}
	}
}
