package store_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"delivery-app/models"
	"delivery-app/seed"
	"delivery-app/statemachine"
	"delivery-app/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 14, 12, 30, 0, 0, time.UTC)

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	n := 0
	s := store.New(
		store.WithClock(func() time.Time { return fixedNow }),
		store.WithTokenSource(func() string {
			n++
			return fmt.Sprintf("tok%06d", n)
		}),
	)
	seed.Load(s, fixedNow)
	return s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validDetails() models.CustomerDetails {
	return models.CustomerDetails{Name: "Juan", Phone: "555", Address: "Calle 1"}
}

func menuItem(id, p string) models.MenuItem {
	return models.MenuItem{ID: id, Name: "Item " + id, Price: dec(p)}
}

// ── Cart ─────────────────────────────────────────────────────────────────────

func TestAddToCart_SameItemIncrementsQuantity(t *testing.T) {
	s := store.New()

	s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")
	line := s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "Burger Palace", cart[0].RestaurantName)
}

func TestAddToCart_SameItemIDDifferentRestaurantsStaySeparate(t *testing.T) {
	s := store.New()

	s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")
	s.AddToCart(menuItem("item1", "7.00"), "rest2", "Pizza Corner")

	cart := s.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, "rest1", cart[0].RestaurantID)
	assert.Equal(t, "rest2", cart[1].RestaurantID)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	s := store.New()
	s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")
	s.AddToCart(menuItem("item2", "4.99"), "rest1", "Burger Palace")

	require.NoError(t, s.UpdateQuantity("rest1", "item1", 5))
	assert.Equal(t, 5, s.Cart()[0].Quantity)

	assert.ErrorIs(t, s.UpdateQuantity("rest1", "item1", -1), store.ErrInvalidQuantity)
	assert.ErrorIs(t, s.UpdateQuantity("rest9", "item1", 2), store.ErrCartLineNotFound)
	assert.Equal(t, 5, s.Cart()[0].Quantity)
}

func TestUpdateQuantityZero_EqualsRemove(t *testing.T) {
	a := store.New()
	b := store.New()
	for _, s := range []*store.Store{a, b} {
		s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")
		s.AddToCart(menuItem("item2", "4.99"), "rest1", "Burger Palace")
	}

	require.NoError(t, a.UpdateQuantity("rest1", "item1", 0))
	b.RemoveFromCart("rest1", "item1")

	assert.Equal(t, b.Cart(), a.Cart())
	require.Len(t, a.Cart(), 1)
	assert.Equal(t, "item2", a.Cart()[0].ItemID)
}

func TestRemoveFromCart_MissingLineIsNoop(t *testing.T) {
	s := store.New()
	s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")

	s.RemoveFromCart("rest1", "nope")
	assert.Len(t, s.Cart(), 1)

	s.ClearCart()
	assert.Empty(t, s.Cart())
}

func TestCartSummary(t *testing.T) {
	s := store.New()
	s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")
	s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")
	s.AddToCart(menuItem("item3", "16.99"), "rest2", "Pizza Corner")

	sum := s.CartSummary()
	assert.Equal(t, 2, sum.Lines)
	assert.Equal(t, 3, sum.Items)
	assert.True(t, dec("42.97").Equal(sum.Subtotal), sum.Subtotal.String())
}

func TestAddMenuItemToCart(t *testing.T) {
	s := newSeededStore(t)

	line, err := s.AddMenuItemToCart("rest2", "item3")
	require.NoError(t, err)
	assert.Equal(t, "Pizza Margherita", line.Name)
	assert.Equal(t, "Pizza Corner", line.RestaurantName)
	assert.True(t, dec("16.99").Equal(line.Price))

	_, err = s.AddMenuItemToCart("rest2", "item1")
	assert.ErrorIs(t, err, store.ErrMenuItemNotFound)
	_, err = s.AddMenuItemToCart("rest9", "item1")
	assert.ErrorIs(t, err, store.ErrRestaurantNotFound)

	_, err = s.ToggleRestaurantActive("rest2")
	require.NoError(t, err)
	_, err = s.AddMenuItemToCart("rest2", "item3")
	assert.ErrorIs(t, err, store.ErrRestaurantInactive)
}

// ── Checkout ─────────────────────────────────────────────────────────────────

func TestCheckout_SingleRestaurantExample(t *testing.T) {
	s := newSeededStore(t)
	s.SaveCustomerDetails(validDetails())
	s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")
	require.NoError(t, s.UpdateQuantity("rest1", "item1", 2))

	orders, err := s.Checkout()
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.True(t, dec("25.98").Equal(o.Total), o.Total.String())
	assert.Equal(t, models.StatusPending, o.Status)
	assert.Equal(t, "rest1", o.RestaurantID)
	assert.Equal(t, "Juan", o.CustomerName)
	assert.Equal(t, "Calle 1", o.DeliveryAddress)
	assert.Equal(t, "555", o.Phone)
	assert.Equal(t, models.GuestCustomerID, o.CustomerID)
	assert.Equal(t, fixedNow, o.CreatedAt)
	assert.Equal(t, fmt.Sprintf("order%d_tok000001", fixedNow.UnixMilli()), o.ID)
	assert.Empty(t, o.DispatcherID)
	assert.Empty(t, s.Cart())
}

func TestCheckout_SplitsByRestaurant(t *testing.T) {
	s := newSeededStore(t)
	s.SaveCustomerDetails(validDetails())
	s.AddToCart(menuItem("item3", "16.99"), "rest2", "Pizza Corner")
	s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")
	s.AddToCart(menuItem("item3", "16.99"), "rest2", "Pizza Corner")
	s.AddToCart(menuItem("item2", "4.99"), "rest1", "Burger Palace")

	before := len(s.Orders(store.OrderFilter{}))
	orders, err := s.Checkout()
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// first-seen restaurant first
	assert.Equal(t, "rest2", orders[0].RestaurantID)
	assert.True(t, dec("33.98").Equal(orders[0].Total), orders[0].Total.String())
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)

	assert.Equal(t, "rest1", orders[1].RestaurantID)
	assert.True(t, dec("17.98").Equal(orders[1].Total), orders[1].Total.String())
	assert.Equal(t, []string{"item1", "item2"}, []string{orders[1].Items[0].ItemID, orders[1].Items[1].ItemID})

	assert.NotEqual(t, orders[0].ID, orders[1].ID)
	assert.Empty(t, s.Cart())

	all := s.Orders(store.OrderFilter{})
	require.Len(t, all, before+2)
	assert.Equal(t, orders[0].ID, all[0].ID)
	assert.Equal(t, orders[1].ID, all[1].ID)
	assert.Equal(t, "order1", all[2].ID)
}

func TestCheckout_IncompleteProfileChangesNothing(t *testing.T) {
	tests := []struct {
		name    string
		details models.CustomerDetails
		missing []string
	}{
		{"empty", models.CustomerDetails{}, []string{"name", "phone", "address"}},
		{"no_phone", models.CustomerDetails{Name: "Juan", Address: "Calle 1"}, []string{"phone"}},
		{"blank_address", models.CustomerDetails{Name: "Juan", Phone: "555", Address: "   "}, []string{"address"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSeededStore(t)
			s.SaveCustomerDetails(tc.details)
			s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")
			cartBefore := s.Cart()
			ordersBefore := s.Orders(store.OrderFilter{})

			orders, err := s.Checkout()
			assert.Nil(t, orders)
			var perr *store.IncompleteProfileError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tc.missing, perr.Fields)

			assert.Equal(t, cartBefore, s.Cart())
			assert.Equal(t, ordersBefore, s.Orders(store.OrderFilter{}))
		})
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	s := newSeededStore(t)
	s.SaveCustomerDetails(validDetails())

	_, err := s.Checkout()
	assert.ErrorIs(t, err, store.ErrEmptyCart)
	assert.Len(t, s.Orders(store.OrderFilter{}), 1)
}

func TestCheckout_SnapshotIgnoresLaterMenuEdits(t *testing.T) {
	s := newSeededStore(t)
	s.SaveCustomerDetails(validDetails())
	_, err := s.AddMenuItemToCart("rest1", "item1")
	require.NoError(t, err)

	orders, err := s.Checkout()
	require.NoError(t, err)

	newPrice := dec("99.00")
	newName := "Renamed"
	_, err = s.UpdateMenuItem("rest1", "item1", models.MenuItemPatch{Price: &newPrice, Name: &newName})
	require.NoError(t, err)

	o, err := s.Order(orders[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Burger Clásica", o.Items[0].Name)
	assert.True(t, dec("12.99").Equal(o.Items[0].Price))
	assert.True(t, dec("12.99").Equal(o.Total))
}

// ── Order status ─────────────────────────────────────────────────────────────

func placeTwoOrders(t *testing.T, s *store.Store) []models.Order {
	t.Helper()
	s.SaveCustomerDetails(validDetails())
	s.AddToCart(menuItem("item1", "12.99"), "rest1", "Burger Palace")
	s.AddToCart(menuItem("item3", "16.99"), "rest2", "Pizza Corner")
	orders, err := s.Checkout()
	require.NoError(t, err)
	return orders
}

func TestSetOrderStatus_ChangesOnlyThatOrdersStatus(t *testing.T) {
	s := newSeededStore(t)
	placeTwoOrders(t, s)
	before := s.Orders(store.OrderFilter{})
	target := before[1].ID

	updated, err := s.SetOrderStatus(target, models.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, updated.Status)

	after := s.Orders(store.OrderFilter{})
	require.Len(t, after, len(before))
	for i := range before {
		want := before[i]
		if want.ID == target {
			want.Status = models.StatusPreparing
		}
		assert.Equal(t, want, after[i])
	}
}

// Moves outside the lifecycle table leave the order untouched.
func TestSetOrderStatus_RejectsIllegalTransitions(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.SetOrderStatus("order1", models.StatusDelivered)
	var terr *statemachine.TransitionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, models.StatusPending, terr.From)
	assert.Equal(t, models.StatusDelivered, terr.To)

	for _, st := range []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusDelivery, models.StatusDelivered} {
		_, err := s.SetOrderStatus("order1", st)
		require.NoError(t, err, st)
	}
	_, err = s.SetOrderStatus("order1", models.StatusPending)
	assert.True(t, errors.As(err, &terr), "delivered → pending must be rejected")

	o, err := s.Order("order1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, o.Status)
}

func TestSetOrderStatus_Errors(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.SetOrderStatus("missing", models.StatusPreparing)
	assert.ErrorIs(t, err, store.ErrOrderNotFound)

	_, err = s.SetOrderStatus("order1", models.OrderStatus("teleported"))
	assert.ErrorIs(t, err, store.ErrUnknownStatus)
}

func TestTransitionOrder_ActorRestrictions(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.TransitionOrder("order1", models.StatusPreparing, models.RoleDispatcher)
	var terr *statemachine.TransitionError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, models.RoleDispatcher, terr.Actor)

	_, err = s.TransitionOrder("order1", models.StatusCancelled, models.RoleRestaurant)
	require.NoError(t, err)

	history, err := s.StatusHistory("order1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.StatusPending, history[1].From)
	assert.Equal(t, models.StatusCancelled, history[1].To)
	assert.Equal(t, models.RoleRestaurant, history[1].Actor)
}

func TestTakeOrderAndCompleteDelivery(t *testing.T) {
	s := newSeededStore(t)
	for _, st := range []models.OrderStatus{models.StatusPreparing, models.StatusReady} {
		_, err := s.SetOrderStatus("order1", st)
		require.NoError(t, err)
	}
	require.Len(t, s.AvailableOrders(), 1)

	o, err := s.TakeOrder("order1", "disp1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivery, o.Status)
	assert.Equal(t, "disp1", o.DispatcherID)
	assert.Empty(t, s.AvailableOrders())

	_, err = s.TakeOrder("order1", "disp2")
	assert.ErrorIs(t, err, store.ErrOrderAlreadyTaken)

	_, err = s.CompleteDelivery("order1", "disp2")
	assert.ErrorIs(t, err, store.ErrNotAssignedDispatcher)

	o, err = s.CompleteDelivery("order1", "disp1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, o.Status)

	mine := s.Orders(store.OrderFilter{DispatcherID: "disp1"})
	require.Len(t, mine, 1)
}

func TestTakeOrder_Errors(t *testing.T) {
	s := newSeededStore(t)

	_, err := s.TakeOrder("order1", "nobody")
	assert.ErrorIs(t, err, store.ErrDispatcherNotFound)

	_, err = s.TakeOrder("order1", "disp1")
	var terr *statemachine.TransitionError
	assert.True(t, errors.As(err, &terr), "pending orders cannot be taken")

	_, err = s.TakeOrder("missing", "disp1")
	assert.ErrorIs(t, err, store.ErrOrderNotFound)

	inactive := store.New()
	inactive.Load(nil, []models.Dispatcher{{ID: "d9"}}, nil)
	_, err = inactive.TakeOrder("x", "d9")
	assert.ErrorIs(t, err, store.ErrDispatcherInactive)
}

func TestOrdersFilter(t *testing.T) {
	s := newSeededStore(t)
	placeTwoOrders(t, s)

	assert.Len(t, s.Orders(store.OrderFilter{RestaurantID: "rest1"}), 2)
	assert.Len(t, s.Orders(store.OrderFilter{RestaurantID: "rest2"}), 1)
	assert.Len(t, s.Orders(store.OrderFilter{Search: "pérez"}), 1)
	assert.Len(t, s.Orders(store.OrderFilter{Search: "PIZZA"}), 1)
	assert.Len(t, s.Orders(store.OrderFilter{Search: "TOK000002"}), 1)
	assert.Len(t, s.Orders(store.OrderFilter{Statuses: []models.OrderStatus{models.StatusPending}}), 3)
	assert.Empty(t, s.Orders(store.OrderFilter{Statuses: []models.OrderStatus{models.StatusDelivered}}))
	assert.Len(t, s.Orders(store.OrderFilter{CustomerID: models.GuestCustomerID}), 3)
}

// ── Restaurants ──────────────────────────────────────────────────────────────

func TestDeleteRestaurant_KeepsOrders(t *testing.T) {
	s := newSeededStore(t)
	before, err := s.Order("order1")
	require.NoError(t, err)

	require.NoError(t, s.DeleteRestaurant("rest1"))

	_, err = s.Restaurant("rest1")
	assert.ErrorIs(t, err, store.ErrRestaurantNotFound)
	assert.Len(t, s.Restaurants(), 2)

	after, err := s.Order("order1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, "Burger Palace", after.RestaurantName)

	assert.ErrorIs(t, s.DeleteRestaurant("rest1"), store.ErrRestaurantNotFound)
}

func TestAddAndUpdateRestaurant(t *testing.T) {
	s := newSeededStore(t)

	r, err := s.AddRestaurant(models.Restaurant{Name: "Sushi Bar", Category: "Japonesa", Rating: 5, DeliveryFee: dec("1.50")})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("rest%d", fixedNow.UnixMilli()), r.ID)
	assert.True(t, r.IsActive)
	assert.Zero(t, r.Rating)
	assert.Empty(t, r.Menu)

	name := "Sushi House"
	updated, err := s.UpdateRestaurant(r.ID, models.RestaurantPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Sushi House", updated.Name)
	assert.Equal(t, "Japonesa", updated.Category)

	negative := dec("-1")
	_, err = s.UpdateRestaurant(r.ID, models.RestaurantPatch{DeliveryFee: &negative})
	assert.ErrorIs(t, err, store.ErrInvalidPrice)

	_, err = s.UpdateRestaurant("missing", models.RestaurantPatch{Name: &name})
	assert.ErrorIs(t, err, store.ErrRestaurantNotFound)
}

func TestAddRestaurant_IDsNeverClash(t *testing.T) {
	s := newSeededStore(t)
	base := fmt.Sprintf("rest%d", fixedNow.UnixMilli())

	first, err := s.AddRestaurant(models.Restaurant{Name: "Uno"})
	require.NoError(t, err)
	second, err := s.AddRestaurant(models.Restaurant{Name: "Dos"})
	require.NoError(t, err)
	third, err := s.AddRestaurant(models.Restaurant{Name: "Tres"})
	require.NoError(t, err)

	assert.Equal(t, base, first.ID)
	assert.Equal(t, base+"_2", second.ID)
	assert.Equal(t, base+"_3", third.ID)

	_, err = s.AddRestaurant(models.Restaurant{ID: "rest1", Name: "Impostor"})
	assert.ErrorIs(t, err, store.ErrDuplicateRestaurant)
	_, err = s.AddRestaurant(models.Restaurant{ID: second.ID, Name: "Impostor"})
	assert.ErrorIs(t, err, store.ErrDuplicateRestaurant)
	assert.Len(t, s.Restaurants(), 6)

	require.NoError(t, s.DeleteRestaurant(second.ID))
	_, err = s.Restaurant(second.ID)
	assert.ErrorIs(t, err, store.ErrRestaurantNotFound)
	_, err = s.Restaurant(third.ID)
	assert.NoError(t, err)
}

func TestAddMenuItem_GeneratedIDsNeverClash(t *testing.T) {
	s := newSeededStore(t)

	a, err := s.AddMenuItem("rest3", models.MenuItem{Name: "Quesadilla", Price: dec("6.50")})
	require.NoError(t, err)
	b, err := s.AddMenuItem("rest3", models.MenuItem{Name: "Elote", Price: dec("3.00")})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	// Another restaurant may reuse the same generated id
	c, err := s.AddMenuItem("rest2", models.MenuItem{Name: "Calzone", Price: dec("11.50")})
	require.NoError(t, err)
	assert.Equal(t, a.ID, c.ID)

	menu, err := s.Menu("rest3", "")
	require.NoError(t, err)
	assert.Len(t, menu, 3)
}

func TestActiveRestaurantsAndCategories(t *testing.T) {
	s := newSeededStore(t)

	assert.Len(t, s.ActiveRestaurants(store.RestaurantFilter{}), 3)
	assert.Len(t, s.ActiveRestaurants(store.RestaurantFilter{Search: "pizza"}), 1)
	assert.Len(t, s.ActiveRestaurants(store.RestaurantFilter{Search: "mexi"}), 1)
	assert.Len(t, s.ActiveRestaurants(store.RestaurantFilter{Category: "Pizza"}), 1)
	assert.Len(t, s.ActiveRestaurants(store.RestaurantFilter{Category: "all"}), 3)

	r, err := s.ToggleRestaurantActive("rest3")
	require.NoError(t, err)
	assert.False(t, r.IsActive)
	assert.Len(t, s.ActiveRestaurants(store.RestaurantFilter{}), 2)
	assert.Equal(t, []string{"Hamburguesas", "Pizza"}, s.Categories())
	assert.Len(t, s.Restaurants(), 3)
}

func TestMenuCRUD(t *testing.T) {
	s := newSeededStore(t)

	item, err := s.AddMenuItem("rest2", models.MenuItem{Name: "Calzone", Price: dec("11.50"), Category: "Pizzas"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("item%d", fixedNow.UnixMilli()), item.ID)

	_, err = s.AddMenuItem("rest2", models.MenuItem{ID: item.ID, Name: "Dup"})
	assert.ErrorIs(t, err, store.ErrDuplicateMenuItem)
	_, err = s.AddMenuItem("rest2", models.MenuItem{Name: "Free money", Price: dec("-2")})
	assert.ErrorIs(t, err, store.ErrInvalidPrice)

	menu, err := s.Menu("rest2", "Pizzas")
	require.NoError(t, err)
	assert.Len(t, menu, 2)

	desc := "Folded pizza"
	updated, err := s.UpdateMenuItem("rest2", item.ID, models.MenuItemPatch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Folded pizza", updated.Description)
	assert.Equal(t, "Calzone", updated.Name)

	require.NoError(t, s.DeleteMenuItem("rest2", item.ID))
	assert.ErrorIs(t, s.DeleteMenuItem("rest2", item.ID), store.ErrMenuItemNotFound)
	_, err = s.UpdateMenuItem("rest2", item.ID, models.MenuItemPatch{Description: &desc})
	assert.ErrorIs(t, err, store.ErrMenuItemNotFound)

	menu, err = s.Menu("rest2", "")
	require.NoError(t, err)
	assert.Len(t, menu, 1)
}

func TestReadsReturnCopies(t *testing.T) {
	s := newSeededStore(t)

	rs := s.Restaurants()
	rs[0].Name = "changed"
	rs[0].Menu[0].Name = "changed"

	r, err := s.Restaurant("rest1")
	require.NoError(t, err)
	assert.Equal(t, "Burger Palace", r.Name)
	assert.Equal(t, "Burger Clásica", r.Menu[0].Name)

	o, err := s.Order("order1")
	require.NoError(t, err)
	o.Items[0].Quantity = 99
	again, _ := s.Order("order1")
	assert.Equal(t, 2, again.Items[0].Quantity)
}

// ── Dashboards ───────────────────────────────────────────────────────────────

func TestOverview(t *testing.T) {
	s := newSeededStore(t)
	placeTwoOrders(t, s)
	for _, st := range []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusDelivery, models.StatusDelivered} {
		_, err := s.SetOrderStatus("order1", st)
		require.NoError(t, err)
	}

	ov := s.Overview()
	assert.Equal(t, 3, ov.TotalOrders)
	assert.Equal(t, 2, ov.OrdersByStatus[models.StatusPending])
	assert.Equal(t, 1, ov.OrdersByStatus[models.StatusDelivered])
	assert.True(t, dec("29.48").Equal(ov.Revenue), ov.Revenue.String())
	assert.Equal(t, 3, ov.ActiveRestaurants)
	assert.Equal(t, 2, ov.ActiveDispatchers)
}

func TestDispatcherOverview(t *testing.T) {
	s := newSeededStore(t)
	for _, st := range []models.OrderStatus{models.StatusPreparing, models.StatusReady} {
		_, err := s.SetOrderStatus("order1", st)
		require.NoError(t, err)
	}

	ov, err := s.DispatcherOverview("disp1")
	require.NoError(t, err)
	assert.Equal(t, 1, ov.AvailableOrders)
	assert.Zero(t, ov.ActiveDeliveries)

	_, err = s.TakeOrder("order1", "disp1")
	require.NoError(t, err)
	ov, _ = s.DispatcherOverview("disp1")
	assert.Equal(t, 1, ov.ActiveDeliveries)
	assert.Zero(t, ov.AvailableOrders)

	_, err = s.CompleteDelivery("order1", "disp1")
	require.NoError(t, err)
	ov, _ = s.DispatcherOverview("disp1")
	assert.Equal(t, 1, ov.DeliveredToday)
	assert.Equal(t, 1, ov.AssignedOrdersEver)

	_, err = s.DispatcherOverview("ghost")
	assert.ErrorIs(t, err, store.ErrDispatcherNotFound)
}
