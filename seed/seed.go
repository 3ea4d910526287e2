// Package seed holds the static demo dataset the app starts with.
package seed

import (
	"time"

	"delivery-app/models"
	"delivery-app/store"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Restaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID:           "rest1",
			Name:         "Burger Palace",
			Image:        "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400",
			Category:     "Hamburguesas",
			Rating:       4.5,
			DeliveryTime: "25-35 min",
			DeliveryFee:  price("3.50"),
			IsActive:     true,
			Phone:        "+1234567890",
			Address:      "Calle Principal 123",
			Menu: []models.MenuItem{
				{
					ID:          "item1",
					Name:        "Burger Clásica",
					Description: "Carne de res, lechuga, tomate, cebolla",
					Price:       price("12.99"),
					Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=300",
					Category:    "Hamburguesas",
				},
				{
					ID:          "item2",
					Name:        "Papas Fritas",
					Description: "Papas crujientes con sal marina",
					Price:       price("4.99"),
					Image:       "https://images.unsplash.com/photo-1576107232684-1279f390859f?w=300",
					Category:    "Acompañamientos",
				},
			},
		},
		{
			ID:           "rest2",
			Name:         "Pizza Corner",
			Image:        "https://images.unsplash.com/photo-1513104890138-7c749659a591?w=400",
			Category:     "Pizza",
			Rating:       4.7,
			DeliveryTime: "30-40 min",
			DeliveryFee:  price("2.99"),
			IsActive:     true,
			Phone:        "+1234567891",
			Address:      "Avenida Central 456",
			Menu: []models.MenuItem{
				{
					ID:          "item3",
					Name:        "Pizza Margherita",
					Description: "Salsa de tomate, mozzarella, albahaca",
					Price:       price("16.99"),
					Image:       "https://images.unsplash.com/photo-1604382354936-07c5d9983bd3?w=300",
					Category:    "Pizzas",
				},
			},
		},
		{
			ID:           "rest3",
			Name:         "Taco Fiesta",
			Image:        "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400",
			Category:     "Mexicana",
			Rating:       4.3,
			DeliveryTime: "20-30 min",
			DeliveryFee:  price("2.50"),
			IsActive:     true,
			Phone:        "+1234567892",
			Address:      "Plaza Central 789",
			Menu: []models.MenuItem{
				{
					ID:          "item4",
					Name:        "Tacos de Carnitas",
					Description: "Tortillas de maíz con carnitas, cebolla y cilantro",
					Price:       price("8.99"),
					Image:       "https://images.unsplash.com/photo-1565299507177-b0ac66763828?w=300",
					Category:    "Tacos",
				},
			},
		},
	}
}

func Dispatchers() []models.Dispatcher {
	return []models.Dispatcher{
		{ID: "disp1", Name: "Carlos Rodríguez", Phone: "+1234567893", IsActive: true, Rating: 4.8, CompletedDeliveries: 156},
		{ID: "disp2", Name: "María González", Phone: "+1234567894", IsActive: true, Rating: 4.9, CompletedDeliveries: 203},
	}
}

// Orders returns the sample order, stamped with createdAt.
// Its total includes the restaurant's delivery fee, unlike checkout totals.
func Orders(createdAt time.Time) []models.Order {
	return []models.Order{
		{
			ID:             "order1",
			CustomerID:     models.GuestCustomerID,
			CustomerName:   "Juan Pérez",
			RestaurantID:   "rest1",
			RestaurantName: "Burger Palace",
			Items: []models.OrderLine{
				{ItemID: "item1", Name: "Burger Clásica", Price: price("12.99"), Quantity: 2},
			},
			Total:           price("29.48"),
			Status:          models.StatusPending,
			CreatedAt:       createdAt,
			DeliveryAddress: "Calle Secundaria 789",
			Phone:           "+1234567892",
		},
	}
}

// Load fills s with the demo dataset.
func Load(s *store.Store, now time.Time) {
	s.Load(Restaurants(), Dispatchers(), Orders(now))
}
