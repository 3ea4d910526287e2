package handlers

import (
	"net/http"

	"delivery-app/middleware"
	"delivery-app/models"
	"delivery-app/store"

	"github.com/gin-gonic/gin"
)

// GetRestaurantOrders returns all orders for the caller's restaurant
func (h *Handler) GetRestaurantOrders(c *gin.Context) {
	restaurantID := middleware.MustSession(c).RestaurantID
	restaurant, err := h.store.Restaurant(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}

	statuses, ok := parseStatuses(c)
	if !ok {
		return
	}
	orders := h.store.Orders(store.OrderFilter{RestaurantID: restaurantID, Statuses: statuses})

	// Counts over every order of the restaurant, not just the filtered ones
	summary := map[models.OrderStatus]int{}
	for _, o := range h.store.Orders(store.OrderFilter{RestaurantID: restaurantID}) {
		summary[o.Status]++
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// UpdateOrderStatus handles the restaurant's state transitions
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.store.Order(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if order.RestaurantID != middleware.MustSession(c).RestaurantID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to your restaurant"})
		return
	}

	updated, err := h.store.TransitionOrder(order.ID, req.Status, models.RoleRestaurant)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        updated.ID,
		"previous_status": order.Status,
		"current_status":  updated.Status,
	})
}
