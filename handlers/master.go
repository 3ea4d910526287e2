package handlers

import (
	"net/http"

	"delivery-app/models"
	"delivery-app/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetOverview returns the platform dashboard
func (h *Handler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"overview": h.store.Overview()})
}

// MasterGetAllOrders returns every order, optionally filtered
func (h *Handler) MasterGetAllOrders(c *gin.Context) {
	statuses, ok := parseStatuses(c)
	if !ok {
		return
	}
	orders := h.store.Orders(store.OrderFilter{
		Statuses:     statuses,
		Search:       c.Query("search"),
		RestaurantID: c.Query("restaurant_id"),
		DispatcherID: c.Query("dispatcher_id"),
	})
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// MasterGetOrder returns any order with its status history
func (h *Handler) MasterGetOrder(c *gin.Context) {
	order, err := h.store.Order(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.orderWithHistory(c, order)
}

// MasterUpdateOrderStatus moves an order along any legal edge
func (h *Handler) MasterUpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	prev, err := h.store.Order(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	order, err := h.store.TransitionOrder(prev.ID, req.Status, models.RoleMaster)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": prev.Status,
		"current_status":  order.Status,
	})
}

// ── Restaurants ──────────────────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name         string           `json:"name" binding:"required"`
	Category     string           `json:"category" binding:"required"`
	DeliveryTime string           `json:"delivery_time"`
	DeliveryFee  *decimal.Decimal `json:"delivery_fee"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address" binding:"required"`
	Image        string           `json:"image"`
}

// MasterGetAllRestaurants returns every restaurant, active or not
func (h *Handler) MasterGetAllRestaurants(c *gin.Context) {
	restaurants := h.store.Restaurants()
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// CreateRestaurant adds an active restaurant with an empty menu
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fee := decimal.Zero
	if req.DeliveryFee != nil {
		fee = *req.DeliveryFee
	}

	restaurant, err := h.store.AddRestaurant(models.Restaurant{
		Name:         req.Name,
		Category:     req.Category,
		DeliveryTime: req.DeliveryTime,
		DeliveryFee:  fee,
		Phone:        req.Phone,
		Address:      req.Address,
		Image:        req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// MasterUpdateRestaurant merges any restaurant field
func (h *Handler) MasterUpdateRestaurant(c *gin.Context) {
	var patch models.RestaurantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	restaurant, err := h.store.UpdateRestaurant(c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// MasterToggleRestaurant flips a restaurant's active flag
func (h *Handler) MasterToggleRestaurant(c *gin.Context) {
	restaurant, err := h.store.ToggleRestaurantActive(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": restaurant.IsActive, "restaurant": restaurant})
}

// MasterDeleteRestaurant removes a restaurant; its orders are kept
func (h *Handler) MasterDeleteRestaurant(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.store.DeleteRestaurant(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

// MasterGetDispatchers returns every dispatcher
func (h *Handler) MasterGetDispatchers(c *gin.Context) {
	dispatchers := h.store.Dispatchers()
	c.JSON(http.StatusOK, gin.H{"count": len(dispatchers), "dispatchers": dispatchers})
}
