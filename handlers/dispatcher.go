package handlers

import (
	"net/http"

	"delivery-app/middleware"
	"delivery-app/models"
	"delivery-app/store"

	"github.com/gin-gonic/gin"
)

// GetDispatcherOverview returns the caller's delivery counters
func (h *Handler) GetDispatcherOverview(c *gin.Context) {
	ov, err := h.store.DispatcherOverview(middleware.MustSession(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overview": ov})
}

// GetAvailableOrders shows ready orders that have no dispatcher assigned
func (h *Handler) GetAvailableOrders(c *gin.Context) {
	orders := h.store.AvailableOrders()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(orders),
		"orders": orders,
	})
}

// GetMyDeliveries returns the orders assigned to the logged-in dispatcher
func (h *Handler) GetMyDeliveries(c *gin.Context) {
	f := store.OrderFilter{DispatcherID: middleware.MustSession(c).UserID}
	switch c.Query("filter") {
	case "":
	case "active":
		f.Statuses = []models.OrderStatus{models.StatusDelivery}
	case "completed":
		f.Statuses = []models.OrderStatus{models.StatusDelivered}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter must be active or completed"})
		return
	}
	orders := h.store.Orders(f)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// TakeOrder assigns a ready order to the dispatcher and moves it to delivery
func (h *Handler) TakeOrder(c *gin.Context) {
	order, err := h.store.TakeOrder(c.Param("id"), middleware.MustSession(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order taken successfully",
		"order_id": order.ID,
		"status":   order.Status,
	})
}

// DeliverOrder moves delivery → delivered for the assigned dispatcher
func (h *Handler) DeliverOrder(c *gin.Context) {
	order, err := h.store.CompleteDelivery(c.Param("id"), middleware.MustSession(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order delivered successfully",
		"order_id": order.ID,
		"status":   order.Status,
	})
}
