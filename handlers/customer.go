package handlers

import (
	"context"
	"net/http"

	"delivery-app/models"
	"delivery-app/store"

	"github.com/gin-gonic/gin"
)

// ── Cart ──────────────────────────────────────────────────────────

type AddToCartRequest struct {
	RestaurantID string `json:"restaurant_id" binding:"required"`
	ItemID       string `json:"item_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *Handler) cartResponse(c *gin.Context, status int) {
	c.JSON(status, gin.H{
		"items":   h.store.Cart(),
		"summary": h.store.CartSummary(),
	})
}

// GetCart returns the cart lines and their totals
func (h *Handler) GetCart(c *gin.Context) {
	h.cartResponse(c, http.StatusOK)
}

// AddToCart adds one unit of a menu item
func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.store.AddMenuItemToCart(req.RestaurantID, req.ItemID); err != nil {
		respondError(c, err)
		return
	}
	h.cartResponse(c, http.StatusCreated)
}

// UpdateCartItem sets the quantity of a line; zero removes it
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.UpdateQuantity(c.Param("restaurantId"), c.Param("itemId"), *req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	h.cartResponse(c, http.StatusOK)
}

// RemoveCartItem drops a line; removing a missing line is not an error
func (h *Handler) RemoveCartItem(c *gin.Context) {
	h.store.RemoveFromCart(c.Param("restaurantId"), c.Param("itemId"))
	h.cartResponse(c, http.StatusOK)
}

func (h *Handler) ClearCart(c *gin.Context) {
	h.store.ClearCart()
	h.cartResponse(c, http.StatusOK)
}

// ── Profile ───────────────────────────────────────────────────────

// GetCustomerDetails returns the active delivery profile
func (h *Handler) GetCustomerDetails(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"details": h.store.CustomerDetails()})
}

// SaveCustomerDetails replaces the delivery profile and persists it
func (h *Handler) SaveCustomerDetails(c *gin.Context) {
	var req models.CustomerDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved := h.store.SaveCustomerDetails(req)
	// Writes the store's profile as of when the job runs, so the last write wins.
	h.persist("save profile", func(ctx context.Context) error {
		return h.sessions.SaveProfile(ctx, h.store.CustomerDetails())
	})
	c.JSON(http.StatusOK, gin.H{
		"message":  "Details saved",
		"details":  saved,
		"complete": store.ValidateDetails(saved) == nil,
	})
}

// ── Orders ────────────────────────────────────────────────────────

// Checkout places one order per restaurant in the cart
func (h *Handler) Checkout(c *gin.Context) {
	orders, err := h.store.Checkout()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"count":   len(orders),
		"orders":  orders,
	})
}

// GetMyOrders returns the customer's order history
func (h *Handler) GetMyOrders(c *gin.Context) {
	statuses, ok := parseStatuses(c)
	if !ok {
		return
	}
	orders := h.store.Orders(store.OrderFilter{CustomerID: models.GuestCustomerID, Statuses: statuses})
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns an order with its status history
func (h *Handler) GetOrderDetail(c *gin.Context) {
	order, err := h.store.Order(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if order.CustomerID != models.GuestCustomerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	h.orderWithHistory(c, order)
}

func (h *Handler) orderWithHistory(c *gin.Context, order models.Order) {
	history, err := h.store.StatusHistory(order.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "status_history": history})
}
