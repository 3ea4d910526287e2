package handlers

import (
	"net/http"

	"delivery-app/middleware"
	"delivery-app/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ── Restaurant Management ────────────────────────────────────────────────────

// GetMyRestaurant fetches the restaurant of the logged-in user
func (h *Handler) GetMyRestaurant(c *gin.Context) {
	restaurant, err := h.store.Restaurant(middleware.MustSession(c).RestaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// UpdateMyRestaurant merges restaurant details. Owners cannot rate themselves
// or change the active flag here; that goes through /toggle.
func (h *Handler) UpdateMyRestaurant(c *gin.Context) {
	var patch models.RestaurantPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch.Rating = nil
	patch.IsActive = nil

	restaurant, err := h.store.UpdateRestaurant(middleware.MustSession(c).RestaurantID, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// ToggleMyRestaurant opens or closes the restaurant
func (h *Handler) ToggleMyRestaurant(c *gin.Context) {
	restaurant, err := h.store.ToggleRestaurantActive(middleware.MustSession(c).RestaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_active": restaurant.IsActive, "restaurant": restaurant})
}

// ── Menu Management ──────────────────────────────────────────────────────────

type MenuItemRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Category    string           `json:"category"`
	Image       string           `json:"image"`
}

// AddMenuItem adds an item to the caller's menu
func (h *Handler) AddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.store.AddMenuItem(middleware.MustSession(c).RestaurantID, models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem merges the given fields into a menu item
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var patch models.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.store.UpdateMenuItem(middleware.MustSession(c).RestaurantID, c.Param("itemId"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.store.DeleteMenuItem(middleware.MustSession(c).RestaurantID, c.Param("itemId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
