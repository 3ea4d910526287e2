package handlers

import (
	"net/http"

	"delivery-app/models"
	"delivery-app/statemachine"
	"delivery-app/store"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns the active restaurants (public)
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants := h.store.ActiveRestaurants(store.RestaurantFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// ListCategories returns the distinct categories of active restaurants
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.store.Categories()})
}

// GetRestaurant returns a single active restaurant with its menu
func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.store.Restaurant(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !restaurant.IsActive {
		respondError(c, store.ErrRestaurantNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns the menu for a specific restaurant (public)
func (h *Handler) GetMenu(c *gin.Context) {
	restaurant, err := h.store.Restaurant(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !restaurant.IsActive {
		respondError(c, store.ErrRestaurantNotFound)
		return
	}

	items, err := h.store.Menu(restaurant.ID, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"menu":       items,
	})
}

// GetStateMachineInfo returns the full state machine for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	var terminal []models.OrderStatus
	for _, st := range models.AllStatuses {
		if statemachine.IsTerminal(st) {
			terminal = append(terminal, st)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"statuses":        models.AllStatuses,
		"terminal_states": terminal,
		"description":     "Delivery Order Lifecycle State Machine",
	})
}
