package handlers

import (
	"context"
	"net/http"

	"delivery-app/middleware"
	"delivery-app/models"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required"`
	Role     models.UserRole `json:"role" binding:"required,oneof=master restaurant dispatcher"`
}

// Login checks demo credentials and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.directory.Login(req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateToken(h.jwtSecret, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	h.persist("save user", func(ctx context.Context) error {
		return h.sessions.SaveUser(ctx, user)
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// Logout forgets the persisted session. Staff sessions never own the
// anonymous customer cart, so it is left alone.
func (h *Handler) Logout(c *gin.Context) {
	h.persist("clear user", h.sessions.ClearUser)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfile returns the authenticated user's session
func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": middleware.MustSession(c)})
}
