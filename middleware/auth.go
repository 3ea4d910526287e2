package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"delivery-app/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session"

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

type Claims struct {
	UserID       string          `json:"user_id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Role         models.UserRole `json:"role"`
	RestaurantID string          `json:"restaurant_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a session
func GenerateToken(secret []byte, s models.Session) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:       s.UserID,
		Email:        s.Email,
		Name:         s.Name,
		Role:         s.Role,
		RestaurantID: s.RestaurantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates an HS256 token and returns its session.
func ParseToken(secret []byte, tokenStr string) (models.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return models.Session{}, err
	}
	if !token.Valid {
		return models.Session{}, fmt.Errorf("invalid token")
	}
	return models.Session{
		UserID:       claims.UserID,
		Email:        claims.Email,
		Name:         claims.Name,
		Role:         claims.Role,
		RestaurantID: claims.RestaurantID,
	}, nil
}

// AuthRequired validates the JWT and injects the session into context
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			return
		}
		s, err := ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := GetSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			return
		}
		for _, r := range roles {
			if s.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
	}
}

func rolesString(roles []models.UserRole) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// GetSession extracts the caller's session from context
func GetSession(c *gin.Context) (models.Session, bool) {
	val, ok := c.Get(sessionKey)
	if !ok {
		return models.Session{}, false
	}
	s, ok := val.(models.Session)
	return s, ok
}

// MustSession is GetSession for handlers mounted behind AuthRequired. It
// panics without a session; gin's recovery middleware answers 500.
func MustSession(c *gin.Context) models.Session {
	s, ok := GetSession(c)
	if !ok {
		panic("middleware: no session in context; route is missing AuthRequired")
	}
	return s
}
