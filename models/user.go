package models

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleMaster     UserRole = "master"
	RoleRestaurant UserRole = "restaurant"
	RoleDispatcher UserRole = "dispatcher"
	RoleCustomer   UserRole = "customer"
)

// Session is the logged-in user as persisted under the session key.
// It never carries a password.
type Session struct {
	UserID       string   `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	RestaurantID string   `json:"restaurant_id,omitempty"`
}
