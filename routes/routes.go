package routes

import (
	"delivery-app/handlers"
	"delivery-app/middleware"
	"delivery-app/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, jwtSecret []byte) {
	authRequired := middleware.AuthRequired(jwtSecret)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", h.Login)

		// Restaurants & menus (no auth needed)
		public.GET("/restaurants", h.ListRestaurants)
		public.GET("/restaurants/categories", h.ListCategories)
		public.GET("/restaurants/:id", h.GetRestaurant)
		public.GET("/restaurants/:id/menu", h.GetMenu)

		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(authRequired)
	{
		auth.GET("/profile", h.GetProfile)
		auth.POST("/auth/logout", h.Logout)
	}

	// ── Customer routes (anonymous) ────────────────────────────────
	customer := r.Group("/api/customer")
	{
		customer.GET("/cart", h.GetCart)
		customer.POST("/cart/items", h.AddToCart)
		customer.PUT("/cart/items/:restaurantId/:itemId", h.UpdateCartItem)
		customer.DELETE("/cart/items/:restaurantId/:itemId", h.RemoveCartItem)
		customer.DELETE("/cart", h.ClearCart)

		customer.GET("/details", h.GetCustomerDetails)
		customer.PUT("/details", h.SaveCustomerDetails)

		customer.POST("/checkout", h.Checkout)
		customer.GET("/orders", h.GetMyOrders)
		customer.GET("/orders/:id", h.GetOrderDetail)
	}

	// ── Restaurant routes ──────────────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(authRequired, middleware.RoleRequired(models.RoleRestaurant))
	{
		restaurant.GET("", h.GetMyRestaurant)
		restaurant.PUT("", h.UpdateMyRestaurant)
		restaurant.PUT("/toggle", h.ToggleMyRestaurant)

		// Menu management
		restaurant.POST("/menu", h.AddMenuItem)
		restaurant.PUT("/menu/:itemId", h.UpdateMenuItem)
		restaurant.DELETE("/menu/:itemId", h.DeleteMenuItem)

		// Order management
		restaurant.GET("/orders", h.GetRestaurantOrders)
		restaurant.PUT("/orders/:id/status", h.UpdateOrderStatus)
	}

	// ── Dispatcher routes ──────────────────────────────────────────
	dispatcher := r.Group("/api/dispatcher")
	dispatcher.Use(authRequired, middleware.RoleRequired(models.RoleDispatcher))
	{
		dispatcher.GET("/overview", h.GetDispatcherOverview)
		dispatcher.GET("/orders/available", h.GetAvailableOrders)
		dispatcher.GET("/orders/mine", h.GetMyDeliveries)
		dispatcher.PUT("/orders/:id/take", h.TakeOrder)
		dispatcher.PUT("/orders/:id/deliver", h.DeliverOrder)
	}

	// ── Master routes ──────────────────────────────────────────────
	master := r.Group("/api/master")
	master.Use(authRequired, middleware.RoleRequired(models.RoleMaster))
	{
		master.GET("/overview", h.GetOverview)
		master.GET("/orders", h.MasterGetAllOrders)
		master.GET("/orders/:id", h.MasterGetOrder)
		master.PUT("/orders/:id/status", h.MasterUpdateOrderStatus)

		master.GET("/restaurants", h.MasterGetAllRestaurants)
		master.POST("/restaurants", h.CreateRestaurant)
		master.PUT("/restaurants/:id", h.MasterUpdateRestaurant)
		master.DELETE("/restaurants/:id", h.MasterDeleteRestaurant)
		master.PUT("/restaurants/:id/toggle", h.MasterToggleRestaurant)

		master.GET("/dispatchers", h.MasterGetDispatchers)
	}
}
