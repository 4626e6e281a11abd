package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Restaurant browsing (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/menu", handlers.GetMenu)

		// Order lifecycle docs
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)

		// Payment stub — any authenticated caller
		auth.POST("/payments/orders/:id/pay", handlers.MarkOrderPaid)
		auth.GET("/payments/orders/:id", handlers.GetPaymentStatus)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/user")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleUser))
	{
		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.PUT("/orders/:id/cancel", handlers.CancelOrder)
		customer.GET("/stats", handlers.GetMyStats)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurant))
	{
		// Restaurant management
		restaurant.POST("/", handlers.CreateRestaurant)
		restaurant.GET("/", handlers.GetMyRestaurant)
		restaurant.PUT("/", handlers.UpdateRestaurant)
		restaurant.PUT("/toggle-status", handlers.ToggleOpen)

		// Menu management
		restaurant.POST("/menu", handlers.AddMenuItem)
		restaurant.GET("/menu", handlers.GetMyMenu)
		restaurant.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		restaurant.PUT("/menu/:itemId/availability", handlers.ToggleMenuItemAvailability)
		restaurant.DELETE("/menu/:itemId", handlers.DeleteMenuItem)

		// Order management
		restaurant.GET("/orders", handlers.GetRestaurantOrders)
		restaurant.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		// Stats
		restaurant.GET("/stats", handlers.GetRestaurantStats)
		restaurant.GET("/dashboard", handlers.GetRestaurantDashboard)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.GET("/restaurants", handlers.AdminGetAllRestaurants)
		admin.GET("/orders", handlers.AdminGetAllOrders)

		admin.PUT("/restaurants/:id/approve", handlers.ApproveRestaurant)
		admin.PUT("/restaurants/:id/reject", handlers.RejectRestaurant)
		admin.PUT("/restaurants/:id/deactivate", handlers.DeactivateRestaurant)
		admin.PUT("/restaurants/:id/reactivate", handlers.ReactivateRestaurant)

		admin.GET("/reports", handlers.GetSystemReports)
		admin.GET("/reports/daily-revenue", handlers.GetDailyRevenue)
	}
}
