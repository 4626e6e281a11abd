package handlers

import (
	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

// ── Restaurant moderation ───────────────────────────────────────────────────

type ApproveRestaurantRequest struct {
	Notes string `json:"notes"`
}

// ApproveRestaurant marks a restaurant APPROVED and opens it
func ApproveRestaurant(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ApproveRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondBindError(c, err)
		return
	}

	restaurant, err := restaurantService.Approve(restaurantID, adminID, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Restaurant approved", gin.H{"restaurant": restaurant})
}

type RejectRestaurantRequest struct {
	Reason string `json:"reason"`
}

// RejectRestaurant marks a restaurant REJECTED. The owner's account is
// untouched — they may create a new restaurant.
func RejectRestaurant(c *gin.Context) {
	adminID := middleware.GetUserID(c)
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RejectRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondBindError(c, err)
		return
	}

	restaurant, err := restaurantService.Reject(restaurantID, adminID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Restaurant rejected", gin.H{"restaurant": restaurant})
}

type DeactivateRestaurantRequest struct {
	Reason string `json:"reason"`
}

// DeactivateRestaurant takes a restaurant off the platform
func DeactivateRestaurant(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req DeactivateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondBindError(c, err)
		return
	}

	restaurant, err := restaurantService.Deactivate(restaurantID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Restaurant deactivated", gin.H{"restaurant": restaurant})
}

// ReactivateRestaurant puts a previously approved restaurant back
func ReactivateRestaurant(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}

	restaurant, err := restaurantService.Reactivate(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Restaurant reactivated", gin.H{"restaurant": restaurant})
}

// ── Listings ────────────────────────────────────────────────────────────────

// AdminGetAllUsers returns all accounts — admin only
func AdminGetAllUsers(c *gin.Context) {
	users, err := adminService.ListUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Users fetched", gin.H{
		"count": len(users),
		"users": users,
	})
}

// AdminGetAllRestaurants returns all restaurants regardless of status
func AdminGetAllRestaurants(c *gin.Context) {
	restaurants, err := restaurantService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Restaurants fetched", gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// AdminGetAllOrders returns every order with counterpart summaries
func AdminGetAllOrders(c *gin.Context) {
	orders, err := adminService.ListOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Orders fetched", gin.H{
		"count":  len(orders),
		"orders": orders,
	})
}

// ── Reports ─────────────────────────────────────────────────────────────────

// GetSystemReports returns the platform-wide rollup
func GetSystemReports(c *gin.Context) {
	reports, err := statsService.SystemReports()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Reports generated", reports)
}

// GetDailyRevenue returns the last 30 day-buckets of delivered revenue
func GetDailyRevenue(c *gin.Context) {
	days, err := statsService.DailyRevenueReport()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Daily revenue generated", gin.H{
		"count": len(days),
		"days":  days,
	})
}
