package handlers

import (
	"food-ordering-api/apperrors"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

var errNoRestaurant = apperrors.NotFound("No restaurant found for your account")

// GetRestaurantOrders returns all orders for the owner's restaurant
func GetRestaurantOrders(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	restaurant, err := resolveCallerRestaurant(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := orderService.ListForRestaurant(restaurant.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Orders fetched", gin.H{
		"restaurant": restaurant.Name,
		"count":      len(orders),
		"orders":     orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order to the requested status. Any status in
// the set is accepted; DELIVERED also marks the order PAID.
func UpdateOrderStatus(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	restaurant, err := resolveCallerRestaurant(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := orderService.UpdateStatus(restaurant.ID, orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Order status updated", gin.H{"order": order})
}

// GetRestaurantStats returns the owner's revenue view: status buckets and
// the delivered-revenue commission split
func GetRestaurantStats(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	restaurant, err := resolveCallerRestaurant(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := statsService.RestaurantStats(restaurant.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Stats fetched", stats)
}

// GetRestaurantDashboard returns the live-operations view (today's
// counts, READY-order revenue)
func GetRestaurantDashboard(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	restaurant, err := resolveCallerRestaurant(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	dash, err := statsService.Dashboard(restaurant.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Dashboard fetched", dash)
}

// resolveCallerRestaurant maps the caller to their restaurant through the
// restaurant service's owner-scope check.
func resolveCallerRestaurant(ownerID uint) (*models.Restaurant, error) {
	restaurant, err := restaurantService.GetMine(ownerID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, errNoRestaurant
	}
	return restaurant, nil
}
