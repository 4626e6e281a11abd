package handlers

import (
	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
	Items        []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates a new order (customer only)
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	lines := make([]services.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLineInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	order, err := orderService.Place(userID, req.RestaurantID, lines)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Order placed successfully", gin.H{"order": order})
}

// GetMyOrders returns all orders for the logged-in customer, newest first
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orders, err := orderService.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Orders fetched", gin.H{
		"count":  len(orders),
		"orders": orders,
	})
}

// CancelOrder cancels the caller's own order while it is still PLACED
func CancelOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := orderService.Cancel(userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Order cancelled successfully", gin.H{"order": order})
}

// GetMyStats returns the caller's spending dashboard
func GetMyStats(c *gin.Context) {
	userID := middleware.GetUserID(c)
	stats, err := statsService.UserStats(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Stats fetched", stats)
}

// MarkOrderPaid settles an order manually — payment gateway stub
func MarkOrderPaid(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := orderService.MarkPaid(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Payment recorded", gin.H{"order": order})
}

// GetPaymentStatus returns the payment view of an order
func GetPaymentStatus(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}
	info, err := orderService.PaymentStatus(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Payment status fetched", info)
}
