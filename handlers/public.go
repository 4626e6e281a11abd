package handlers

import (
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns active, approved restaurants for browsing (public)
func ListRestaurants(c *gin.Context) {
	restaurants, err := restaurantService.ListPublic()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Restaurants fetched", gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its menu (public)
func GetRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	restaurant, err := restaurantService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Restaurant fetched", gin.H{"restaurant": restaurant})
}

// GetMenu returns the full menu for a restaurant, available or not —
// clients filter for display (public)
func GetMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := menuService.ListForRestaurant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Menu fetched", gin.H{
		"count": len(items),
		"menu":  items,
	})
}

// GetStateMachineInfo documents the order lifecycle (public)
func GetStateMachineInfo(c *gin.Context) {
	respondOK(c, "Order lifecycle", gin.H{
		"happy_path":      statemachine.HappyPath,
		"all_statuses":    statemachine.AllStatuses,
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
		"rules": []string{
			"Customers may cancel an order only while it is PLACED",
			"The owning restaurant may set any status; DELIVERED also marks the order PAID",
		},
	})
}
