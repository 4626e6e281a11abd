package handlers

import (
	"food-ordering-api/middleware"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
)

// ── Restaurant Management ────────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Address         string `json:"address" binding:"required"`
	PreparationTime int    `json:"preparation_time"`
}

// CreateRestaurant lets a restaurant-role user create their restaurant.
// One per owner; it starts PENDING and closed until an admin approves.
func CreateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	restaurant, err := restaurantService.Create(ownerID, req.Name, req.Description, req.Address, req.PreparationTime)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Restaurant created, awaiting admin approval", gin.H{"restaurant": restaurant})
}

// GetMyRestaurant fetches the restaurant owned by the logged-in user
func GetMyRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	restaurant, err := restaurantService.GetMine(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Restaurant fetched", gin.H{"restaurant": restaurant})
}

type UpdateRestaurantRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Address         *string `json:"address"`
	PreparationTime *int    `json:"preparation_time"`
}

// UpdateRestaurant updates the owner-mutable profile fields
func UpdateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	restaurant, err := restaurantService.Update(ownerID, services.RestaurantUpdate{
		Name:            req.Name,
		Description:     req.Description,
		Address:         req.Address,
		PreparationTime: req.PreparationTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Restaurant updated", gin.H{"restaurant": restaurant})
}

type ToggleOpenRequest struct {
	IsOpen *bool `json:"is_open" binding:"required"`
}

// ToggleOpen opens or closes the restaurant for orders
func ToggleOpen(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req ToggleOpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	restaurant, err := restaurantService.ToggleOpen(ownerID, *req.IsOpen)
	if err != nil {
		respondError(c, err)
		return
	}
	message := "Restaurant is now closed"
	if restaurant.IsOpen {
		message = "Restaurant is now open"
	}
	respondOK(c, message, gin.H{"restaurant": restaurant})
}

// ── Menu Management ─────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	IsVeg       bool    `json:"is_veg"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	IsAvailable *bool   `json:"is_available"`
}

// AddMenuItem adds a new item to the restaurant's menu
func AddMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := menuService.Add(ownerID, services.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsVeg:       req.IsVeg,
		Category:    req.Category,
		Image:       req.Image,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "Menu item added", gin.H{"item": item})
}

// GetMyMenu lists the caller's own menu
func GetMyMenu(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	items, err := menuService.ListMine(ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Menu fetched", gin.H{
		"count": len(items),
		"menu":  items,
	})
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	IsVeg       *bool    `json:"is_veg"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
	IsAvailable *bool    `json:"is_available"`
}

// UpdateMenuItem updates a menu item on the caller's restaurant
func UpdateMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := menuService.Update(ownerID, itemID, services.MenuItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsVeg:       req.IsVeg,
		Category:    req.Category,
		Image:       req.Image,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Menu item updated", gin.H{"item": item})
}

type ToggleAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available"`
}

// ToggleMenuItemAvailability flips or sets an item's availability
func ToggleMenuItemAvailability(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req ToggleAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		respondBindError(c, err)
		return
	}

	item, err := menuService.ToggleAvailability(ownerID, itemID, req.IsAvailable)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Availability updated", gin.H{"item": item})
}

// DeleteMenuItem removes a menu item
func DeleteMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	item, err := menuService.Delete(ownerID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "Menu item deleted", gin.H{"item": item})
}
