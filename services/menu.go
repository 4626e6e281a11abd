package services

import (
	"errors"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"

	"gorm.io/gorm"
)

// MenuService manages a restaurant's menu items. Every mutating operation
// is scoped through the caller's own restaurant; items belonging to
// another restaurant are indistinguishable from items that don't exist.
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// findOwnedItem resolves an item that must belong to the given
// restaurant. A wrong-tenant item surfaces as not-found on purpose.
func (s *MenuService) findOwnedItem(restaurantID, itemID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.Where("id = ? AND restaurant_id = ?", itemID, restaurantID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Menu item not found")
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// MenuItemInput carries the fields for a new menu item.
type MenuItemInput struct {
	Name        string
	Description string
	Price       float64
	IsVeg       bool
	Category    string
	Image       string
	IsAvailable *bool
}

// Add creates a menu item on the caller's restaurant. New items default
// to available, category "Other" and a placeholder image.
func (s *MenuService) Add(ownerID uint, input MenuItemInput) (*models.MenuItem, error) {
	var restaurant models.Restaurant
	err := s.db.Where("owner_id = ?", ownerID).First(&restaurant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Precondition("You need to create a restaurant first")
	}
	if err != nil {
		return nil, err
	}

	if input.Price < 0 {
		return nil, apperrors.Validation("Price cannot be negative")
	}
	if input.Category == "" {
		input.Category = models.DefaultMenuCategory
	} else if !models.IsValidMenuCategory(input.Category) {
		return nil, apperrors.Validation("Unknown menu category: " + input.Category)
	}
	if input.Image == "" {
		input.Image = models.DefaultMenuItemImage
	}
	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		IsVeg:        input.IsVeg,
		Category:     input.Category,
		Image:        input.Image,
		IsAvailable:  available,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListForRestaurant returns every item of a restaurant, available or not.
// Public — callers filter for display.
func (s *MenuService) ListForRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	var restaurant models.Restaurant
	err := s.db.First(&restaurant, restaurantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Restaurant not found")
	}
	if err != nil {
		return nil, err
	}

	var items []models.MenuItem
	if err := s.db.Where("restaurant_id = ?", restaurantID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListMine returns the caller's own menu.
func (s *MenuService) ListMine(ownerID uint) ([]models.MenuItem, error) {
	restaurant, err := resolveOwnedRestaurant(s.db, ownerID)
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := s.db.Where("restaurant_id = ?", restaurant.ID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// MenuItemUpdate carries partial updates; nil leaves a field untouched.
type MenuItemUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	IsVeg       *bool
	Category    *string
	Image       *string
	IsAvailable *bool
}

func (s *MenuService) Update(ownerID, itemID uint, updates MenuItemUpdate) (*models.MenuItem, error) {
	restaurant, err := resolveOwnedRestaurant(s.db, ownerID)
	if err != nil {
		return nil, err
	}
	item, err := s.findOwnedItem(restaurant.ID, itemID)
	if err != nil {
		return nil, err
	}

	if updates.Price != nil && *updates.Price < 0 {
		return nil, apperrors.Validation("Price cannot be negative")
	}
	if updates.Category != nil && !models.IsValidMenuCategory(*updates.Category) {
		return nil, apperrors.Validation("Unknown menu category: " + *updates.Category)
	}

	if updates.Name != nil {
		item.Name = *updates.Name
	}
	if updates.Description != nil {
		item.Description = *updates.Description
	}
	if updates.Price != nil {
		item.Price = *updates.Price
	}
	if updates.IsVeg != nil {
		item.IsVeg = *updates.IsVeg
	}
	if updates.Category != nil {
		item.Category = *updates.Category
	}
	if updates.Image != nil {
		item.Image = *updates.Image
	}
	if updates.IsAvailable != nil {
		item.IsAvailable = *updates.IsAvailable
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// ToggleAvailability sets the availability flag, or flips it when no
// explicit value is given.
func (s *MenuService) ToggleAvailability(ownerID, itemID uint, isAvailable *bool) (*models.MenuItem, error) {
	restaurant, err := resolveOwnedRestaurant(s.db, ownerID)
	if err != nil {
		return nil, err
	}
	item, err := s.findOwnedItem(restaurant.ID, itemID)
	if err != nil {
		return nil, err
	}

	if isAvailable != nil {
		item.IsAvailable = *isAvailable
	} else {
		item.IsAvailable = !item.IsAvailable
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes a menu item from the caller's restaurant.
func (s *MenuService) Delete(ownerID, itemID uint) (*models.MenuItem, error) {
	restaurant, err := resolveOwnedRestaurant(s.db, ownerID)
	if err != nil {
		return nil, err
	}
	item, err := s.findOwnedItem(restaurant.ID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}
