package services

import (
	"errors"
	"time"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"

	"gorm.io/gorm"
)

// RestaurantService owns the restaurant directory: creation, the admin
// approval workflow, activation and the open/closed toggle.
type RestaurantService struct {
	db *gorm.DB
}

func NewRestaurantService(db *gorm.DB) *RestaurantService {
	return &RestaurantService{db: db}
}

// resolveOwnedRestaurant is the shared owner-scope check: every
// owner-facing operation resolves the caller's restaurant through here.
func resolveOwnedRestaurant(db *gorm.DB, ownerID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := db.Where("owner_id = ?", ownerID).First(&restaurant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("No restaurant found for your account")
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *RestaurantService) findByID(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Restaurant not found")
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Create registers a new restaurant for an owner. One restaurant per
// owner; new restaurants start PENDING and closed until an admin approves.
func (s *RestaurantService) Create(ownerID uint, name, description, address string, preparationTime int) (*models.Restaurant, error) {
	var existing models.Restaurant
	if err := s.db.Where("owner_id = ?", ownerID).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("You already have a restaurant")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if preparationTime <= 0 {
		preparationTime = models.DefaultPreparationTime
	}

	restaurant := models.Restaurant{
		OwnerID:         ownerID,
		Name:            name,
		Description:     description,
		Address:         address,
		PreparationTime: preparationTime,
		ApprovalStatus:  models.ApprovalPending,
		IsOpen:          false, // closed until approved
		IsActive:        true,
	}
	if err := s.db.Create(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetMine returns the caller's restaurant, or nil when they have not
// created one yet (not an error).
func (s *RestaurantService) GetMine(ownerID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.Preload("MenuItems").Where("owner_id = ?", ownerID).First(&restaurant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// RestaurantUpdate carries the owner-mutable profile fields; nil means
// leave the field untouched.
type RestaurantUpdate struct {
	Name            *string
	Description     *string
	Address         *string
	PreparationTime *int
}

func (s *RestaurantService) Update(ownerID uint, updates RestaurantUpdate) (*models.Restaurant, error) {
	restaurant, err := resolveOwnedRestaurant(s.db, ownerID)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil {
		restaurant.Name = *updates.Name
	}
	if updates.Description != nil {
		restaurant.Description = *updates.Description
	}
	if updates.Address != nil {
		restaurant.Address = *updates.Address
	}
	if updates.PreparationTime != nil {
		restaurant.PreparationTime = *updates.PreparationTime
	}

	if err := s.db.Save(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// ToggleOpen opens or closes the caller's restaurant. Only approved
// restaurants may change this flag, even if approval later lapsed.
func (s *RestaurantService) ToggleOpen(ownerID uint, isOpen bool) (*models.Restaurant, error) {
	restaurant, err := resolveOwnedRestaurant(s.db, ownerID)
	if err != nil {
		return nil, err
	}
	if restaurant.ApprovalStatus != models.ApprovalApproved {
		return nil, apperrors.Precondition("Restaurant must be approved by admin before you can open/close it")
	}
	restaurant.IsOpen = isOpen
	if err := s.db.Save(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// ListPublic returns the restaurants customers may browse: active and
// approved, newest first.
func (s *RestaurantService) ListPublic() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := s.db.Preload("Owner").
		Where("is_active = ? AND approval_status = ?", true, models.ApprovalApproved).
		Order("created_at desc").
		Find(&restaurants).Error
	return restaurants, err
}

// ListAll returns every restaurant regardless of status — admin view.
func (s *RestaurantService) ListAll() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := s.db.Preload("Owner").Order("created_at desc").Find(&restaurants).Error
	return restaurants, err
}

// Get returns one restaurant by id for the public detail view.
func (s *RestaurantService) Get(restaurantID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.Preload("MenuItems").First(&restaurant, restaurantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Restaurant not found")
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Approve marks a restaurant APPROVED, activates and opens it, and
// records who approved it and when.
func (s *RestaurantService) Approve(restaurantID, adminID uint, notes string) (*models.Restaurant, error) {
	restaurant, err := s.findByID(restaurantID)
	if err != nil {
		return nil, err
	}

	if notes == "" {
		notes = "Approved"
	}
	now := time.Now()
	restaurant.ApprovalStatus = models.ApprovalApproved
	restaurant.AdminNotes = notes
	restaurant.IsActive = true
	restaurant.IsOpen = true
	restaurant.ApprovedBy = &adminID
	restaurant.ApprovedAt = &now

	if err := s.db.Save(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Reject marks a restaurant REJECTED and shuts it. Rejection is
// restaurant-scoped: the owner's account is never touched, and the owner
// remains free to log in.
func (s *RestaurantService) Reject(restaurantID, adminID uint, reason string) (*models.Restaurant, error) {
	if reason == "" {
		return nil, apperrors.Validation("Rejection reason is required")
	}
	restaurant, err := s.findByID(restaurantID)
	if err != nil {
		return nil, err
	}

	restaurant.ApprovalStatus = models.ApprovalRejected
	restaurant.AdminNotes = reason
	restaurant.IsActive = false
	restaurant.IsOpen = false

	if err := s.db.Save(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Deactivate takes an approved restaurant off the platform without
// rejecting it.
func (s *RestaurantService) Deactivate(restaurantID uint, reason string) (*models.Restaurant, error) {
	restaurant, err := s.findByID(restaurantID)
	if err != nil {
		return nil, err
	}

	restaurant.IsActive = false
	restaurant.IsOpen = false
	restaurant.AdminNotes = reason

	if err := s.db.Save(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Reactivate puts a deactivated restaurant back; only restaurants that
// already passed approval qualify.
func (s *RestaurantService) Reactivate(restaurantID uint) (*models.Restaurant, error) {
	restaurant, err := s.findByID(restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant.ApprovalStatus != models.ApprovalApproved {
		return nil, apperrors.Precondition("Restaurant must be approved first")
	}

	restaurant.IsActive = true
	restaurant.IsOpen = true

	if err := s.db.Save(restaurant).Error; err != nil {
		return nil, err
	}
	return restaurant, nil
}
