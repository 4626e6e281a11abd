package services

import (
	"food-ordering-api/models"

	"gorm.io/gorm"
)

// AdminService backs the admin listing endpoints. Reports live in
// StatsService; restaurant moderation lives in RestaurantService.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// ListUsers returns every account. Password hashes never serialize.
func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at desc").Find(&users).Error
	return users, err
}

// ListOrders returns every order with user and restaurant summaries,
// newest first.
func (s *AdminService) ListOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Preload("User").Preload("Restaurant").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}
