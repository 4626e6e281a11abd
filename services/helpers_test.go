package services_test

import (
	"testing"
	"time"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. A single
// connection keeps the whole test on one memory instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "x",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedApprovedRestaurant creates an approved, active, open restaurant for
// the given owner.
func seedApprovedRestaurant(t *testing.T, db *gorm.DB, ownerID uint, name string) *models.Restaurant {
	t.Helper()
	restaurant := &models.Restaurant{
		OwnerID:         ownerID,
		Name:            name,
		Address:         "1 Test Street",
		PreparationTime: models.DefaultPreparationTime,
		ApprovalStatus:  models.ApprovalApproved,
		IsActive:        true,
		IsOpen:          true,
	}
	require.NoError(t, db.Create(restaurant).Error)
	return restaurant
}

func seedMenuItem(t *testing.T, db *gorm.DB, restaurantID uint, name string, price float64, available bool) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        price,
		Category:     models.DefaultMenuCategory,
		Image:        models.DefaultMenuItemImage,
		IsAvailable:  available,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedOrder(t *testing.T, db *gorm.DB, userID, restaurantID uint, status models.OrderStatus, total float64, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:        userID,
		RestaurantID:  restaurantID,
		TotalAmount:   total,
		Status:        status,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}
