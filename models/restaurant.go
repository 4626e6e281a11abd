package models

import "time"

// ApprovalStatus is the admin gate on a restaurant, distinct from the
// account-level isActive flag on the owning user.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// DefaultPreparationTime is the prep estimate (minutes) used when a
// restaurant is created without one.
const DefaultPreparationTime = 30

type Restaurant struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	OwnerID         uint           `json:"owner_id" gorm:"uniqueIndex;not null"`
	Owner           User           `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name            string         `json:"name" gorm:"not null"`
	Description     string         `json:"description"`
	Address         string         `json:"address" gorm:"not null"`
	IsOpen          bool           `json:"is_open"`
	PreparationTime int            `json:"preparation_time"` // minutes
	ApprovalStatus  ApprovalStatus `json:"approval_status" gorm:"not null;default:'PENDING'"`
	IsActive        bool           `json:"is_active" gorm:"default:true"`
	AdminNotes      string         `json:"admin_notes"`
	ApprovedBy      *uint          `json:"approved_by"`
	ApprovedAt      *time.Time     `json:"approved_at"`
	MenuItems       []MenuItem     `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// MenuCategories is the closed set of category tags a menu item may carry.
var MenuCategories = []string{
	"Appetizers",
	"Main Course",
	"Desserts",
	"Beverages",
	"Breads",
	"Rice & Biryani",
	"Chinese",
	"South Indian",
	"Fast Food",
	"Salads",
	"Other",
}

const (
	DefaultMenuCategory  = "Other"
	DefaultMenuItemImage = "https://via.placeholder.com/300x200?text=Food+Item"
)

// IsValidMenuCategory reports whether category belongs to the closed set.
func IsValidMenuCategory(category string) bool {
	for _, c := range MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"index;not null"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        float64   `json:"price" gorm:"not null"` // never negative
	IsVeg        bool      `json:"is_veg"`
	Category     string    `json:"category" gorm:"default:'Other'"`
	Image        string    `json:"image"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
