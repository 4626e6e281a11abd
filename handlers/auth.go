package handlers

import (
	"errors"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role"`
	Phone    string          `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if req.Role == "" {
		req.Role = models.RoleUser
	}
	validRoles := map[models.UserRole]bool{
		models.RoleUser:       true,
		models.RoleRestaurant: true,
		models.RoleAdmin:      true,
	}
	if !validRoles[req.Role] {
		respond(c, 400, "Invalid role. Must be: USER, RESTAURANT, or ADMIN", nil)
		return
	}

	// Check email uniqueness
	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		respond(c, 409, "Email already registered", nil)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		respondError(c, err)
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Account created successfully", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Login authenticates a user and returns a JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		respond(c, 401, "Invalid email or password", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respond(c, 401, "Invalid email or password", nil)
		return
	}
	if !user.IsActive {
		respond(c, 403, "Account is deactivated", nil)
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		respond(c, 404, "User not found", nil)
		return
	}
	respondOK(c, "Profile fetched", gin.H{"user": user})
}
