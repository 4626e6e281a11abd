package handlers

import (
	"log"
	"net/http"
	"strconv"

	"food-ordering-api/apperrors"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	restaurantService *services.RestaurantService
	menuService       *services.MenuService
	orderService      *services.OrderService
	statsService      *services.StatsService
	adminService      *services.AdminService
)

// Init wires the handler package to its services. Called once at startup
// (and by tests against their own databases).
func Init(db *gorm.DB) {
	restaurantService = services.NewRestaurantService(db)
	menuService = services.NewMenuService(db)
	orderService = services.NewOrderService(db)
	statsService = services.NewStatsService(db)
	adminService = services.NewAdminService(db)
}

// Every response carries the same envelope: {success, message, data}.

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"success": status < http.StatusBadRequest,
		"message": message,
		"data":    data,
	})
}

func respondOK(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusOK, message, data)
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusCreated, message, data)
}

// respondError maps a domain error to its HTTP status. The domain message
// is surfaced verbatim; anything outside the taxonomy is hidden behind a
// generic message.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Println("unexpected error:", err)
		message = "Something went wrong"
	}
	respond(c, status, message, nil)
}

func respondBindError(c *gin.Context, err error) {
	respond(c, http.StatusBadRequest, err.Error(), nil)
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		respond(c, http.StatusBadRequest, "Invalid "+param+" parameter", nil)
		return 0, false
	}
	return uint(id), true
}
