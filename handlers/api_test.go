package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	handlers.Init(db)

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w.Code, envelope
}

func registerUser(t *testing.T, r *gin.Engine, name, role string) string {
	t.Helper()
	code, envelope := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    name + "@example.com",
		"password": "secret123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, code)
	data := envelope["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestFullOrderFlow(t *testing.T) {
	r := setupServer(t)

	customerToken := registerUser(t, r, "alice", "USER")
	ownerToken := registerUser(t, r, "bob", "RESTAURANT")
	adminToken := registerUser(t, r, "carol", "ADMIN")

	// owner creates a restaurant — pending, closed
	code, envelope := doJSON(t, r, http.MethodPost, "/api/restaurant/", ownerToken, gin.H{
		"name":    "Tasty Corner",
		"address": "42 Main St",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, true, envelope["success"])
	restaurant := envelope["data"].(map[string]interface{})["restaurant"].(map[string]interface{})
	restaurantID := uint(restaurant["id"].(float64))
	assert.Equal(t, "PENDING", restaurant["approval_status"])
	assert.Equal(t, false, restaurant["is_open"])

	// customer can't order from a closed restaurant yet, but first: owner
	// can't open an unapproved restaurant
	code, envelope = doJSON(t, r, http.MethodPut, "/api/restaurant/toggle-status", ownerToken, gin.H{"is_open": true})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, envelope["success"])

	// admin approves
	code, envelope = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/restaurants/%d/approve", restaurantID), adminToken, gin.H{"notes": "ok"})
	require.Equal(t, http.StatusOK, code)
	restaurant = envelope["data"].(map[string]interface{})["restaurant"].(map[string]interface{})
	assert.Equal(t, "APPROVED", restaurant["approval_status"])
	assert.Equal(t, true, restaurant["is_open"])

	// owner adds a menu item
	code, envelope = doJSON(t, r, http.MethodPost, "/api/restaurant/menu", ownerToken, gin.H{
		"name":  "Dal",
		"price": 10.0,
	})
	require.Equal(t, http.StatusCreated, code)
	item := envelope["data"].(map[string]interface{})["item"].(map[string]interface{})
	itemID := uint(item["id"].(float64))

	// customer places an order
	code, envelope = doJSON(t, r, http.MethodPost, "/api/user/orders", customerToken, gin.H{
		"restaurant_id": restaurantID,
		"items": []gin.H{
			{"menu_item_id": itemID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, code)
	order := envelope["data"].(map[string]interface{})["order"].(map[string]interface{})
	orderID := uint(order["id"].(float64))
	assert.Equal(t, "PLACED", order["status"])
	assert.Equal(t, "PENDING", order["payment_status"])
	assert.Equal(t, 20.0, order["total_amount"])

	// restaurant delivers — payment auto-settles
	code, envelope = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/restaurant/orders/%d/status", orderID), ownerToken, gin.H{"status": "DELIVERED"})
	require.Equal(t, http.StatusOK, code)
	order = envelope["data"].(map[string]interface{})["order"].(map[string]interface{})
	assert.Equal(t, "DELIVERED", order["status"])
	assert.Equal(t, "PAID", order["payment_status"])

	// delivered revenue shows up in the admin report with the 80/20 split
	code, envelope = doJSON(t, r, http.MethodGet, "/api/admin/reports", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	reports := envelope["data"].(map[string]interface{})
	assert.Equal(t, 20.0, reports["total_revenue"])
	assert.Equal(t, 4.0, reports["platform_revenue"])
	assert.Equal(t, 16.0, reports["restaurant_revenue"])
}

func TestCancelFlow(t *testing.T) {
	r := setupServer(t)

	customerToken := registerUser(t, r, "alice", "USER")
	ownerToken := registerUser(t, r, "bob", "RESTAURANT")
	adminToken := registerUser(t, r, "carol", "ADMIN")

	code, envelope := doJSON(t, r, http.MethodPost, "/api/restaurant/", ownerToken, gin.H{"name": "Tasty", "address": "x"})
	require.Equal(t, http.StatusCreated, code)
	restaurantID := uint(envelope["data"].(map[string]interface{})["restaurant"].(map[string]interface{})["id"].(float64))

	code, _ = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/admin/restaurants/%d/approve", restaurantID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, envelope = doJSON(t, r, http.MethodPost, "/api/restaurant/menu", ownerToken, gin.H{"name": "Dal", "price": 5.0})
	require.Equal(t, http.StatusCreated, code)
	itemID := uint(envelope["data"].(map[string]interface{})["item"].(map[string]interface{})["id"].(float64))

	code, envelope = doJSON(t, r, http.MethodPost, "/api/user/orders", customerToken, gin.H{
		"restaurant_id": restaurantID,
		"items":         []gin.H{{"menu_item_id": itemID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, code)
	orderID := uint(envelope["data"].(map[string]interface{})["order"].(map[string]interface{})["id"].(float64))

	// cancel while PLACED succeeds
	code, envelope = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/user/orders/%d/cancel", orderID), customerToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "CANCELLED", envelope["data"].(map[string]interface{})["order"].(map[string]interface{})["status"])

	// cancelling again fails — no longer PLACED
	code, envelope = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/user/orders/%d/cancel", orderID), customerToken, nil)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Order can only be cancelled when it's in PLACED status", envelope["message"])
}

func TestRoleGates(t *testing.T) {
	r := setupServer(t)
	customerToken := registerUser(t, r, "alice", "USER")

	// a customer cannot reach admin reports
	code, envelope := doJSON(t, r, http.MethodGet, "/api/admin/reports", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, false, envelope["success"])

	// no token at all
	code, _ = doJSON(t, r, http.MethodGet, "/api/user/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestPublicBrowseHidesUnapproved(t *testing.T) {
	r := setupServer(t)
	ownerToken := registerUser(t, r, "bob", "RESTAURANT")

	code, _ := doJSON(t, r, http.MethodPost, "/api/restaurant/", ownerToken, gin.H{"name": "Hidden", "address": "x"})
	require.Equal(t, http.StatusCreated, code)

	code, envelope := doJSON(t, r, http.MethodGet, "/api/restaurants", "", nil)
	require.Equal(t, http.StatusOK, code)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["count"].(float64))
}
