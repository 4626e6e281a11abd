package statemachine

import (
	"food-ordering-api/apperrors"
	"food-ordering-api/models"
)

// The order lifecycle is a linear happy path
//
//	PLACED → CONFIRMED → PREPARING → READY → DELIVERED
//
// with CANCELLED reachable only from PLACED, and only by the customer who
// owns the order. Restaurant status updates are deliberately permissive:
// the restaurant may set any valid status without edge validation (the
// source system never restricted operator transitions), so the only
// enforced rule in this package is the customer cancel gate.

// HappyPath lists the linear lifecycle in order, used by the public
// state-machine docs endpoint.
var HappyPath = []models.OrderStatus{
	models.StatusPlaced,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
}

// AllStatuses is the full status set, including the off-path CANCELLED.
var AllStatuses = []models.OrderStatus{
	models.StatusPlaced,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
	models.StatusCancelled,
}

// IsValidStatus reports whether s is a member of the status set.
func IsValidStatus(s models.OrderStatus) bool {
	for _, v := range AllStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ValidateRestaurantTarget checks a restaurant-initiated status update.
// Only set membership is enforced — no source→target edge validation.
func ValidateRestaurantTarget(target models.OrderStatus) error {
	if !IsValidStatus(target) {
		return apperrors.Validation("Invalid order status: " + string(target))
	}
	return nil
}

// ValidateCustomerCancel gates customer-initiated cancellation: an order
// may only be cancelled while it is still PLACED.
func ValidateCustomerCancel(current models.OrderStatus) error {
	if current != models.StatusPlaced {
		return apperrors.Precondition("Order can only be cancelled when it's in PLACED status")
	}
	return nil
}

// NextOnHappyPath returns the status that follows s on the linear path,
// or empty when s is terminal or off-path. Informational only.
func NextOnHappyPath(s models.OrderStatus) models.OrderStatus {
	for i, v := range HappyPath {
		if v == s && i+1 < len(HappyPath) {
			return HappyPath[i+1]
		}
	}
	return ""
}
