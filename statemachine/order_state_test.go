package statemachine_test

import (
	"testing"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, s := range statemachine.AllStatuses {
		assert.True(t, statemachine.IsValidStatus(s), string(s))
	}
	assert.False(t, statemachine.IsValidStatus("BURNED"))
	assert.False(t, statemachine.IsValidStatus(""))
}

func TestValidateRestaurantTarget(t *testing.T) {
	// any member of the status set is accepted — no edge validation
	for _, s := range statemachine.AllStatuses {
		assert.NoError(t, statemachine.ValidateRestaurantTarget(s), string(s))
	}

	err := statemachine.ValidateRestaurantTarget("BURNED")
	assert.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestValidateCustomerCancel(t *testing.T) {
	assert.NoError(t, statemachine.ValidateCustomerCancel(models.StatusPlaced))

	for _, s := range []models.OrderStatus{
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusDelivered,
		models.StatusCancelled,
	} {
		err := statemachine.ValidateCustomerCancel(s)
		assert.Error(t, err, string(s))
		assert.True(t, apperrors.IsKind(err, apperrors.KindPrecondition), string(s))
	}
}

func TestNextOnHappyPath(t *testing.T) {
	assert.Equal(t, models.StatusConfirmed, statemachine.NextOnHappyPath(models.StatusPlaced))
	assert.Equal(t, models.StatusPreparing, statemachine.NextOnHappyPath(models.StatusConfirmed))
	assert.Equal(t, models.StatusReady, statemachine.NextOnHappyPath(models.StatusPreparing))
	assert.Equal(t, models.StatusDelivered, statemachine.NextOnHappyPath(models.StatusReady))
	assert.Equal(t, models.OrderStatus(""), statemachine.NextOnHappyPath(models.StatusDelivered))
	assert.Equal(t, models.OrderStatus(""), statemachine.NextOnHappyPath(models.StatusCancelled))
}
