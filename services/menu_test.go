package services_test

import (
	"testing"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"
	"food-ordering-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMenuService(db)
	owner := seedUser(t, db, "owner", models.RoleRestaurant)

	// no restaurant yet
	_, err := svc.Add(owner.ID, services.MenuItemInput{Name: "Dal", Price: 5})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPrecondition))
	assert.Equal(t, "You need to create a restaurant first", err.Error())

	seedApprovedRestaurant(t, db, owner.ID, "Tasty Corner")

	item, err := svc.Add(owner.ID, services.MenuItemInput{Name: "Dal", Price: 5})
	require.NoError(t, err)
	assert.True(t, item.IsAvailable)
	assert.Equal(t, models.DefaultMenuCategory, item.Category)
	assert.Equal(t, models.DefaultMenuItemImage, item.Image)

	_, err = svc.Add(owner.ID, services.MenuItemInput{Name: "Free Lunch", Price: -1})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	_, err = svc.Add(owner.ID, services.MenuItemInput{Name: "Mystery", Price: 3, Category: "Fusion"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	unavailable := false
	item, err = svc.Add(owner.ID, services.MenuItemInput{Name: "Special", Price: 9, Category: "Desserts", IsAvailable: &unavailable})
	require.NoError(t, err)
	assert.False(t, item.IsAvailable)
	assert.Equal(t, "Desserts", item.Category)
}

func TestMenuCrossTenantLooksLikeNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMenuService(db)

	ownerA := seedUser(t, db, "ownerA", models.RoleRestaurant)
	ownerB := seedUser(t, db, "ownerB", models.RoleRestaurant)
	restaurantA := seedApprovedRestaurant(t, db, ownerA.ID, "A")
	seedApprovedRestaurant(t, db, ownerB.ID, "B")

	itemA := seedMenuItem(t, db, restaurantA.ID, "Dal", 5, true)

	name := "Hijacked"
	_, err := svc.Update(ownerB.ID, itemA.ID, services.MenuItemUpdate{Name: &name})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	assert.Equal(t, "Menu item not found", err.Error())

	_, err = svc.ToggleAvailability(ownerB.ID, itemA.ID, nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	_, err = svc.Delete(ownerB.ID, itemA.ID)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	// the item is untouched
	var reloaded models.MenuItem
	require.NoError(t, db.First(&reloaded, itemA.ID).Error)
	assert.Equal(t, "Dal", reloaded.Name)
}

func TestUpdateMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMenuService(db)
	owner := seedUser(t, db, "owner", models.RoleRestaurant)
	restaurant := seedApprovedRestaurant(t, db, owner.ID, "Tasty Corner")
	item := seedMenuItem(t, db, restaurant.ID, "Dal", 5, true)

	price := 6.5
	veg := true
	updated, err := svc.Update(owner.ID, item.ID, services.MenuItemUpdate{Price: &price, IsVeg: &veg})
	require.NoError(t, err)
	assert.Equal(t, 6.5, updated.Price)
	assert.True(t, updated.IsVeg)
	assert.Equal(t, "Dal", updated.Name)

	negative := -2.0
	_, err = svc.Update(owner.ID, item.ID, services.MenuItemUpdate{Price: &negative})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))

	bogus := "Fusion"
	_, err = svc.Update(owner.ID, item.ID, services.MenuItemUpdate{Category: &bogus})
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestToggleAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMenuService(db)
	owner := seedUser(t, db, "owner", models.RoleRestaurant)
	restaurant := seedApprovedRestaurant(t, db, owner.ID, "Tasty Corner")
	item := seedMenuItem(t, db, restaurant.ID, "Dal", 5, true)

	// explicit value
	off := false
	toggled, err := svc.ToggleAvailability(owner.ID, item.ID, &off)
	require.NoError(t, err)
	assert.False(t, toggled.IsAvailable)

	// no value flips
	toggled, err = svc.ToggleAvailability(owner.ID, item.ID, nil)
	require.NoError(t, err)
	assert.True(t, toggled.IsAvailable)
}

func TestDeleteMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMenuService(db)
	owner := seedUser(t, db, "owner", models.RoleRestaurant)
	restaurant := seedApprovedRestaurant(t, db, owner.ID, "Tasty Corner")
	item := seedMenuItem(t, db, restaurant.ID, "Dal", 5, true)

	deleted, err := svc.Delete(owner.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, deleted.ID)

	_, err = svc.Delete(owner.ID, item.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestListForRestaurant(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewMenuService(db)
	owner := seedUser(t, db, "owner", models.RoleRestaurant)
	restaurant := seedApprovedRestaurant(t, db, owner.ID, "Tasty Corner")

	seedMenuItem(t, db, restaurant.ID, "Dal", 5, true)
	seedMenuItem(t, db, restaurant.ID, "Paneer", 8, false)

	// unavailable items are included; callers filter for display
	items, err := svc.ListForRestaurant(restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = svc.ListForRestaurant(9999)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
