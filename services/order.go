package services

import (
	"errors"
	"fmt"

	"food-ordering-api/apperrors"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService is the order engine: placement with price snapshotting,
// the cancel gate, and restaurant-driven status updates.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// OrderLineInput is one requested line of a new order.
type OrderLineInput struct {
	MenuItemID uint
	Quantity   int
}

// Place validates and prices a new order, then persists it in one write.
// Line items are snapshotted (name and price frozen at order time) and
// totalAmount is computed exactly once. Any validation failure aborts
// before anything is written.
func (s *OrderService) Place(userID, restaurantID uint, lines []OrderLineInput) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, apperrors.Validation("Order must contain at least one item")
	}

	var restaurant models.Restaurant
	err := s.db.First(&restaurant, restaurantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Restaurant not found")
	}
	if err != nil {
		return nil, err
	}
	if !restaurant.IsOpen {
		return nil, apperrors.Precondition("Restaurant is currently closed")
	}

	var orderItems []models.OrderItem
	var totalAmount float64

	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, apperrors.Validation("Quantity must be at least 1")
		}

		var menuItem models.MenuItem
		err := s.db.First(&menuItem, line.MenuItemID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Menu item %d not found", line.MenuItemID))
		}
		if err != nil {
			return nil, err
		}

		if !menuItem.IsAvailable {
			return nil, apperrors.Precondition(menuItem.Name + " is not available right now")
		}
		if menuItem.RestaurantID != restaurantID {
			return nil, apperrors.Validation(menuItem.Name + " doesn't belong to this restaurant")
		}

		orderItems = append(orderItems, models.OrderItem{
			MenuItemID:    menuItem.ID,
			NameSnapshot:  menuItem.Name,
			PriceSnapshot: menuItem.Price,
			Quantity:      line.Quantity,
		})
		totalAmount += menuItem.Price * float64(line.Quantity)
	}

	order := models.Order{
		UserID:        userID,
		RestaurantID:  restaurantID,
		Items:         orderItems,
		TotalAmount:   totalAmount,
		Status:        models.StatusPlaced,
		PaymentStatus: models.PaymentPending,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) findByID(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Cancel lets a customer cancel their own order while it is still PLACED.
func (s *OrderService) Cancel(userID, orderID uint) (*models.Order, error) {
	order, err := s.findByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.Authorization("You can't cancel someone else's order")
	}
	if err := statemachine.ValidateCustomerCancel(order.Status); err != nil {
		return nil, err
	}

	order.Status = models.StatusCancelled
	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order to any valid status on behalf of the owning
// restaurant. No source→target edge is validated. Marking an order
// DELIVERED also settles it: paymentStatus flips to PAID
// (cash-on-delivery auto-settlement).
func (s *OrderService) UpdateStatus(restaurantID, orderID uint, newStatus models.OrderStatus) (*models.Order, error) {
	order, err := s.findByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, apperrors.Authorization("This order doesn't belong to your restaurant")
	}
	if err := statemachine.ValidateRestaurantTarget(newStatus); err != nil {
		return nil, err
	}

	order.Status = newStatus
	if newStatus == models.StatusDelivered {
		order.PaymentStatus = models.PaymentPaid
	}

	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// ListForUser returns a customer's orders, newest first, with the
// restaurant summary attached to each.
func (s *OrderService) ListForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// ListForRestaurant returns a restaurant's orders, newest first, with the
// customer summary attached to each.
func (s *OrderService) ListForRestaurant(restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items").Preload("User").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// MarkPaid settles an order manually — the stub behind the payment
// endpoints until a real gateway is wired in. A generated reference
// stands in for the gateway transaction id.
func (s *OrderService) MarkPaid(orderID uint) (*models.Order, error) {
	order, err := s.findByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == models.PaymentPaid {
		return nil, apperrors.Conflict("Order is already paid")
	}

	order.PaymentStatus = models.PaymentPaid
	order.PaymentRef = uuid.NewString()

	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// PaymentInfo is the payment-status view of an order.
type PaymentInfo struct {
	OrderID       uint                 `json:"order_id"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	Amount        float64              `json:"amount"`
	PaymentRef    string               `json:"payment_ref,omitempty"`
}

func (s *OrderService) PaymentStatus(orderID uint) (*PaymentInfo, error) {
	order, err := s.findByID(orderID)
	if err != nil {
		return nil, err
	}
	return &PaymentInfo{
		OrderID:       order.ID,
		PaymentStatus: order.PaymentStatus,
		Amount:        order.TotalAmount,
		PaymentRef:    order.PaymentRef,
	}, nil
}
