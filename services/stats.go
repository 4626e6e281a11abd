package services

import (
	"time"

	"food-ordering-api/config"
	"food-ordering-api/models"

	"gorm.io/gorm"
)

// StatsService is the read-side aggregator. It only ever reads orders and
// computes rollups on demand; nothing here mutates state.
//
// Two revenue definitions coexist on purpose: every report in this file
// counts DELIVERED orders, except the restaurant dashboard, which counts
// only READY orders. The asymmetry comes from the source system and must
// not be unified.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// restaurantShare is the fraction of delivered revenue credited to the
// restaurant after the platform takes its commission.
const restaurantShare = 1 - config.PlatformCommissionRate

// StatusBuckets counts orders per lifecycle state. PLACED orders show up
// as "pending" in dashboards.
type StatusBuckets struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}

func (b *StatusBuckets) add(status models.OrderStatus) {
	switch status {
	case models.StatusPlaced:
		b.Pending++
	case models.StatusConfirmed:
		b.Confirmed++
	case models.StatusPreparing:
		b.Preparing++
	case models.StatusReady:
		b.Ready++
	case models.StatusDelivered:
		b.Delivered++
	case models.StatusCancelled:
		b.Cancelled++
	}
}

// RestaurantStats is the owner's revenue view: delivered revenue split
// 80/20 between restaurant and platform.
type RestaurantStats struct {
	StatusBuckets
	TotalOrders        int     `json:"total_orders"`
	TotalRevenue       float64 `json:"total_revenue"`
	PlatformFee        float64 `json:"platform_fee"`
	RestaurantEarnings float64 `json:"restaurant_earnings"`
}

func (s *StatsService) RestaurantStats(restaurantID uint) (*RestaurantStats, error) {
	var orders []models.Order
	if err := s.db.Where("restaurant_id = ?", restaurantID).Find(&orders).Error; err != nil {
		return nil, err
	}

	stats := &RestaurantStats{TotalOrders: len(orders)}
	for _, order := range orders {
		stats.add(order.Status)
		if order.Status == models.StatusDelivered {
			stats.TotalRevenue += order.TotalAmount
		}
	}
	stats.PlatformFee = stats.TotalRevenue * config.PlatformCommissionRate
	stats.RestaurantEarnings = stats.TotalRevenue * restaurantShare
	return stats, nil
}

// UserStats is the customer's spending view. Spending counts DELIVERED
// orders only, bucketed against the current month and year boundaries.
type UserStats struct {
	StatusBuckets
	TotalOrders    int     `json:"total_orders"`
	TotalSpent     float64 `json:"total_spent"`
	ThisMonthSpent float64 `json:"this_month_spent"`
	ThisYearSpent  float64 `json:"this_year_spent"`
	AvgOrderValue  float64 `json:"avg_order_value"`
}

func (s *StatsService) UserStats(userID uint) (*UserStats, error) {
	var orders []models.Order
	if err := s.db.Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	stats := &UserStats{TotalOrders: len(orders)}
	for _, order := range orders {
		stats.add(order.Status)
		if order.Status != models.StatusDelivered {
			continue
		}
		stats.TotalSpent += order.TotalAmount
		if !order.CreatedAt.Before(startOfMonth) {
			stats.ThisMonthSpent += order.TotalAmount
		}
		if !order.CreatedAt.Before(startOfYear) {
			stats.ThisYearSpent += order.TotalAmount
		}
	}
	if stats.Delivered > 0 {
		stats.AvgOrderValue = stats.TotalSpent / float64(stats.Delivered)
	}
	return stats, nil
}

// StatusCount is one row of the order-status histogram.
type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

// TopRestaurant is one row of the delivered-order ranking.
type TopRestaurant struct {
	RestaurantID       uint    `json:"restaurant_id"`
	RestaurantName     string  `json:"restaurant_name"`
	OrderCount         int64   `json:"order_count"`
	TotalRevenue       float64 `json:"total_revenue"`
	PlatformCommission float64 `json:"platform_commission"`
	RestaurantEarnings float64 `json:"restaurant_earnings"`
}

// SystemReports is the admin-wide rollup.
type SystemReports struct {
	TotalUsers             int64           `json:"total_users"`
	TotalRestaurants       int64           `json:"total_restaurants"`
	TotalOrders            int64           `json:"total_orders"`
	TotalRevenue           float64         `json:"total_revenue"`
	PlatformRevenue        float64         `json:"platform_revenue"`
	RestaurantRevenue      float64         `json:"restaurant_revenue"`
	MonthlyRevenue         float64         `json:"monthly_revenue"`
	MonthlyPlatformRevenue float64         `json:"monthly_platform_revenue"`
	AvgOrderValue          float64         `json:"avg_order_value"`
	OrdersByStatus         []StatusCount   `json:"orders_by_status"`
	TopRestaurants         []TopRestaurant `json:"top_restaurants"`
	RecentOrders           []models.Order  `json:"recent_orders"`
}

func (s *StatsService) SystemReports() (*SystemReports, error) {
	reports := &SystemReports{}

	if err := s.db.Model(&models.User{}).Where("role = ?", models.RoleUser).Count(&reports.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Restaurant{}).Count(&reports.TotalRestaurants).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).Count(&reports.TotalOrders).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&reports.OrdersByStatus).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Order{}).
		Where("status = ?", models.StatusDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&reports.TotalRevenue).Error; err != nil {
		return nil, err
	}
	reports.PlatformRevenue = reports.TotalRevenue * config.PlatformCommissionRate
	reports.RestaurantRevenue = reports.TotalRevenue * restaurantShare

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if err := s.db.Model(&models.Order{}).
		Where("status = ? AND created_at >= ?", models.StatusDelivered, startOfMonth).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&reports.MonthlyRevenue).Error; err != nil {
		return nil, err
	}
	reports.MonthlyPlatformRevenue = reports.MonthlyRevenue * config.PlatformCommissionRate

	// Ties on order count break by restaurant id so the ranking stays stable.
	if err := s.db.Model(&models.Order{}).
		Select("orders.restaurant_id, restaurants.name AS restaurant_name, COUNT(*) AS order_count, SUM(orders.total_amount) AS total_revenue").
		Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
		Where("orders.status = ?", models.StatusDelivered).
		Group("orders.restaurant_id, restaurants.name").
		Order("order_count DESC, orders.restaurant_id ASC").
		Limit(5).
		Scan(&reports.TopRestaurants).Error; err != nil {
		return nil, err
	}
	for i := range reports.TopRestaurants {
		reports.TopRestaurants[i].PlatformCommission = reports.TopRestaurants[i].TotalRevenue * config.PlatformCommissionRate
		reports.TopRestaurants[i].RestaurantEarnings = reports.TopRestaurants[i].TotalRevenue * restaurantShare
	}

	if err := s.db.Preload("User").Preload("Restaurant").
		Order("created_at desc").
		Limit(10).
		Find(&reports.RecentOrders).Error; err != nil {
		return nil, err
	}

	var deliveredCount int64
	if err := s.db.Model(&models.Order{}).Where("status = ?", models.StatusDelivered).Count(&deliveredCount).Error; err != nil {
		return nil, err
	}
	if deliveredCount > 0 {
		reports.AvgOrderValue = reports.TotalRevenue / float64(deliveredCount)
	}

	return reports, nil
}

// DailyRevenue is one calendar-day bucket of delivered revenue.
type DailyRevenue struct {
	Day               string  `json:"day"`
	TotalRevenue      float64 `json:"total_revenue"`
	OrderCount        int64   `json:"order_count"`
	PlatformRevenue   float64 `json:"platform_revenue"`
	RestaurantRevenue float64 `json:"restaurant_revenue"`
}

// DailyRevenueReport returns the last 30 day-buckets of delivered
// revenue, newest first. Days follow the store's timestamp convention.
func (s *StatsService) DailyRevenueReport() ([]DailyRevenue, error) {
	var days []DailyRevenue
	if err := s.db.Model(&models.Order{}).
		Select("date(created_at) AS day, SUM(total_amount) AS total_revenue, COUNT(*) AS order_count").
		Where("status = ?", models.StatusDelivered).
		Group("day").
		Order("day DESC").
		Limit(30).
		Scan(&days).Error; err != nil {
		return nil, err
	}
	for i := range days {
		days[i].PlatformRevenue = days[i].TotalRevenue * config.PlatformCommissionRate
		days[i].RestaurantRevenue = days[i].TotalRevenue * restaurantShare
	}
	return days, nil
}

// Dashboard is the restaurant's self-view. Its revenue figure counts
// READY orders only — narrower than every other revenue number in the
// system, and deliberately so.
type Dashboard struct {
	TotalOrders   int64   `json:"total_orders"`
	PendingOrders int64   `json:"pending_orders"`
	TodayOrders   int64   `json:"today_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

func (s *StatsService) Dashboard(restaurantID uint) (*Dashboard, error) {
	dash := &Dashboard{}

	if err := s.db.Model(&models.Order{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&dash.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, models.StatusPlaced).
		Count(&dash.PendingOrders).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if err := s.db.Model(&models.Order{}).
		Where("restaurant_id = ? AND created_at >= ?", restaurantID, midnight).
		Count(&dash.TodayOrders).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Order{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, models.StatusReady).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&dash.TotalRevenue).Error; err != nil {
		return nil, err
	}

	return dash, nil
}
