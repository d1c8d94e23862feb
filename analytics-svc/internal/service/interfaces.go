package service

import (
	"speedyy-pricing/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	DailyTotals(restaurantID int, date string) (domain.InvoiceTotals, error)
	TopRestaurants(date string, limit int) ([]domain.RestaurantRevenue, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
