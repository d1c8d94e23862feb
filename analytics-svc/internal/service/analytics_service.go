package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"speedyy-pricing/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func dailyKey(date string, restaurantID int) string {
	return "invoice:daily:" + date + ":" + strconv.Itoa(restaurantID)
}

// normalizeDate defaults an empty date to today (UTC).
func normalizeDate(date string) (string, error) {
	if date == "" {
		return time.Now().UTC().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", ErrInvalidDate
	}
	return date, nil
}

func decimalField(fields map[string]string, name string) decimal.Decimal {
	d, err := decimal.NewFromString(fields[name])
	if err != nil {
		return decimal.Zero
	}
	return d.Round(2)
}

// DailyTotals reads the running totals kept by the audit consumer and falls
// back to the audit table once the redis hash has expired.
func (s *AnalyticsService) DailyTotals(restaurantID int, date string) (domain.InvoiceTotals, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return domain.InvoiceTotals{}, err
	}

	fields, err := s.rdb.HGetAll(s.ctx, dailyKey(date, restaurantID)).Result()
	if err != nil || len(fields) == 0 {
		return s.dailyTotalsFromDB(restaurantID, date)
	}

	count, _ := strconv.ParseInt(fields["count"], 10, 64)
	return domain.InvoiceTotals{
		RestaurantID:    restaurantID,
		Date:            date,
		Payable:         decimalField(fields, "payable"),
		VendorPayout:    decimalField(fields, "vendor_payout"),
		Discount:        decimalField(fields, "discount"),
		DiscountVendor:  decimalField(fields, "discount_vendor"),
		DiscountSpeedyy: decimalField(fields, "discount_speedyy"),
		InvoiceCount:    count,
	}, nil
}

func (s *AnalyticsService) dailyTotalsFromDB(restaurantID int, date string) (domain.InvoiceTotals, error) {
	totals := domain.InvoiceTotals{RestaurantID: restaurantID, Date: date}
	err := s.db.QueryRow(`
		SELECT COALESCE(SUM(total_customer_payable), 0),
		       COALESCE(SUM(vendor_payout_amount), 0),
		       COALESCE(SUM(discount_amount_applied), 0),
		       COALESCE(SUM((payload->>'discount_share_amount_vendor')::numeric), 0),
		       COALESCE(SUM((payload->>'discount_share_amount_speedyy')::numeric), 0),
		       COUNT(*)
		FROM invoice_audits
		WHERE restaurant_id = $1 AND (invoiced_at AT TIME ZONE 'UTC')::date = $2
	`, restaurantID, date).Scan(&totals.Payable, &totals.VendorPayout, &totals.Discount,
		&totals.DiscountVendor, &totals.DiscountSpeedyy, &totals.InvoiceCount)
	if err != nil {
		return domain.InvoiceTotals{}, err
	}
	return totals, nil
}

// TopRestaurants ranks restaurants by customer payable for the day.
func (s *AnalyticsService) TopRestaurants(date string, limit int) ([]domain.RestaurantRevenue, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	prefix := "invoice:daily:" + date + ":"
	keys, err := s.rdb.Keys(s.ctx, prefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return s.topRestaurantsFromDB(date, limit)
	}

	all := make([]domain.RestaurantRevenue, 0, len(keys))
	for _, key := range keys {
		restaurantID, err := strconv.Atoi(strings.TrimPrefix(key, prefix))
		if err != nil {
			continue
		}
		fields, err := s.rdb.HGetAll(s.ctx, key).Result()
		if err != nil || len(fields) == 0 {
			continue
		}
		count, _ := strconv.ParseInt(fields["count"], 10, 64)
		all = append(all, domain.RestaurantRevenue{
			RestaurantID: restaurantID,
			Payable:      decimalField(fields, "payable"),
			InvoiceCount: count,
		})
	}

	sort.Slice(all, func(i, j int) bool {
		if c := all[i].Payable.Cmp(all[j].Payable); c != 0 {
			return c > 0
		}
		return all[i].RestaurantID < all[j].RestaurantID
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *AnalyticsService) topRestaurantsFromDB(date string, limit int) ([]domain.RestaurantRevenue, error) {
	rows, err := s.db.Query(`
		SELECT restaurant_id, SUM(total_customer_payable) AS payable, COUNT(*)
		FROM invoice_audits
		WHERE (invoiced_at AT TIME ZONE 'UTC')::date = $1
		GROUP BY restaurant_id
		ORDER BY payable DESC, restaurant_id
		LIMIT $2
	`, date, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revenues := []domain.RestaurantRevenue{}
	for rows.Next() {
		var r domain.RestaurantRevenue
		if err := rows.Scan(&r.RestaurantID, &r.Payable, &r.InvoiceCount); err != nil {
			return nil, err
		}
		revenues = append(revenues, r)
	}
	return revenues, rows.Err()
}
