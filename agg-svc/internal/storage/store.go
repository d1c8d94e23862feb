package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"speedyy-pricing/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const dailyTotalsTTL = 7 * 24 * time.Hour

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

// RecordInvoice stores the event once per quote and reports whether this
// call inserted the row.
func (s *Store) RecordInvoice(msg domain.KafkaMessage) (bool, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return false, err
	}
	result, err := s.db.Exec(`
		INSERT INTO invoice_audits (quote_id, restaurant_id, total_customer_payable, vendor_payout_amount,
			discount_amount_applied, invoiced_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (quote_id) DO NOTHING
	`, msg.QuoteID, msg.RestaurantID, msg.TotalCustomerPayable, msg.VendorPayoutAmount,
		msg.DiscountAmountApplied, InvoicedAt(msg), string(payload))
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// InvoicedAt is the UTC instant both the audit row and the daily totals are
// dated by.
func InvoicedAt(msg domain.KafkaMessage) time.Time {
	if msg.Timestamp.IsZero() {
		return time.Now().UTC()
	}
	return msg.Timestamp.UTC()
}

func DailyTotalsKey(day time.Time, restaurantID int) string {
	return fmt.Sprintf("invoice:daily:%s:%d", day.Format("2006-01-02"), restaurantID)
}

func (s *Store) UpdateDailyTotals(msg domain.KafkaMessage) error {
	key := DailyTotalsKey(InvoicedAt(msg), msg.RestaurantID)

	pipe := s.rdb.TxPipeline()
	pipe.HIncrByFloat(s.ctx, key, "payable", msg.TotalCustomerPayable.InexactFloat64())
	pipe.HIncrByFloat(s.ctx, key, "vendor_payout", msg.VendorPayoutAmount.InexactFloat64())
	pipe.HIncrByFloat(s.ctx, key, "discount", msg.DiscountAmountApplied.InexactFloat64())
	pipe.HIncrByFloat(s.ctx, key, "discount_vendor", msg.DiscountShareAmountVendor.InexactFloat64())
	pipe.HIncrByFloat(s.ctx, key, "discount_speedyy", msg.DiscountShareAmountSpeedyy.InexactFloat64())
	pipe.HIncrBy(s.ctx, key, "count", 1)
	pipe.Expire(s.ctx, key, dailyTotalsTTL)
	_, err := pipe.Exec(s.ctx)
	return err
}
