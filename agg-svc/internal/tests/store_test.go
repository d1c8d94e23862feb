package tests

import (
	"errors"
	"testing"
	"time"

	"speedyy-pricing/agg-svc/internal/service"
	"speedyy-pricing/agg-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RecordInvoice(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	store := storage.NewStore(mockDB, nil)
	msg := invoiceMessage()

	msg.Timestamp = time.Date(2024, time.January, 1, 23, 59, 0, 0, time.FixedZone("IST", 19800))

	sqlMock.ExpectExec("INSERT INTO invoice_audits").
		WithArgs("q-1", 10, msg.TotalCustomerPayable, msg.VendorPayoutAmount, msg.DiscountAmountApplied,
			time.Date(2024, time.January, 1, 18, 29, 0, 0, time.UTC), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec("INSERT INTO invoice_audits").
		WillReturnResult(sqlmock.NewResult(0, 0))
	sqlMock.ExpectExec("INSERT INTO invoice_audits").
		WillReturnError(errors.New("insert failed"))

	inserted, err := store.RecordInvoice(msg)
	assert.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = store.RecordInvoice(msg)
	assert.NoError(t, err)
	assert.False(t, inserted)

	_, err = store.RecordInvoice(msg)
	assert.Error(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestStore_InvoicedAtIsUTC(t *testing.T) {
	msg := invoiceMessage()
	msg.Timestamp = time.Date(2024, time.January, 2, 1, 0, 0, 0, time.FixedZone("IST", 19800))

	at := storage.InvoicedAt(msg)
	assert.Equal(t, time.UTC, at.Location())
	assert.Equal(t, "invoice:daily:2024-01-01:10", storage.DailyTotalsKey(at, 10))
}

func TestStore_UpdateDailyTotals(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	store := storage.NewStore(nil, rdb)

	msg := invoiceMessage()
	msg.Timestamp = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	msg.DiscountAmountApplied = decimal.RequireFromString("100")
	msg.DiscountShareAmountVendor = decimal.RequireFromString("50")
	msg.DiscountShareAmountSpeedyy = decimal.RequireFromString("50")

	require.NoError(t, store.UpdateDailyTotals(msg))
	require.NoError(t, store.UpdateDailyTotals(msg))

	key := storage.DailyTotalsKey(msg.Timestamp, 10)
	assert.Equal(t, "invoice:daily:2024-01-01:10", key)
	assert.Equal(t, "948.6", mr.HGet(key, "payable"))
	assert.Equal(t, "900", mr.HGet(key, "vendor_payout"))
	assert.Equal(t, "200", mr.HGet(key, "discount"))
	assert.Equal(t, "100", mr.HGet(key, "discount_speedyy"))
	assert.Equal(t, "2", mr.HGet(key, "count"))
	assert.Equal(t, 7*24*time.Hour, mr.TTL(key))
}

func TestConsumer_RedeliveredInvoiceCountedOnce(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	consumer := &service.Consumer{Store: storage.NewStore(mockDB, rdb)}

	msg := invoiceMessage()
	msg.Timestamp = time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)

	sqlMock.ExpectExec("INSERT INTO invoice_audits").WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec("INSERT INTO invoice_audits").WillReturnResult(sqlmock.NewResult(0, 0))

	consumer.ProcessInvoice(msg)
	consumer.ProcessInvoice(msg)

	key := storage.DailyTotalsKey(msg.Timestamp, 10)
	assert.Equal(t, "1", mr.HGet(key, "count"))
	assert.Equal(t, "474.3", mr.HGet(key, "payable"))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
