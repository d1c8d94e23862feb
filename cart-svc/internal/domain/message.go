package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const MessageInvoiceComputed = "invoice_computed"

type KafkaMessage struct {
	Type                       string          `json:"type"`
	QuoteID                    string          `json:"quote_id"`
	RestaurantID               int             `json:"restaurant_id"`
	TotalCustomerPayable       decimal.Decimal `json:"total_customer_payable"`
	VendorPayoutAmount         decimal.Decimal `json:"vendor_payout_amount"`
	DiscountAmountApplied      decimal.Decimal `json:"discount_amount_applied"`
	DiscountShareAmountVendor  decimal.Decimal `json:"discount_share_amount_vendor"`
	DiscountShareAmountSpeedyy decimal.Decimal `json:"discount_share_amount_speedyy"`
	Timestamp                  time.Time       `json:"timestamp"`
}
