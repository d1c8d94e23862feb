package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RefundSettledBy string

const (
	RefundSettledByVendor   RefundSettledBy = "vendor"
	RefundSettledByDelivery RefundSettledBy = "delivery"
	RefundSettledBySpeedyy  RefundSettledBy = "speedyy"
	RefundSettledByCustomer RefundSettledBy = "customer"
)

type RefundSettlementRequest struct {
	RefundSettledBy                 RefundSettledBy `json:"refund_settled_by"`
	RefundSettledCustomerAmount     decimal.Decimal `json:"refund_settled_customer_amount"`
	RefundSettledVendorPayoutAmount decimal.Decimal `json:"refund_settled_vendor_payout_amount"`
	RefundSettledDeliveryCharges    decimal.Decimal `json:"refund_settled_delivery_charges"`
	RefundSettlementNote            string          `json:"refund_settlement_note,omitempty"`
}

type RefundSettlementDetails struct {
	RefundSettledBy                 RefundSettledBy `json:"refund_settled_by"`
	RefundSettledCustomerAmount     decimal.Decimal `json:"refund_settled_customer_amount"`
	RefundSettledVendorPayoutAmount decimal.Decimal `json:"refund_settled_vendor_payout_amount"`
	RefundSettledDeliveryCharges    decimal.Decimal `json:"refund_settled_delivery_charges"`
	RefundSettlementNote            string          `json:"refund_settlement_note,omitempty"`
}

type InvoiceBreakout struct {
	MenuItems                 []MenuItemCost           `json:"menu_items"`
	CouponDetails             *CouponApplication       `json:"coupon_details,omitempty"`
	TotalFoodCost             decimal.Decimal          `json:"total_food_cost"`
	TotalFoodTax              decimal.Decimal          `json:"total_food_tax"`
	TotalPackingCharges       decimal.Decimal          `json:"total_packing_charges"`
	PackingChargeTax          decimal.Decimal          `json:"packing_charge_tax"`
	TotalTax                  decimal.Decimal          `json:"total_tax"`
	DeliveryCharges           decimal.Decimal          `json:"delivery_charges"`
	TransactionCharges        decimal.Decimal          `json:"transaction_charges"`
	TransactionRefundCharges  decimal.Decimal          `json:"transaction_refund_charges"`
	TotalCustomerPayable      decimal.Decimal          `json:"total_customer_payable"`
	VendorPayoutAmount        decimal.Decimal          `json:"vendor_payout_amount"`
	VendorCancellationCharges decimal.Decimal          `json:"vendor_cancellation_charges"`
	RefundSettlementDetails   *RefundSettlementDetails `json:"refund_settlement_details,omitempty"`
}

type ItemError struct {
	Sequence   int    `json:"sequence"`
	MenuItemID int    `json:"menu_item_id"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

// CartQuote keeps the priced cart together with the inputs the invoice was
// built from so that it can be recomputed later.
type CartQuote struct {
	ID              string              `json:"id"`
	RestaurantID    int                 `json:"restaurant_id"`
	Restaurant      Restaurant          `json:"restaurant"`
	Items           []ValidatedMenuItem `json:"items"`
	ItemErrors      []ItemError         `json:"item_errors"`
	Unavailable     []UnavailableEntry  `json:"unavailable"`
	InStock         bool                `json:"in_stock"`
	Valid           bool                `json:"valid"`
	Coupon          *Coupon             `json:"coupon,omitempty"`
	DeliveryCharges decimal.Decimal     `json:"delivery_charges"`
	Invoice         InvoiceBreakout     `json:"invoice"`
	CreatedAt       time.Time           `json:"created_at"`
}
