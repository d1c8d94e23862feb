package domain

import "github.com/shopspring/decimal"

type InvoiceTotals struct {
	RestaurantID    int             `json:"restaurant_id"`
	Date            string          `json:"date"`
	Payable         decimal.Decimal `json:"payable"`
	VendorPayout    decimal.Decimal `json:"vendor_payout"`
	Discount        decimal.Decimal `json:"discount"`
	DiscountVendor  decimal.Decimal `json:"discount_vendor"`
	DiscountSpeedyy decimal.Decimal `json:"discount_speedyy"`
	InvoiceCount    int64           `json:"invoice_count"`
}

type RestaurantRevenue struct {
	RestaurantID int             `json:"restaurant_id"`
	Payable      decimal.Decimal `json:"payable"`
	InvoiceCount int64           `json:"invoice_count"`
}
