package service

import (
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

// UPIQRGenerator encodes a UPI collect link for the customer payable.
type UPIQRGenerator struct {
	VPA       string
	PayeeName string
}

func (g UPIQRGenerator) PaymentURI(quoteID string, amount decimal.Decimal) string {
	params := url.Values{}
	params.Set("pa", g.VPA)
	params.Set("pn", g.PayeeName)
	params.Set("am", amount.StringFixed(2))
	params.Set("tr", quoteID)
	params.Set("cu", "INR")
	return "upi://pay?" + params.Encode()
}

func (g UPIQRGenerator) Generate(quoteID string, amount decimal.Decimal) ([]byte, error) {
	return qrcode.Encode(g.PaymentURI(quoteID, amount), qrcode.Medium, 256)
}
