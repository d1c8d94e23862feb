package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"speedyy-pricing/cart-svc/internal/domain"
)

// ComputeDiscount runs a coupon against applicableAmount. A coupon whose
// minimum order value is not met yields a zero discount and a reason, not an
// error. The speedyy share is the remainder of the vendor share so that both
// shares always add up to the applied discount.
func ComputeDiscount(coupon domain.Coupon, applicableAmount decimal.Decimal) domain.CouponApplication {
	app := domain.CouponApplication{
		CouponID:                    coupon.ID,
		Code:                        coupon.Code,
		ApplicableAmount:            applicableAmount,
		MinOrderValue:               coupon.MinOrderValue,
		DiscountAmountApplied:       decimal.Zero,
		DiscountSharePercentVendor:  coupon.DiscountSharePercentVendor,
		DiscountSharePercentSpeedyy: coupon.DiscountSharePercentSpeedyy,
		DiscountShareAmountVendor:   decimal.Zero,
		DiscountShareAmountSpeedyy:  decimal.Zero,
	}
	if coupon.Discount == nil {
		app.IneligibleReason = fmt.Sprintf("coupon %s has no discount configured", coupon.Code)
		return app
	}
	app.Type = coupon.Discount.Type()

	if applicableAmount.LessThan(coupon.MinOrderValue) {
		app.IneligibleReason = fmt.Sprintf("order value %s is below the minimum order value %s for coupon %s",
			applicableAmount.StringFixed(2), coupon.MinOrderValue.StringFixed(2), coupon.Code)
		return app
	}

	var discount decimal.Decimal
	switch d := coupon.Discount.(type) {
	case domain.PercentageDiscount:
		discount = percentOf(applicableAmount, d.Percentage)
	case domain.FlatDiscount:
		discount = Round2(d.Amount)
	case domain.UptoDiscount:
		discount = percentOf(applicableAmount, d.Percentage)
		if discount.GreaterThan(d.MaxDiscount) {
			discount = Round2(d.MaxDiscount)
		}
	}

	if discount.GreaterThan(applicableAmount) {
		discount = applicableAmount
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	vendorShare := percentOf(discount, coupon.DiscountSharePercentVendor)
	if vendorShare.GreaterThan(discount) {
		vendorShare = discount
	}
	if vendorShare.IsNegative() {
		vendorShare = decimal.Zero
	}

	app.Eligible = true
	app.DiscountAmountApplied = discount
	app.DiscountShareAmountVendor = vendorShare
	app.DiscountShareAmountSpeedyy = discount.Sub(vendorShare)
	return app
}
