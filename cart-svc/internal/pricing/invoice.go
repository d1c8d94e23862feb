package pricing

import (
	"github.com/shopspring/decimal"

	"speedyy-pricing/cart-svc/internal/domain"
)

// ChargeConfig holds the platform charge rates in percent. The caller
// resolves them once and passes them in.
type ChargeConfig struct {
	TransactionChargeRate       decimal.Decimal
	TransactionRefundChargeRate decimal.Decimal
}

// Invoice folds priced cart lines into an order breakout. Every mutating
// method recomputes the breakout from the stored inputs, so repeated calls
// with the same inputs produce the same result.
type Invoice struct {
	items      []domain.MenuItemCost
	restaurant domain.Restaurant
	charges    ChargeConfig
	coupon     *domain.Coupon
	delivery   decimal.Decimal
	refund     *domain.RefundSettlementRequest
	breakout   domain.InvoiceBreakout
}

func NewInvoice(items []domain.ValidatedMenuItem, restaurant domain.Restaurant, charges ChargeConfig) *Invoice {
	costs := make([]domain.MenuItemCost, 0, len(items))
	for _, item := range items {
		costs = append(costs, item.Cost)
	}
	inv := &Invoice{
		items:      costs,
		restaurant: restaurant,
		charges:    charges,
		delivery:   decimal.Zero,
	}
	inv.recompute()
	return inv
}

// ApplyCoupon stores the coupon and returns its application against the
// current food cost.
func (inv *Invoice) ApplyCoupon(coupon domain.Coupon) domain.CouponApplication {
	c := coupon
	inv.coupon = &c
	inv.recompute()
	return *inv.breakout.CouponDetails
}

func (inv *Invoice) ApplyDeliveryCost(amount decimal.Decimal) {
	inv.delivery = amount
	inv.recompute()
}

// SettleRefund records how a cancelled order's money is split. Each amount
// is bounded by the figure it is carved out of.
func (inv *Invoice) SettleRefund(req domain.RefundSettlementRequest) (*domain.RefundSettlementDetails, error) {
	details, err := settleRefund(inv.breakout, req)
	if err != nil {
		return nil, err
	}
	r := req
	inv.refund = &r
	inv.recompute()
	return details, nil
}

func (inv *Invoice) Breakout() domain.InvoiceBreakout {
	return inv.breakout
}

func (inv *Invoice) recompute() {
	b := domain.InvoiceBreakout{
		MenuItems: make([]domain.MenuItemCost, 0, len(inv.items)),
	}

	foodCost, foodTax, itemPacking := decimal.Zero, decimal.Zero, decimal.Zero
	for _, item := range inv.items {
		b.MenuItems = append(b.MenuItems, item)
		if item.Quantity <= 0 {
			continue
		}
		foodCost = foodCost.Add(item.TotalIndividualFoodItemCost)
		foodTax = foodTax.Add(item.TotalIndividualFoodItemTax)
		itemPacking = itemPacking.Add(item.ItemPackingCharges)
	}
	b.TotalFoodCost = Round2(foodCost)
	b.TotalFoodTax = Round2(foodTax)

	b.TotalPackingCharges = inv.packingCharges(b.TotalFoodCost, b.TotalFoodTax, itemPacking)
	b.PackingChargeTax = decimal.Zero
	if inv.restaurant.PackingChargeTaxable {
		rate := sumRates(inv.restaurant.PackingCGSTRate, inv.restaurant.PackingSGSTRate, inv.restaurant.PackingIGSTRate)
		b.PackingChargeTax = percentOf(b.TotalPackingCharges, rate)
	}
	b.TotalTax = Round2(b.TotalFoodTax.Add(b.PackingChargeTax))

	discount, vendorShare := decimal.Zero, decimal.Zero
	if inv.coupon != nil {
		app := ComputeDiscount(*inv.coupon, b.TotalFoodCost)
		b.CouponDetails = &app
		discount = app.DiscountAmountApplied
		vendorShare = app.DiscountShareAmountVendor
	}

	b.DeliveryCharges = Round2(inv.delivery)
	base := b.TotalFoodCost.
		Add(b.TotalTax).
		Add(b.TotalPackingCharges).
		Sub(discount).
		Add(b.DeliveryCharges)
	b.TransactionCharges = percentOf(base, inv.charges.TransactionChargeRate)
	b.TransactionRefundCharges = percentOf(base, inv.charges.TransactionRefundChargeRate)
	b.TotalCustomerPayable = Round2(base.Add(b.TransactionCharges))

	// Food tax is not part of the vendor payout.
	b.VendorPayoutAmount = Round2(b.TotalFoodCost.Add(b.TotalPackingCharges).Sub(vendorShare))
	b.VendorCancellationCharges = Round2(b.DeliveryCharges.Add(b.TransactionCharges).Add(b.TransactionRefundCharges))

	// A stored settlement that no longer fits the totals stays stored but is not reported.
	if inv.refund != nil {
		if details, err := settleRefund(b, *inv.refund); err == nil {
			b.RefundSettlementDetails = details
		}
	}
	inv.breakout = b
}

func (inv *Invoice) packingCharges(foodCost, foodTax, itemPacking decimal.Decimal) decimal.Decimal {
	switch inv.restaurant.PackingChargeType {
	case domain.PackingChargeItem:
		return Round2(itemPacking)
	case domain.PackingChargeOrder:
		if inv.restaurant.PackingChargeMode == domain.PackingChargePercent {
			return percentOf(foodCost.Add(foodTax), inv.restaurant.OrderPackingCharge)
		}
		return Round2(inv.restaurant.OrderPackingCharge)
	default:
		return decimal.Zero
	}
}

func settleRefund(b domain.InvoiceBreakout, req domain.RefundSettlementRequest) (*domain.RefundSettlementDetails, error) {
	switch req.RefundSettledBy {
	case domain.RefundSettledByVendor, domain.RefundSettledByDelivery,
		domain.RefundSettledBySpeedyy, domain.RefundSettledByCustomer:
	default:
		return nil, newValidationError(ErrInvalidRefundSettlement, "unknown refund_settled_by %q", req.RefundSettledBy)
	}

	bounds := []struct {
		name   string
		amount decimal.Decimal
		limit  decimal.Decimal
	}{
		{"refund_settled_customer_amount", req.RefundSettledCustomerAmount, b.TotalCustomerPayable},
		{"refund_settled_vendor_payout_amount", req.RefundSettledVendorPayoutAmount, b.VendorPayoutAmount},
		{"refund_settled_delivery_charges", req.RefundSettledDeliveryCharges, b.DeliveryCharges},
	}
	for _, bound := range bounds {
		if bound.amount.IsNegative() {
			return nil, newValidationError(ErrInvalidRefundSettlement, "%s cannot be negative", bound.name)
		}
		if Round2(bound.amount).GreaterThan(bound.limit) {
			return nil, newValidationError(ErrInvalidRefundSettlement, "%s %s exceeds %s",
				bound.name, bound.amount.StringFixed(2), bound.limit.StringFixed(2))
		}
	}

	return &domain.RefundSettlementDetails{
		RefundSettledBy:                 req.RefundSettledBy,
		RefundSettledCustomerAmount:     Round2(req.RefundSettledCustomerAmount),
		RefundSettledVendorPayoutAmount: Round2(req.RefundSettledVendorPayoutAmount),
		RefundSettledDeliveryCharges:    Round2(req.RefundSettledDeliveryCharges),
		RefundSettlementNote:            req.RefundSettlementNote,
	}, nil
}
