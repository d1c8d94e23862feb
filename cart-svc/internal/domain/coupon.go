package domain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

type CouponType string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFlat       CouponType = "flat"
	CouponTypeUpto       CouponType = "upto"
)

var ErrInvalidCoupon = errors.New("invalid coupon configuration")

// CouponDiscount is a closed set: PercentageDiscount, FlatDiscount, UptoDiscount.
type CouponDiscount interface {
	Type() CouponType
	couponDiscount()
}

type PercentageDiscount struct {
	Percentage decimal.Decimal
}

type FlatDiscount struct {
	Amount decimal.Decimal
}

// UptoDiscount is a percentage discount capped at MaxDiscount rupees.
type UptoDiscount struct {
	Percentage  decimal.Decimal
	MaxDiscount decimal.Decimal
}

func (PercentageDiscount) Type() CouponType { return CouponTypePercentage }
func (FlatDiscount) Type() CouponType { return CouponTypeFlat }
func (UptoDiscount) Type() CouponType { return CouponTypeUpto }

func (PercentageDiscount) couponDiscount() {}
func (FlatDiscount) couponDiscount() {}
func (UptoDiscount) couponDiscount() {}

type Coupon struct {
	ID                          int
	Code                        string
	Discount                    CouponDiscount
	MinOrderValue               decimal.Decimal
	DiscountSharePercentVendor  decimal.Decimal
	DiscountSharePercentSpeedyy decimal.Decimal
}

// NewCouponDiscount builds the discount variant for a stored coupon type and
// rejects rows that lack the fields their type needs.
func NewCouponDiscount(couponType CouponType, percentage, amount, maxDiscount decimal.NullDecimal) (CouponDiscount, error) {
	switch couponType {
	case CouponTypePercentage:
		if !percentage.Valid {
			return nil, fmt.Errorf("%w: percentage coupon without discount_percentage", ErrInvalidCoupon)
		}
		return PercentageDiscount{Percentage: percentage.Decimal}, nil
	case CouponTypeFlat:
		if !amount.Valid {
			return nil, fmt.Errorf("%w: flat coupon without discount_amount_rupees", ErrInvalidCoupon)
		}
		return FlatDiscount{Amount: amount.Decimal}, nil
	case CouponTypeUpto:
		if !percentage.Valid || !maxDiscount.Valid {
			return nil, fmt.Errorf("%w: upto coupon needs discount_percentage and max_discount_rupees", ErrInvalidCoupon)
		}
		return UptoDiscount{Percentage: percentage.Decimal, MaxDiscount: maxDiscount.Decimal}, nil
	default:
		return nil, fmt.Errorf("%w: unknown coupon type %q", ErrInvalidCoupon, couponType)
	}
}

type couponJSON struct {
	ID                          int                 `json:"id"`
	Code                        string              `json:"code"`
	Type                        CouponType          `json:"type"`
	DiscountPercentage          decimal.NullDecimal `json:"discount_percentage"`
	DiscountAmountRupees        decimal.NullDecimal `json:"discount_amount_rupees"`
	MaxDiscountRupees           decimal.NullDecimal `json:"max_discount_rupees"`
	MinOrderValue               decimal.Decimal     `json:"min_order_value_rupees"`
	DiscountSharePercentVendor  decimal.Decimal     `json:"discount_share_percent_vendor"`
	DiscountSharePercentSpeedyy decimal.Decimal     `json:"discount_share_percent_speedyy"`
}

func (c Coupon) MarshalJSON() ([]byte, error) {
	out := couponJSON{
		ID:                          c.ID,
		Code:                        c.Code,
		MinOrderValue:               c.MinOrderValue,
		DiscountSharePercentVendor:  c.DiscountSharePercentVendor,
		DiscountSharePercentSpeedyy: c.DiscountSharePercentSpeedyy,
	}
	switch d := c.Discount.(type) {
	case PercentageDiscount:
		out.Type = CouponTypePercentage
		out.DiscountPercentage = decimal.NewNullDecimal(d.Percentage)
	case FlatDiscount:
		out.Type = CouponTypeFlat
		out.DiscountAmountRupees = decimal.NewNullDecimal(d.Amount)
	case UptoDiscount:
		out.Type = CouponTypeUpto
		out.DiscountPercentage = decimal.NewNullDecimal(d.Percentage)
		out.MaxDiscountRupees = decimal.NewNullDecimal(d.MaxDiscount)
	default:
		return nil, fmt.Errorf("%w: coupon %s has no discount", ErrInvalidCoupon, c.Code)
	}
	return json.Marshal(out)
}

func (c *Coupon) UnmarshalJSON(data []byte) error {
	var in couponJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	discount, err := NewCouponDiscount(in.Type, in.DiscountPercentage, in.DiscountAmountRupees, in.MaxDiscountRupees)
	if err != nil {
		return err
	}
	*c = Coupon{
		ID:                          in.ID,
		Code:                        in.Code,
		Discount:                    discount,
		MinOrderValue:               in.MinOrderValue,
		DiscountSharePercentVendor:  in.DiscountSharePercentVendor,
		DiscountSharePercentSpeedyy: in.DiscountSharePercentSpeedyy,
	}
	return nil
}

// CouponApplication is the outcome of running a coupon against an order.
// An ineligible coupon is a normal outcome with a zero discount.
type CouponApplication struct {
	CouponID                    int             `json:"coupon_id"`
	Code                        string          `json:"code"`
	Type                        CouponType      `json:"type"`
	Eligible                    bool            `json:"eligible"`
	IneligibleReason            string          `json:"ineligible_reason,omitempty"`
	ApplicableAmount            decimal.Decimal `json:"applicable_amount"`
	MinOrderValue               decimal.Decimal `json:"min_order_value_rupees"`
	DiscountAmountApplied       decimal.Decimal `json:"discount_amount_applied"`
	DiscountSharePercentVendor  decimal.Decimal `json:"discount_share_percent_vendor"`
	DiscountSharePercentSpeedyy decimal.Decimal `json:"discount_share_percent_speedyy"`
	DiscountShareAmountVendor   decimal.Decimal `json:"discount_share_amount_vendor"`
	DiscountShareAmountSpeedyy  decimal.Decimal `json:"discount_share_amount_speedyy"`
}
