// Package pricing validates a customer's cart selection against a catalog
// snapshot and computes the order cost breakdown. It performs no I/O: the
// caller supplies the catalog, coupon, charge rates and the current time.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero to two decimal places.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// percentOf returns amount/100*rate rounded to two places.
func percentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Div(hundred).Mul(rate))
}

func sumRates(rates ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rates {
		total = total.Add(r)
	}
	return total
}
