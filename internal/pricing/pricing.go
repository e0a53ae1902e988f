package pricing

import "math"

const (
	// PackagingCharge is a fixed additive fee per order, independent of item count.
	PackagingCharge = 20.0

	// CashMinimum is the minimum final total accepted for cash-on-delivery orders.
	CashMinimum = 499.0
)

// Discount types accepted on coupons.
const (
	DiscountPercent = "percent"
	DiscountFlat    = "flat"
)

// Round2 rounds to two decimal places, half away from zero on the scaled integer.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Discount computes the coupon discount for an order amount.
//
// For percent coupons the raw discount is amount*value/100. When a cap is set
// and the raw discount exceeds it, the applied discount is discountValue itself,
// not the cap. That matches the deployed behavior exactly and coupon data is
// priced around it; see DESIGN.md before changing.
//
// Flat coupons apply discountValue unconditionally, so a flat discount larger
// than the order amount produces a negative total downstream.
func Discount(discountType string, discountValue, maxDiscount, orderAmount float64) float64 {
	var d float64
	if discountType == DiscountPercent {
		d = orderAmount * discountValue / 100
		if maxDiscount > 0 && d > maxDiscount {
			d = discountValue
		}
	} else {
		d = discountValue
	}
	return Round2(d)
}

// OrderTotal combines the pricing breakdown into the amount charged.
// No floor at zero is applied; the stored breakdown must always recompute
// to the stored total.
func OrderTotal(subtotal, packagingCharge, couponDiscount float64) float64 {
	return Round2(subtotal + packagingCharge - couponDiscount)
}
