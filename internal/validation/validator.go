package validation

import (
	"fmt"
	"math"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// register struct-level validation for OrderDetails to ensure the
	// provided finalTotal matches subtotal + packagingCharge - couponDiscount.
	v.RegisterStructValidation(orderDetailsStructValidation, OrderDetails{})

	return v
}

// orderDetailsStructValidation verifies the pricing breakdown reproduces
// finalTotal (within cents).
func orderDetailsStructValidation(sl validatorv10.StructLevel) {
	d := sl.Current().Interface().(OrderDetails)

	expected := d.Subtotal + d.PackagingCharge - d.CouponDiscount

	expectedCents := int(math.Round(expected * 100))
	finalCents := int(math.Round(d.FinalTotal * 100))
	if expectedCents != finalCents {
		sl.ReportError(d.FinalTotal, "finalTotal", "FinalTotal", "final_total_match_breakdown",
			fmt.Sprintf("breakdown sum %.2f != finalTotal %.2f", expected, d.FinalTotal))
	}
}
