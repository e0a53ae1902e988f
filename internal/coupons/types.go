package coupons

import "time"

// Coupon is the document stored in the coupons DynamoDB table, keyed by Code.
// Codes are normalized to uppercase before storage and lookup; DiscountType
// is "percent" or "flat".
//
// usage_limit, usage_limit_per_user and applicable_users are persisted for
// the admin surface but are not evaluated during validation.
type Coupon struct {
	Code              string    `json:"code" dynamodbav:"code"`
	DiscountType      string    `json:"discount_type" dynamodbav:"discount_type"`
	DiscountValue     float64   `json:"discount_value" dynamodbav:"discount_value"`
	MaxDiscount       float64   `json:"max_discount,omitempty" dynamodbav:"max_discount,omitempty"`
	MinPurchaseAmount float64   `json:"min_purchase_amount" dynamodbav:"min_purchase_amount"`
	ValidFrom         time.Time `json:"valid_from" dynamodbav:"valid_from"`
	ValidTo           time.Time `json:"valid_to" dynamodbav:"valid_to"`
	UsageLimit        int       `json:"usage_limit,omitempty" dynamodbav:"usage_limit,omitempty"`
	UsageLimitPerUser int       `json:"usage_limit_per_user,omitempty" dynamodbav:"usage_limit_per_user,omitempty"`
	IsActive          bool      `json:"is_active" dynamodbav:"is_active"`
	Description       string    `json:"description,omitempty" dynamodbav:"description,omitempty"`
	ApplicableUsers   []string  `json:"applicable_users,omitempty" dynamodbav:"applicable_users,omitempty"`
	CreatedAt         time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// UsableAt reports whether the coupon can be redeemed at the given instant.
// The validity window is inclusive at both endpoints.
func (c *Coupon) UsableAt(now time.Time) bool {
	return c.IsActive && !now.Before(c.ValidFrom) && !now.After(c.ValidTo)
}

// Result is the successful outcome of a validation.
type Result struct {
	Coupon         *Coupon `json:"coupon"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
}
