package coupons

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/masalabox/orderflow/internal/pricing"
)

// Validation failure reasons. Handlers translate these to HTTP statuses.
var (
	ErrNotFound     = errors.New("coupon not found or inactive")
	ErrExpired      = errors.New("coupon expired or not yet valid")
	ErrBelowMinimum = errors.New("order amount below coupon minimum")
)

// Service validates coupon codes against order amounts.
type Service struct {
	store   *Store
	nowFunc func() time.Time
}

// NewService creates a coupon validation service.
func NewService(store *Store) *Service {
	return &Service{store: store, nowFunc: time.Now}
}

// Validate checks the coupon identified by code against orderAmount and
// computes the discount. The code is normalized to uppercase for lookup.
// Inactive coupons are indistinguishable from missing ones (ErrNotFound).
func (s *Service) Validate(ctx context.Context, code string, orderAmount float64) (*Result, error) {
	coupon, err := s.store.Get(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("coupons: lookup failed")
		return nil, fmt.Errorf("coupon lookup: %w", err)
	}
	if coupon == nil || !coupon.IsActive {
		return nil, ErrNotFound
	}

	now := s.nowFunc()
	if now.Before(coupon.ValidFrom) || now.After(coupon.ValidTo) {
		return nil, ErrExpired
	}

	if orderAmount < coupon.MinPurchaseAmount {
		return nil, fmt.Errorf("%w: minimum order amount of %.0f required", ErrBelowMinimum, coupon.MinPurchaseAmount)
	}

	discount := pricing.Discount(coupon.DiscountType, coupon.DiscountValue, coupon.MaxDiscount, orderAmount)

	log.Info().
		Str("code", coupon.Code).
		Float64("order_amount", orderAmount).
		Float64("discount", discount).
		Msg("coupons: validated")

	return &Result{
		Coupon:         coupon,
		DiscountAmount: discount,
		FinalAmount:    pricing.Round2(orderAmount - discount),
	}, nil
}
