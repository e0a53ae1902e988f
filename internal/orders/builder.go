package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const defaultDeliveryEstimate = "30-45 minutes"

// CartItem is one submitted cart line. ProductID and Variant are the
// authoritative identity; LegacyKey ("<productId>_<variant>") is accepted
// only from older clients that never send the explicit fields.
type CartItem struct {
	ProductID string
	LegacyKey string
	Name      string
	Variant   string
	Price     float64
	Quantity  int
}

// CheckoutInput is everything a checkout submission carries, independent of
// which payment path it arrived through.
type CheckoutInput struct {
	UserID          string
	CustomerInfo    CustomerInfo
	DeliveryAddress DeliveryAddress
	CartItems       []CartItem
	Subtotal        float64
	PackagingCharge float64
	CouponDiscount  float64
	FinalTotal      float64
	AppliedCoupon   AppliedCoupon
}

// NewOrderID generates a human-readable order id namespaced by payment method.
// The random suffix keeps concurrent same-millisecond submissions from
// colliding; the store additionally refuses to overwrite an existing id.
func NewOrderID(method string, now time.Time) string {
	prefix := "ORDER"
	if method == MethodCash {
		prefix = "CASH"
	}
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), suffix)
}

// BuildOrder constructs a stored order from a checkout submission and a
// payment outcome. All three entry points (online verify, cash, direct
// create) go through here.
func BuildOrder(in CheckoutInput, payment PaymentInfo, now time.Time) *Order {
	items := make([]OrderItem, 0, len(in.CartItems))
	for _, ci := range in.CartItems {
		items = append(items, buildItem(ci))
	}

	userID := in.UserID
	if userID == "" {
		userID = "guest"
	}

	addr := in.DeliveryAddress
	if addr.Address == "" {
		addr.Address = "No address provided"
	}

	return &Order{
		OrderID:         NewOrderID(payment.Method, now),
		UserID:          userID,
		CustomerInfo:    in.CustomerInfo,
		DeliveryAddress: addr,
		Items:           items,
		Pricing: Pricing{
			Subtotal:        in.Subtotal,
			PackagingCharge: in.PackagingCharge,
			CouponDiscount:  in.CouponDiscount,
			FinalTotal:      in.FinalTotal,
		},
		PaymentInfo:           payment,
		AppliedCoupon:         in.AppliedCoupon,
		OrderStatus:           StatusPlaced,
		EstimatedDeliveryTime: defaultDeliveryEstimate,
		CreatedAt:             now.UTC(),
		UpdatedAt:             now.UTC(),
	}
}

func buildItem(ci CartItem) OrderItem {
	productID := ci.ProductID
	if productID == "" && ci.LegacyKey != "" {
		productID = strings.SplitN(ci.LegacyKey, "_", 2)[0]
	}

	name := ci.Name
	if name == "" {
		name = "Unknown Product"
	}
	variant := ci.Variant
	if variant == "" {
		variant = "Regular"
	}
	qty := ci.Quantity
	if qty == 0 {
		qty = 1
	}

	return OrderItem{
		ProductID:   productID,
		ProductName: name,
		Variant:     variant,
		Price:       ci.Price,
		Quantity:    qty,
		TotalPrice:  ci.Price * float64(qty),
	}
}
