package validation

import (
	"github.com/masalabox/orderflow/internal/orders"
)

// ValidateCouponRequest is the payload for POST /api/coupons/validate.
type ValidateCouponRequest struct {
	Code        string  `json:"code" validate:"required"`
	OrderAmount float64 `json:"orderAmount" validate:"required,gt=0"`
}

// CartItemPayload is one submitted cart line. ID is the legacy
// "<productId>_<variant>" key still sent by older clients; ProductID and
// Variant are authoritative when present.
type CartItemPayload struct {
	ID        string  `json:"id,omitempty"`
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name,omitempty"`
	Variant   string  `json:"variant,omitempty"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gte=0"`
}

// CustomerInfoPayload identifies the customer at checkout.
type CustomerInfoPayload struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// DeliveryAddressPayload is the free-text delivery address.
type DeliveryAddressPayload struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

// AppliedCouponPayload is the coupon snapshot the client applied.
type AppliedCouponPayload struct {
	Code          string  `json:"code"`
	DiscountValue float64 `json:"discount_value"`
}

// OrderDetails is the checkout payload shared by the online-verify, cash
// and direct-create entry points. A struct-level rule checks that
// finalTotal recomputes from the breakdown.
type OrderDetails struct {
	UserID          string                 `json:"userId"`
	CustomerInfo    CustomerInfoPayload    `json:"customerInfo" validate:"required"`
	DeliveryAddress DeliveryAddressPayload `json:"deliveryAddress"`
	CartItems       []CartItemPayload      `json:"cartItems" validate:"required,min=1,dive"`
	Subtotal        float64                `json:"subtotal" validate:"gte=0"`
	PackagingCharge float64                `json:"packagingCharge" validate:"gte=0"`
	CouponDiscount  float64                `json:"couponDiscount" validate:"gte=0"`
	FinalTotal      float64                `json:"finalTotal"`
	AppliedCoupon   *AppliedCouponPayload  `json:"appliedCoupon,omitempty"`
}

// CheckoutInput converts the wire payload into the domain input used by the
// order builder.
func (d *OrderDetails) CheckoutInput() orders.CheckoutInput {
	items := make([]orders.CartItem, 0, len(d.CartItems))
	for _, ci := range d.CartItems {
		items = append(items, orders.CartItem{
			ProductID: ci.ProductID,
			LegacyKey: ci.ID,
			Name:      ci.Name,
			Variant:   ci.Variant,
			Price:     ci.Price,
			Quantity:  ci.Quantity,
		})
	}

	in := orders.CheckoutInput{
		UserID: d.UserID,
		CustomerInfo: orders.CustomerInfo{
			Name:  d.CustomerInfo.FullName,
			Phone: d.CustomerInfo.Phone,
			Email: d.CustomerInfo.Email,
		},
		DeliveryAddress: orders.DeliveryAddress{
			Address: d.DeliveryAddress.Address,
			Lat:     d.DeliveryAddress.Lat,
			Lng:     d.DeliveryAddress.Lng,
		},
		CartItems:       items,
		Subtotal:        d.Subtotal,
		PackagingCharge: d.PackagingCharge,
		CouponDiscount:  d.CouponDiscount,
		FinalTotal:      d.FinalTotal,
	}
	if d.AppliedCoupon != nil {
		in.AppliedCoupon = orders.AppliedCoupon{
			Code:     d.AppliedCoupon.Code,
			Discount: d.AppliedCoupon.DiscountValue,
		}
	}
	return in
}

// CreatePaymentOrderRequest is the payload for POST /api/payments/create-order.
type CreatePaymentOrderRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency,omitempty"`
	Receipt  string  `json:"receipt,omitempty"`
}

// VerifyPaymentRequest is the payload for POST /api/payments/verify.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string        `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string        `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string        `json:"razorpay_signature" validate:"required"`
	OrderDetails      *OrderDetails `json:"orderDetails,omitempty"`
}

// CashPaymentRequest is the payload for POST /api/payments/cash.
type CashPaymentRequest struct {
	Amount       float64      `json:"amount" validate:"required,gt=0"`
	OrderDetails OrderDetails `json:"orderDetails" validate:"required"`
}

// DirectOrderRequest is the payload for POST /api/orders/create.
type DirectOrderRequest struct {
	OrderDetails
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=online cash"`
}

// AuthRequest is the payload for POST /api/auth (login or register).
type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Mobile   string `json:"mobile,omitempty" validate:"omitempty,len=10,numeric"`
}

// AdminLoginRequest is the payload for POST /api/admin/login.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// OTPGenerateRequest is the payload for POST /api/otp/generate.
type OTPGenerateRequest struct {
	Mobile string `json:"mobile" validate:"required,len=10,numeric"`
}

// OTPVerifyRequest is the payload for POST /api/otp/verify.
type OTPVerifyRequest struct {
	Mobile string `json:"mobile" validate:"required,len=10,numeric"`
	OTP    string `json:"otp" validate:"required,len=6,numeric"`
}

// ContactRequest is the payload for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// StatusUpdateRequest carries a bare status for the order and contact
// status endpoints.
type StatusUpdateRequest struct {
	Status     string  `json:"status" validate:"required"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}
