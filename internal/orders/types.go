package orders

import "time"

// Order statuses. Transitions are admin-triggered only; any of the six values
// is accepted as a target, matching the deployed behavior (no forward-only
// enforcement — see DESIGN.md).
const (
	StatusPlaced         = "placed"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// Payment methods.
const (
	MethodOnline = "online"
	MethodCash   = "cash"
)

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

var validStatuses = map[string]bool{
	StatusPlaced:         true,
	StatusConfirmed:      true,
	StatusPreparing:      true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
	StatusCancelled:      true,
}

// ValidStatus reports whether s is one of the six order statuses.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// OrderItem is a single line of an order.
type OrderItem struct {
	ProductID   string  `json:"productId" dynamodbav:"product_id"`
	ProductName string  `json:"productName" dynamodbav:"product_name"`
	Variant     string  `json:"variant" dynamodbav:"variant"`
	Price       float64 `json:"price" dynamodbav:"price"`
	Quantity    int     `json:"quantity" dynamodbav:"quantity"`
	TotalPrice  float64 `json:"totalPrice" dynamodbav:"total_price"`
}

// CustomerInfo identifies who placed the order.
type CustomerInfo struct {
	Name  string `json:"name" dynamodbav:"name"`
	Phone string `json:"phone" dynamodbav:"phone"`
	Email string `json:"email,omitempty" dynamodbav:"email,omitempty"`
}

// DeliveryAddress is free-text with optional coordinates.
type DeliveryAddress struct {
	Address string  `json:"address" dynamodbav:"address"`
	Lat     float64 `json:"lat,omitempty" dynamodbav:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty" dynamodbav:"lng,omitempty"`
}

// Pricing is the stored breakdown. FinalTotal must always equal
// Subtotal + PackagingCharge - CouponDiscount.
type Pricing struct {
	Subtotal        float64 `json:"subtotal" dynamodbav:"subtotal"`
	PackagingCharge float64 `json:"packagingCharge" dynamodbav:"packaging_charge"`
	CouponDiscount  float64 `json:"couponDiscount" dynamodbav:"coupon_discount"`
	FinalTotal      float64 `json:"finalTotal" dynamodbav:"final_total"`
}

// PaymentInfo records how the order was (or will be) paid. PaymentID and
// GatewayOrderID are the identifiers issued by the payment gateway and are
// distinct from our own order id.
type PaymentInfo struct {
	Method         string `json:"method" dynamodbav:"method"` // online | cash
	PaymentID      string `json:"paymentId,omitempty" dynamodbav:"payment_id,omitempty"`
	GatewayOrderID string `json:"orderId,omitempty" dynamodbav:"gateway_order_id,omitempty"`
	Status         string `json:"status" dynamodbav:"status"` // pending | paid | failed
}

// AppliedCoupon is the coupon snapshot stored on the order.
type AppliedCoupon struct {
	Code     string  `json:"code,omitempty" dynamodbav:"code,omitempty"`
	Discount float64 `json:"discount,omitempty" dynamodbav:"discount,omitempty"`
}

// Order is the document stored in the orders DynamoDB table.
type Order struct {
	OrderID               string          `json:"orderId" dynamodbav:"order_id"` // PK
	UserID                string          `json:"userId" dynamodbav:"user_id"`   // GSI
	CustomerInfo          CustomerInfo    `json:"customerInfo" dynamodbav:"customer_info"`
	DeliveryAddress       DeliveryAddress `json:"deliveryAddress" dynamodbav:"delivery_address"`
	Items                 []OrderItem     `json:"items" dynamodbav:"items"`
	Pricing               Pricing         `json:"pricing" dynamodbav:"pricing"`
	PaymentInfo           PaymentInfo     `json:"paymentInfo" dynamodbav:"payment_info"`
	AppliedCoupon         AppliedCoupon   `json:"appliedCoupon,omitempty" dynamodbav:"applied_coupon,omitempty"`
	OrderStatus           string          `json:"orderStatus" dynamodbav:"order_status"`
	EstimatedDeliveryTime string          `json:"estimatedDeliveryTime" dynamodbav:"estimated_delivery_time"`
	CreatedAt             time.Time       `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt             time.Time       `json:"updatedAt" dynamodbav:"updated_at"`
}
