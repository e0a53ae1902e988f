package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/masalabox/orderflow/internal/config"
)

// ErrUnavailable is returned when the gateway credentials were not configured.
// Handlers translate it to 503 instead of scattering nil checks.
var ErrUnavailable = errors.New("payment gateway not configured")

const requestTimeout = 10 * time.Second

// GatewayOrder is the order object created at the payment gateway. Amount is
// in the smallest currency unit (paisa).
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status,omitempty"`
}

// GatewayPayment is the payment object fetched from the gateway.
type GatewayPayment struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Method    string `json:"method"`
	CreatedAt int64  `json:"created_at"`
}

// Client talks to the Razorpay REST API. A zero-credential client is valid
// but reports ErrUnavailable on every call.
type Client struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a gateway client from configuration.
func NewClient(cfg config.RazorpayConfig) *Client {
	return &Client{
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		baseURL:   cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Available reports whether the gateway can be used.
func (c *Client) Available() bool {
	return c.keyID != "" && c.keySecret != ""
}

// KeyID exposes the public key id for the browser checkout widget.
func (c *Client) KeyID() string {
	return c.keyID
}

// KeySecret exposes the shared secret for signature verification.
func (c *Client) KeySecret() string {
	return c.keySecret
}

// CreateOrder registers an order with the gateway. The amount is in rupees
// and converted to paisa on the wire; capture is automatic.
func (c *Client) CreateOrder(ctx context.Context, amount float64, currency, receipt string) (*GatewayOrder, error) {
	if !c.Available() {
		return nil, ErrUnavailable
	}
	if currency == "" {
		currency = "INR"
	}
	if receipt == "" {
		receipt = fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	}

	body := map[string]interface{}{
		"amount":          int64(math.Round(amount * 100)),
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}

	var order GatewayOrder
	if err := c.do(ctx, http.MethodPost, "/v1/orders", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// FetchPayment retrieves a payment's status from the gateway.
func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*GatewayPayment, error) {
	if !c.Available() {
		return nil, ErrUnavailable
	}

	var payment GatewayPayment
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// do issues one request with basic auth, retrying once immediately on a
// transient network failure. Gateway rejections (4xx) are never retried:
// they are business-rule outcomes, not transport faults.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	err := c.doOnce(ctx, method, path, body, out)
	if err != nil && isTransient(err) {
		log.Warn().Err(err).Str("path", path).Msg("payments: transient gateway error, retrying once")
		err = c.doOnce(ctx, method, path, body, out)
	}
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal gateway request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read gateway response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode gateway response: %w", err)
		}
	}
	return nil
}

func isTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	// http.Client wraps dial/read failures in *url.Error, which implements
	// net.Error; anything else (status-code errors included) is permanent.
	return false
}
