package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// VerifySignature checks that a payment callback was signed by the gateway.
// The signed message is gatewayOrderID + "|" + gatewayPaymentID (pipe-delimited,
// no spaces) and the signature is lowercase hex HMAC-SHA256 over that message.
// The comparison is constant-time and exact, including hex case; any mismatch
// fails closed.
func VerifySignature(gatewayOrderID, gatewayPaymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
