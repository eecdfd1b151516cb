package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/config"
)

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func testGateway() *RazorpayService {
	cfg := config.Config{
		RazorpayKeyID:         "rzp_test_key",
		RazorpayKeySecret:     "key_secret",
		RazorpayWebhookSecret: "webhook_secret",
	}
	return NewRazorpayService(cfg, zerolog.Nop())
}

func TestVerifyPaymentSignature(t *testing.T) {
	s := testGateway()
	orderID := "order_Nxs9L2ab"
	paymentID := "pay_Nxs9QWcd"
	good := sign([]byte(orderID+"|"+paymentID), "key_secret")

	if !s.VerifyPaymentSignature(orderID, paymentID, good) {
		t.Fatal("valid signature rejected")
	}

	// Any single-character mutation of either identifier must fail.
	for i := range orderID {
		mutated := orderID[:i] + "x" + orderID[i+1:]
		if mutated == orderID {
			continue
		}
		if s.VerifyPaymentSignature(mutated, paymentID, good) {
			t.Errorf("accepted signature for mutated order id %q", mutated)
		}
	}
	for i := range paymentID {
		mutated := paymentID[:i] + "x" + paymentID[i+1:]
		if mutated == paymentID {
			continue
		}
		if s.VerifyPaymentSignature(orderID, mutated, good) {
			t.Errorf("accepted signature for mutated payment id %q", mutated)
		}
	}
}

func TestVerifyPaymentSignatureRejectsBadInput(t *testing.T) {
	s := testGateway()
	tests := []struct {
		name      string
		signature string
	}{
		{"empty", ""},
		{"not hex", "zzzz"},
		{"wrong secret", sign([]byte("order_1|pay_1"), "other_secret")},
		{"truncated", sign([]byte("order_1|pay_1"), "key_secret")[:10]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s.VerifyPaymentSignature("order_1", "pay_1", tt.signature) {
				t.Error("invalid signature accepted")
			}
		})
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	s := testGateway()
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1"}}}}`)
	good := sign(body, "webhook_secret")

	if !s.VerifyWebhookSignature(body, good) {
		t.Fatal("valid webhook signature rejected")
	}

	// Flipping any byte after signing must fail verification.
	for i := 0; i < len(body); i += 7 {
		tampered := append([]byte(nil), body...)
		tampered[i] ^= 0x01
		if s.VerifyWebhookSignature(tampered, good) {
			t.Errorf("accepted signature for body tampered at byte %d", i)
		}
	}

	if s.VerifyWebhookSignature(body, sign(body, "key_secret")) {
		t.Error("accepted signature computed with the wrong secret")
	}
}

func TestKeyID(t *testing.T) {
	if got := testGateway().KeyID(); got != "rzp_test_key" {
		t.Errorf("KeyID() = %q; want rzp_test_key", got)
	}
}
