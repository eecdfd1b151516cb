package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/rs/zerolog"

	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/config"
)

// Order is the subset of a gateway order returned to clients. Amount is in
// minor currency units (paise), as reported by the gateway.
type Order struct {
	ID       string
	Amount   int64
	Currency string
}

// RazorpayService wraps the Razorpay SDK client plus the two shared secrets
// used for signature verification.
type RazorpayService struct {
	client        *razorpay.Client
	keyID         string
	keySecret     string
	webhookSecret string
	log           zerolog.Logger
}

func NewRazorpayService(cfg config.Config, log zerolog.Logger) *RazorpayService {
	return &RazorpayService{
		client:        razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		keyID:         cfg.RazorpayKeyID,
		keySecret:     cfg.RazorpayKeySecret,
		webhookSecret: cfg.RazorpayWebhookSecret,
		log:           log,
	}
}

// KeyID returns the public key id handed to checkout clients.
func (s *RazorpayService) KeyID() string {
	return s.keyID
}

// CreateOrder creates a gateway order for amountPaise with a
// timestamp-derived receipt tag.
func (s *RazorpayService) CreateOrder(amountPaise int64, currency string, notes map[string]interface{}) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
		"notes":    notes,
	}
	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}
	id, _ := body["id"].(string)
	order := &Order{
		ID:       id,
		Amount:   amountPaise,
		Currency: currency,
	}
	if amt, ok := body["amount"].(float64); ok {
		order.Amount = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}
	s.log.Info().Str("order_id", order.ID).Int64("amount", order.Amount).Msg("gateway order created")
	return order, nil
}

// VerifyPaymentSignature checks the client-reported signature over
// "orderID|paymentID" against the key secret.
func (s *RazorpayService) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return verifyHMAC([]byte(orderID+"|"+paymentID), signature, s.keySecret)
}

// VerifyWebhookSignature checks the webhook signature over the exact request
// body bytes against the webhook secret.
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	return verifyHMAC(body, signature, s.webhookSecret)
}

// verifyHMAC recomputes HMAC-SHA256 over payload and compares it to the
// hex-encoded signature. The comparison is constant time.
func verifyHMAC(payload []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(provided, mac.Sum(nil))
}
