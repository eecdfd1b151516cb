package models

import "time"

// Stored document sources. Readers branch on the Source field to know which
// of the two shapes they are looking at.
const (
	SourceVerifyPayment = "verify-payment"
	SourceWebhook       = "webhook"
)

// PaymentRecord is the document written after a client-reported payment
// passes signature verification.
type PaymentRecord struct {
	OrderID     string      `firestore:"orderId" json:"orderId"`
	PaymentID   string      `firestore:"paymentId" json:"paymentId"`
	Verified    bool        `firestore:"verified" json:"verified"`
	BookingData BookingData `firestore:"bookingData" json:"bookingData"`
	Source      string      `firestore:"source" json:"source"`
	Timestamp   string      `firestore:"timestamp" json:"timestamp"`
	CreatedAt   time.Time   `firestore:"createdAt,serverTimestamp" json:"-"`
}

// WebhookRecord is the document written for a captured-payment webhook. The
// gateway entity is stored as-is.
type WebhookRecord struct {
	RazorpayData map[string]interface{} `firestore:"razorpayData" json:"razorpayData"`
	Event        string                 `firestore:"event" json:"event"`
	Source       string                 `firestore:"source" json:"source"`
	Timestamp    string                 `firestore:"timestamp" json:"timestamp"`
	CreatedAt    time.Time              `firestore:"createdAt,serverTimestamp" json:"-"`
}

// WebhookEvent is the subset of the gateway's webhook payload this service
// reads. The payment entity stays untyped; it is persisted raw.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity map[string]interface{} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}
