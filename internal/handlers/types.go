package handlers

import (
	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/models"
)

type CreateOrderRequest struct {
	Amount      float64             `json:"amount"`
	Currency    string              `json:"currency"`
	BookingData models.BookingInput `json:"bookingData"`
}

type CreateOrderResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string              `json:"razorpay_order_id"`
	RazorpayPaymentID string              `json:"razorpay_payment_id"`
	RazorpaySignature string              `json:"razorpay_signature"`
	BookingData       models.BookingInput `json:"bookingData"`
}

type VerifyPaymentResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	BookingID    string `json:"bookingId"`
	PaymentID    string `json:"paymentId"`
	EmailSent    bool   `json:"emailSent"`
	EmailMessage string `json:"emailMessage"`
}

type TestEmailRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TestEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
