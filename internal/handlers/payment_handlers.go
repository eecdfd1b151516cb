package handlers

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/models"
	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/services"
)

// OrderGateway is the payment gateway surface the handlers need.
type OrderGateway interface {
	CreateOrder(amountPaise int64, currency string, notes map[string]interface{}) (*services.Order, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
	KeyID() string
}

// PaymentStore appends one payment document.
type PaymentStore interface {
	StorePayment(ctx context.Context, doc interface{}) error
}

// EmailSender sends the confirmation email, reporting the outcome as data.
type EmailSender interface {
	SendPaymentConfirmation(b models.BookingData, paymentID, orderID string) services.EmailResult
}

type PaymentHandler struct {
	gateway OrderGateway
	store   PaymentStore
	email   EmailSender
	log     zerolog.Logger
}

func NewPaymentHandler(gateway OrderGateway, store PaymentStore, email EmailSender, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		gateway: gateway,
		store:   store,
		email:   email,
		log:     log,
	}
}

// CreateOrder handles POST /create-orderId.
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON payload")
	}
	if req.Amount == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Amount required")
	}
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	notes := models.OrderNotes(req.BookingData)
	amountPaise := int64(math.Round(req.Amount * 100))

	order, err := h.gateway.CreateOrder(amountPaise, currency, notes)
	if err != nil {
		h.log.Error().Err(err).Float64("amount", req.Amount).Msg("create order failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create order: "+err.Error())
	}

	return c.JSON(http.StatusOK, CreateOrderResponse{
		Success:  true,
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Key:      h.gateway.KeyID(),
	})
}

// VerifyPayment handles POST /verify-payment.
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON payload")
	}
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required Razorpay payment details")
	}

	if !h.gateway.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		h.log.Warn().Str("order_id", req.RazorpayOrderID).Msg("payment signature mismatch")
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid Signature")
	}

	booking := models.NormalizeBooking(req.BookingData, req.RazorpayOrderID, req.RazorpayPaymentID)
	record := models.PaymentRecord{
		OrderID:     req.RazorpayOrderID,
		PaymentID:   req.RazorpayPaymentID,
		Verified:    true,
		BookingData: booking,
		Source:      models.SourceVerifyPayment,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.store.StorePayment(c.Request().Context(), record); err != nil {
		h.log.Error().Err(err).Str("payment_id", req.RazorpayPaymentID).Msg("failed to store payment")
		return echo.NewHTTPError(http.StatusInternalServerError, "Payment verification failed: "+err.Error())
	}

	result := h.email.SendPaymentConfirmation(booking, req.RazorpayPaymentID, req.RazorpayOrderID)

	return c.JSON(http.StatusOK, VerifyPaymentResponse{
		Success:      true,
		Message:      "Payment Verified Successfully",
		BookingID:    booking.BookingID,
		PaymentID:    req.RazorpayPaymentID,
		EmailSent:    result.Sent,
		EmailMessage: result.Message,
	})
}

// Webhook handles POST /webhook. The signature covers the exact request
// bytes, so the body is read raw here and never rebound.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}

	signature := c.Request().Header.Get("X-Razorpay-Signature")
	if !h.gateway.VerifyWebhookSignature(body, signature) {
		h.log.Warn().Msg("webhook signature mismatch")
		return c.String(http.StatusBadRequest, "Invalid Webhook Signature")
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.log.Error().Err(err).Msg("webhook body is not valid JSON")
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}

	entity := event.Payload.Payment.Entity
	if event.Event == "payment.captured" && len(entity) > 0 {
		record := models.WebhookRecord{
			RazorpayData: entity,
			Event:        event.Event,
			Source:       models.SourceWebhook,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.store.StorePayment(c.Request().Context(), record); err != nil {
			h.log.Error().Err(err).Msg("failed to store webhook payment")
			return c.String(http.StatusInternalServerError, "Internal Server Error")
		}
		h.sendCapturedEmail(entity)
		h.log.Info().Str("payment_id", models.Stringify(entity["id"])).Msg("webhook handled: payment.captured")
	}

	return c.String(http.StatusOK, "Webhook verified and processed")
}

// sendCapturedEmail sends a best-effort confirmation from the captured
// entity's notes. Amount arrives in paise and is converted to major units.
func (h *PaymentHandler) sendCapturedEmail(entity map[string]interface{}) {
	notes, _ := entity["notes"].(map[string]interface{})
	email := models.Stringify(notes["email"])
	if email == "" {
		return
	}

	var amount float64
	if v, ok := entity["amount"].(float64); ok {
		amount = v / 100
	}

	booking := models.BookingData{
		Name:           noteOr(notes, "name", "Customer"),
		Email:          email,
		Phone:          noteOr(notes, "phone", ""),
		RoomType:       noteOr(notes, "roomType", "Heritage Room"),
		FromDate:       noteOr(notes, "fromDate", ""),
		ToDate:         noteOr(notes, "toDate", ""),
		Guests:         noteOr(notes, "guests", "1"),
		TotalAmount:    strconv.FormatFloat(amount, 'f', -1, 64),
		BookingID:      noteOr(notes, "bookingId", models.Stringify(entity["id"])),
		NumberOfNights: noteOr(notes, "nights", "1"),
	}
	h.email.SendPaymentConfirmation(booking, models.Stringify(entity["id"]), models.Stringify(entity["order_id"]))
}

func noteOr(notes map[string]interface{}, key, def string) string {
	if v := models.Stringify(notes[key]); v != "" {
		return v
	}
	return def
}

// TestEmail handles POST /test-email, a diagnostic route that exercises the
// confirmation template with fixed sample data.
func (h *PaymentHandler) TestEmail(c echo.Context) error {
	var req TestEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON payload")
	}
	if req.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email required")
	}
	name := req.Name
	if name == "" {
		name = "Test User"
	}

	booking := models.BookingData{
		Name:           name,
		Email:          req.Email,
		RoomType:       "Heritage Room",
		FromDate:       "2025-01-15",
		ToDate:         "2025-01-17",
		Guests:         "2",
		TotalAmount:    "5000",
		BookingID:      "TEST123",
		NumberOfNights: "2",
	}
	result := h.email.SendPaymentConfirmation(booking, "pay_test123", "order_test123")

	resp := TestEmailResponse{
		Success: result.Sent,
		Message: "Test email sent successfully",
	}
	if !result.Sent {
		resp.Message = "Failed to send test email"
		resp.Error = result.Message
	}
	return c.JSON(http.StatusOK, resp)
}
