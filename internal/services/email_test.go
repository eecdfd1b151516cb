package services

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/config"
	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/models"
)

func sampleBooking() models.BookingData {
	return models.BookingData{
		Name:           "Asha Rao",
		Email:          "asha@example.com",
		RoomType:       "Heritage Room",
		FromDate:       "2025-01-15",
		ToDate:         "2025-01-17",
		Guests:         "2",
		TotalAmount:    "5000",
		BookingID:      "BK42",
		NumberOfNights: "2",
	}
}

func TestRenderConfirmation(t *testing.T) {
	data := confirmationData{
		Booking:       sampleBooking(),
		PaymentID:     "pay_1",
		OrderID:       "order_1",
		PaymentDate:   "15/01/2025",
		BusinessName:  "Lal Cottage",
		BusinessEmail: "stay@lalcottage.in",
		BusinessPhone: "+91 98765 43210",
	}
	htmlBody, textBody, err := renderConfirmation(data)
	if err != nil {
		t.Fatalf("renderConfirmation: %v", err)
	}

	for _, want := range []string{"Asha Rao", "#BK42", "pay_1", "order_1", "5000", "stay@lalcottage.in"} {
		if !strings.Contains(htmlBody, want) {
			t.Errorf("html body missing %q", want)
		}
	}
	for _, want := range []string{"Asha Rao", "BK42", "pay_1", "Lal Cottage"} {
		if !strings.Contains(textBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}
}

func TestSendPaymentConfirmationNoRecipient(t *testing.T) {
	s := NewEmailService(config.Config{SMTPHost: "smtp.example.com", SMTPUser: "u", SMTPPass: "p"}, zerolog.Nop())
	b := sampleBooking()
	b.Email = ""

	res := s.SendPaymentConfirmation(b, "pay_1", "order_1")
	if res.Sent {
		t.Error("Sent = true; want false without a recipient")
	}
	if res.Message != "No email provided" {
		t.Errorf("Message = %q; want No email provided", res.Message)
	}
}

func TestSendPaymentConfirmationUnconfigured(t *testing.T) {
	s := NewEmailService(config.Config{}, zerolog.Nop())

	res := s.SendPaymentConfirmation(sampleBooking(), "pay_1", "order_1")
	if res.Sent {
		t.Error("Sent = true; want false without SMTP config")
	}
}

func TestBuildMessage(t *testing.T) {
	s := NewEmailService(config.Config{
		SMTPHost:     "smtp.example.com",
		SMTPUser:     "mailer@lalcottage.in",
		SMTPPass:     "p",
		BusinessName: "Lal Cottage",
	}, zerolog.Nop())

	msg := string(s.buildMessage("asha@example.com", "Payment Confirmation - Booking #BK42", "<p>hi</p>", "hi"))
	for _, want := range []string{
		"To: asha@example.com",
		"Subject: Payment Confirmation - Booking #BK42",
		"MIME-Version: 1.0",
		"multipart/alternative",
		"text/plain",
		"text/html",
		`"Lal Cottage" <mailer@lalcottage.in>`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}
