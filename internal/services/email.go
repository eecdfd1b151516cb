package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	texttemplate "text/template"
	"time"

	"github.com/rs/zerolog"

	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/config"
	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/models"
)

// EmailResult reports the outcome of a send attempt. Email failures are
// data, never errors: the caller's operation succeeds either way.
type EmailResult struct {
	Sent    bool
	Message string
}

type EmailService struct {
	host     string
	port     string
	user     string
	password string

	businessName  string
	businessEmail string
	businessPhone string

	log zerolog.Logger
}

func NewEmailService(cfg config.Config, log zerolog.Logger) *EmailService {
	return &EmailService{
		host:          cfg.SMTPHost,
		port:          cfg.SMTPPort,
		user:          cfg.SMTPUser,
		password:      cfg.SMTPPass,
		businessName:  cfg.BusinessName,
		businessEmail: cfg.BusinessEmail,
		businessPhone: cfg.BusinessPhone,
		log:           log,
	}
}

// SendPaymentConfirmation renders and submits the confirmation email for a
// verified payment. A missing recipient or unconfigured SMTP skips the send.
func (s *EmailService) SendPaymentConfirmation(b models.BookingData, paymentID, orderID string) EmailResult {
	if b.Email == "" {
		s.log.Warn().Str("payment_id", paymentID).Msg("no email provided, skipping notification")
		return EmailResult{Sent: false, Message: "No email provided"}
	}
	if s.host == "" || s.user == "" || s.password == "" {
		s.log.Warn().Msg("SMTP not configured, skipping notification")
		return EmailResult{Sent: false, Message: "Email not configured"}
	}

	data := confirmationData{
		Booking:       b,
		PaymentID:     paymentID,
		OrderID:       orderID,
		PaymentDate:   time.Now().Format("02/01/2006"),
		BusinessName:  s.businessName,
		BusinessEmail: s.businessEmail,
		BusinessPhone: s.businessPhone,
	}
	htmlBody, textBody, err := renderConfirmation(data)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to render confirmation email")
		return EmailResult{Sent: false, Message: "Email sending failed"}
	}

	subject := fmt.Sprintf("Payment Confirmation - Booking #%s", b.BookingID)
	msg := s.buildMessage(b.Email, subject, htmlBody, textBody)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.user, []string{b.Email}, msg); err != nil {
		s.log.Error().Err(err).Str("to", b.Email).Msg("failed to send confirmation email")
		return EmailResult{Sent: false, Message: "Email sending failed"}
	}

	s.log.Info().Str("to", b.Email).Str("payment_id", paymentID).Msg("confirmation email sent")
	return EmailResult{Sent: true, Message: "Confirmation email sent"}
}

func (s *EmailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	const boundary = "booking-confirmation"
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %q <%s>\r\n", s.businessName, s.user)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n", boundary, textBody)
	fmt.Fprintf(&b, "--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, htmlBody)
	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return b.Bytes()
}

type confirmationData struct {
	Booking       models.BookingData
	PaymentID     string
	OrderID       string
	PaymentDate   string
	BusinessName  string
	BusinessEmail string
	BusinessPhone string
}

func renderConfirmation(data confirmationData) (htmlBody, textBody string, err error) {
	var h bytes.Buffer
	if err := confirmationHTML.Execute(&h, data); err != nil {
		return "", "", fmt.Errorf("render html body: %w", err)
	}
	var t bytes.Buffer
	if err := confirmationText.Execute(&t, data); err != nil {
		return "", "", fmt.Errorf("render text body: %w", err)
	}
	return h.String(), t.String(), nil
}

var confirmationHTML = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Payment Confirmation</title>
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { background: #4CAF50; color: white; padding: 20px; text-align: center; }
.content { padding: 20px; background: #f9f9f9; }
.booking-details { background: white; padding: 15px; margin: 15px 0; border-radius: 5px; }
.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 8px; border-bottom: 1px solid #ddd; }
th { background-color: #f2f2f2; }
</style>
</head>
<body>
<div class="container">
  <div class="header">
    <h1>Payment Confirmed!</h1>
    <p>Thank you for your booking</p>
  </div>
  <div class="content">
    <h2>Dear {{.Booking.Name}},</h2>
    <p>Your payment has been successfully processed. Here are your booking details:</p>
    <div class="booking-details">
      <h3>Booking Information</h3>
      <table>
        <tr><th>Booking ID</th><td>#{{.Booking.BookingID}}</td></tr>
        <tr><th>Room Type</th><td>{{.Booking.RoomType}}</td></tr>
        <tr><th>Check-in Date</th><td>{{.Booking.FromDate}}</td></tr>
        <tr><th>Check-out Date</th><td>{{.Booking.ToDate}}</td></tr>
        <tr><th>Number of Nights</th><td>{{.Booking.NumberOfNights}}</td></tr>
        <tr><th>Guests</th><td>{{.Booking.Guests}}</td></tr>
        <tr><th>Total Amount</th><td>&#8377;{{.Booking.TotalAmount}}</td></tr>
      </table>
    </div>
    <div class="booking-details">
      <h3>Payment Information</h3>
      <table>
        <tr><th>Payment ID</th><td>{{.PaymentID}}</td></tr>
        <tr><th>Order ID</th><td>{{.OrderID}}</td></tr>
        <tr><th>Payment Status</th><td><span style="color: #4CAF50; font-weight: bold;">SUCCESS</span></td></tr>
        <tr><th>Payment Date</th><td>{{.PaymentDate}}</td></tr>
      </table>
    </div>
    <p><strong>What's Next?</strong></p>
    <ul>
      <li>You will receive a detailed booking confirmation shortly</li>
      <li>Please keep this email for your records</li>
      <li>Contact us if you have any questions</li>
    </ul>
  </div>
  <div class="footer">
    <p>Thank you for choosing us!</p>
    <p>If you have any questions, please contact us at {{.BusinessEmail}}</p>
    <p>Phone: {{.BusinessPhone}}</p>
  </div>
</div>
</body>
</html>
`))

var confirmationText = texttemplate.Must(texttemplate.New("confirmation_text").Parse(`Payment Confirmation - Booking #{{.Booking.BookingID}}

Dear {{.Booking.Name}},

Your payment has been successfully processed!

Booking Details:
- Booking ID: #{{.Booking.BookingID}}
- Room Type: {{.Booking.RoomType}}
- Check-in: {{.Booking.FromDate}}
- Check-out: {{.Booking.ToDate}}
- Nights: {{.Booking.NumberOfNights}}
- Guests: {{.Booking.Guests}}
- Total Amount: Rs. {{.Booking.TotalAmount}}

Payment Details:
- Payment ID: {{.PaymentID}}
- Order ID: {{.OrderID}}
- Status: SUCCESS
- Date: {{.PaymentDate}}

Thank you for choosing {{.BusinessName}}!
`))
