package config

import (
	"os"
)

// Config holds all environment-driven settings. Values are read once at
// startup and passed down explicitly so tests can substitute their own.
type Config struct {
	AppEnv string
	Port   string

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	BusinessName  string
	BusinessEmail string
	BusinessPhone string

	FirebaseCredentialsPath string
	FirestoreCollection     string
}

func Load() Config {
	c := Config{
		AppEnv: env("APP_ENV", "production"),
		Port:   env("PORT", "8081"),

		RazorpayKeyID:         os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: env("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),

		BusinessName:  env("BUSINESS_NAME", "Lal Cottage"),
		BusinessEmail: os.Getenv("BUSINESS_EMAIL"),
		BusinessPhone: os.Getenv("BUSINESS_PHONE"),

		FirebaseCredentialsPath: env("FIREBASE_CREDENTIALS_PATH", "./firebase-service-account.json"),
		FirestoreCollection:     env("FIRESTORE_COLLECTION", "payments"),
	}
	if c.BusinessEmail == "" {
		c.BusinessEmail = c.SMTPUser
	}
	return c
}

// Production reports whether stack traces should be withheld from error
// responses.
func (c Config) Production() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
