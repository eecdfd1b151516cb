package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/config"
	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/handlers"
	appmw "github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/middleware"
	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/services"
)

func main() {
	envMissing := godotenv.Load() != nil

	cfg := config.Load()
	logger := newLogger(cfg)
	if envMissing {
		logger.Debug().Msg("no .env file found, using system environment")
	}

	ctx := context.Background()
	store, err := services.NewFirestoreStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("firestore initialization failed")
	}
	defer store.Close()

	gateway := services.NewRazorpayService(cfg, logger)
	mailer := services.NewEmailService(cfg, logger)
	payments := handlers.NewPaymentHandler(gateway, store, mailer, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.HTTPErrorHandler = appmw.JSONErrorHandler(logger, cfg.Production())

	e.POST("/create-orderId", payments.CreateOrder)
	e.POST("/verify-payment", payments.VerifyPayment)
	e.POST("/webhook", payments.Webhook)
	e.POST("/test-email", payments.TestEmail)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// newLogger returns a zerolog logger; outside production it uses the
// human-friendly console writer.
func newLogger(cfg config.Config) zerolog.Logger {
	if cfg.Production() {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}
