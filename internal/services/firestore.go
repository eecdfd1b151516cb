package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/ayushi9878/lalCottage-Payment-Gateway-Backend/internal/config"
)

// FirestoreStore appends payment documents to a single Firestore collection.
// Writes are append-only; no uniqueness key is enforced, so redelivered
// webhooks produce duplicate documents.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
	log        zerolog.Logger
}

// NewFirestoreStore initializes the Firebase Admin SDK from a credentials
// file and opens a Firestore client.
func NewFirestoreStore(ctx context.Context, cfg config.Config, log zerolog.Logger) (*FirestoreStore, error) {
	opt := option.WithCredentialsFile(cfg.FirebaseCredentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("firebase init: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return &FirestoreStore{
		client:     client,
		collection: cfg.FirestoreCollection,
		log:        log,
	}, nil
}

// StorePayment appends one document. doc is either a models.PaymentRecord or
// a models.WebhookRecord; the store does not care which.
func (s *FirestoreStore) StorePayment(ctx context.Context, doc interface{}) error {
	ref, _, err := s.client.Collection(s.collection).Add(ctx, doc)
	if err != nil {
		return fmt.Errorf("store payment: %w", err)
	}
	s.log.Info().Str("doc", ref.ID).Msg("payment document stored")
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
