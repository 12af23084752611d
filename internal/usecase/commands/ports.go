package commands

import (
	"context"

	"hotel-booking-api/internal/domain/order"

	"github.com/google/uuid"
)

// PaymentIntent is the processor-side payment handle. The client secret is
// the only field the HTTP surface hands back to callers.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
}

// PaymentGateway talks to the external processor. Currency and payment
// method class are fixed per deployment and live behind the implementation.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64, receiptEmail string) (*PaymentIntent, error)
	RetrieveIntent(ctx context.Context, id string) (*PaymentIntent, error)
}

// PaymentStore persists the order -> intent mapping. InsertIntentID must
// reject a second row for the same order with KindDuplicateKey.
type PaymentStore interface {
	FindIntentID(ctx context.Context, orderID uuid.UUID) (string, error)
	InsertIntentID(ctx context.Context, orderID uuid.UUID, intentID string) error
}

// OrderReads supplies the stored data reconciliation prices against.
type OrderReads interface {
	PricedItems(ctx context.Context, orderID uuid.UUID) ([]order.PricedStay, error)
	CustomerEmail(ctx context.Context, orderID uuid.UUID) (string, error)
}
