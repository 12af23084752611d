package commands

import (
	"context"
	"log/slog"

	"hotel-booking-api/internal/domain/order"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrPaymentGateway    = errs.New("payment gateway failure")
	ErrPaymentPersistence = errs.New("failed to persist payment mapping")
	ErrPaymentState      = errs.New("inconsistent payment state")
)

type PaymentCommands interface {
	// EnsurePaymentIntent returns the one payment intent for the order,
	// creating it on first call and retrieving it afterwards.
	EnsurePaymentIntent(ctx context.Context, orderID uuid.UUID) (*PaymentIntent, error)
}

func NewPaymentCommands(payments PaymentStore, orders OrderReads, gateway PaymentGateway) PaymentCommands {
	return &paymentCommandsImpl{
		payments: payments,
		orders:   orders,
		gateway:  gateway,
	}
}

type paymentCommandsImpl struct {
	payments PaymentStore
	orders   OrderReads
	gateway  PaymentGateway
}

func (p *paymentCommandsImpl) EnsurePaymentIntent(ctx context.Context, orderID uuid.UUID) (*PaymentIntent, error) {
	intentID, err := p.payments.FindIntentID(ctx, orderID)
	switch {
	case err == nil:
		return p.retrieveExisting(ctx, intentID)
	case infra.IsKind(err, infra.KindNotFound):
		return p.createIntent(ctx, orderID)
	default:
		return nil, errs.Mark(err, ErrPaymentPersistence)
	}
}

// createIntent prices the order from its stored line items, creates a
// processor-side intent and records the mapping. Two concurrent calls may
// both reach the gateway; the unique insert below is the only arbiter.
// The loser abandons its intent (a harmless orphan on the processor side)
// and returns the mapping that won.
func (p *paymentCommandsImpl) createIntent(ctx context.Context, orderID uuid.UUID) (*PaymentIntent, error) {
	items, err := p.orders.PricedItems(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentPersistence)
	}
	if len(items) == 0 {
		return nil, ErrOrderNotFound
	}

	email, err := p.orders.CustomerEmail(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, errs.Mark(err, ErrPaymentPersistence)
	}

	total := order.TotalCents(items)

	intent, err := p.gateway.CreateIntent(ctx, total, email)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}

	err = p.payments.InsertIntentID(ctx, orderID, intent.ID)
	if err == nil {
		return intent, nil
	}
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return nil, errs.Mark(err, ErrPaymentPersistence)
	}

	// Lost the race: a concurrent call recorded its intent first.
	slog.Info("payment intent already recorded by concurrent request, using stored intent",
		"order_id", orderID, "abandoned_intent_id", intent.ID)

	winnerID, err := p.payments.FindIntentID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentPersistence)
	}

	return p.retrieveExisting(ctx, winnerID)
}

// retrieveExisting is side-effect free on the processor.
func (p *paymentCommandsImpl) retrieveExisting(ctx context.Context, intentID string) (*PaymentIntent, error) {
	if intentID == "" {
		return nil, ErrPaymentState
	}

	intent, err := p.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}

	return intent, nil
}
