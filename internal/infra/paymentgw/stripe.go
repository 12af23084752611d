package paymentgw

import (
	"context"
	"time"

	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeGateway adapts the Stripe PaymentIntents API to the PaymentGateway
// port. Every call is bounded by the configured timeout; a timed-out create
// is reported as a gateway failure, never as "not created" — the intent may
// exist on Stripe's side even when the response was lost.
type StripeGateway struct {
	api      *client.API
	currency string
	timeout  time.Duration
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	return &StripeGateway{
		api:      client.New(cfg.APIKey, nil),
		currency: cfg.Currency,
		timeout:  cfg.Timeout,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, receiptEmail string) (*commands.PaymentIntent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(g.currency),
		ReceiptEmail:       stripe.String(receiptEmail),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: failed to create payment intent")
	}

	return fromStripeIntent(pi), nil
}

func (g *StripeGateway) RetrieveIntent(ctx context.Context, id string) (*commands.PaymentIntent, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	}

	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe: failed to retrieve payment intent")
	}

	return fromStripeIntent(pi), nil
}

func fromStripeIntent(pi *stripe.PaymentIntent) *commands.PaymentIntent {
	return &commands.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
	}
}
