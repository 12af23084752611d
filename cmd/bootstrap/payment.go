package bootstrap

import (
	"hotel-booking-api/internal/infra/paymentgw"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewPaymentGateway,
	),
)

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	return paymentgw.NewStripeGateway(cfg.Stripe)
}
