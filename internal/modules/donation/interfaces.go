package donation

import (
	"context"

	"donorblog/internal/domain"
	"donorblog/internal/gateway"
	"donorblog/internal/mailer"
)

type gatewayClient interface {
	CreateCheckoutSession(ctx context.Context, p gateway.CheckoutParams) (*gateway.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*gateway.CheckoutSession, error)
	GetPaymentIntent(ctx context.Context, id string) (*gateway.PaymentIntent, error)
	GetCharge(ctx context.Context, id string) (*gateway.ChargeDetails, error)
	VerifyEvent(payload []byte, sigHeader string) (gateway.Event, error)
}

type donationRepo interface {
	CreatePending(ctx context.Context, d *domain.Donation) (bool, error)
	GetByPaymentIntent(ctx context.Context, paymentIntent string) (*domain.Donation, error)
	UpsertSucceeded(ctx context.Context, d *domain.Donation) error
	MarkRefunded(ctx context.Context, paymentIntent string) (bool, error)
	ClaimNotification(ctx context.Context, paymentIntent string) (bool, error)
	ListAll(ctx context.Context) ([]domain.Donation, error)
}

type eventRepo interface {
	MarkSeen(ctx context.Context, provider, eventID, eventType string) (bool, error)
	Forget(ctx context.Context, provider, eventID string) error
}

type receiptMailer interface {
	SendReceipt(ctx context.Context, r mailer.Receipt) error
}
