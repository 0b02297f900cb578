package gateway

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"github.com/stripe/stripe-go/v74/webhook"
)

// Checkout UI locales Stripe accepts; anything else falls back to "auto".
var stripeLocales = map[string]bool{
	"auto": true, "bg": true, "cs": true, "da": true, "de": true, "el": true,
	"en": true, "es": true, "et": true, "fi": true, "fil": true, "fr": true,
	"hr": true, "hu": true, "id": true, "it": true, "ja": true, "ko": true,
	"lt": true, "lv": true, "ms": true, "mt": true, "nb": true, "nl": true,
	"pl": true, "pt": true, "ro": true, "ru": true, "sk": true, "sl": true,
	"sv": true, "th": true, "tr": true, "vi": true, "zh": true, "zh-HK": true,
	"zh-TW": true, "uk": true,
}

// StripeClient wraps an explicitly constructed stripe-go client. No package
// level stripe.Key is ever set; every handler gets this instance injected.
type StripeClient struct {
	api           *client.API
	webhookSecret string
}

func NewStripeClient(secretKey, webhookSecret string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api, webhookSecret: webhookSecret}
}

func (s *StripeClient) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	locale := p.DonorLocale
	if !stripeLocales[locale] {
		locale = "auto"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerCreation:   stripe.String(string(stripe.CheckoutSessionCustomerCreationIfRequired)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card", "link", "blik", "p24"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(p.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Donation"),
				},
				UnitAmount: stripe.Int64(p.AmountMinor),
			},
			Quantity: stripe.Int64(1),
		}},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"donor_name":    p.DonorName,
				"chosen_amount": minorToMajorString(p.AmountMinor),
				"donor_locale":  p.DonorLocale,
			},
		},
		Locale:     stripe.String(locale),
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
	}
	if p.DonorEmail != "" {
		params.CustomerEmail = stripe.String(p.DonorEmail)
		params.PaymentIntentData.ReceiptEmail = stripe.String(p.DonorEmail)
	}
	params.Context = ctx

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	out := &CheckoutSession{ID: sess.ID}
	if sess.PaymentIntent != nil {
		out.PaymentIntent = sess.PaymentIntent.ID
	}
	return out, nil
}

func (s *StripeClient) GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	sess, err := s.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", err)
	}

	out := &CheckoutSession{ID: sess.ID}
	if sess.PaymentIntent != nil {
		out.PaymentIntent = sess.PaymentIntent.ID
		out.AmountMinor = sess.PaymentIntent.Amount
		out.Currency = string(sess.PaymentIntent.Currency)
	}
	return out, nil
}

func (s *StripeClient) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := s.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve payment intent: %w", err)
	}

	out := &PaymentIntent{
		ID:           pi.ID,
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
		ReceiptEmail: pi.ReceiptEmail,
		Metadata:     pi.Metadata,
	}
	if pi.LatestCharge != nil {
		out.LatestCharge = pi.LatestCharge.ID
	}
	if pi.LastResponse != nil {
		out.Raw = pi.LastResponse.RawJSON
	}
	return out, nil
}

func (s *StripeClient) GetCharge(ctx context.Context, id string) (*ChargeDetails, error) {
	params := &stripe.ChargeParams{}
	params.Context = ctx

	ch, err := s.api.Charges.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve charge: %w", err)
	}

	out := &ChargeDetails{}
	if pmd := ch.PaymentMethodDetails; pmd != nil {
		out.MethodType = string(pmd.Type)
		if pmd.Card != nil {
			out.CardBrand = string(pmd.Card.Brand)
			out.Funding = string(pmd.Card.Funding)
		}
	}
	if bd := ch.BillingDetails; bd != nil {
		out.Email = bd.Email
		if bd.Address != nil {
			out.Country = bd.Address.Country
		}
	}
	return out, nil
}

// VerifyEvent checks the Stripe-Signature header against the signing secret.
// This is the sole authentication boundary of the webhook endpoint.
func (s *StripeClient) VerifyEvent(payload []byte, sigHeader string) (Event, error) {
	ev, err := webhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
	if err != nil {
		return Event{}, fmt.Errorf("verify webhook signature: %w", err)
	}

	out := Event{ID: ev.ID, Type: string(ev.Type)}
	if obj := ev.Data.Object; obj != nil {
		if id, ok := obj["id"].(string); ok {
			out.ObjectID = id
		}
		if pi, ok := obj["payment_intent"].(string); ok {
			out.PaymentIntentID = pi
		}
	}
	return out, nil
}

func minorToMajorString(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}
