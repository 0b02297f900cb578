package donation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"donorblog/internal/config"
	"donorblog/internal/domain"
	"donorblog/internal/gateway"
	"donorblog/internal/mailer"
)

const (
	eventProvider = "stripe"

	eventPaymentSucceeded = "payment_intent.succeeded"
	eventChargeRefunded   = "charge.refunded"

	metaDonorName   = "donor_name"
	metaDonorLocale = "donor_locale"
)

type Service struct {
	donations donationRepo
	events    eventRepo
	gateway   gatewayClient
	mailer    receiptMailer
	loggerf   func(format string, args ...interface{})

	minAmount     decimal.Decimal
	maxAmount     decimal.Decimal // zero means no maximum
	currency      string
	baseURL       string
	defaultLocale string
}

func NewService(donations donationRepo, events eventRepo, gw gatewayClient, m receiptMailer, cfg *config.Config, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		donations:     donations,
		events:        events,
		gateway:       gw,
		mailer:        m,
		loggerf:       loggerf,
		minAmount:     cfg.DonationMin,
		maxAmount:     cfg.DonationMax,
		currency:      cfg.DonationCurrency,
		baseURL:       cfg.BaseURL,
		defaultLocale: cfg.DefaultLocale,
	}
}

// CreateCheckout validates the donor-submitted amount, opens a hosted
// checkout session and persists a pending donation row keyed by the
// session's payment intent. No local state is created when the gateway
// call fails; the donor has to resubmit.
func (s *Service) CreateCheckout(ctx context.Context, rawAmount interface{}, name, email, locale string) (string, error) {
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return "", err
	}
	if amount.LessThan(s.minAmount) {
		return "", fmt.Errorf("%w: the amount must be from %s", ErrAmountTooSmall, s.minAmount)
	}
	if !s.maxAmount.IsZero() && amount.GreaterThan(s.maxAmount) {
		return "", fmt.Errorf("%w: the amount must not exceed %s", ErrAmountTooLarge, s.maxAmount)
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if locale == "" {
		locale = s.defaultLocale
	}

	sess, err := s.gateway.CreateCheckoutSession(ctx, gateway.CheckoutParams{
		AmountMinor: amount.Shift(2).Round(0).IntPart(),
		Currency:    s.currency,
		DonorName:   name,
		DonorEmail:  email,
		DonorLocale: locale,
		SuccessURL:  s.baseURL + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   s.baseURL + "/cancel",
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	if sess.PaymentIntent != "" {
		created, err := s.donations.CreatePending(ctx, &domain.Donation{
			PaymentIntent: sess.PaymentIntent,
			Name:          name,
			Email:         email,
			Amount:        amount,
			Currency:      s.currency,
		})
		if err != nil {
			return "", fmt.Errorf("save donation: %w", err)
		}
		s.loggerf("level=info msg=donation created intent=%s email=%s amount=%s created=%t locale=%s",
			sess.PaymentIntent, email, amount.StringFixed(2), created, locale)
	}

	return sess.ID, nil
}

// HandleWebhook verifies the signed event and reconciles the donation row.
// A nil return means the delivery must be acknowledged with 200.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	ev, err := s.gateway.VerifyEvent(payload, sigHeader)
	if err != nil {
		s.loggerf("level=warn msg=invalid webhook signature err=%v", err)
		return ErrInvalidSignature
	}

	s.loggerf("level=info msg=webhook received type=%s event_id=%s", ev.Type, ev.ID)

	firstSeen, err := s.events.MarkSeen(ctx, eventProvider, ev.ID, ev.Type)
	if err != nil {
		// dedup bookkeeping failure must not block reconciliation
		s.loggerf("level=warn msg=webhook dedup write failed event_id=%s err=%v", ev.ID, err)
	} else if !firstSeen {
		s.loggerf("level=info msg=webhook replay ignored event_id=%s", ev.ID)
		return nil
	}

	switch ev.Type {
	case eventPaymentSucceeded:
		if err := s.reconcileSucceeded(ctx, ev.ObjectID); err != nil {
			// release the dedup marker: the 400 asks the gateway to retry,
			// and the retry must be reprocessed, not treated as a replay
			if ferr := s.events.Forget(ctx, eventProvider, ev.ID); ferr != nil {
				s.loggerf("level=warn msg=webhook dedup release failed event_id=%s err=%v", ev.ID, ferr)
			}
			return err
		}
		return nil
	case eventChargeRefunded:
		s.reconcileRefunded(ctx, ev.PaymentIntentID)
		return nil
	default:
		s.loggerf("level=info msg=webhook event ignored type=%s", ev.Type)
		return nil
	}
}

// reconcileSucceeded re-fetches the authoritative payment object; fields in
// the webhook payload itself can be stale or partial and are only trusted
// for the intent id.
func (s *Service) reconcileSucceeded(ctx context.Context, intentID string) error {
	pi, err := s.gateway.GetPaymentIntent(ctx, intentID)
	if err != nil {
		s.loggerf("level=error msg=unable to retrieve payment intent intent=%s err=%v", intentID, err)
		return fmt.Errorf("%w: %v", ErrIntentFetch, err)
	}

	amount := decimal.NewFromInt(pi.AmountMinor).Shift(-2)
	currency := strings.ToLower(pi.Currency)
	if currency == "" {
		currency = s.currency
	}
	name := pi.Metadata[metaDonorName]
	locale := pi.Metadata[metaDonorLocale]
	email := pi.ReceiptEmail

	var method, country, cardBrand, funding string
	if pi.LatestCharge != "" {
		charge, err := s.gateway.GetCharge(ctx, pi.LatestCharge)
		if err != nil {
			s.loggerf("level=warn msg=unable to retrieve charge intent=%s charge=%s err=%v", intentID, pi.LatestCharge, err)
		} else {
			method = charge.MethodType
			country = charge.Country
			cardBrand = charge.CardBrand
			funding = charge.Funding
			// receipt_email is not always populated; the billing details on
			// the charge are the second place Stripe records the address
			if email == "" {
				email = charge.Email
			}
		}
	}

	d := &domain.Donation{
		PaymentIntent: intentID,
		Name:          name,
		Email:         email,
		Amount:        amount,
		Currency:      currency,
		Method:        method,
		Country:       country,
		CardBrand:     cardBrand,
		Funding:       funding,
		Raw:           string(pi.Raw),
	}
	if err := s.donations.UpsertSucceeded(ctx, d); err != nil {
		s.loggerf("level=error msg=donation upsert failed intent=%s err=%v", intentID, err)
		return fmt.Errorf("save donation: %w", err)
	}

	s.loggerf("level=info msg=donation saved after webhook intent=%s email=%s amount=%s currency=%s method=%s country=%s",
		intentID, email, amount.StringFixed(2), strings.ToUpper(currency), method, country)

	s.sendReceipt(ctx, intentID, name, email, amount, currency, locale)
	return nil
}

// sendReceipt claims the notification flag before dispatching so that a
// replayed event never emails the donor twice. Mail failures are logged and
// swallowed; the webhook acknowledgement never depends on delivery.
func (s *Service) sendReceipt(ctx context.Context, intentID, name, email string, amount decimal.Decimal, currency, locale string) {
	if email == "" {
		return
	}
	claimed, err := s.donations.ClaimNotification(ctx, intentID)
	if err != nil {
		s.loggerf("level=warn msg=receipt claim failed intent=%s err=%v", intentID, err)
		return
	}
	if !claimed {
		s.loggerf("level=info msg=receipt already sent intent=%s", intentID)
		return
	}

	err = s.mailer.SendReceipt(ctx, mailer.Receipt{
		Email:         email,
		Name:          name,
		Amount:        amount,
		Currency:      currency,
		TransactionID: intentID,
		Locale:        locale,
	})
	if err != nil {
		s.loggerf("level=warn msg=error sending receipt email intent=%s err=%v", intentID, err)
		return
	}
	s.loggerf("level=info msg=receipt email sent email=%s intent=%s locale=%s", email, intentID, locale)
}

func (s *Service) reconcileRefunded(ctx context.Context, intentID string) {
	if intentID == "" {
		s.loggerf("level=warn msg=refund event without payment intent")
		return
	}
	found, err := s.donations.MarkRefunded(ctx, intentID)
	if err != nil {
		s.loggerf("level=warn msg=error processing refund webhook intent=%s err=%v", intentID, err)
		return
	}
	if !found {
		s.loggerf("level=info msg=refund for unknown intent ignored intent=%s", intentID)
		return
	}
	s.loggerf("level=info msg=donation marked as refunded intent=%s", intentID)
}

// SessionDetails loads confirmation-page data after the hosted-page
// redirect. Failures are the caller's to tolerate; the page renders empty.
func (s *Service) SessionDetails(ctx context.Context, sessionID string) (*SessionDetails, error) {
	sess, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionDetails{
		Amount:        decimal.NewFromInt(sess.AmountMinor).Shift(-2).StringFixed(2),
		Currency:      strings.ToUpper(sess.Currency),
		TransactionID: sess.PaymentIntent,
	}, nil
}

func parseAmount(raw interface{}) (decimal.Decimal, error) {
	var str string
	switch v := raw.(type) {
	case nil:
		return decimal.Zero, ErrInvalidAmount
	case string:
		str = strings.TrimSpace(v)
	case json.Number:
		str = v.String()
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, ErrInvalidAmount
	}
	if str == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
