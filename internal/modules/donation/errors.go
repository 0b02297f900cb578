package donation

import "errors"

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrAmountTooSmall   = errors.New("amount below minimum")
	ErrAmountTooLarge   = errors.New("amount above maximum")
	ErrGateway          = errors.New("payment gateway error")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrIntentFetch      = errors.New("unable to retrieve payment intent")
)
