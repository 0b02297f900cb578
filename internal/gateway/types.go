package gateway

// Neutral views of the gateway objects the donation flow needs. Keeping the
// stripe-go types out of the service layer lets tests run against fakes.

type CheckoutParams struct {
	AmountMinor int64
	Currency    string
	DonorName   string
	DonorEmail  string
	DonorLocale string
	SuccessURL  string
	CancelURL   string
}

type CheckoutSession struct {
	ID            string
	PaymentIntent string
	AmountMinor   int64
	Currency      string
}

type PaymentIntent struct {
	ID           string
	AmountMinor  int64
	Currency     string
	ReceiptEmail string
	Metadata     map[string]string
	LatestCharge string
	Raw          []byte
}

type ChargeDetails struct {
	MethodType string
	CardBrand  string
	Funding    string
	Country    string
	Email      string
}

// Event is a verified webhook event. ObjectID carries data.object.id;
// PaymentIntentID carries data.object.payment_intent for charge events.
type Event struct {
	ID              string
	Type            string
	ObjectID        string
	PaymentIntentID string
}
