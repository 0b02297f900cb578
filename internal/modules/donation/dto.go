package donation

// CreateCheckoutRequest accepts amount as a JSON number or decimal string.
type CreateCheckoutRequest struct {
	Amount interface{} `json:"amount"`
	Name   string      `json:"name" example:"Olena"`
	Email  string      `json:"email" example:"olena@example.com"`
}

type CreateCheckoutResponse struct {
	ID string `json:"id" example:"cs_test_a1b2c3"`
}

type SessionDetails struct {
	Amount        string `json:"amount,omitempty" example:"77.00"`
	Currency      string `json:"currency,omitempty" example:"PLN"`
	TransactionID string `json:"transaction_id,omitempty" example:"pi_3Abc"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid amount"`
}
