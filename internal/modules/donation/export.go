package donation

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
)

var currencySymbols = map[string]string{
	"pln": "zł",
	"usd": "$",
	"eur": "€",
}

var exportHeader = []string{
	"created_at", "name", "email", "amount", "currency", "status",
	"payment_intent", "method", "country",
}

// WriteCSV streams every donation row, newest first.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer) error {
	donations, err := s.donations.ListAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, d := range donations {
		symbol := currencySymbols[strings.ToLower(d.Currency)]
		amount := symbol + d.Amount.StringFixed(2) + " " + strings.ToUpper(d.Currency)
		record := []string{
			d.CreatedAt.Format("2006-01-02 15:04:05"),
			d.Name,
			d.Email,
			amount,
			strings.ToUpper(d.Currency),
			string(d.Status),
			d.PaymentIntent,
			d.Method,
			d.Country,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
