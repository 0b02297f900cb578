package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
)

type receiptCatalog struct {
	subject string
	text    string
	html    string
}

// Per-locale receipt templates. An unknown locale falls back to the
// configured default, then to "en".
var receiptCatalogs = map[string]receiptCatalog{
	"en": {
		subject: "Thank you! Payment received",
		text: "Thank you, {{or .Name \"friend\"}}!\n" +
			"We have received {{.Amount}} {{.Currency}}.\n" +
			"Transaction number: {{.TransactionID}}\n\n" +
			"This message was sent from an unattended address. Questions: {{.ContactEmail}}",
		html: "<p>Thank you, {{or .Name \"friend\"}}!</p>" +
			"<p>We have received <strong>{{.Amount}} {{.Currency}}</strong>.</p>" +
			"<p>Transaction number: {{.TransactionID}}</p>" +
			"<p>This message was sent from an unattended address. Questions: {{.ContactEmail}}</p>",
	},
	"uk": {
		subject: "Дякуємо! Оплату отримано",
		text: "Дякуємо, {{or .Name \"друже\"}}!\n" +
			"Ми отримали {{.Amount}} {{.Currency}}.\n" +
			"Номер транзакції: {{.TransactionID}}\n\n" +
			"Цей лист надіслано з адреси, яка не приймає відповіді. Питання: {{.ContactEmail}}",
		html: "<p>Дякуємо, {{or .Name \"друже\"}}!</p>" +
			"<p>Ми отримали <strong>{{.Amount}} {{.Currency}}</strong>.</p>" +
			"<p>Номер транзакції: {{.TransactionID}}</p>" +
			"<p>Цей лист надіслано з адреси, яка не приймає відповіді. Питання: {{.ContactEmail}}</p>",
	},
	"pl": {
		subject: "Dziękujemy! Płatność otrzymana",
		text: "Dziękujemy, {{or .Name \"przyjacielu\"}}!\n" +
			"Otrzymaliśmy {{.Amount}} {{.Currency}}.\n" +
			"Numer transakcji: {{.TransactionID}}\n\n" +
			"Ta wiadomość została wysłana z adresu, który nie przyjmuje odpowiedzi. Pytania: {{.ContactEmail}}",
		html: "<p>Dziękujemy, {{or .Name \"przyjacielu\"}}!</p>" +
			"<p>Otrzymaliśmy <strong>{{.Amount}} {{.Currency}}</strong>.</p>" +
			"<p>Numer transakcji: {{.TransactionID}}</p>" +
			"<p>Ta wiadomość została wysłana z adresu, który nie przyjmuje odpowiedzi. Pytania: {{.ContactEmail}}</p>",
	},
}

type receiptContext struct {
	Name          string
	Amount        string
	Currency      string
	TransactionID string
	ContactEmail  string
}

func renderReceipt(r Receipt, contactEmail, defaultLocale string) (subject, text, html string, err error) {
	cat, ok := receiptCatalogs[normalizeLocale(r.Locale)]
	if !ok {
		cat, ok = receiptCatalogs[normalizeLocale(defaultLocale)]
	}
	if !ok {
		cat = receiptCatalogs["en"]
	}

	ctx := receiptContext{
		Name:          r.Name,
		Amount:        r.Amount.StringFixed(2),
		Currency:      strings.ToUpper(r.Currency),
		TransactionID: r.TransactionID,
		ContactEmail:  contactEmail,
	}

	text, err = renderText(cat.text, ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("render receipt text: %w", err)
	}
	html, err = renderHTML(cat.html, ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("render receipt html: %w", err)
	}
	return cat.subject, text, html, nil
}

func renderText(tpl string, ctx receiptContext) (string, error) {
	t, err := texttemplate.New("receipt").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderHTML(tpl string, ctx receiptContext) (string, error) {
	t, err := template.New("receipt").Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// normalizeLocale maps language tags like "uk-UA" onto catalog keys.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(strings.ToLower(locale))
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return locale
}
