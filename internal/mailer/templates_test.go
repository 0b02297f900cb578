package mailer

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func receiptFixture(locale string) Receipt {
	return Receipt{
		Email:         "olena@example.com",
		Name:          "Olena",
		Amount:        decimal.RequireFromString("77.00"),
		Currency:      "pln",
		TransactionID: "pi_123",
		Locale:        locale,
	}
}

func TestRenderReceipt_Localized(t *testing.T) {
	subject, text, html, err := renderReceipt(receiptFixture("uk"), "contact@example.com", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Дякуємо! Оплату отримано" {
		t.Fatalf("unexpected subject: %s", subject)
	}
	for _, body := range []string{text, html} {
		if !strings.Contains(body, "77.00") || !strings.Contains(body, "PLN") {
			t.Fatalf("body missing amount: %s", body)
		}
		if !strings.Contains(body, "pi_123") {
			t.Fatalf("body missing transaction id: %s", body)
		}
	}
}

func TestRenderReceipt_FallbackLocale(t *testing.T) {
	subject, _, _, err := renderReceipt(receiptFixture("ja"), "contact@example.com", "uk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Дякуємо! Оплату отримано" {
		t.Fatalf("expected fallback to default locale, got subject %q", subject)
	}
}

func TestRenderReceipt_RegionalTag(t *testing.T) {
	subject, _, _, err := renderReceipt(receiptFixture("pl-PL"), "contact@example.com", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "Dziękujemy! Płatność otrzymana" {
		t.Fatalf("expected pl catalog for pl-PL, got %q", subject)
	}
}

func TestRenderReceipt_EmptyNameUsesPlaceholder(t *testing.T) {
	r := receiptFixture("en")
	r.Name = ""
	_, text, _, err := renderReceipt(r, "contact@example.com", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Thank you, friend!") {
		t.Fatalf("expected placeholder greeting, got %q", text)
	}
}

func TestConsoleMailer_EmptyEmailNoop(t *testing.T) {
	m := NewConsoleMailer(false)
	if err := m.SendReceipt(context.Background(), Receipt{}); err != nil {
		t.Fatalf("console mailer must never fail: %v", err)
	}
}
