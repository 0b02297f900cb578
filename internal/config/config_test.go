package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.DonationMin.Equal(decimal.NewFromInt(1)))
	require.True(t, cfg.DonationMax.IsZero())
	require.Equal(t, "pln", cfg.DonationCurrency)
	require.Equal(t, "uk", cfg.DefaultLocale)
}

func TestLoad_MaxBelowMin(t *testing.T) {
	t.Setenv("DONATION_MIN", "10")
	t.Setenv("DONATION_MAX", "5")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BadCurrency(t *testing.T) {
	t.Setenv("DONATION_CURRENCY", "zloty")
	_, err := Load()
	require.Error(t, err)
}

func TestLoad_ProdRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("STRIPE_SECRET_KEY", "sk_live_x")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_x")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.AppEnv)
}

func TestLoad_BCCList(t *testing.T) {
	t.Setenv("DONATIONS_BCC", "a@example.com, b@example.com,")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.DonationsBCC)
}
