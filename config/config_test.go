package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "INVOICE_TOPIC", "QUOTE_TTL", "TRANSACTION_CHARGE_RATE",
		"TRANSACTION_REFUND_CHARGE_RATE", "NOTA_DISPLAY_NAME", "CART_SVC_URL", "ANALYTICS_SVC_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8084", cfg.HTTPAddr)
	assert.Equal(t, "invoices", cfg.InvoiceTopic)
	assert.Equal(t, 30*time.Minute, cfg.QuoteTTL)
	assert.True(t, cfg.TransactionChargeRate.IsZero())
	assert.Equal(t, "None", cfg.NotaDisplayName)
	assert.Equal(t, "http://localhost:8084", cfg.CartSvcURL)
	assert.Equal(t, "http://localhost:8085", cfg.AnalyticsSvcURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("QUOTE_TTL", "5m")
	t.Setenv("TRANSACTION_CHARGE_RATE", "1.75")
	t.Setenv("TRANSACTION_REFUND_CHARGE_RATE", "0.5")
	t.Setenv("NOTA_DISPLAY_NAME", "Skip")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.QuoteTTL)
	assert.Equal(t, "1.75", cfg.TransactionChargeRate.String())
	assert.Equal(t, "0.5", cfg.TransactionRefundChargeRate.String())
	assert.Equal(t, "Skip", cfg.NotaDisplayName)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad_ttl", key: "QUOTE_TTL", value: "soon"},
		{name: "bad_charge_rate", key: "TRANSACTION_CHARGE_RATE", value: "two"},
		{name: "bad_refund_rate", key: "TRANSACTION_REFUND_CHARGE_RATE", value: "1,5"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv(testCase.key, testCase.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
