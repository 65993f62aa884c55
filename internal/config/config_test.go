package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniqo-ge/payment-server/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PAYMENT_PRIMARY__ENV", "test")
	t.Setenv("PAYMENT_SERVER__PORT", "4000")
	t.Setenv("PAYMENT_SERVER__READ_TIMEOUT", "15s")
	t.Setenv("PAYMENT_SERVER__WRITE_TIMEOUT", "15s")
	t.Setenv("PAYMENT_SERVER__IDLE_TIMEOUT", "60s")
	t.Setenv("PAYMENT_GATEWAY__API_URL", "https://api.bog.ge")
	t.Setenv("PAYMENT_GATEWAY__MERCHANT_ID", "merchant-1")
	t.Setenv("PAYMENT_GATEWAY__REDIRECT_URL", "https://pay.uniqo.ge/api/payments/callback")
	t.Setenv("PAYMENT_GATEWAY__FRONTEND_URL", "https://uniqo.ge")
	t.Setenv("PAYMENT_GATEWAY__CONN_TIMEOUT", "30s")
	t.Setenv("PAYMENT_AUTH__SCHEME", "oauth2")
	t.Setenv("PAYMENT_AUTH__CLIENT_ID", "client-1")
	t.Setenv("PAYMENT_AUTH__CLIENT_SECRET", "secret-1")
	t.Setenv("PAYMENT_AUTH__TOKEN_URL", "https://oauth2.bog.ge/auth/realms/bog/protocol/openid-connect/token")
}

func TestLoadConfig_Success(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PAYMENT_LOGGER__LEVEL", "debug")
	t.Setenv("PAYMENT_CORS__ALLOWED_ORIGINS", "https://uniqo.ge,https://www.uniqo.ge")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://api.bog.ge", cfg.Gateway.APIURL)
	assert.Equal(t, "merchant-1", cfg.Gateway.MerchantID)
	assert.Equal(t, "oauth2", cfg.Auth.Scheme)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, []string{"https://uniqo.ge", "https://www.uniqo.ge"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_MissingRequiredValue(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PAYMENT_GATEWAY__MERCHANT_ID", "")

	_, err := config.LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_RejectsUnknownAuthScheme(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PAYMENT_AUTH__SCHEME", "mtls")

	_, err := config.LoadConfig()
	require.Error(t, err)
}
