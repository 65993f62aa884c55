package credentials

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniqo-ge/payment-server/internal/config"
	"github.com/uniqo-ge/payment-server/internal/domain"
)

func TestSignedBearer_ProducesVerifiableAssertion(t *testing.T) {
	provider := NewSignedBearerProvider(config.AuthConfig{
		Scheme:       "signed_bearer",
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		Audience:     "bog-checkout",
	})

	issuedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return issuedAt }

	cred, err := provider.Credential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SchemeBearer, cred.Scheme)
	assert.Equal(t, issuedAt.Add(5*time.Minute), cred.ExpiresAt)

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(cred.Token, &claims, func(t *jwt.Token) (any, error) {
		return []byte("secret-1"), nil
	}, jwt.WithTimeFunc(func() time.Time { return issuedAt }))
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "client-1", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"bog-checkout"}, claims.Audience)
	assert.Equal(t, issuedAt.Unix(), claims.ExpiresAt.Unix()-300)
}

func TestSignedBearer_RegeneratedEveryCall(t *testing.T) {
	provider := NewSignedBearerProvider(config.AuthConfig{
		Scheme:       "signed_bearer",
		ClientID:     "client-1",
		ClientSecret: "secret-1",
	})

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	provider.now = func() time.Time { return now }

	first, err := provider.Credential(context.Background())
	require.NoError(t, err)

	now = now.Add(time.Minute)

	second, err := provider.Credential(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.Equal(t, first.ExpiresAt.Add(time.Minute), second.ExpiresAt)
}
