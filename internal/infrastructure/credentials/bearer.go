package credentials

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/uniqo-ge/payment-server/internal/config"
	"github.com/uniqo-ge/payment-server/internal/domain"
)

const (
	schemeSignedBearer = "signed_bearer"

	defaultAssertionTTL = 5 * time.Minute
	defaultAudience     = "bog-checkout"
)

// SignedBearerProvider builds a short-lived signed assertion per call and
// uses it directly as the bearer credential. Nothing is cached.
type SignedBearerProvider struct {
	clientID string
	secret   []byte
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewSignedBearerProvider(cfg config.AuthConfig) *SignedBearerProvider {
	audience := cfg.Audience
	if audience == "" {
		audience = defaultAudience
	}
	ttl := cfg.TokenTTL
	if ttl == 0 {
		ttl = defaultAssertionTTL
	}
	return &SignedBearerProvider{
		clientID: cfg.ClientID,
		secret:   []byte(cfg.ClientSecret),
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (p *SignedBearerProvider) Credential(_ context.Context) (domain.Credential, error) {
	issuedAt := p.now()
	expiresAt := issuedAt.Add(p.ttl)

	claims := jwt.RegisteredClaims{
		Issuer:    p.clientID,
		Audience:  jwt.ClaimStrings{p.audience},
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return domain.Credential{}, &AuthError{
			Scheme:  schemeSignedBearer,
			Message: "error signing assertion",
			Err:     err,
		}
	}

	return domain.Credential{
		Scheme:    domain.SchemeBearer,
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}
