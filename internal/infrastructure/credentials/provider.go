package credentials

import (
	"errors"
	"fmt"

	"github.com/uniqo-ge/payment-server/internal/application"
	"github.com/uniqo-ge/payment-server/internal/config"
)

// AuthError wraps a credential acquisition failure.
type AuthError struct {
	Scheme  string
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error [%s]: %s", e.Scheme, e.Message)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func IsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	ok := errors.As(err, &authErr)
	return authErr, ok
}

// NewProvider selects the credential strategy from configuration.
func NewProvider(cfg config.AuthConfig) (application.CredentialProvider, error) {
	switch cfg.Scheme {
	case "oauth2":
		if cfg.TokenURL == "" {
			return nil, fmt.Errorf("auth scheme oauth2 requires a token_url")
		}
		return NewClientCredentialsProvider(cfg), nil
	case "signed_bearer":
		return NewSignedBearerProvider(cfg), nil
	case "signed_basic":
		return NewSignedBasicProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown auth scheme %q", cfg.Scheme)
	}
}
