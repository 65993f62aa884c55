package credentials

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/uniqo-ge/payment-server/internal/config"
	"github.com/uniqo-ge/payment-server/internal/domain"
)

const schemeSignedBasic = "signed_basic"

// SignedBasicProvider signs clientID+timestamp with the client secret and
// presents the result as a Basic authorization header. Regenerated per call.
type SignedBasicProvider struct {
	clientID string
	secret   []byte
	now      func() time.Time
}

func NewSignedBasicProvider(cfg config.AuthConfig) *SignedBasicProvider {
	return &SignedBasicProvider{
		clientID: cfg.ClientID,
		secret:   []byte(cfg.ClientSecret),
		now:      time.Now,
	}
}

func (p *SignedBasicProvider) Credential(_ context.Context) (domain.Credential, error) {
	now := p.now()
	timestamp := fmt.Sprintf("%d", now.Unix())

	mac := hmac.New(sha256.New, p.secret)
	mac.Write([]byte(p.clientID + timestamp))
	signature := hex.EncodeToString(mac.Sum(nil))

	header := base64.StdEncoding.EncodeToString(
		[]byte(fmt.Sprintf("%s:%s:%s", p.clientID, signature, timestamp)),
	)

	return domain.Credential{
		Scheme:    domain.SchemeBasic,
		Token:     header,
		ExpiresAt: now.Add(time.Minute),
	}, nil
}
