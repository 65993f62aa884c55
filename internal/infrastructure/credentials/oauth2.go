package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/uniqo-ge/payment-server/internal/config"
	"github.com/uniqo-ge/payment-server/internal/domain"
)

const schemeOAuth2 = "oauth2"

// ClientCredentialsProvider exchanges client id/secret for a bearer token at
// the gateway's token endpoint and caches it until expiry. Concurrent
// refreshes coalesce into a single upstream call.
type ClientCredentialsProvider struct {
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client
	now          func() time.Time

	mu     sync.Mutex
	cached domain.Credential
	group  singleflight.Group
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func NewClientCredentialsProvider(cfg config.AuthConfig) *ClientCredentialsProvider {
	return &ClientCredentialsProvider{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		tokenURL:     cfg.TokenURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		now:          time.Now,
	}
}

func (p *ClientCredentialsProvider) Credential(ctx context.Context) (domain.Credential, error) {
	p.mu.Lock()
	cached := p.cached
	p.mu.Unlock()

	if cached.Token != "" && !cached.Expired(p.now()) {
		return cached, nil
	}

	v, err, _ := p.group.Do("token", func() (any, error) {
		// Another caller may have refreshed while this one waited.
		p.mu.Lock()
		cached := p.cached
		p.mu.Unlock()
		if cached.Token != "" && !cached.Expired(p.now()) {
			return cached, nil
		}

		cred, err := p.fetchToken(ctx)
		if err != nil {
			return domain.Credential{}, err
		}

		p.mu.Lock()
		p.cached = cred
		p.mu.Unlock()
		return cred, nil
	})
	if err != nil {
		return domain.Credential{}, err
	}
	return v.(domain.Credential), nil
}

func (p *ClientCredentialsProvider) fetchToken(ctx context.Context) (domain.Credential, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return domain.Credential{}, &AuthError{
			Scheme:  schemeOAuth2,
			Message: "error creating token request",
			Err:     err,
		}
	}
	req.SetBasicAuth(p.clientID, p.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	issuedAt := p.now()

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return domain.Credential{}, &AuthError{
			Scheme:  schemeOAuth2,
			Message: "token endpoint unreachable",
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.Credential{}, &AuthError{
			Scheme:  schemeOAuth2,
			Message: fmt.Sprintf("token endpoint returned status %d: %s", resp.StatusCode, string(body)),
		}
	}

	var tokenResp tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return domain.Credential{}, &AuthError{
			Scheme:  schemeOAuth2,
			Message: "error decoding token response",
			Err:     err,
		}
	}

	if tokenResp.AccessToken == "" {
		return domain.Credential{}, &AuthError{
			Scheme:  schemeOAuth2,
			Message: "token response missing access_token",
		}
	}

	return domain.Credential{
		Scheme:    domain.SchemeBearer,
		Token:     tokenResp.AccessToken,
		ExpiresAt: issuedAt.Add(time.Duration(tokenResp.ExpiresIn) * time.Second),
	}, nil
}
