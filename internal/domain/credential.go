package domain

import (
	"net/http"
	"time"
)

// Credential is a short-lived authorization artifact for outbound gateway
// calls. Token carries the opaque value without the scheme prefix.
type Credential struct {
	Scheme    string
	Token     string
	ExpiresAt time.Time
}

const (
	SchemeBearer = "Bearer"
	SchemeBasic  = "Basic"
)

// Expired reports whether the credential is no longer usable at now.
func (c Credential) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Apply sets the Authorization header on an outbound request.
func (c Credential) Apply(req *http.Request) {
	req.Header.Set("Authorization", c.Scheme+" "+c.Token)
}
