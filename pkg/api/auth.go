package api

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthenticated is returned by Authenticator implementations when the
// request carries no acceptable credential.
var ErrUnauthenticated = errors.New("missing or invalid credentials")

// Authenticator validates the credential on an inbound request. The intake
// surface is patient-facing, so deployments typically front it with an
// identity proxy and pass a service token here.
type Authenticator interface {
	Authenticate(r *http.Request) error
}

// StaticToken authenticates requests bearing a fixed token in the
// Authorization header.
type StaticToken string

// Authenticate implements Authenticator.
func (t StaticToken) Authenticate(r *http.Request) error {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ErrUnauthenticated
	}
	if subtle.ConstantTimeCompare([]byte(raw), []byte(t)) != 1 {
		return ErrUnauthenticated
	}
	return nil
}

// AllowAll accepts every request. For local development only.
type AllowAll struct{}

// Authenticate implements Authenticator.
func (AllowAll) Authenticate(*http.Request) error { return nil }
