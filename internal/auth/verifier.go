// Package auth verifies bearer tokens before the core is invoked. Token
// format is owned by the identity provider; the server only sees the
// Verifier contract.
package auth

import (
	"context"
	"errors"
)

var ErrUnauthorized = errors.New("unauthorized")

// Verifier resolves a bearer token to an authenticated uid.
type Verifier interface {
	Verify(ctx context.Context, token string) (uid string, err error)
}
