package auth

import (
	"context"
	"fmt"
	"strings"
)

// DevUID is the actor every static-key token resolves to.
const DevUID = "lineup-dev"

// StaticVerifier accepts a single configured API key, for local development
// and tests. Tokens of the form "<key>:<uid>" resolve to that uid so local
// clients can act as different users; a bare key resolves to DevUID.
type StaticVerifier struct {
	key string
}

func NewStaticVerifier(key string) *StaticVerifier {
	return &StaticVerifier{key: key}
}

func (v *StaticVerifier) Verify(ctx context.Context, token string) (string, error) {
	if token == v.key {
		return DevUID, nil
	}
	if uid, ok := strings.CutPrefix(token, v.key+":"); ok && uid != "" {
		return uid, nil
	}
	return "", fmt.Errorf("%w: unknown token", ErrUnauthorized)
}
