// Package session implements the session manager over swappable stores.
// Tokens are opaque bearer credentials: 32 bytes from crypto/rand encoded as
// unpadded base64url, so they carry no principal data and cannot be forged or
// decoded.
package session

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

const tokenBytes = 32

// newToken draws a fresh high-entropy token from the OS CSPRNG.
func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
