package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrInvalidSignature is returned for cookie values that are malformed
// or whose MAC does not verify.
var ErrInvalidSignature = errors.New("invalid session signature")

// Signer authenticates session tokens on their way through the client.
// The cookie carries "<token>.<mac>"; a forged or tampered cookie is
// rejected before any store lookup happens.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the cookie value for a token.
func (s *Signer) Sign(token string) string {
	return token + "." + s.mac(token)
}

// Verify checks a cookie value and returns the embedded token.
func (s *Signer) Verify(value string) (string, error) {
	token, mac, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return "", ErrInvalidSignature
	}
	if !hmac.Equal([]byte(mac), []byte(s.mac(token))) {
		return "", ErrInvalidSignature
	}
	return token, nil
}

func (s *Signer) mac(token string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(token))
	return hex.EncodeToString(h.Sum(nil))
}
