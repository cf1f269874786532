package goSession

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

// signerSalt namespaces the derived signing key so tokens are not portable
// across differently-salted deployments sharing a secret.
const signerSalt = "gosession"

// Signer produces and verifies tamper-evident signatures over session
// identifiers. The signing key is derived once as HMAC-SHA256(secret, salt);
// a token is "<id>.<base64url(HMAC-SHA256(derivedKey, id))>".
//
// Signer instances are immutable after construction and safe for concurrent
// use.
type Signer struct {
	key []byte
}

// NewSigner derives the signing key from secret. An empty secret is a
// configuration error, not a signature failure.
func NewSigner(secret []byte) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecretKey
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(signerSalt))
	return &Signer{key: mac.Sum(nil)}, nil
}

// Sign wraps a raw identifier with its signature.
func (s *Signer) Sign(rawID string) string {
	return rawID + "." + s.signature(rawID)
}

// Verify checks token integrity and recovers the raw identifier. It returns
// [ErrBadSignature] for any malformed, truncated, or forged token.
func (s *Signer) Verify(token string) (string, error) {
	idx := strings.LastIndexByte(token, '.')
	if idx <= 0 || idx == len(token)-1 {
		return "", ErrBadSignature
	}
	rawID, sig := token[:idx], token[idx+1:]
	if subtle.ConstantTimeCompare([]byte(sig), []byte(s.signature(rawID))) != 1 {
		return "", ErrBadSignature
	}
	return rawID, nil
}

func (s *Signer) signature(rawID string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(rawID))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
