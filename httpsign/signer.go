// Package httpsign produces the per-request signatures carried in the
// x-signature header of authenticated Hosby API calls.
//
// Every request signs the composed payload
//
//	{apiKeyID}_{projectID}_{userID}:{unixMilli}
//
// with the project's RSA private key (SHA-256 digest, PKCS #1 v1.5). The
// signature binds the API key to the request timestamp, so it is
// recomputed on every call and never cached.
package httpsign

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"
)

// Minimum RSA key size in bits.
const minRSAKeyBits = 2048

// Signer creates signatures over composed request payloads.
type Signer interface {
	// Sign produces a base64-encoded signature over the given payload.
	Sign(payload []byte) (string, error)

	// KeyID returns the API key identifier bound to this signer.
	KeyID() string
}

// Payload composes the string that is signed for a request issued at ts
// on behalf of the given identity.
func Payload(apiKeyID, projectID, userID string, ts time.Time) []byte {
	return fmt.Appendf(nil, "%s_%s_%s:%d", apiKeyID, projectID, userID, ts.UnixMilli())
}

type rsaSigner struct {
	key   *rsa.PrivateKey
	keyID string
}

// NewRSASigner creates a Signer using RSASSA-PKCS1-v1_5 with SHA-256.
func NewRSASigner(keyID string, key *rsa.PrivateKey) (Signer, error) {
	if key == nil {
		return nil, fmt.Errorf("%w: rsa private key must not be nil", ErrInvalidKey)
	}

	if key.N.BitLen() < minRSAKeyBits {
		return nil, fmt.Errorf("%w: rsa key must be at least %d bits", ErrInvalidKey, minRSAKeyBits)
	}

	return &rsaSigner{key: key, keyID: keyID}, nil
}

func (s *rsaSigner) Sign(payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", ErrEmptyPayload
	}

	digest := sha256.Sum256(payload)

	sig, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSignFailed, err)
	}

	if len(sig) == 0 {
		return "", fmt.Errorf("%w: empty signature", ErrSignFailed)
	}

	return base64.StdEncoding.EncodeToString(sig), nil
}

func (s *rsaSigner) KeyID() string { return s.keyID }
