// Package pemutil normalizes private key material into canonical PEM form
// and parses it into crypto keys.
//
// Hosby distributes project keys as raw base64 strings, sometimes carrying
// an "sk_"/"pk_" vanity prefix and sometimes already ASCII-armored. Format
// accepts any of those shapes and always emits one canonical PEM block.
package pemutil

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

// DefaultBlockType is the PEM block type used when none is specified.
const DefaultBlockType = "PRIVATE KEY"

// pemLineLength is the canonical PEM body line width.
const pemLineLength = 64

// ErrMalformedKey is returned when key material cannot be decoded.
var ErrMalformedKey = errors.New("pemutil: malformed private key")

// Format normalizes raw key material into a canonical PEM block of the
// given type. It strips a leading "sk_" or "pk_" prefix, removes any
// existing armor lines and whitespace, and re-chunks the base64 payload
// into 64-character lines.
//
// Format is a pure function and idempotent: formatting an already
// formatted key yields the same output. An empty input produces a block
// with no body lines; callers must guard against that.
func Format(raw, blockType string) string {
	if blockType == "" {
		blockType = DefaultBlockType
	}

	body := strings.TrimSpace(raw)
	for _, prefix := range []string{"sk_", "pk_"} {
		if strings.HasPrefix(body, prefix) {
			body = body[len(prefix):]
			break
		}
	}

	var payload strings.Builder
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "-----") {
			continue
		}

		// Collapse any remaining inner whitespace.
		for _, field := range strings.Fields(line) {
			payload.WriteString(field)
		}
	}

	var out strings.Builder
	fmt.Fprintf(&out, "-----BEGIN %s-----\n", blockType)

	b64 := payload.String()
	for i := 0; i < len(b64); i += pemLineLength {
		end := min(i+pemLineLength, len(b64))
		out.WriteString(b64[i:end])
		out.WriteByte('\n')
	}

	fmt.Fprintf(&out, "-----END %s-----\n", blockType)

	return out.String()
}

// ParseRSAPrivateKey normalizes raw key material with Format and parses it
// as an RSA private key. PKCS #8 is tried first, then PKCS #1.
func ParseRSAPrivateKey(raw string) (*rsa.PrivateKey, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedKey)
	}

	block, _ := pem.Decode([]byte(Format(raw, DefaultBlockType)))
	if block == nil || len(block.Bytes) == 0 {
		return nil, fmt.Errorf("%w: no PEM block found", ErrMalformedKey)
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA key (%T)", ErrMalformedKey, key)
		}

		return rsaKey, nil
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}

	return key, nil
}
