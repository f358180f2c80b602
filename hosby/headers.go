package hosby

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/hosby/hosby-go/httpsign"
)

// Request header names of the canonical wire profile.
const (
	HeaderCSRFToken = "x-csrf-token"
	HeaderSignature = "x-signature"
	HeaderTimestamp = "x-timestamp"
	HeaderAPIKey    = "x-api-key"
	HeaderRequestID = "x-request-id"

	HeaderPopulate = "x-populate"
	HeaderSkip     = "x-skip"
	HeaderLimit    = "x-limit"
	HeaderQuery    = "x-query"
	HeaderSlice    = "x-slice"
)

// buildHeaders assembles the full authenticated header set for one
// request. The signature and timestamp are computed fresh on every call
// because the signed payload binds the API key to the timestamp.
//
// buildHeaders reads token state but never mutates it.
func (c *Client) buildHeaders(token, bearer string, opts *QueryOptions) (http.Header, error) {
	now := c.clock.Now()

	// The signer is the authority on key identity: the same key id goes
	// into the signed payload and the api-key header.
	keyID := c.signer.KeyID()

	sig, err := c.signer.Sign(httpsign.Payload(keyID, c.cfg.ProjectID, c.cfg.UserID, now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	h.Set(HeaderSignature, sig)
	h.Set(HeaderTimestamp, strconv.FormatInt(now.UnixMilli(), 10))
	h.Set(HeaderAPIKey, composeAPIKey(keyID, c.cfg.ProjectID, c.cfg.UserID))
	h.Set(HeaderRequestID, uuid.NewString())

	if token != "" {
		h.Set(HeaderCSRFToken, token)
	}

	if bearer != "" {
		h.Set("Authorization", "Bearer "+bearer)
	}

	if err := applyQueryHeaders(h, opts); err != nil {
		return nil, err
	}

	return h, nil
}

// composeAPIKey builds the wire-level API key: {keyID}_{projectID}_{userID}.
func composeAPIKey(keyID, projectID, userID string) string {
	return keyID + "_" + projectID + "_" + userID
}
