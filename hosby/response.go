package hosby

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/tidwall/gjson"
)

// Response is the standard Hosby response envelope.
type Response struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Decode unmarshals the envelope's data payload into v. A missing or
// null payload leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(r.Data) == 0 || bytes.Equal(r.Data, []byte("null")) {
		return nil
	}

	return json.Unmarshal(r.Data, v)
}

// errorFromResponse normalizes a non-2xx response. The message comes
// from the body's "message" field when the body is JSON, falling back to
// the HTTP status text; any remaining body fields are preserved in
// Extra.
func errorFromResponse(status int, body []byte) *Error {
	e := newError(status, "", nil)

	var extra map[string]any
	if err := json.Unmarshal(body, &extra); err == nil && extra != nil {
		if msg := gjson.GetBytes(body, "message"); msg.Exists() {
			e.Message = msg.String()
		}

		delete(extra, "success")
		delete(extra, "status")
		delete(extra, "message")
		if len(extra) > 0 {
			e.Extra = extra
		}
	}

	if e.Message == "" {
		e.Message = http.StatusText(status)
	}

	return e
}
