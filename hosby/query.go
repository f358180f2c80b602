package hosby

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Filter constrains a query by field value. Filters sharing the same
// field are grouped and sent as repeated query-string parameters, not
// overwritten.
type Filter struct {
	Field string
	Value any
}

// QueryOptions tune a read operation. They travel as discrete request
// headers rather than query-string parameters.
type QueryOptions struct {
	// Populate lists relation fields to expand.
	Populate []string

	// Skip and Limit page through results. Nil means unset, so a zero
	// value can still be sent explicitly.
	Skip  *int
	Limit *int

	// Query is an extra server-side query sub-document.
	Query map[string]any

	// Slice bounds array fields in the result.
	Slice map[string]any
}

// Params carries the optional query surface of a request.
type Params struct {
	Filters []Filter
	Options *QueryOptions
}

// encodeFilters appends filters as repeated, percent-encoded query
// parameters grouped by field name.
func encodeFilters(filters []Filter) string {
	if len(filters) == 0 {
		return ""
	}

	q := url.Values{}
	for _, f := range filters {
		q.Add(f.Field, filterValue(f.Value))
	}

	return q.Encode()
}

// filterValue stringifies a filter value: strings pass through, anything
// else is JSON-encoded.
func filterValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}

		return string(raw)
	}
}

// applyQueryHeaders sets the discrete query-option headers.
func applyQueryHeaders(h http.Header, opts *QueryOptions) error {
	if opts == nil {
		return nil
	}

	if len(opts.Populate) > 0 {
		raw, err := json.Marshal(opts.Populate)
		if err != nil {
			return fmt.Errorf("%w: encode populate option: %v", ErrValidation, err)
		}

		h.Set(HeaderPopulate, string(raw))
	}

	if opts.Skip != nil {
		h.Set(HeaderSkip, strconv.Itoa(*opts.Skip))
	}

	if opts.Limit != nil {
		h.Set(HeaderLimit, strconv.Itoa(*opts.Limit))
	}

	if len(opts.Query) > 0 {
		raw, err := json.Marshal(opts.Query)
		if err != nil {
			return fmt.Errorf("%w: encode query option: %v", ErrValidation, err)
		}

		h.Set(HeaderQuery, string(raw))
	}

	if len(opts.Slice) > 0 {
		raw, err := json.Marshal(opts.Slice)
		if err != nil {
			return fmt.Errorf("%w: encode slice option: %v", ErrValidation, err)
		}

		h.Set(HeaderSlice, string(raw))
	}

	return nil
}
