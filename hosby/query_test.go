package hosby

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestEncodeFilters(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, encodeFilters(nil))
	})

	t.Run("single filter", func(t *testing.T) {
		got := encodeFilters([]Filter{{Field: "name", Value: "test"}})

		assert.Equal(t, "name=test", got)
	})

	t.Run("repeated field keeps both values", func(t *testing.T) {
		got := encodeFilters([]Filter{
			{Field: "status", Value: "active"},
			{Field: "status", Value: "pending"},
		})

		assert.Equal(t, "status=active&status=pending", got)
	})

	t.Run("values are percent-encoded", func(t *testing.T) {
		got := encodeFilters([]Filter{{Field: "name", Value: "a b&c"}})

		assert.Equal(t, "name=a+b%26c", got)
	})

	t.Run("non-string values are JSON-encoded", func(t *testing.T) {
		got := encodeFilters([]Filter{
			{Field: "age", Value: 42},
			{Field: "active", Value: true},
		})

		assert.Equal(t, "active=true&age=42", got)
	})
}

func TestFilterValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "s", want: "s"},
		{name: "nil", value: nil, want: ""},
		{name: "int", value: 7, want: "7"},
		{name: "float", value: 1.5, want: "1.5"},
		{name: "bool", value: false, want: "false"},
		{name: "map", value: map[string]any{"$gt": 5}, want: `{"$gt":5}`},
		{name: "slice", value: []int{1, 2}, want: "[1,2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterValue(tt.value))
		})
	}
}

func TestApplyQueryHeaders(t *testing.T) {
	t.Run("nil options sets nothing", func(t *testing.T) {
		h := http.Header{}

		require.NoError(t, applyQueryHeaders(h, nil))
		assert.Empty(t, h)
	})

	t.Run("all options", func(t *testing.T) {
		h := http.Header{}

		err := applyQueryHeaders(h, &QueryOptions{
			Populate: []string{"author", "tags"},
			Skip:     intPtr(0),
			Limit:    intPtr(25),
			Query:    map[string]any{"age": map[string]any{"$gte": 18}},
			Slice:    map[string]any{"comments": 5},
		})
		require.NoError(t, err)

		assert.Equal(t, `["author","tags"]`, h.Get(HeaderPopulate))
		assert.Equal(t, "0", h.Get(HeaderSkip))
		assert.Equal(t, "25", h.Get(HeaderLimit))
		assert.Equal(t, `{"age":{"$gte":18}}`, h.Get(HeaderQuery))
		assert.Equal(t, `{"comments":5}`, h.Get(HeaderSlice))
	})

	t.Run("zero skip is still sent", func(t *testing.T) {
		h := http.Header{}

		require.NoError(t, applyQueryHeaders(h, &QueryOptions{Skip: intPtr(0)}))
		assert.Equal(t, "0", h.Get(HeaderSkip))
	})

	t.Run("unset fields omitted", func(t *testing.T) {
		h := http.Header{}

		require.NoError(t, applyQueryHeaders(h, &QueryOptions{Limit: intPtr(10)}))

		assert.Empty(t, h.Get(HeaderPopulate))
		assert.Empty(t, h.Get(HeaderSkip))
		assert.Empty(t, h.Get(HeaderQuery))
		assert.Empty(t, h.Get(HeaderSlice))
		assert.Equal(t, "10", h.Get(HeaderLimit))
	})
}
