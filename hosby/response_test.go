package hosby

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseDecode(t *testing.T) {
	t.Run("decodes data payload", func(t *testing.T) {
		r := Response{Data: json.RawMessage(`{"name":"ada"}`)}

		var out struct {
			Name string `json:"name"`
		}
		require.NoError(t, r.Decode(&out))
		assert.Equal(t, "ada", out.Name)
	})

	t.Run("null data leaves target untouched", func(t *testing.T) {
		r := Response{Data: json.RawMessage(`null`)}

		out := "unchanged"
		require.NoError(t, r.Decode(&out))
		assert.Equal(t, "unchanged", out)
	})

	t.Run("missing data leaves target untouched", func(t *testing.T) {
		var r Response

		out := 42
		require.NoError(t, r.Decode(&out))
		assert.Equal(t, 42, out)
	})

	t.Run("type mismatch errors", func(t *testing.T) {
		r := Response{Data: json.RawMessage(`"text"`)}

		var out int
		assert.Error(t, r.Decode(&out))
	})
}

func TestResponseEnvelope(t *testing.T) {
	raw := []byte(`{"success":true,"status":200,"message":"ok","data":[1,2,3]}`)

	var r Response
	require.NoError(t, json.Unmarshal(raw, &r))

	assert.True(t, r.Success)
	assert.Equal(t, 200, r.Status)
	assert.Equal(t, "ok", r.Message)

	var data []int
	require.NoError(t, r.Decode(&data))
	assert.Equal(t, []int{1, 2, 3}, data)
}
