package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString_Unmarshal(t *testing.T) {
	type payload struct {
		Notes OptionalString `json:"notes"`
	}

	t.Run("field omitted", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Notes.Set)
		assert.Nil(t, p.Notes.Value)
	})

	t.Run("explicit null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &p))
		assert.True(t, p.Notes.Set)
		assert.Nil(t, p.Notes.Value)
	})

	t.Run("value present", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"notes":"bring resistance bands"}`), &p))
		assert.True(t, p.Notes.Set)
		require.NotNil(t, p.Notes.Value)
		assert.Equal(t, "bring resistance bands", *p.Notes.Value)
	})
}
