package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidWordID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		expected bool
	}{
		{
			name:     "valid object id",
			id:       "64b7f0c2a1b2c3d4e5f60718",
			expected: true,
		},
		{
			name:     "generated id",
			id:       NewWordID(),
			expected: true,
		},
		{
			name:     "too short",
			id:       "64b7f0c2",
			expected: false,
		},
		{
			name:     "not hex",
			id:       "zzzzzzzzzzzzzzzzzzzzzzzz",
			expected: false,
		},
		{
			name:     "empty",
			id:       "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidWordID(tt.id))
		})
	}
}

func TestWord_HasRequiredFields(t *testing.T) {
	tests := []struct {
		name     string
		word     Word
		expected bool
	}{
		{
			name:     "both present",
			word:     Word{Word: "cat", Meaning: "a small feline"},
			expected: true,
		},
		{
			name:     "missing meaning",
			word:     Word{Word: "cat"},
			expected: false,
		},
		{
			name:     "missing word",
			word:     Word{Meaning: "a small feline"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.word.HasRequiredFields())
		})
	}
}

func TestWord_UnmarshalJSON(t *testing.T) {
	body := `{"_id":"64b7f0c2a1b2c3d4e5f60718","word":"ephemeral","meaning":"short-lived","type":"adjective","synonyms":["fleeting","transient"]}`

	var w Word
	require.NoError(t, json.Unmarshal([]byte(body), &w))

	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", w.ID)
	assert.Equal(t, "ephemeral", w.Word)
	assert.Equal(t, "short-lived", w.Meaning)
	assert.Equal(t, "adjective", w.Extra["type"])
	assert.Equal(t, []any{"fleeting", "transient"}, w.Extra["synonyms"])
	assert.NotContains(t, w.Extra, FieldID)
}

func TestWord_UnmarshalJSON_NonStringWord(t *testing.T) {
	var w Word
	require.NoError(t, json.Unmarshal([]byte(`{"word":5,"meaning":"five","_id":7}`), &w))

	assert.Empty(t, w.Word)
	assert.Empty(t, w.ID)
	assert.Equal(t, float64(5), w.Extra[FieldWord])
	assert.False(t, w.HasRequiredFields())
}

func TestWord_UnmarshalJSON_EmptyStringsKept(t *testing.T) {
	var w Word
	require.NoError(t, json.Unmarshal([]byte(`{"word":"","meaning":"","note":""}`), &w))

	assert.False(t, w.HasRequiredFields())
	assert.Equal(t, map[string]any{"word": "", "meaning": "", "note": ""}, w.Fields())

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"word":"","meaning":"","note":""}`, string(data))
}

func TestWord_UnmarshalJSON_Invalid(t *testing.T) {
	var w Word
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &w))
}

func TestWord_MarshalJSON(t *testing.T) {
	w := Word{
		ID:      "64b7f0c2a1b2c3d4e5f60718",
		Word:    "ephemeral",
		Meaning: "short-lived",
		Extra:   map[string]any{"type": "adjective"},
	}

	data, err := json.Marshal(w)
	require.NoError(t, err)

	assert.JSONEq(t, `{"_id":"64b7f0c2a1b2c3d4e5f60718","word":"ephemeral","meaning":"short-lived","type":"adjective"}`, string(data))
}

func TestWord_MarshalJSON_WithoutID(t *testing.T) {
	data, err := json.Marshal(Word{Word: "cat", Meaning: "feline"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"word":"cat","meaning":"feline"}`, string(data))
}

func TestWord_Fields(t *testing.T) {
	w := Word{
		ID:      "64b7f0c2a1b2c3d4e5f60718",
		Word:    "cat",
		Meaning: "feline",
		Extra:   map[string]any{"examples": []any{"the cat sat"}},
	}

	fields := w.Fields()

	assert.NotContains(t, fields, FieldID)
	assert.Equal(t, "cat", fields[FieldWord])
	assert.Equal(t, "feline", fields[FieldMeaning])
	assert.Equal(t, []any{"the cat sat"}, fields["examples"])

	// Fields must not alias the word's own map
	fields["examples"] = nil
	assert.Equal(t, []any{"the cat sat"}, w.Extra["examples"])
}
