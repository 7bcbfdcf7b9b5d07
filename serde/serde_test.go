package serde

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/zalgo-codec/errors"
	"github.com/wippyai/zalgo-codec/zstring"
)

const zalgoEncoded = "E\u033a\u0341\u034c\u0347\u034f"

func newZ(t *testing.T, s string) *zstring.ZalgoString {
	t.Helper()
	z, err := zstring.New(s)
	require.NoError(t, err)
	return z
}

func TestJSON_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "Zalgo", "fn main() {\n}\n"} {
		z := newZ(t, s)

		data, err := MarshalJSON(z)
		require.NoError(t, err)

		back, err := UnmarshalJSON(data)
		require.NoError(t, err)
		assert.True(t, back.Equal(z))
		assert.Equal(t, s, back.Decode())
	}
}

func TestJSON_Format(t *testing.T) {
	data, err := MarshalJSON(newZ(t, "Zalgo"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"encoded":"`+zalgoEncoded+`","decoded_len":5}`, string(data))
}

func TestYAML_RoundTrip(t *testing.T) {
	for _, s := range []string{"", "Zalgo", "a: b\n- c\n"} {
		z := newZ(t, s)

		data, err := MarshalYAML(z)
		require.NoError(t, err)

		back, err := UnmarshalYAML(data)
		require.NoError(t, err)
		assert.Equal(t, s, back.Decode())
	}
}

func TestUnmarshal_Rejects(t *testing.T) {
	tests := []struct {
		name string
		json string
		yaml string
		kind errors.Kind
	}{
		{
			name: "length mismatch",
			json: `{"encoded":"` + zalgoEncoded + `","decoded_len":4}`,
			yaml: "encoded: \"" + zalgoEncoded + "\"\ndecoded_len: 4\n",
			kind: errors.KindLengthMismatch,
		},
		{
			name: "plain text payload",
			json: `{"encoded":"Zalgo","decoded_len":2}`,
			yaml: "encoded: Zalgo\ndecoded_len: 2\n",
			kind: errors.KindInvalidData,
		},
		{
			name: "empty payload",
			json: `{"encoded":"","decoded_len":0}`,
			yaml: "encoded: \"\"\ndecoded_len: 0\n",
			kind: errors.KindInvalidData,
		},
		{
			name: "unknown field",
			json: `{"encoded":"E","decoded_len":0,"extra":true}`,
			yaml: "encoded: E\ndecoded_len: 0\nextra: true\n",
			kind: errors.KindInvalidData,
		},
		{
			name: "trailing value",
			json: `{"encoded":"E","decoded_len":0} {"garbage":true}`,
			yaml: "encoded: E\ndecoded_len: 0\n---\ngarbage: true\n",
			kind: errors.KindInvalidData,
		},
		{
			name: "trailing garbage",
			json: `{"encoded":"E","decoded_len":0}]`,
			yaml: "encoded: E\ndecoded_len: 0\n---\n- 1\n",
			kind: errors.KindInvalidData,
		},
		{
			name: "not an object",
			json: `[1,2]`,
			yaml: "- 1\n- 2\n",
			kind: errors.KindInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/json", func(t *testing.T) {
			z, err := UnmarshalJSON([]byte(tt.json))
			assert.Nil(t, z)
			var zerr *errors.Error
			require.ErrorAs(t, err, &zerr)
			assert.Equal(t, errors.PhaseSerialize, zerr.Phase)
			assert.Equal(t, tt.kind, zerr.Kind)
		})
		t.Run(tt.name+"/yaml", func(t *testing.T) {
			z, err := UnmarshalYAML([]byte(tt.yaml))
			assert.Nil(t, z)
			var zerr *errors.Error
			require.ErrorAs(t, err, &zerr)
			assert.Equal(t, errors.PhaseSerialize, zerr.Phase)
			assert.Equal(t, tt.kind, zerr.Kind)
		})
	}
}

func TestUnmarshal_TrailingWhitespace(t *testing.T) {
	z, err := UnmarshalJSON([]byte(`{"encoded":"E","decoded_len":0}` + "\n\t "))
	require.NoError(t, err)
	assert.True(t, z.IsEmpty())

	z, err = UnmarshalYAML([]byte("encoded: E\ndecoded_len: 0\n\n"))
	require.NoError(t, err)
	assert.True(t, z.IsEmpty())
}

func TestUnmarshal_KeepsDecodeCause(t *testing.T) {
	_, err := UnmarshalJSON([]byte(`{"encoded":"E\u0360","decoded_len":1}`))
	assert.ErrorIs(t, err, errors.ErrInvalidCharacter)

	_, err = UnmarshalYAML([]byte("encoded: \"\"\ndecoded_len: 0\n"))
	assert.ErrorIs(t, err, errors.ErrEmptyInput)
}

func TestEnvelope(t *testing.T) {
	e := Wrap(newZ(t, "Zalgo"))
	assert.Equal(t, Envelope{Encoded: zalgoEncoded, DecodedLen: 5}, e)

	z, err := e.Open()
	require.NoError(t, err)
	assert.Equal(t, "Zalgo", z.Decode())
}
