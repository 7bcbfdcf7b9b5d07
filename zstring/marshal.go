package zstring

import (
	"encoding/json"
	"slices"

	"github.com/wippyai/zalgo-codec/errors"
)

// MarshalText implements encoding.TextMarshaler. The text is the encoded form.
func (z *ZalgoString) MarshalText() ([]byte, error) {
	return z.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is
// validated before it replaces the contents of z; on error z is unchanged.
func (z *ZalgoString) UnmarshalText(text []byte) error {
	if err := validate(text); err != nil {
		return errors.InvalidData(errors.PhaseSerialize, "invalid encoded text", err)
	}
	z.buf = slices.Clone(text)
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (z *ZalgoString) MarshalBinary() ([]byte, error) {
	return z.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (z *ZalgoString) UnmarshalBinary(data []byte) error {
	return z.UnmarshalText(data)
}

// MarshalJSON encodes z as a JSON string holding the encoded text.
func (z *ZalgoString) MarshalJSON() ([]byte, error) {
	return json.Marshal(z.String())
}

// UnmarshalJSON decodes a JSON string and validates it like UnmarshalText.
func (z *ZalgoString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.InvalidData(errors.PhaseSerialize, "expected a JSON string", err)
	}
	return z.UnmarshalText([]byte(s))
}
