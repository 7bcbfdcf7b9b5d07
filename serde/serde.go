// Package serde serializes ZalgoString values as an envelope holding the
// encoded text and its decoded length.
//
// Deserialization never trusts its input: the encoded text is validated in
// full and the declared length must match the payload.
package serde

import (
	"bytes"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/zalgo-codec/errors"
	"github.com/wippyai/zalgo-codec/zstring"
)

// Envelope is the serialized form of a ZalgoString.
type Envelope struct {
	Encoded    string `json:"encoded" yaml:"encoded"`
	DecodedLen int    `json:"decoded_len" yaml:"decoded_len"`
}

// Wrap builds the envelope for z.
func Wrap(z *zstring.ZalgoString) Envelope {
	return Envelope{Encoded: z.String(), DecodedLen: z.DecodedLen()}
}

// Open validates the envelope and returns the value it carries.
func (e Envelope) Open() (*zstring.ZalgoString, error) {
	z, err := zstring.FromEncoded(e.Encoded)
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseSerialize, "invalid encoded payload", err)
	}
	if z.DecodedLen() != e.DecodedLen {
		return nil, errors.LengthMismatch(errors.PhaseSerialize, e.DecodedLen, z.DecodedLen())
	}
	return z, nil
}

// MarshalJSON writes z as a JSON envelope.
func MarshalJSON(z *zstring.ZalgoString) ([]byte, error) {
	data, err := json.Marshal(Wrap(z))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSerialize, errors.KindInvalidData, err, "json marshal")
	}
	return data, nil
}

// UnmarshalJSON reads a JSON envelope. Unknown fields and anything after
// the envelope are rejected.
func UnmarshalJSON(data []byte) (*zstring.ZalgoString, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var e Envelope
	if err := dec.Decode(&e); err != nil {
		return nil, errors.InvalidData(errors.PhaseSerialize, "malformed json envelope", err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.InvalidData(errors.PhaseSerialize, "trailing data after json envelope", err)
	}
	return e.Open()
}

// MarshalYAML writes z as a YAML envelope.
func MarshalYAML(z *zstring.ZalgoString) ([]byte, error) {
	data, err := yaml.Marshal(Wrap(z))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSerialize, errors.KindInvalidData, err, "yaml marshal")
	}
	return data, nil
}

// UnmarshalYAML reads a single YAML document. Unknown fields and further
// documents are rejected.
func UnmarshalYAML(data []byte) (*zstring.ZalgoString, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var e Envelope
	if err := dec.Decode(&e); err != nil {
		return nil, errors.InvalidData(errors.PhaseSerialize, "malformed yaml envelope", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, errors.InvalidData(errors.PhaseSerialize, "more than one yaml document", err)
	}
	return e.Open()
}
