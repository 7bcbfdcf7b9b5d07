package zalgocodec

import (
	"github.com/wippyai/zalgo-codec/codec"
	"github.com/wippyai/zalgo-codec/zstring"
)

// ZalgoString is an owning buffer that always holds a valid encoded text.
type ZalgoString = zstring.ZalgoString

// Encode converts text into a single grapheme cluster.
func Encode(s string) (string, error) {
	return codec.Encode(s)
}

// Decode converts an encoded grapheme cluster back into text.
func Decode(s string) (string, error) {
	return codec.Decode(s)
}

// WrapPython encodes Python source into a self-decoding program.
func WrapPython(src string) (string, error) {
	return codec.WrapPython(src)
}

// UnwrapPython recovers the source from a program made by WrapPython.
func UnwrapPython(wrapped string) (string, error) {
	return codec.UnwrapPython(wrapped)
}

// New encodes s into a ZalgoString.
func New(s string) (*ZalgoString, error) {
	return zstring.New(s)
}
