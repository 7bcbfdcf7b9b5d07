package codec

import (
	"slices"

	"github.com/wippyai/zalgo-codec/errors"
)

// Decode converts an encoded grapheme cluster back into the original text.
//
// The first byte must be a printable ASCII anchor. Every following pair of
// bytes must be a 2-byte UTF-8 sequence for a mark that maps back into the
// accepted alphabet.
func Decode(s string) (string, error) {
	if err := checkHeader(s); err != nil {
		return "", err
	}
	out, err := decodeMarks(make([]byte, 0, DecodedLen(len(s))), s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecodeBytes is like Decode but operates on byte slices.
func DecodeBytes(src []byte) ([]byte, error) {
	if err := checkHeader(src); err != nil {
		return nil, err
	}
	return decodeMarks(make([]byte, 0, DecodedLen(len(src))), src)
}

// AppendDecoded appends the decoded form of src to dst. On error dst is
// returned unchanged.
func AppendDecoded(dst, src []byte) ([]byte, error) {
	if err := checkHeader(src); err != nil {
		return dst, err
	}
	return decodeMarks(slices.Grow(dst, DecodedLen(len(src))), src)
}

// Validate reports whether s is a well-formed encoded text without
// producing the decoded output.
func Validate[S ~string | ~[]byte](s S) error {
	if err := checkHeader(s); err != nil {
		return err
	}
	i := 1
	for ; i+1 < len(s); i += SymbolLen {
		if _, err := decodePair(s[i], s[i+1], i/SymbolLen); err != nil {
			return err
		}
	}
	if i < len(s) {
		return errors.MalformedEncoding(i/SymbolLen, []byte{s[i]})
	}
	return nil
}

// DecodePair decodes the 2-byte UTF-8 sequence hi, lo of a single mark.
func DecodePair(hi, lo byte) (byte, error) {
	c, err := decodePair(hi, lo, 0)
	if err != nil {
		return 0, err
	}
	return c, nil
}

func checkHeader[S ~string | ~[]byte](s S) *errors.Error {
	if len(s) == 0 {
		return errors.EmptyInput()
	}
	if a := s[0]; a < 0x20 || a > 0x7E {
		return errors.InvalidAnchor(a)
	}
	return nil
}

// decodeMarks decodes everything after the anchor. The header must already
// be checked. dst is returned at its original length on error.
func decodeMarks[S ~string | ~[]byte](dst []byte, s S) ([]byte, error) {
	start := len(dst)
	i := 1
	for ; i+1 < len(s); i += SymbolLen {
		c, err := decodePair(s[i], s[i+1], i/SymbolLen)
		if err != nil {
			return dst[:start], err
		}
		dst = append(dst, c)
	}
	if i < len(s) {
		return dst[:start], errors.MalformedEncoding(i/SymbolLen, []byte{s[i]})
	}
	return dst, nil
}

func decodePair(hi, lo byte, symbol int) (byte, *errors.Error) {
	if hi < 0xC2 || hi > 0xDF || lo&0xC0 != 0x80 {
		return 0, errors.MalformedEncoding(symbol, []byte{hi, lo})
	}
	r := rune(hi&0x1F)<<6 | rune(lo&0x3F)
	c, ok := DecodeRune(r)
	if !ok {
		return 0, errors.InvalidCharacter(r, symbol)
	}
	return c, nil
}
