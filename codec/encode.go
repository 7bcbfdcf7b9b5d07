package codec

import (
	"slices"
	"unicode/utf8"

	"github.com/wippyai/zalgo-codec/errors"
)

// Encode converts s into a single grapheme cluster.
//
// It fails on the first byte outside line feed and printable ASCII; the
// returned *errors.Error carries the byte, its index, line and column.
func Encode(s string) (string, error) {
	if i := firstUnencodable(s); i >= 0 {
		return "", unencodable(s, i)
	}
	buf := make([]byte, 0, EncodedLen(len(s)))
	buf = append(buf, Anchor)
	for i := 0; i < len(s); i++ {
		buf = appendMark(buf, s[i])
	}
	return string(buf), nil
}

// EncodeBytes is like Encode but operates on byte slices.
func EncodeBytes(src []byte) ([]byte, error) {
	return AppendEncoded(make([]byte, 0, EncodedLen(len(src))), src)
}

// AppendEncoded appends the anchor and the marks of src to dst. On error dst
// is returned unchanged.
func AppendEncoded(dst, src []byte) ([]byte, error) {
	if i := firstUnencodable(src); i >= 0 {
		return dst, unencodable(src, i)
	}
	dst = slices.Grow(dst, EncodedLen(len(src)))
	dst = append(dst, Anchor)
	for _, c := range src {
		dst = appendMark(dst, c)
	}
	return dst, nil
}

// AppendMarks appends only the marks of src to dst, without an anchor. It is
// used to grow an existing encoded text. On error dst is returned unchanged.
func AppendMarks[S ~string | ~[]byte](dst []byte, src S) ([]byte, error) {
	if i := firstUnencodable(src); i >= 0 {
		return dst, unencodable(src, i)
	}
	dst = slices.Grow(dst, SymbolLen*len(src))
	for i := 0; i < len(src); i++ {
		dst = appendMark(dst, src[i])
	}
	return dst, nil
}

func firstUnencodable[S ~string | ~[]byte](s S) int {
	for i := 0; i < len(s); i++ {
		if !Encodable(s[i]) {
			return i
		}
	}
	return -1
}

// unencodable builds the error for s[i], tracking the 1-indexed line and
// column the way an editor would show them.
func unencodable[S ~string | ~[]byte](s S, i int) *errors.Error {
	line, column := 1, 1
	for j := 0; j < i; j++ {
		if s[j] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	c := s[i]
	if c < utf8.RuneSelf {
		return errors.Unencodable(c, i, line, column, ControlName(c), 0)
	}

	var r rune
	end := min(i+utf8.UTFMax, len(s))
	tail := make([]byte, 0, utf8.UTFMax)
	for j := i; j < end; j++ {
		tail = append(tail, s[j])
	}
	if dr, size := utf8.DecodeRune(tail); dr != utf8.RuneError || size > 1 {
		r = dr
	}
	return errors.Unencodable(c, i, line, column, "", r)
}
