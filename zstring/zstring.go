// Package zstring provides ZalgoString, an owning buffer that always holds a
// validly encoded text.
//
// Every operation keeps the layout invariant: the buffer is the anchor byte
// followed by one 2-byte mark per decoded byte, so its length is always
// 2*DecodedLen()+1. Mutation never splits a mark and never removes the
// anchor.
//
// A ZalgoString is not safe for concurrent mutation. The zero value is an
// empty string ready to use.
package zstring

import (
	"bytes"
	"slices"

	"github.com/wippyai/zalgo-codec/codec"
	"github.com/wippyai/zalgo-codec/errors"
)

// anchorOnly backs reads of an empty ZalgoString. It is never written to.
var anchorOnly = []byte{codec.Anchor}

// ZalgoString holds an encoded text together with the guarantee that it
// decodes.
type ZalgoString struct {
	buf []byte
}

// New encodes s into a ZalgoString. The error is the one codec.Encode
// returns for the same input.
func New(s string) (*ZalgoString, error) {
	buf := make([]byte, 1, codec.EncodedLen(len(s)))
	buf[0] = codec.Anchor
	buf, err := codec.AppendMarks(buf, s)
	if err != nil {
		return nil, err
	}
	return &ZalgoString{buf: buf}, nil
}

// NewBytes is like New but encodes a byte slice.
func NewBytes(b []byte) (*ZalgoString, error) {
	buf := make([]byte, 1, codec.EncodedLen(len(b)))
	buf[0] = codec.Anchor
	buf, err := codec.AppendMarks(buf, b)
	if err != nil {
		return nil, err
	}
	return &ZalgoString{buf: buf}, nil
}

// FromEncoded validates an already encoded text and takes a copy of it.
func FromEncoded(s string) (*ZalgoString, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	return &ZalgoString{buf: []byte(s)}, nil
}

// FromEncodedUnchecked wraps buf without validating it and takes ownership
// of it. The caller guarantees buf starts with codec.Anchor and decodes
// cleanly; breaking that guarantee makes later results meaningless.
func FromEncodedUnchecked(buf []byte) *ZalgoString {
	return &ZalgoString{buf: buf}
}

// WithCapacity returns an empty ZalgoString with room for n decoded bytes.
func WithCapacity(n int) *ZalgoString {
	buf := make([]byte, 1, codec.EncodedLen(max(n, 0)))
	buf[0] = codec.Anchor
	return &ZalgoString{buf: buf}
}

// Concat returns a new ZalgoString holding the marks of a followed by the
// marks of b under a single anchor.
func Concat(a, b *ZalgoString) *ZalgoString {
	ea, eb := a.encoded(), b.encoded()
	buf := make([]byte, 0, len(ea)+len(eb)-1)
	buf = append(buf, ea...)
	buf = append(buf, eb[1:]...)
	return &ZalgoString{buf: buf}
}

// validate checks s the way codec.Decode would and also requires the
// canonical anchor.
func validate[S ~string | ~[]byte](s S) error {
	if err := codec.Validate(s); err != nil {
		return err
	}
	if s[0] != codec.Anchor {
		return errors.New(errors.PhaseValidate, errors.KindInvalidAnchor).
			Index(0).
			Value(s[0]).
			Detail("anchor must be %q, got %q", codec.Anchor, s[0]).
			Build()
	}
	return nil
}

func (z *ZalgoString) encoded() []byte {
	if z == nil || len(z.buf) == 0 {
		return anchorOnly
	}
	return z.buf
}

// init makes the buffer writable. The zero value holds no anchor yet.
func (z *ZalgoString) init() {
	if len(z.buf) == 0 {
		z.buf = append(z.buf[:0], codec.Anchor)
	}
}

// Len returns the encoded length in bytes, including the anchor.
func (z *ZalgoString) Len() int {
	return len(z.encoded())
}

// DecodedLen returns the number of decoded bytes.
func (z *ZalgoString) DecodedLen() int {
	return codec.DecodedLen(z.Len())
}

// IsEmpty reports whether nothing but the anchor is stored.
func (z *ZalgoString) IsEmpty() bool {
	return z.Len() == 1
}

// Cap returns the capacity of the underlying buffer in bytes.
func (z *ZalgoString) Cap() int {
	if z == nil {
		return 0
	}
	return cap(z.buf)
}

// String returns the encoded text.
func (z *ZalgoString) String() string {
	return string(z.encoded())
}

// Bytes returns a copy of the encoded text.
func (z *ZalgoString) Bytes() []byte {
	return slices.Clone(z.encoded())
}

// Decode returns the decoded text.
func (z *ZalgoString) Decode() string {
	return string(z.DecodeBytes())
}

// DecodeBytes returns the decoded text as a new byte slice.
func (z *ZalgoString) DecodeBytes() []byte {
	marks := z.encoded()[1:]
	out := make([]byte, 0, len(marks)/codec.SymbolLen)
	for i := 0; i < len(marks); i += codec.SymbolLen {
		out = append(out, codec.DecodePairUnchecked(marks[i], marks[i+1]))
	}
	return out
}

// Get returns the encoded bytes in [start, end). Both offsets must be symbol
// boundaries: 0, an odd offset, or Len(). Get(0, 1) is the anchor alone and
// Get(1, 3) is the first mark.
func (z *ZalgoString) Get(start, end int) (string, error) {
	enc := z.encoded()
	n := len(enc)
	if start < 0 || start > n {
		return "", errors.OutOfBounds(errors.PhaseSlice, start, n)
	}
	if end < start || end > n {
		return "", errors.OutOfBounds(errors.PhaseSlice, end, n)
	}
	if !codec.IsBoundary(start, n) || !codec.IsBoundary(end, n) {
		return "", errors.InvalidBoundary(start, end, n)
	}
	return string(enc[start:end]), nil
}

// MustGet is like Get but panics if the range is invalid.
func (z *ZalgoString) MustGet(start, end int) string {
	s, err := z.Get(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// Symbols returns the marks of the decoded bytes in [from, to). The result
// never contains the anchor.
func (z *ZalgoString) Symbols(from, to int) (string, error) {
	n := z.DecodedLen()
	if from < 0 || from > n {
		return "", errors.OutOfBounds(errors.PhaseSlice, from, n)
	}
	if to < from || to > n {
		return "", errors.OutOfBounds(errors.PhaseSlice, to, n)
	}
	enc := z.encoded()
	return string(enc[codec.SymbolLen*from+1 : codec.SymbolLen*to+1]), nil
}

// Push encodes c and appends it.
func (z *ZalgoString) Push(c byte) error {
	r, ok := codec.EncodeByte(c)
	if !ok {
		name := codec.ControlName(c)
		return errors.Unencodable(c, 0, 1, 1, name, 0)
	}
	z.init()
	z.buf = append(z.buf, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
	return nil
}

// PushString encodes s and appends it. If s holds an unaccepted byte
// nothing is appended and the error positions are relative to s.
func (z *ZalgoString) PushString(s string) error {
	z.init()
	buf, err := codec.AppendMarks(z.buf, s)
	if err != nil {
		return err
	}
	z.buf = buf
	return nil
}

// Write implements io.Writer with the same all-or-nothing behaviour as
// PushString.
func (z *ZalgoString) Write(p []byte) (int, error) {
	z.init()
	buf, err := codec.AppendMarks(z.buf, p)
	if err != nil {
		return 0, err
	}
	z.buf = buf
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (z *ZalgoString) WriteString(s string) (int, error) {
	if err := z.PushString(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// PushZalgo appends the marks of other, without its anchor. other is
// already valid so nothing is re-checked.
func (z *ZalgoString) PushZalgo(other *ZalgoString) {
	marks := other.encoded()[1:]
	z.init()
	z.buf = append(z.buf, marks...)
}

// Truncate keeps the first n decoded bytes. It does nothing when n is at
// least DecodedLen and panics when n is negative. Capacity is unchanged.
func (z *ZalgoString) Truncate(n int) {
	if n < 0 {
		panic("zstring: negative truncate length")
	}
	if n >= z.DecodedLen() {
		return
	}
	z.buf = z.buf[:codec.EncodedLen(n)]
}

// Clear removes everything but the anchor.
func (z *ZalgoString) Clear() {
	z.Truncate(0)
}

// Reserve grows the buffer so that n more decoded bytes can be pushed
// without another allocation.
func (z *ZalgoString) Reserve(n int) {
	if n <= 0 {
		return
	}
	z.init()
	z.buf = slices.Grow(z.buf, codec.SymbolLen*n)
}

// ReserveExact is like Reserve but does not over-allocate.
func (z *ZalgoString) ReserveExact(n int) {
	if n <= 0 {
		return
	}
	z.init()
	need := len(z.buf) + codec.SymbolLen*n
	if cap(z.buf) >= need {
		return
	}
	buf := make([]byte, len(z.buf), need)
	copy(buf, z.buf)
	z.buf = buf
}

// CombiningChars returns the encoded text without its anchor.
func (z *ZalgoString) CombiningChars() string {
	return string(z.encoded()[1:])
}

// IntoCombiningChars hands over the marks without copying and leaves z
// empty. The returned slice shares no memory with later writes to z.
func (z *ZalgoString) IntoCombiningChars() []byte {
	enc := z.encoded()
	z.buf = nil
	if len(enc) == 1 {
		return []byte{}
	}
	return enc[1:]
}

// Clone returns a deep copy.
func (z *ZalgoString) Clone() *ZalgoString {
	return &ZalgoString{buf: slices.Clone(z.encoded())}
}

// EqualDecoded reports whether z decodes to s. It holds exactly when
// encoding s would produce z's bytes.
func (z *ZalgoString) EqualDecoded(s string) bool {
	marks := z.encoded()[1:]
	if len(marks) != codec.SymbolLen*len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if codec.DecodePairUnchecked(marks[2*i], marks[2*i+1]) != s[i] {
			return false
		}
	}
	return true
}

// EqualString reports whether z decodes to s.
func EqualString(z *ZalgoString, s string) bool {
	return z.EqualDecoded(s)
}

// StringEqual is EqualString with the operands swapped.
func StringEqual(s string, z *ZalgoString) bool {
	return z.EqualDecoded(s)
}

// EqualEncoded reports whether z holds exactly the encoded text s.
func (z *ZalgoString) EqualEncoded(s string) bool {
	return string(z.encoded()) == s
}

// Equal reports whether z and other hold the same text.
func (z *ZalgoString) Equal(other *ZalgoString) bool {
	return bytes.Equal(z.encoded(), other.encoded())
}

// Compare orders z and other by their decoded text, returning -1, 0 or +1.
func (z *ZalgoString) Compare(other *ZalgoString) int {
	a, b := z.encoded()[1:], other.encoded()[1:]
	n := min(len(a), len(b))
	for i := 0; i < n; i += codec.SymbolLen {
		ca := codec.DecodePairUnchecked(a[i], a[i+1])
		cb := codec.DecodePairUnchecked(b[i], b[i+1])
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
