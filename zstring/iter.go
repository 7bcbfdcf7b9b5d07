package zstring

import (
	"iter"

	"github.com/wippyai/zalgo-codec/codec"
)

// EncodedBytes returns a sequence over the raw encoded bytes, anchor
// included. Each call to the returned function starts over.
func (z *ZalgoString) EncodedBytes() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, b := range z.encoded() {
			if !yield(b) {
				return
			}
		}
	}
}

// Runes returns a sequence over the encoded text as Unicode scalars: the
// anchor followed by one combining mark per decoded byte.
func (z *ZalgoString) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		enc := z.encoded()
		if !yield(rune(enc[0])) {
			return
		}
		for i := 1; i+1 < len(enc); i += codec.SymbolLen {
			if !yield(rune(enc[i]&0x1F)<<6 | rune(enc[i+1]&0x3F)) {
				return
			}
		}
	}
}

// DecodedBytes returns a cursor over the decoded bytes.
func (z *ZalgoString) DecodedBytes() *DecodedBytes {
	return &DecodedBytes{marks: z.encoded()[1:]}
}

// DecodedChars returns a cursor over the decoded characters.
func (z *ZalgoString) DecodedChars() *DecodedChars {
	return &DecodedChars{bytes: DecodedBytes{marks: z.encoded()[1:]}}
}

// DecodedBytes walks the decoded bytes of a ZalgoString from both ends.
// Every mark is two bytes wide, so both directions cost the same.
//
// A cursor reads the buffer it was created from and must not be used after
// that ZalgoString is mutated.
type DecodedBytes struct {
	marks []byte // unconsumed marks, always an even number of bytes
}

// Next returns the next byte from the front.
func (it *DecodedBytes) Next() (byte, bool) {
	if len(it.marks) < codec.SymbolLen {
		return 0, false
	}
	c := codec.DecodePairUnchecked(it.marks[0], it.marks[1])
	it.marks = it.marks[codec.SymbolLen:]
	return c, true
}

// NextBack returns the next byte from the back.
func (it *DecodedBytes) NextBack() (byte, bool) {
	n := len(it.marks)
	if n < codec.SymbolLen {
		return 0, false
	}
	c := codec.DecodePairUnchecked(it.marks[n-2], it.marks[n-1])
	it.marks = it.marks[:n-codec.SymbolLen]
	return c, true
}

// Nth skips n bytes and returns the one after them. When fewer than n+1
// bytes remain the cursor is exhausted.
func (it *DecodedBytes) Nth(n int) (byte, bool) {
	skip := codec.SymbolLen * max(n, 0)
	if skip >= len(it.marks) {
		it.marks = it.marks[len(it.marks):]
		return 0, false
	}
	it.marks = it.marks[skip:]
	return it.Next()
}

// Len returns the number of bytes left.
func (it *DecodedBytes) Len() int {
	return len(it.marks) / codec.SymbolLen
}

// Clone returns an independent cursor at the same position.
func (it *DecodedBytes) Clone() *DecodedBytes {
	return &DecodedBytes{marks: it.marks}
}

// All consumes the cursor from the front.
func (it *DecodedBytes) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Backward consumes the cursor from the back.
func (it *DecodedBytes) Backward() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			c, ok := it.NextBack()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// DecodedChars is DecodedBytes yielding runes.
type DecodedChars struct {
	bytes DecodedBytes
}

// Next returns the next character from the front.
func (it *DecodedChars) Next() (rune, bool) {
	c, ok := it.bytes.Next()
	return rune(c), ok
}

// NextBack returns the next character from the back.
func (it *DecodedChars) NextBack() (rune, bool) {
	c, ok := it.bytes.NextBack()
	return rune(c), ok
}

// Nth skips n characters and returns the one after them.
func (it *DecodedChars) Nth(n int) (rune, bool) {
	c, ok := it.bytes.Nth(n)
	return rune(c), ok
}

// Len returns the number of characters left.
func (it *DecodedChars) Len() int {
	return it.bytes.Len()
}

// Clone returns an independent cursor at the same position.
func (it *DecodedChars) Clone() *DecodedChars {
	return &DecodedChars{bytes: it.bytes}
}

// All consumes the cursor from the front.
func (it *DecodedChars) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for c := range it.bytes.All() {
			if !yield(rune(c)) {
				return
			}
		}
	}
}

// Backward consumes the cursor from the back.
func (it *DecodedChars) Backward() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for c := range it.bytes.Backward() {
			if !yield(rune(c)) {
				return
			}
		}
	}
}
