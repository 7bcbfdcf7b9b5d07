package codec

import "github.com/rivo/uniseg"

// Anchor is the base character every encoded text starts with.
const Anchor byte = 'E'

const (
	MarkBase  rune = 0x300 // first combining mark
	MarkLast  rune = 0x36F // last combining mark
	MarkCount      = 112   // marks in the block
	SymbolLen      = 2     // encoded bytes per decoded byte
)

// Encodable reports whether c is in the accepted alphabet.
func Encodable(c byte) bool {
	return c == '\n' || (c >= 0x20 && c <= 0x7E)
}

// EncodeByte returns the combining mark for c.
func EncodeByte(c byte) (rune, bool) {
	if !Encodable(c) {
		return 0, false
	}
	return MarkBase + markOffset(c), true
}

// DecodeRune returns the decoded byte for the combining mark r.
func DecodeRune(r rune) (byte, bool) {
	if r < MarkBase || r > MarkLast {
		return 0, false
	}
	c := byte((r-MarkBase+22)%133 + 10)
	if !Encodable(c) {
		return 0, false
	}
	return c, true
}

// EncodedLen returns the encoded size of n decoded bytes.
func EncodedLen(n int) int {
	return SymbolLen*n + 1
}

// DecodedLen returns the number of symbols in an encoded text of n bytes.
func DecodedLen(n int) int {
	if n <= 1 {
		return 0
	}
	return (n - 1) / SymbolLen
}

// IsBoundary reports whether byte offset i is a valid slice boundary in an
// encoded text of length n.
func IsBoundary(i, n int) bool {
	if i < 0 || i > n {
		return false
	}
	return i == 0 || i%SymbolLen == 1
}

// GraphemeClusters counts the user-perceived characters of s. A valid encoded
// text is always exactly one.
func GraphemeClusters(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

func markOffset(c byte) rune {
	v := (int(c) - 11) % 133
	if v < 0 {
		v += 133
	}
	return rune(v - 21)
}

func appendMark(dst []byte, c byte) []byte {
	r := MarkBase + markOffset(c)
	return append(dst, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
}

// DecodePairUnchecked decodes one mark without validation. The caller must
// know hi and lo came from this package's encoder.
func DecodePairUnchecked(hi, lo byte) byte {
	return byte(((int(hi)<<6&64|int(lo)&63)+22)%133 + 10)
}

var controlNames = [...]string{
	"Null",
	"Start Of Heading",
	"Start Of Text",
	"End Of Text",
	"End Of Transmission",
	"Enquiry",
	"Acknowledge",
	"Bell",
	"Backspace",
	"Horizontal Tab",
	"Line Feed",
	"Vertical Tab",
	"Form Feed",
	"Carriage Return",
	"Shift Out",
	"Shift In",
	"Data Link Escape",
	"Data Control 1",
	"Data Control 2",
	"Data Control 3",
	"Data Control 4",
	"Negative Acknowledge",
	"Synchronous Idle",
	"End Of Transmission Block",
	"Cancel",
	"End Of Medium",
	"Substitute",
	"Escape",
	"File Separator",
	"Group Separator",
	"Record Separator",
	"Unit Separator",
}

// ControlName returns the name of a non-printable ASCII byte, or "" for
// printable and non-ASCII bytes.
func ControlName(c byte) string {
	switch {
	case int(c) < len(controlNames):
		return controlNames[c]
	case c == 0x7F:
		return "Delete"
	}
	return ""
}
