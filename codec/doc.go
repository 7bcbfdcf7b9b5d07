// Package codec converts printable ASCII text into a single grapheme cluster and back.
//
// Every accepted input byte becomes one Unicode combining mark from the block
// U+0300..U+036F. The marks are stacked on a single plain base character, so
// the whole text renders as one (very tall) character:
//
//	┌────────────────────────────────────────────────────────────────┐
//	│ "Zalgo" ←→ [codec] ←→ "E" + U+033A U+0341 U+034C U+0347 U+034F │
//	└────────────────────────────────────────────────────────────────┘
//
// # Alphabet
//
// Only line feed and printable ASCII are accepted:
//
//	0x0A, 0x20..0x7E   (96 bytes)
//
// Tabs, carriage returns, other control bytes and anything non-ASCII are
// rejected. The file helpers in package files expand tabs and strip carriage
// returns before encoding.
//
// # Symbol Mapping
//
//	offset(c)  = ((c - 11) mod 133) - 21      mod is always non-negative
//	mark(c)    = U+0300 + offset(c)
//	byte(mark) = ((mark - 0x300 + 22) mod 133) + 10
//
// Space maps to U+0300, '~' to U+035E and line feed to U+036F. The 16 marks
// U+035F..U+036E are never produced and decode to an error.
//
//	Char    Mark      Char    Mark      Char    Mark
//	──────────────────────────────────────────────────
//	' '     U+0300    '0'     U+0310    'A'     U+0321
//	'!'     U+0301    '9'     U+0319    'Z'     U+033A
//	'/'     U+030F    '@'     U+0320    'a'     U+0341
//	'\\'    U+033C    '~'     U+035E    '\n'    U+036F
//
// # Encoded Layout
//
// Every mark is a 2-byte UTF-8 sequence (0xCC or 0xCD followed by a
// continuation byte), so for n input bytes:
//
//	offset 0          anchor 'E'
//	offset 2i+1       first byte of mark i
//	length            2n + 1
//
// Only offsets 0, 2i+1 and the total length are valid slice boundaries.
//
// # Errors
//
// Errors use the structured types from the errors package:
//
//	[encode] invalid_character at line 1 column 6: can not encode ascii "Horizontal Tab" character with byte value 9
//	[decode] malformed_encoding at index 2: invalid 2-byte UTF-8 sequence: 41cc
//
// Encoding stops at the first rejected byte and returns no partial output.
// Decoding an empty string fails with errors.ErrEmptyInput before allocating.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package codec
