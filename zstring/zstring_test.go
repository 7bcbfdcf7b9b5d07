package zstring

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/zalgo-codec/codec"
	"github.com/wippyai/zalgo-codec/errors"
)

const (
	zalgoMarks   = "\u033a\u0341\u034c\u0347\u034f"
	zalgoEncoded = "E" + zalgoMarks
)

func mustNew(t *testing.T, s string) *ZalgoString {
	t.Helper()
	z, err := New(s)
	require.NoError(t, err)
	return z
}

func TestNew(t *testing.T) {
	z := mustNew(t, "Zalgo")

	assert.Equal(t, zalgoEncoded, z.String())
	assert.Equal(t, 11, z.Len())
	assert.Equal(t, 5, z.DecodedLen())
	assert.False(t, z.IsEmpty())
	assert.Equal(t, "Zalgo", z.Decode())
	assert.Equal(t, 1, codec.GraphemeClusters(z.String()))
}

func TestNew_Empty(t *testing.T) {
	z := mustNew(t, "")
	assert.Equal(t, "E", z.String())
	assert.Equal(t, 1, z.Len())
	assert.Equal(t, 0, z.DecodedLen())
	assert.True(t, z.IsEmpty())
	assert.Equal(t, "", z.Decode())
}

func TestNew_Rejects(t *testing.T) {
	z, err := New("Zalgo\t")
	assert.Nil(t, z)
	require.ErrorIs(t, err, errors.ErrUnencodable)

	var zerr *errors.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, 5, zerr.Index)
	b, _ := zerr.Byte()
	assert.Equal(t, byte('\t'), b)

	_, err = NewBytes([]byte{'o', 'k', 0x80})
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, 2, zerr.Index)
}

func TestZeroValue(t *testing.T) {
	var z ZalgoString

	assert.Equal(t, "E", z.String())
	assert.True(t, z.IsEmpty())
	assert.Equal(t, 0, z.DecodedLen())

	require.NoError(t, z.PushString("hi"))
	assert.Equal(t, "hi", z.Decode())
	assert.Equal(t, 5, z.Len())
}

func TestFromEncoded(t *testing.T) {
	z, err := FromEncoded(zalgoEncoded)
	require.NoError(t, err)
	assert.Equal(t, "Zalgo", z.Decode())

	tests := []struct {
		name   string
		in     string
		target error
	}{
		{"empty", "", errors.ErrEmptyInput},
		{"dangling", "E\u033a\xcd", errors.ErrMalformedEncoding},
		{"unused mark", "E\u0360", errors.ErrInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEncoded(tt.in)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	t.Run("foreign anchor", func(t *testing.T) {
		_, err := FromEncoded("A\u033a")
		var zerr *errors.Error
		require.ErrorAs(t, err, &zerr)
		assert.Equal(t, errors.PhaseValidate, zerr.Phase)
		assert.Equal(t, errors.KindInvalidAnchor, zerr.Kind)
	})
}

func TestFromEncodedUnchecked(t *testing.T) {
	z := FromEncodedUnchecked([]byte(zalgoEncoded))
	assert.Equal(t, "Zalgo", z.Decode())
	assert.True(t, z.EqualDecoded("Zalgo"))
}

func TestSymmetry(t *testing.T) {
	for _, s := range []string{"", "Zalgo", "x + y\n", "~ \n"} {
		z := mustNew(t, s)
		assert.True(t, EqualString(z, s), s)
		assert.True(t, StringEqual(s, z), s)
		assert.True(t, z.EqualDecoded(s), s)
	}

	z := mustNew(t, "Zalgo")
	assert.False(t, z.EqualDecoded("Zalg"))
	assert.False(t, z.EqualDecoded("Zalgp"))
	assert.False(t, z.EqualDecoded("Zalgo\n"))
	assert.False(t, StringEqual("zalgo", z))
	assert.True(t, z.EqualEncoded(zalgoEncoded))
	assert.False(t, z.EqualEncoded("Zalgo"))
}

func TestGet(t *testing.T) {
	z := mustNew(t, "Zalgo")

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"anchor only", 0, 1, "E"},
		{"first symbol", 1, 3, "\u033a"},
		{"second and third", 3, 7, "\u0341\u034c"},
		{"all marks", 1, 11, zalgoMarks},
		{"everything", 0, 11, zalgoEncoded},
		{"empty at start", 0, 0, ""},
		{"empty in middle", 5, 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := z.Get(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, z.MustGet(tt.start, tt.end))
		})
	}
}

func TestGet_Rejects(t *testing.T) {
	z := mustNew(t, "Zalgo")

	tests := []struct {
		name       string
		start, end int
		kind       errors.Kind
	}{
		{"split first mark", 0, 2, errors.KindInvalidBoundary},
		{"start inside mark", 2, 3, errors.KindInvalidBoundary},
		{"end inside mark", 1, 4, errors.KindInvalidBoundary},
		{"past end", 1, 12, errors.KindOutOfBounds},
		{"negative", -1, 1, errors.KindOutOfBounds},
		{"reversed", 3, 1, errors.KindOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := z.Get(tt.start, tt.end)
			assert.Empty(t, got)
			var zerr *errors.Error
			require.ErrorAs(t, err, &zerr)
			assert.Equal(t, errors.PhaseSlice, zerr.Phase)
			assert.Equal(t, tt.kind, zerr.Kind)
		})
	}

	_, err := z.Get(0, 2)
	assert.ErrorIs(t, err, errors.ErrInvalidBoundary)
	assert.Panics(t, func() { z.MustGet(0, 2) })
}

func TestSymbols(t *testing.T) {
	z := mustNew(t, "Zalgo")

	got, err := z.Symbols(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "\u0341\u034c", got)

	got, err = z.Symbols(0, 5)
	require.NoError(t, err)
	assert.Equal(t, z.CombiningChars(), got)

	_, err = z.Symbols(2, 6)
	assert.Error(t, err)
	_, err = z.Symbols(3, 2)
	assert.Error(t, err)
}

func TestPush(t *testing.T) {
	z := mustNew(t, "Zalg")
	require.NoError(t, z.Push('o'))
	assert.Equal(t, zalgoEncoded, z.String())

	err := z.Push('\r')
	require.ErrorIs(t, err, errors.ErrUnencodable)
	var zerr *errors.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, "Carriage Return", zerr.Repr)
	assert.Equal(t, zalgoEncoded, z.String())
}

func TestPushString_IsAtomic(t *testing.T) {
	z := mustNew(t, "Zalgo")

	err := z.PushString(" is\there")
	require.Error(t, err)
	var zerr *errors.Error
	require.ErrorAs(t, err, &zerr)
	assert.Equal(t, 3, zerr.Index, "index is relative to the pushed text")
	assert.Equal(t, "Zalgo", z.Decode())

	require.NoError(t, z.PushString(" is here\n"))
	assert.Equal(t, "Zalgo is here\n", z.Decode())
	assert.Equal(t, codec.EncodedLen(14), z.Len())
}

func TestWriter(t *testing.T) {
	z := WithCapacity(16)
	var w io.Writer = z

	n, err := fmt.Fprintf(w, "%d + %d", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = io.WriteString(z, "\x00")
	assert.Error(t, err)
	assert.Zero(t, n)

	assert.Equal(t, "1 + 2", z.Decode())
}

func TestPushZalgo(t *testing.T) {
	a := mustNew(t, "Zal")
	b := mustNew(t, "go")

	a.PushZalgo(b)
	assert.Equal(t, zalgoEncoded, a.String())
	assert.Equal(t, "go", b.Decode(), "other is left untouched")

	a.PushZalgo(mustNew(t, ""))
	assert.Equal(t, zalgoEncoded, a.String())

	a.PushZalgo(a)
	assert.Equal(t, "ZalgoZalgo", a.Decode())
}

func TestConcat_AppendLaw(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"Zal", "go"},
		{"line one\n", "line two\n"},
		{"", "x"},
	}
	for _, p := range pairs {
		a, b := mustNew(t, p[0]), mustNew(t, p[1])
		c := Concat(a, b)
		assert.Equal(t, p[0]+p[1], c.Decode())
		assert.Equal(t, 1, codec.GraphemeClusters(c.String()))
		assert.Equal(t, p[0], a.Decode())
	}
}

func TestTruncate(t *testing.T) {
	z := mustNew(t, "Zalgo")
	capBefore := z.Cap()

	z.Truncate(2)
	assert.Equal(t, "E\u033a\u0341", z.String())
	assert.Equal(t, "Za", z.Decode())
	assert.Equal(t, capBefore, z.Cap())

	z.Truncate(10)
	assert.Equal(t, "Za", z.Decode(), "longer length is a no-op")

	z.Clear()
	assert.Equal(t, "E", z.String())
	assert.True(t, z.IsEmpty())

	assert.Panics(t, func() { z.Truncate(-1) })
}

func TestReserve(t *testing.T) {
	z := mustNew(t, "Zalgo")
	z.Reserve(5)
	assert.GreaterOrEqual(t, z.Cap(), z.Len()+10)

	w := WithCapacity(0)
	assert.Equal(t, 1, w.Cap())
	w.ReserveExact(3)
	assert.Equal(t, 7, w.Cap())
	w.ReserveExact(1)
	assert.Equal(t, 7, w.Cap(), "enough room already")

	require.NoError(t, w.PushString("abc"))
	assert.Equal(t, 7, w.Cap())
	assert.Equal(t, "abc", w.Decode())
}

func TestCombiningChars(t *testing.T) {
	z := mustNew(t, "Zalgo")
	assert.Equal(t, zalgoMarks, z.CombiningChars())

	marks := z.IntoCombiningChars()
	assert.Equal(t, zalgoMarks, string(marks))
	assert.Equal(t, "E", z.String())

	require.NoError(t, z.PushString("x"))
	assert.Equal(t, zalgoMarks, string(marks))

	empty := mustNew(t, "")
	assert.Empty(t, empty.IntoCombiningChars())
}

func TestClone(t *testing.T) {
	z := mustNew(t, "Zal")
	c := z.Clone()
	require.NoError(t, c.PushString("go"))

	assert.Equal(t, "Zal", z.Decode())
	assert.Equal(t, "Zalgo", c.Decode())
	assert.True(t, c.Equal(mustNew(t, "Zalgo")))
	assert.False(t, c.Equal(z))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "b", -1},
		{"b", "a", 1},
		{"same", "same", 0},
		{"ab", "abc", -1},
		{"abc", "ab", 1},
		{"", "", 0},
		// line feed sorts first in decoded order even though its mark is the highest
		{"\n", " ", -1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q vs %q", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, mustNew(t, tt.a).Compare(mustNew(t, tt.b)))
		})
	}
}

func TestBytesIsACopy(t *testing.T) {
	z := mustNew(t, "Zalgo")
	b := z.Bytes()
	b[0] = 'X'
	assert.Equal(t, zalgoEncoded, z.String())
	assert.Equal(t, []byte("Zalgo"), z.DecodeBytes())
}

func TestNilReads(t *testing.T) {
	var z *ZalgoString
	assert.Equal(t, "E", z.String())
	assert.Equal(t, 0, z.DecodedLen())
	assert.Equal(t, 0, z.Cap())
	assert.True(t, z.EqualDecoded(""))
}
