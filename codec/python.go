package codec

import (
	"strings"

	"github.com/wippyai/zalgo-codec/errors"
)

// The decoder half of a wrapped Python program. It re-derives each byte from
// the UTF-8 pairs of the encoded literal and executes the result.
const (
	pythonPrefix = "b='"
	pythonSuffix = "'.encode();exec(''.join(chr(((h<<6&64|c&63)+22)%133+10)for h,c in zip(b[1::2],b[2::2])))"
)

// WrapPython encodes Python source and wraps it in a one-line decoder that
// executes it. Running the result behaves like the original program on
// Python 3.10 and later.
func WrapPython(src string) (string, error) {
	encoded, err := Encode(src)
	if err != nil {
		return "", err
	}
	return pythonPrefix + encoded + pythonSuffix, nil
}

// UnwrapPython recovers the source of a program produced by WrapPython.
// A single trailing newline after the decoder is tolerated.
func UnwrapPython(wrapped string) (string, error) {
	body := strings.TrimSuffix(wrapped, "\n")
	body, ok := strings.CutPrefix(body, pythonPrefix)
	if !ok {
		return "", errors.InvalidInput(errors.PhaseDecode, "missing python decoder prefix")
	}
	body, ok = strings.CutSuffix(body, pythonSuffix)
	if !ok {
		return "", errors.InvalidInput(errors.PhaseDecode, "missing python decoder suffix")
	}
	return Decode(body)
}
