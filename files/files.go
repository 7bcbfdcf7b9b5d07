// Package files encodes and decodes whole files.
//
// Source files are normalised before encoding: tabs are expanded to spaces
// and carriage returns are dropped, each with a warning on the package
// logger. Output files are never replaced unless Options.Overwrite is set.
package files

import (
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/zalgo-codec/codec"
	"github.com/wippyai/zalgo-codec/errors"
)

// Options controls normalisation and output handling.
type Options struct {
	// TabWidth is the number of spaces a tab expands to. Zero or less keeps
	// tabs, which then fail to encode.
	TabWidth int
	// Overwrite allows replacing an existing output file.
	Overwrite bool
}

// DefaultOptions expands tabs to four spaces and refuses to overwrite.
func DefaultOptions() Options {
	return Options{TabWidth: 4}
}

// EncodeFile encodes the contents of in and writes the result to out.
func EncodeFile(in, out string, opts Options) error {
	src, err := ReadEncodable(in, opts)
	if err != nil {
		return err
	}
	encoded, err := codec.Encode(src)
	if err != nil {
		return err
	}
	return WriteFile(out, []byte(encoded), opts.Overwrite)
}

// DecodeFile decodes a file written by EncodeFile and writes the text to out.
func DecodeFile(in, out string, opts Options) error {
	encoded, err := ReadEncoded(in)
	if err != nil {
		return err
	}
	decoded, err := codec.Decode(encoded)
	if err != nil {
		return err
	}
	return WriteFile(out, []byte(decoded), opts.Overwrite)
}

// WrapPythonFile encodes a Python source file into a self-decoding program.
// The result needs Python 3.10 or later.
func WrapPythonFile(in, out string, opts Options) error {
	src, err := ReadEncodable(in, opts)
	if err != nil {
		return err
	}
	wrapped, err := codec.WrapPython(src)
	if err != nil {
		return err
	}
	return WriteFile(out, []byte(wrapped), opts.Overwrite)
}

// UnwrapPythonFile recovers the source of a program written by WrapPythonFile.
func UnwrapPythonFile(in, out string, opts Options) error {
	wrapped, err := readString(in)
	if err != nil {
		return err
	}
	wrapped = stripCarriageReturns(in, wrapped)
	src, err := codec.UnwrapPython(wrapped)
	if err != nil {
		return err
	}
	return WriteFile(out, []byte(src), opts.Overwrite)
}

// ReadEncodable reads path and normalises it for encoding.
func ReadEncodable(path string, opts Options) (string, error) {
	s, err := readString(path)
	if err != nil {
		return "", err
	}
	if opts.TabWidth > 0 {
		if n := strings.Count(s, "\t"); n > 0 {
			Logger().Warn("replacing tabs with spaces",
				zap.String("path", path),
				zap.Int("count", n),
				zap.Int("width", opts.TabWidth))
			s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", opts.TabWidth))
		}
	}
	return stripCarriageReturns(path, s), nil
}

// ReadEncoded reads an encoded file. Carriage returns and a single trailing
// line feed, as added by editors, are removed.
func ReadEncoded(path string) (string, error) {
	s, err := readString(path)
	if err != nil {
		return "", err
	}
	s = stripCarriageReturns(path, s)
	return strings.TrimSuffix(s, "\n"), nil
}

// WriteFile writes data to path. Unless overwrite is set an existing file is
// left alone and an already_exists error is returned.
func WriteFile(path string, data []byte, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return errors.AlreadyExists(path)
		}
		return errors.IO("open", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return errors.IO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.IO("close", path, err)
	}

	Logger().Debug("wrote file", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

func readString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.IO("read", path, err)
	}
	return string(data), nil
}

func stripCarriageReturns(path, s string) string {
	n := strings.Count(s, "\r")
	if n == 0 {
		return s
	}
	Logger().Warn("ignoring carriage returns",
		zap.String("path", path),
		zap.Int("count", n))
	return strings.ReplaceAll(s, "\r", "")
}
