package splice

import (
	"bytes"
	"cmp"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/wippyai/zalgo-codec/codec"
	"github.com/wippyai/zalgo-codec/errors"
	"github.com/wippyai/zalgo-codec/files"
)

// Process expands every marker in src and returns formatted Go source
// headed by a generated-code notice.
func Process(filename string, src []byte) ([]byte, error) {
	markers, diags := Scan(filename, src)

	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by zalgo-embed from %s. DO NOT EDIT.\n\n", filepath.Base(filename))

	last := 0
	for _, m := range markers {
		text, err := codec.Decode(m.Literal)
		if err != nil {
			diags = append(diags, errors.Diagnostic{
				Err:    err,
				File:   m.Pos.Filename,
				Line:   m.Pos.Line,
				Column: m.Pos.Column,
			})
			continue
		}

		out.Write(src[last:m.Offset])
		switch m.Kind {
		case Declarations:
			out.WriteString(text)
		case Expression:
			out.WriteByte('(')
			out.WriteString(text)
			out.WriteByte(')')
		}
		last = m.End

		Logger().Debug("expanded marker",
			zap.String("file", filename),
			zap.Int("line", m.Pos.Line),
			zap.Stringer("kind", m.Kind),
			zap.Int("bytes", len(text)))
	}

	if len(diags) > 0 {
		slices.SortStableFunc(diags, func(a, b errors.Diagnostic) int {
			if c := cmp.Compare(a.Line, b.Line); c != 0 {
				return c
			}
			return cmp.Compare(a.Column, b.Column)
		})
		return nil, errors.NewDiagnosticsError(diags)
	}
	out.Write(src[last:])

	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseSplice, "expanded source of "+filename+" is not valid Go", err)
	}
	return formatted, nil
}

// ProcessFile expands the template at in and writes the result to out.
func ProcessFile(in, out string, overwrite bool) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return errors.IO("read", in, err)
	}
	generated, err := Process(in, src)
	if err != nil {
		return err
	}
	if err := files.WriteFile(out, generated, overwrite); err != nil {
		return err
	}
	Logger().Info("generated", zap.String("template", in), zap.String("output", out))
	return nil
}
