package splice

import (
	"go/scanner"
	"go/token"
	"strconv"
	"strings"

	"github.com/wippyai/zalgo-codec/errors"
)

// Directive starts a declarations marker.
const Directive = "//zalgo:embed"

// MarkerKind selects how decoded text is substituted.
type MarkerKind int

const (
	Declarations MarkerKind = iota
	Expression
)

func (k MarkerKind) String() string {
	switch k {
	case Declarations:
		return "declarations"
	case Expression:
		return "expression"
	}
	return "unknown"
}

// Marker is one embedding site. Offset and End delimit the source bytes it
// replaces.
type Marker struct {
	Literal string // encoded text, unquoted
	Pos     token.Position
	Kind    MarkerKind
	Offset  int
	End     int
}

type lexeme struct {
	lit string
	pos token.Pos
	tok token.Token
}

// Scan finds every marker in src. Malformed markers and scanner errors are
// returned as diagnostics; well-formed markers are returned in source order
// whether or not their literal decodes.
func Scan(filename string, src []byte) ([]Marker, []errors.Diagnostic) {
	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(src))

	var diags []errors.Diagnostic
	report := func(pos token.Position, msg string) {
		diags = append(diags, errors.Diagnostic{
			Err:    errors.InvalidInput(errors.PhaseSplice, msg),
			File:   pos.Filename,
			Line:   pos.Line,
			Column: pos.Column,
		})
	}

	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) { report(pos, msg) }, scanner.ScanComments)

	var lexemes []lexeme
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		lexemes = append(lexemes, lexeme{pos: pos, tok: tok, lit: lit})
	}

	var markers []Marker
	for i := 0; i < len(lexemes); i++ {
		lx := lexemes[i]
		switch {
		case lx.tok == token.COMMENT && strings.HasPrefix(lx.lit, Directive):
			arg := strings.TrimSpace(lx.lit[len(Directive):])
			lit, err := strconv.Unquote(arg)
			if err != nil {
				report(fset.Position(lx.pos), "zalgo:embed needs one quoted string")
				continue
			}
			off := file.Offset(lx.pos)
			markers = append(markers, Marker{
				Kind:    Declarations,
				Literal: lit,
				Pos:     fset.Position(lx.pos),
				Offset:  off,
				End:     off + len(lx.lit),
			})

		case isEmbedCall(lexemes, i):
			call := lexemes[i : i+6]
			arg, closing := call[4], call[5]
			if arg.tok != token.STRING || closing.tok != token.RPAREN {
				report(fset.Position(arg.pos), "zalgo.Embed takes one string literal")
				i += 3
				continue
			}
			lit, err := strconv.Unquote(arg.lit)
			if err != nil {
				report(fset.Position(arg.pos), "malformed string literal")
				i += 5
				continue
			}
			markers = append(markers, Marker{
				Kind:    Expression,
				Literal: lit,
				Pos:     fset.Position(arg.pos),
				Offset:  file.Offset(lx.pos),
				End:     file.Offset(closing.pos) + 1,
			})
			i += 5
		}
	}
	return markers, diags
}

// isEmbedCall matches zalgo . Embed ( at i and leaves room for the argument
// and the closing paren.
func isEmbedCall(lx []lexeme, i int) bool {
	if i+5 >= len(lx) {
		return false
	}
	return lx[i].tok == token.IDENT && lx[i].lit == "zalgo" &&
		lx[i+1].tok == token.PERIOD &&
		lx[i+2].tok == token.IDENT && lx[i+2].lit == "Embed" &&
		lx[i+3].tok == token.LPAREN
}
