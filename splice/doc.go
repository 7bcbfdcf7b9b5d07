// Package splice expands encoded Go source at build time.
//
// A template file is ordinary Go with two kinds of marker:
//
//	//zalgo:embed "<encoded>"
//
// is replaced by the decoded text as top-level declarations, and
//
//	zalgo.Embed("<encoded>")
//
// is replaced by the decoded text as a parenthesised expression. zalgo is a
// marker name only; templates do not import it.
//
// Process decodes every marker, substitutes it and formats the result with
// go/format. Any marker that fails to decode becomes a positioned
// diagnostic, and all of them are reported together in an
// *errors.DiagnosticsError so that a generate step fails the build.
//
// A typical template lives next to its output:
//
//	//go:generate zalgo-embed -in hidden.zgo -out hidden.go
package splice
