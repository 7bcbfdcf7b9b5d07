// Package zalgocodec hides text inside a single grapheme cluster.
//
// Line feed and printable ASCII are mapped one to one onto combining marks
// in the block U+0300..U+036F and stacked on an anchor 'E'. The result
// renders as one heavily decorated character and decodes back to exactly the
// original text.
//
// # Architecture Overview
//
//	zalgocodec/          Root package with convenience wrappers
//	├── codec/           Pure encode/decode transform
//	├── zstring/         ZalgoString, an owning buffer that stays encoded
//	├── serde/           JSON and YAML envelopes with revalidation
//	├── files/           File helpers with tab and carriage return handling
//	├── splice/          Build-time expansion of encoded Go source
//	├── errors/          Structured error types for debugging
//	└── cmd/             zalgo CLI/TUI and zalgo-embed generator
//
// # Quick Start
//
//	enc, err := zalgocodec.Encode("Zalgo")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dec, _ := zalgocodec.Decode(enc) // "Zalgo"
//
// Hold and grow an encoded value:
//
//	z, _ := zalgocodec.New("Zal")
//	_ = z.PushString("go")
//	fmt.Println(z.Decode()) // "Zalgo"
//
// # Errors
//
// Every failure is an *errors.Error with a Phase and a Kind and can be
// matched with errors.Is against the package sentinels:
//
//	if errors.Is(err, zerrors.ErrUnencodable) {
//	    var e *zerrors.Error
//	    errors.As(err, &e)
//	    fmt.Printf("byte %d at line %d column %d\n", e.Index, e.Line, e.Column)
//	}
package zalgocodec
