// Command zalgo-embed expands a template of encoded Go source into a Go file.
//
//	//go:generate zalgo-embed -in hidden.zgo -out hidden.go
//
// Every marker that fails to decode is printed as file:line:col and the
// command exits with status 1, failing the generate step.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	zerrors "github.com/wippyai/zalgo-codec/errors"
	"github.com/wippyai/zalgo-codec/files"
	"github.com/wippyai/zalgo-codec/splice"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("zalgo-embed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in      = fs.String("in", "", "Template file (.zgo)")
		out     = fs.String("out", "", "Generated Go file (default: template name with .go)")
		keep    = fs.Bool("keep", false, "Refuse to replace an existing output file")
		verbose = fs.Bool("v", false, "Verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *in == "" {
		fmt.Fprintln(stderr, "Usage: zalgo-embed -in <file.zgo> [-out file.go] [-keep] [-v]")
		return 2
	}
	if *out == "" {
		*out = outputPath(*in)
	}

	level := zapcore.WarnLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	log := zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(stderr), level))
	defer func() { _ = log.Sync() }()
	splice.SetLogger(log)
	files.SetLogger(log)

	err := splice.ProcessFile(*in, *out, !*keep)
	if err == nil {
		return 0
	}

	var diags *zerrors.DiagnosticsError
	if errors.As(err, &diags) {
		for _, d := range diags.Diagnostics {
			fmt.Fprintln(stderr, d.String())
		}
		return 1
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

// outputPath swaps a .zgo extension for .go, or appends .go otherwise.
func outputPath(in string) string {
	if base, ok := strings.CutSuffix(in, ".zgo"); ok && base != "" {
		return base + ".go"
	}
	return in + ".go"
}
