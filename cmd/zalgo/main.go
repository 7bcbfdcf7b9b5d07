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

	"github.com/wippyai/zalgo-codec/codec"
	"github.com/wippyai/zalgo-codec/files"
)

const usage = `Usage: zalgo [-o path] [-f] [-v] encode text WORDS...
       zalgo [-o path] [-f] [-v] encode file PATH
       zalgo [-o path] [-f] [-v] decode text ENCODED
       zalgo [-o path] [-f] [-v] decode file PATH
       zalgo [-o path] [-f] [-v] wrap PATH     (python source)
       zalgo [-o path] [-f] [-v] unwrap PATH
       zalgo -i  (interactive mode)
`

type config struct {
	outPath     string
	args        []string
	force       bool
	verbose     bool
	interactive bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("zalgo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	cfg := &config{}
	fs.StringVar(&cfg.outPath, "o", "", "Write the result to this file instead of stdout")
	fs.BoolVar(&cfg.force, "f", false, "Overwrite the -o file if it exists")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose logging")
	fs.BoolVar(&cfg.interactive, "i", false, "Interactive mode with TUI")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.args = fs.Args()

	if cfg.force && cfg.outPath == "" && !cfg.interactive {
		return nil, fmt.Errorf("-f requires -o")
	}
	if !cfg.interactive && len(cfg.args) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("missing command")
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	log := newLogger(stderr, cfg.verbose)
	defer func() { _ = log.Sync() }()
	files.SetLogger(log)

	if cfg.interactive {
		if !stdinTerminal() {
			fmt.Fprintln(stderr, "Error: interactive mode needs a terminal")
			return 1
		}
		if err := runInteractive(cfg.outPath, cfg.force); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	output, err := execute(cfg.args, files.DefaultOptions())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.outPath != "" {
		if err := files.WriteFile(cfg.outPath, []byte(output), cfg.force); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		log.Debug("result written", zap.String("path", cfg.outPath), zap.Int("bytes", len(output)))
		return 0
	}

	log.Debug("printing result", zap.Bool("terminal", stdoutTerminal()), zap.Int("bytes", len(output)))
	fmt.Fprintln(stdout, output)
	return 0
}

// execute runs one command and returns its output.
func execute(args []string, opts files.Options) (string, error) {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "encode":
		text, err := source(rest, opts, false)
		if err != nil {
			return "", err
		}
		return codec.Encode(text)

	case "decode":
		text, err := source(rest, opts, true)
		if err != nil {
			return "", err
		}
		return codec.Decode(text)

	case "wrap":
		if len(rest) != 1 {
			return "", fmt.Errorf("wrap takes one path")
		}
		text, err := files.ReadEncodable(rest[0], opts)
		if err != nil {
			return "", err
		}
		return codec.WrapPython(text)

	case "unwrap":
		if len(rest) != 1 {
			return "", fmt.Errorf("unwrap takes one path")
		}
		text, err := files.ReadEncoded(rest[0])
		if err != nil {
			return "", err
		}
		return codec.UnwrapPython(text)
	}
	return "", fmt.Errorf("unknown command %q", cmd)
}

// source resolves the "text ..." or "file PATH" operand of encode and decode.
func source(args []string, opts files.Options, encoded bool) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("expected text or file")
	}
	kind, rest := args[0], args[1:]
	switch kind {
	case "text":
		if !encoded {
			return strings.Join(rest, " "), nil
		}
		if len(rest) != 1 {
			return "", fmt.Errorf("can only decode one grapheme cluster at a time")
		}
		return rest[0], nil

	case "file":
		if len(rest) != 1 {
			return "", fmt.Errorf("file takes one path")
		}
		if encoded {
			return files.ReadEncoded(rest[0])
		}
		return files.ReadEncodable(rest[0], opts)
	}
	return "", fmt.Errorf("expected text or file, got %q", kind)
}
