// ctypedump extracts the type declarations (typedefs, structs, enums,
// unions) of a single C source or header file into a serializable
// model, written to stdout as one line of JSON by default.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"ctypedump/internal/cindex"
	"ctypedump/internal/config"
	"ctypedump/internal/emit"
	"ctypedump/internal/extract"
	"ctypedump/internal/model"
)

// stringList collects a repeatable flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

var (
	configFile string
	outputFile string
	format     string
	pretty     bool
	verbose    bool
	includes   stringList
	defines    stringList
)

func init() {
	flag.StringVar(&configFile, "c", "", "YAML run configuration file")
	flag.StringVar(&outputFile, "o", "", "Output file (default: stdout)")
	flag.StringVar(&format, "format", "", "Output format: json or yaml (default: json)")
	flag.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flag.BoolVar(&verbose, "v", false, "Dump the extracted model to stderr")
	flag.Var(&includes, "I", "Include directory for clang (repeatable)")
	flag.Var(&defines, "D", "Preprocessor define for clang (repeatable)")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr, `ctypedump - C type declaration extractor

Usage:
    ctypedump [options] <file.c|file.h>

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
    # Compact JSON on stdout
    ctypedump types.h

    # With include paths and defines
    ctypedump -I vendor/include -D FOO=1 types.h

    # Pretty JSON to a file
    ctypedump -pretty -o types.json types.h

    # YAML output
    ctypedump -format yaml types.h

`)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one input file, got %d arguments", flag.NArg())
	}
	path := flag.Arg(0)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tu, err := cindex.ParseFile(path, cfg.Clang.ClangArgs())
	if err != nil {
		return err
	}
	defer tu.Close()

	entries := extract.Extract(tu.Root())

	if verbose {
		fmt.Fprintf(os.Stderr, "extracted %d entries from %s\n", len(entries), path)
		spew.Fdump(os.Stderr, entries)
	}

	if outputFile != "" {
		return writeFile(outputFile, entries, cfg.Output)
	}

	return emit.NewEncoder(os.Stdout, cfg.Output).Encode(entries)
}

// writeFile encodes entries to a file, propagating the close error so
// a flush failure at close time does not pass as success.
func writeFile(path string, entries model.List, out config.Output) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := emit.NewEncoder(f, out).Encode(entries); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	return nil
}

// loadConfig merges the optional config file with CLI overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	if configFile != "" {
		loaded, err := config.LoadFile(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if format != "" {
		f, err := config.ParseFormat(format)
		if err != nil {
			return nil, err
		}
		cfg.Output.Format = f
	}
	if pretty {
		cfg.Output.Pretty = true
	}

	cfg.Clang.IncludeDirs = append(cfg.Clang.IncludeDirs, includes...)
	cfg.Clang.Defines = append(cfg.Clang.Defines, defines...)

	return cfg, nil
}
