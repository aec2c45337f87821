// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jparse parses a JSON document and prints the resulting value tree.
//
// Usage:
//
//	jparse [flags] [file]
//
// With no file argument, jparse parses a built-in sample document. Use "-" to
// read from standard input.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/jparse"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const sampleDocument = `
    {
        "name": "John Doe",
        "age": 43,
        "phones": [
            "+44 1234567",
            "+44 2345678"
        ]
    }`

func main() {
	cmd := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jparse: %v\n", err)
		os.Exit(1)
	}
}

type runner struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	configPath string
	flags      Config
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	r := &runner{stdin: stdin, stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:   "jparse [flags] [file]",
		Short: "Parse a JSON document and print its value tree",
		Long: `Parse a JSON document and print its value tree.

With no file argument, a built-in sample document is parsed.
Use "-" to read the document from standard input.

Settings may be given in a YAML config file (--config) with the keys
log_level, format, hujson, strict, and path. Flags override the file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          r.run,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVar(&r.configPath, "config", "", "Path of a YAML config file")
	fs.StringVar(&r.flags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVarP(&r.flags.Format, "format", "f", "", "Output format (debug, summary)")
	fs.BoolVar(&r.flags.HuJSON, "hujson", false, "Accept comments and trailing commas (HuJSON)")
	fs.BoolVar(&r.flags.Strict, "strict", false, "Reject non-space text after the value")
	fs.StringVarP(&r.flags.Path, "path", "p", "", "Print only the value at this dotted path (e.g. phones.0)")
	return cmd
}

// config merges the config file, if any, with flags set on the command line.
func (r *runner) config(cmd *cobra.Command) (Config, error) {
	cfg, err := loadConfig(r.configPath)
	if err != nil {
		return cfg, err
	}
	fs := cmd.Flags()
	if fs.Changed("log-level") {
		cfg.LogLevel = r.flags.LogLevel
	}
	if fs.Changed("format") {
		cfg.Format = r.flags.Format
	}
	if fs.Changed("hujson") {
		cfg.HuJSON = r.flags.HuJSON
	}
	if fs.Changed("strict") {
		cfg.Strict = r.flags.Strict
	}
	if fs.Changed("path") {
		cfg.Path = r.flags.Path
	}
	return cfg, cfg.Validate()
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	cfg, err := r.config(cmd)
	if err != nil {
		return err
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "jparse",
		Level:  cfg.logLevel(),
		Output: r.stderr,
	})

	name, text, err := r.readInput(args)
	if err != nil {
		return err
	}
	logger.Debug("parsing input", "source", name, "bytes", len(text), "hujson", cfg.HuJSON)

	v, err := parseInput(logger, cfg, text)
	if err != nil {
		var serr *jparse.SyntaxError
		if errors.As(err, &serr) {
			pos := serr.Position(text)
			logger.Error("parse failed", "source", name, "position", pos.String(), "kind", serr.Kind.String())
			return errors.Wrapf(err, "%s:%v", name, pos)
		}
		return errors.Wrap(err, name)
	}

	if cfg.Path != "" {
		v, err = jparse.Path(v, jparse.ParsePath(cfg.Path)...)
		if err != nil {
			return errors.Wrapf(err, "path %q", cfg.Path)
		}
		logger.Debug("selected path", "path", cfg.Path, "kind", v.Kind().String())
	}
	return writeValue(r.stdout, cfg.Format, v)
}

func parseInput(logger hclog.Logger, cfg Config, text string) (jparse.Value, error) {
	if cfg.HuJSON {
		return jparse.ParseHuJSON([]byte(text))
	}
	v, end, err := jparse.ParsePrefix(text)
	if err != nil {
		return nil, err
	}
	if rest := strings.TrimSpace(text[end:]); rest != "" {
		if cfg.Strict {
			return nil, errors.Errorf("unexpected text after value at %v", jparse.Position(text, end))
		}
		logger.Warn("ignoring text after value", "offset", end, "bytes", len(text)-end)
	}
	return v, nil
}

// readInput returns the name and contents of the input document.
func (r *runner) readInput(args []string) (string, string, error) {
	switch {
	case len(args) == 0:
		return "sample", sampleDocument, nil
	case args[0] == "-":
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return "", "", errors.Wrap(err, "reading stdin")
		}
		return "stdin", string(data), nil
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", errors.Wrap(err, "reading input")
		}
		return args[0], string(data), nil
	}
}
