// Package main provides the chksum command. It prints the digest of every
// file, directory tree or standard input named on the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/isseis/go-chksum"
	"github.com/isseis/go-chksum/algo"
	"github.com/isseis/go-chksum/internal/config"
	"github.com/isseis/go-chksum/internal/logging"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1 // at least one input could not be hashed
	exitUsage   = 2 // bad flags or configuration
)

const stdinArg = "-"

type cliOptions struct {
	configPath     string
	algorithm      string
	chunkSize      int
	logLevel       string
	logDir         string
	upper          bool
	quiet          bool
	listAlgorithms bool
	paths          []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	opts, fs, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		printUsage(fs, stderr)
		return exitUsage
	}

	if opts.listAlgorithms {
		for _, name := range algo.Names() {
			_, _ = fmt.Fprintln(stdout, name)
		}
		return exitOK
	}

	cfg, err := loadConfig(opts, fs)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	session, err := logging.Setup(logging.Options{
		Level:   level,
		LogDir:  cfg.LogDir,
		Quiet:   opts.quiet,
		Console: stderr,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: failed to set up logging: %v\n", err)
		return exitUsage
	}
	defer func() {
		if err := session.Close(); err != nil {
			_, _ = fmt.Fprintf(stderr, "Warning: failed to close log file: %v\n", err)
		}
	}()

	alg, err := cfg.AlgorithmValue()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	sumArgs, err := cfg.Args()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	slog.Debug("Starting chksum",
		"run_id", session.RunID,
		"algorithm", alg.Name(),
		"inputs", len(opts.paths))

	h := hasher{alg: alg, args: sumArgs, upper: cfg.Uppercase, stdin: stdin}
	return h.processPaths(opts.paths, stdout, stderr)
}

func parseArgs(args []string, stderr io.Writer) (*cliOptions, *pflag.FlagSet, error) {
	opts := &cliOptions{}

	fs := pflag.NewFlagSet("chksum", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs, stderr) }
	fs.StringVarP(&opts.algorithm, "algorithm", "a", config.DefaultAlgorithm, "Hash algorithm (see --list-algorithms)")
	fs.IntVar(&opts.chunkSize, "chunk-size", chksum.DefaultChunkSize, "Read buffer size in bytes")
	fs.BoolVarP(&opts.upper, "upper", "u", false, "Print digests in upper case hex")
	fs.StringVarP(&opts.configPath, "config", "c", "", "Config file (.toml, .yaml or .yml)")
	fs.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&opts.logDir, "log-dir", "", "Directory for per-run JSON logs")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress log output on stderr")
	fs.BoolVar(&opts.listAlgorithms, "list-algorithms", false, "List supported algorithms and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}

	opts.paths = fs.Args()
	if len(opts.paths) == 0 {
		opts.paths = []string{stdinArg}
	}
	return opts, fs, nil
}

// loadConfig merges defaults, the config file, the environment and the
// flags the user actually set, in increasing order of precedence.
func loadConfig(opts *cliOptions, fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.NewLoader().Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if fs.Changed("algorithm") {
		cfg.Algorithm = opts.algorithm
	}
	if fs.Changed("chunk-size") {
		size := opts.chunkSize
		cfg.ChunkSize = &size
	}
	if fs.Changed("upper") {
		cfg.Uppercase = opts.upper
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if fs.Changed("log-dir") {
		cfg.LogDir = opts.logDir
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func printUsage(fs *pflag.FlagSet, w io.Writer) {
	if fs == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Usage: %s [flags] [path...]\n", filepath.Base(os.Args[0]))
	_, _ = fmt.Fprintln(w, "With no path, or when path is -, read standard input.")
	_, _ = fmt.Fprint(w, fs.FlagUsages())
}

type hasher struct {
	alg   chksum.Algorithm
	args  chksum.Args
	upper bool
	stdin *os.File
}

// processPaths hashes every path in order and prints "<hex>  <path>" for
// each success. Failures are reported on stderr and do not stop the loop.
func (h hasher) processPaths(paths []string, stdout, stderr io.Writer) int {
	failures := 0
	for _, p := range paths {
		digest, err := chksum.Sum(h.alg, h.input(p), h.args)
		if err != nil {
			failures++
			_, _ = fmt.Fprintf(stderr, "chksum: %s\n", describeError(p, err))
			slog.Debug("Digest failed", "path", p, "error", err)
			continue
		}

		hex := digest.HexLower()
		if h.upper {
			hex = digest.HexUpper()
		}
		_, _ = fmt.Fprintf(stdout, "%s  %s\n", hex, p)
		slog.Debug("Digest computed", "path", p, "algorithm", h.alg.Name(), "digest", hex)
	}

	if failures > 0 {
		return exitFailure
	}
	return exitOK
}

func (h hasher) input(p string) chksum.Input {
	if p == stdinArg {
		return chksum.StdinFile(h.stdin)
	}
	return chksum.Path(p)
}

func describeError(p string, err error) string {
	if errors.Is(err, chksum.ErrIsTerminal) {
		return fmt.Sprintf("%s: refusing to read from an interactive terminal", p)
	}
	var ioErr *chksum.IOError
	if errors.As(err, &ioErr) {
		return ioErr.Error()
	}
	return fmt.Sprintf("%s: %v", p, err)
}
