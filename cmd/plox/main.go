// cmd/plox/main.go
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/pkg/errors"

	"plox/internal/config"
	"plox/internal/repl"
	"plox/internal/runner"
)

const VERSION = "0.1.0"

// Build variables - can be set during build with ldflags
var GitCommit = "unknown"

type options struct {
	configPath string
	mode       runner.Mode
	color      string
	help       bool
	version    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("plox: ")
	os.Exit(realMain(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// realMain returns the process exit code.
func realMain(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	opts, rest, err := readFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		showUsage(stderr)
		return runner.ExitUsage
	}
	if opts.help {
		showUsage(stdout)
		return runner.ExitOK
	}
	if opts.version {
		fmt.Fprintf(stdout, "plox %s (%s)\n", VERSION, GitCommit)
		return runner.ExitOK
	}
	if len(rest) > 1 {
		showUsage(stderr)
		return runner.ExitUsage
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		log.Printf("%v", err)
		return runner.ExitUsage
	}

	runOpts := runner.Options{
		Mode:   opts.mode,
		Stdout: stdout,
		Stderr: stderr,
		Color:  cfg.UseColor(os.Stderr),
	}

	if len(rest) == 1 {
		return runFile(rest[0], runOpts)
	}

	session := runner.NewSession(runOpts)
	err = repl.Start(stdin, stdout, session, repl.Options{
		Prompt:      cfg.Prompt,
		Banner:      cfg.Banner,
		Interactive: repl.IsInteractive(stdin),
	})
	if err != nil {
		log.Printf("%v", err)
		return runner.ExitIOErr
	}
	return runner.ExitOK
}

func readFlags(args []string) (options, []string, error) {
	var opts options
	parsed, optind, err := getopt.Getopts(args, "hVc:tafCN")
	if err != nil {
		return opts, nil, err
	}
	for _, opt := range parsed {
		switch opt.Option {
		case 'h':
			opts.help = true
		case 'V':
			opts.version = true
		case 'c':
			opts.configPath = opt.Value
		case 't':
			opts.mode = runner.ModeTokens
		case 'a':
			opts.mode = runner.ModeAST
		case 'f':
			opts.mode = runner.ModeFormat
		case 'C':
			opts.color = string(config.ColorAlways)
		case 'N':
			opts.color = string(config.ColorNever)
		}
	}
	return opts, args[optind:], nil
}

// loadConfig layers defaults, the config file, the environment and flags.
func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	path := opts.configPath
	if path == "" {
		path = os.Getenv("PLOX_CONFIG")
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg, err := cfg.ApplyEnv(os.LookupEnv)
	if err != nil {
		return cfg, errors.Wrap(err, "environment")
	}
	if opts.color != "" {
		cfg.Color = config.ColorMode(opts.color)
	}
	return cfg, nil
}

func runFile(path string, opts runner.Options) int {
	source, err := os.ReadFile(path)
	if err != nil {
		log.Printf("%v", errors.Wrapf(err, "could not read %s", path))
		return runner.ExitNoInput
	}
	return runner.Run(string(source), opts).Status.ExitCode()
}

func showUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: plox [options] [script]

With no script, plox reads statements from standard input one line at a time.

Options:
  -h         show this help
  -V         print the version
  -c FILE    read settings from a YAML config file (or $PLOX_CONFIG)
  -t         print the token stream instead of running
  -a         print the syntax tree instead of running
  -f         print the formatted program instead of running
  -C         always colour diagnostics
  -N         never colour diagnostics
`)
}
