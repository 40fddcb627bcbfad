// internal/repl/repl.go
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"plox/internal/interpreter"
	"plox/internal/runner"
)

const banner = "plox | type 'exit' to quit, '.env' to list bindings"

type Options struct {
	Prompt string
	Banner bool

	// Interactive enables the banner and prompt. Piped input runs silently.
	Interactive bool
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Start reads in line by line, running each line as a complete program in
// session. Errors in a line are reported and the loop carries on; it returns
// nil at end of input or on "exit".
func Start(in io.Reader, out io.Writer, session *runner.Session, opts Options) error {
	if opts.Interactive && opts.Banner {
		fmt.Fprintln(out, banner)
	}
	reader := bufio.NewReader(in)

	for {
		if opts.Interactive {
			fmt.Fprint(out, opts.Prompt)
		}
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return errors.Wrap(err, "read input")
		}
		if line == "" && err == io.EOF {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		switch strings.TrimSpace(line) {
		case "exit":
			return nil
		case ".env":
			printBindings(out, session.Root())
		default:
			session.Run(line)
		}
		if err == io.EOF {
			break
		}
	}
	if opts.Interactive {
		fmt.Fprintln(out)
	}
	return nil
}

func printBindings(out io.Writer, env *interpreter.Environment) {
	for _, name := range env.Names() {
		v, _ := env.Lookup(name)
		fmt.Fprintf(out, "%s = %s (%s)\n", name, interpreter.Stringify(v), interpreter.TypeName(v))
	}
}
