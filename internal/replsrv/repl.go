// Package replsrv implements copper's interactive read-eval-print loop:
// multiline-aware accumulation via internal/reader.Closed, one evaluation
// per complete datum, and error-recovery that prints and keeps going
// rather than aborting the session — grounded on
// original_source/src/main.rs's prompt loop and src/ui.rs's greeting/
// prompt strings.
package replsrv

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/interp"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/lexer"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/reader"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

const (
	greeting      = "copper version 0.1.0\nPress Ctrl+C to exit!\n"
	defaultPrompt = "> "
)

// REPL reads from In, evaluates against Env, and writes results/errors to
// Out/Err.
type REPL struct {
	In     io.Reader
	Out    io.Writer
	Err    io.Writer
	Env    *interp.Env
	Echo   bool   // print `... ` continuation prompts for unfinished forms
	Prompt string // overrides the default "> " prompt, e.g. from config.Config.Prompt
}

// New builds a REPL wired to a fresh global environment whose Stdout is Out.
func New(in io.Reader, out, errw io.Writer) *REPL {
	env := interp.NewGlobal()
	env.Stdout = out
	return &REPL{In: in, Out: out, Err: errw, Env: env, Echo: true, Prompt: defaultPrompt}
}

// Run drives the loop until In is exhausted (EOF) or a form evaluates
// `(exit)`. Each complete top-level datum is read, evaluated, and its
// result printed in write form; evaluation errors are reported and the
// loop continues with a fresh accumulation buffer.
func (r *REPL) Run() {
	fmt.Fprint(r.Out, greeting)

	scanner := bufio.NewScanner(r.In)
	var buf strings.Builder

	for {
		if buf.Len() == 0 {
			fmt.Fprint(r.Out, r.Prompt)
		} else if r.Echo {
			fmt.Fprint(r.Out, "... ")
		}

		if !scanner.Scan() {
			return
		}
		buf.WriteString(scanner.Text())
		buf.WriteString("\n")

		if !reader.Closed(buf.String()) {
			continue
		}

		source := buf.String()
		buf.Reset()
		if strings.TrimSpace(source) == "" {
			continue
		}

		r.evalSource(source)
	}
}

func (r *REPL) evalSource(source string) {
	forms, err := reader.ReadAll(source, "", lexer.WithTracing(r.Env.Trace != nil))
	if err != nil {
		fmt.Fprintf(r.Err, "error: %s\n", err)
		return
	}

	for _, form := range forms {
		result, err := r.Env.Eval(form)
		if err != nil {
			fmt.Fprintf(r.Err, "error: %s\n", err)
			return
		}
		if result.Kind != value.KindVoid {
			fmt.Fprintln(r.Out, value.Write(result))
		}
	}
}
