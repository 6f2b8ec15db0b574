package cmd

import (
	"fmt"
	"os"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/config"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/interp"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/lexer"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/reader"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/replsrv"
)

// runFile loads and evaluates every top-level form in path against a
// fresh global environment, in source order, the way `load` evaluates a
// loaded file — but as the top-level program rather than a nested call.
func runFile(cfg config.Config, path string, trace bool) error {
	resolved := cfg.ResolveLoadPath(path)

	data, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf("reading %s: %w", resolved, err)
	}

	env := interp.NewGlobal()
	env.Stdout = os.Stdout
	doTrace := trace || cfg.Trace
	if doTrace {
		env.Trace = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "[trace] "+format+"\n", args...)
		}
	}

	forms, err := reader.ReadAll(string(data), resolved, lexer.WithTracing(doTrace))
	if err != nil {
		return err
	}
	for _, form := range forms {
		if _, err := env.Eval(form); err != nil {
			return err
		}
	}
	return nil
}

// runREPL starts the interactive read-eval-print loop on stdin/stdout.
func runREPL(cfg config.Config, trace bool) {
	r := replsrv.New(os.Stdin, os.Stdout, os.Stderr)
	if cfg.Prompt != "" {
		r.Prompt = cfg.Prompt
	}
	if trace || cfg.Trace {
		r.Env.Trace = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "[trace] "+format+"\n", args...)
		}
	}
	r.Run()
}
