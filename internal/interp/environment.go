// Package interp implements copper's environment model and evaluator: the
// parent-chain lexical scoping, the special-form dispatcher, and
// procedure application, grounded on the teacher's Interpreter.Eval
// type-switch shape and on original_source/src/env/mod.rs's EnvRef design.
package interp

import (
	"io"
	"os"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/ixerrors"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

// Env is copper's environment frame: a symbol table plus a pointer to the
// enclosing frame. Env is always used through a pointer, which gives it
// the same shared-mutable-reference semantics as the original's
// Rc<RefCell<Env>> without needing a Go equivalent of reference counting.
type Env struct {
	vars   map[string]value.Expr
	parent *Env

	// Stdout is where display/write/newline/print write to; tests and the
	// REPL both swap this out by assigning the field.
	Stdout io.Writer

	// Trace, when non-nil, receives one line per special-form dispatch and
	// procedure application — the ambient tracing hook described in
	// SPEC_FULL.md, toggled by the CLI's --trace flag.
	Trace func(format string, args ...any)
}

// NewGlobal builds a fresh top-level environment with every built-in
// procedure registered and Stdout defaulted to os.Stdout.
func NewGlobal() *Env {
	env := &Env{vars: make(map[string]value.Expr), Stdout: os.Stdout}
	RegisterBuiltins(env)
	return env
}

// Child returns a new environment frame nested inside e, used when
// applying a closure.
func (e *Env) Child() value.Environment {
	return &Env{vars: make(map[string]value.Expr), parent: e, Stdout: e.Stdout, Trace: e.Trace}
}

// Lookup resolves name by walking the parent chain outward, implementing
// lexical scoping: a closure's captured environment shadows the globals it
// was defined among.
func (e *Env) Lookup(name string) (value.Expr, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return value.Expr{}, false
}

// Define binds name to val in e's own frame, shadowing (rather than
// mutating) any binding of the same name in an enclosing frame.
func (e *Env) Define(name string, val value.Expr) {
	e.vars[name] = val
}

// Set mutates the nearest existing binding of name, walking outward the
// same way Lookup does. It returns false, leaving every frame untouched,
// if name is unbound anywhere in the chain — callers turn that into an
// UnboundSymbol error.
func (e *Env) Set(name string, val value.Expr) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = val
			return true
		}
	}
	return false
}

// Eval evaluates expr in e, satisfying value.Environment so builtins like
// `apply`, `map`, and `eval` can recurse into the evaluator without
// internal/value importing internal/interp.
func (e *Env) Eval(expr value.Expr) (value.Expr, error) {
	return Eval(expr, e)
}

// Apply invokes proc (a Closure or Func) with args already evaluated,
// satisfying value.Environment for the same reason as Eval.
func (e *Env) Apply(proc value.Expr, args []value.Expr) (value.Expr, error) {
	return apply(proc, args, e)
}

func (e *Env) errf(kind ixerrors.Kind, format string, args ...any) error {
	return ixerrors.New(kind, format, args...)
}

func (e *Env) trace(format string, args ...any) {
	if e.Trace != nil {
		e.Trace(format, args...)
	}
}

var _ value.Environment = (*Env)(nil)

// typeErrorf is a small convenience matching the taxonomy's most common
// case, used throughout the builtins package.
func typeErrorf(format string, args ...any) error {
	return ixerrors.New(ixerrors.TypeError, format, args...)
}

func arityErrorf(format string, args ...any) error {
	return ixerrors.New(ixerrors.ArityError, format, args...)
}

func rangeErrorf(format string, args ...any) error {
	return ixerrors.New(ixerrors.RangeError, format, args...)
}

func ioErrorf(format string, args ...any) error {
	return ixerrors.New(ixerrors.IOError, format, args...)
}

func arithErrorf(format string, args ...any) error {
	return ixerrors.New(ixerrors.ArithmeticError, format, args...)
}

func unboundErrorf(name string) error {
	return ixerrors.New(ixerrors.UnboundSymbol, "unexpected symbol '%s'", name)
}
