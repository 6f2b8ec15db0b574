// Package ixerrors provides copper's structured, position-aware error
// type and taxonomy. Parse errors carry a source position and render with
// a caret-pointing source excerpt, the way CWBudde-go-dws/internal/errors
// formats CompilerErrors; every other kind collapses to the plain
// "error: <message>" line the REPL prints at the top level.
package ixerrors

import (
	"fmt"
	"strings"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/lexer"
)

// Kind is the error taxonomy surfaced at the REPL and CLI.
type Kind int

const (
	ParseError Kind = iota
	UnboundSymbol
	TypeError
	ArityError
	ArithmeticError
	RangeError
	IOError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case UnboundSymbol:
		return "unbound symbol"
	case TypeError:
		return "type error"
	case ArityError:
		return "arity error"
	case ArithmeticError:
		return "arithmetic error"
	case RangeError:
		return "range error"
	case IOError:
		return "io error"
	default:
		return "error"
	}
}

// Error is copper's structured error value. Every evaluator step and
// builtin returns (value.Expr, error); a returned error is always either
// nil or an *Error.
type Error struct {
	Kind    Kind
	Message string
	Source  string         // full source text, for caret rendering of ParseErrors
	File    string         // source file path, or "" for REPL input
	Pos     lexer.Position // meaningful only for ParseError
	HasPos  bool
}

// New builds a plain (non-positional) Error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewParseError builds a position-aware parse error.
func NewParseError(pos lexer.Position, source, file, message string) *Error {
	return &Error{Kind: ParseError, Message: message, Source: source, File: file, Pos: pos, HasPos: true}
}

// Error implements the error interface. Non-positional errors render as
// the bare message (the REPL and the CLI add the "error: " prefix when
// they print it); positional parse errors get the fuller caret-pointing
// Format() treatment.
func (e *Error) Error() string {
	if !e.HasPos {
		return e.Message
	}
	return e.Format(false)
}

// Format renders a parse error with a source excerpt and a caret pointing
// at the offending column. If color is true, ANSI escapes highlight the
// caret and message.
func (e *Error) Format(color bool) string {
	if !e.HasPos {
		return e.Message
	}

	var sb strings.Builder
	if e.File != "" {
		fmt.Fprintf(&sb, "%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "line %d:%d: ", e.Pos.Line, e.Pos.Column)
	}
	sb.WriteString(e.Message)

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		sb.WriteString("\n")
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// Is reports whether err is an *Error of the given Kind, for callers (the
// REPL's error-recovery loop, `load`'s abort-without-exiting behavior)
// that branch on the taxonomy rather than just printing the message.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
