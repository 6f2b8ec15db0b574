package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/reader"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

// evalSrc evaluates every top-level form in src against a fresh global
// environment and returns the last result.
func evalSrc(t *testing.T, src string) value.Expr {
	t.Helper()
	forms, err := reader.ReadAll(src, "")
	if err != nil {
		t.Fatalf("ReadAll(%q): %v", src, err)
	}
	env := NewGlobal()
	var out value.Expr
	for _, form := range forms {
		out, err = Eval(form, env)
		if err != nil {
			t.Fatalf("Eval(%q): %v", src, err)
		}
	}
	return out
}

func TestEvalSelfEvaluating(t *testing.T) {
	if got := evalSrc(t, "42"); value.Write(got) != "42" {
		t.Errorf("42 => %s", value.Write(got))
	}
	if got := evalSrc(t, `"hi"`); value.Write(got) != `"hi"` {
		t.Errorf(`"hi" => %s`, value.Write(got))
	}
}

func TestEvalQuote(t *testing.T) {
	got := evalSrc(t, "(quote (1 2 3))")
	if value.Write(got) != "(1 2 3)" {
		t.Errorf("(quote (1 2 3)) => %s", value.Write(got))
	}
}

func TestEvalDefineAndLookup(t *testing.T) {
	got := evalSrc(t, "(define x 10) (+ x 5)")
	if value.Write(got) != "15" {
		t.Errorf("define/+ => %s, want 15", value.Write(got))
	}
}

func TestEvalSetBang(t *testing.T) {
	got := evalSrc(t, "(define x 1) (set! x 2) x")
	if value.Write(got) != "2" {
		t.Errorf("set! => %s, want 2", value.Write(got))
	}
}

func TestEvalIf(t *testing.T) {
	if got := evalSrc(t, "(if #t 1 2)"); value.Write(got) != "1" {
		t.Errorf("(if #t 1 2) => %s", value.Write(got))
	}
	if got := evalSrc(t, "(if #f 1 2)"); value.Write(got) != "2" {
		t.Errorf("(if #f 1 2) => %s", value.Write(got))
	}
}

func TestEvalCond(t *testing.T) {
	got := evalSrc(t, "(cond (#f 1) (#t 2) (else 3))")
	if value.Write(got) != "2" {
		t.Errorf("cond => %s, want 2", value.Write(got))
	}
}

func TestEvalLambdaClosureCapturesEnv(t *testing.T) {
	got := evalSrc(t, `
		(define (make-adder n) (lambda (x) (+ x n)))
		(define add5 (make-adder 5))
		(add5 10)
	`)
	if value.Write(got) != "15" {
		t.Errorf("closure capture => %s, want 15", value.Write(got))
	}
}

func TestEvalRecursiveProcedure(t *testing.T) {
	got := evalSrc(t, `
		(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))
		(fact 5)
	`)
	if value.Write(got) != "120" {
		t.Errorf("(fact 5) => %s, want 120", value.Write(got))
	}
}

func TestEvalAndOrNotShortCircuitSemantics(t *testing.T) {
	// and/or/not are regular procedures here, not special forms, so all
	// arguments are evaluated eagerly — no short-circuiting. They also
	// always yield a Boolean rather than the last/first value.
	if got := evalSrc(t, "(and 1 2 3)"); value.Write(got) != "#t" {
		t.Errorf("(and 1 2 3) => %s, want #t", value.Write(got))
	}
	if got := evalSrc(t, "(and 1 #f 3)"); value.Write(got) != "#f" {
		t.Errorf("(and 1 #f 3) => %s, want #f", value.Write(got))
	}
	if got := evalSrc(t, "(or #f #f 5)"); value.Write(got) != "#t" {
		t.Errorf("(or #f #f 5) => %s, want #t", value.Write(got))
	}
	if got := evalSrc(t, "(or #f #f)"); value.Write(got) != "#f" {
		t.Errorf("(or #f #f) => %s, want #f", value.Write(got))
	}
	if got := evalSrc(t, "(not #f)"); value.Write(got) != "#t" {
		t.Errorf("(not #f) => %s, want #t", value.Write(got))
	}
}

func TestEvalSetCarSetCdrMutateSharedPair(t *testing.T) {
	got := evalSrc(t, `
		(define p (cons 1 2))
		(define q p)
		(set-car! q 99)
		p
	`)
	if value.Write(got) != "(99 . 2)" {
		t.Errorf("set-car! via aliased pair => %s, want (99 . 2)", value.Write(got))
	}
}

func TestEvalUnboundSymbolErrors(t *testing.T) {
	env := NewGlobal()
	forms, err := reader.ReadAll("undefined-var", "")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	_, err = Eval(forms[0], env)
	if err == nil {
		t.Fatal("expected an error evaluating an unbound symbol")
	}
	if want := "unexpected symbol 'undefined-var'"; !strings.Contains(err.Error(), want) {
		t.Errorf("error = %q, want it to contain %q", err.Error(), want)
	}
}

func TestDisplayWritesToStdout(t *testing.T) {
	env := NewGlobal()
	var buf bytes.Buffer
	env.Stdout = &buf

	forms, err := reader.ReadAll(`(display "hello")`, "")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if _, err := Eval(forms[0], env); err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if buf.String() != "hello" {
		t.Errorf("display wrote %q, want %q", buf.String(), "hello")
	}
}
