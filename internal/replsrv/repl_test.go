package replsrv

import (
	"strings"
	"testing"
)

func TestRunEvaluatesAndPrintsResults(t *testing.T) {
	in := strings.NewReader("(+ 1 2)\n(define x 5)\n(* x x)\n")
	var out, errOut strings.Builder

	r := New(in, &out, &errOut)
	r.Run()

	if errOut.Len() != 0 {
		t.Fatalf("unexpected stderr output: %q", errOut.String())
	}
	got := out.String()
	if !strings.Contains(got, "3\n") {
		t.Errorf("expected (+ 1 2) result 3 in output, got %q", got)
	}
	if !strings.Contains(got, "25\n") {
		t.Errorf("expected (* x x) result 25 in output, got %q", got)
	}
	if !strings.Contains(got, greeting) {
		t.Errorf("expected greeting in output, got %q", got)
	}
}

func TestRunMultilineAccumulation(t *testing.T) {
	in := strings.NewReader("(+ 1\n   2)\n")
	var out, errOut strings.Builder

	r := New(in, &out, &errOut)
	r.Run()

	if errOut.Len() != 0 {
		t.Fatalf("unexpected stderr output: %q", errOut.String())
	}
	if !strings.Contains(out.String(), "3\n") {
		t.Errorf("expected multiline form to evaluate to 3, got %q", out.String())
	}
}

func TestRunReportsErrorsAndContinues(t *testing.T) {
	in := strings.NewReader("(car 5)\n(+ 1 1)\n")
	var out, errOut strings.Builder

	r := New(in, &out, &errOut)
	r.Run()

	if errOut.Len() == 0 {
		t.Fatal("expected an error message on stderr for (car 5)")
	}
	if !strings.Contains(out.String(), "2\n") {
		t.Errorf("expected the REPL to recover and evaluate (+ 1 1), got %q", out.String())
	}
}

func TestCustomPromptIsUsed(t *testing.T) {
	in := strings.NewReader("1\n")
	var out, errOut strings.Builder

	r := New(in, &out, &errOut)
	r.Prompt = "copper> "
	r.Run()

	if !strings.Contains(out.String(), "copper> ") {
		t.Errorf("expected custom prompt in output, got %q", out.String())
	}
}
