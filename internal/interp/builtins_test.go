package interp

import (
	"testing"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

func mustWrite(t *testing.T, src, want string) {
	t.Helper()
	got := evalSrc(t, src)
	if got2 := value.Write(got); got2 != want {
		t.Errorf("%s => %s, want %s", src, got2, want)
	}
}

func TestBuiltinMath(t *testing.T) {
	mustWrite(t, "(+ 1 2 3)", "6")
	mustWrite(t, "(- 10 3 2)", "5")
	mustWrite(t, "(- 5)", "-5")
	mustWrite(t, "(* 2 3 4)", "24")
	mustWrite(t, "(/ 1 2)", "1/2")
	mustWrite(t, "(expt 2 10)", "1024")
	mustWrite(t, "(modulo -7 3)", "2")
	mustWrite(t, "(remainder -7 3)", "-1")
	mustWrite(t, "(quotient 7 2)", "3")
	mustWrite(t, "(abs -5)", "5")
	mustWrite(t, "(min 3 1 2)", "1")
	mustWrite(t, "(max 3 1 2)", "3")
	mustWrite(t, "(zero? 0)", "#t")
}

func TestBuiltinMulRejectsEmptyArgs(t *testing.T) {
	env := NewGlobal()
	if _, err := builtinMul(nil, env); err == nil {
		t.Fatal("expected (*) with no arguments to be an arity error")
	}
}

func TestBuiltinComparisons(t *testing.T) {
	mustWrite(t, "(< 1 2 3)", "#t")
	mustWrite(t, "(< 1 3 2)", "#f")
	mustWrite(t, "(= 1 1 1)", "#t")
	mustWrite(t, "(>= 3 3 2)", "#t")
}

func TestBuiltinPairsAndLists(t *testing.T) {
	mustWrite(t, "(cons 1 2)", "(1 . 2)")
	mustWrite(t, "(car (cons 1 2))", "1")
	mustWrite(t, "(cdr (cons 1 2))", "2")
	mustWrite(t, "(cadr (list 1 2 3))", "2")
	mustWrite(t, "(list 1 2 3)", "(1 2 3)")
	mustWrite(t, "(append (list 1 2) (list 3 4))", "(1 2 3 4)")
	mustWrite(t, "(length (list 1 2 3))", "3")
	mustWrite(t, "(reverse (list 1 2 3))", "(3 2 1)")
	mustWrite(t, "(list-ref (list 1 2 3) 1)", "2")
	mustWrite(t, `(member 2 (list 1 2 3))`, "(2 3)")
	mustWrite(t, `(assoc 'b (list (cons 'a 1) (cons 'b 2)))`, "(b . 2)")
}

func TestBuiltinPredicates(t *testing.T) {
	mustWrite(t, "(null? (list))", "#t")
	mustWrite(t, "(pair? (cons 1 2))", "#t")
	mustWrite(t, "(number? 1)", "#t")
	mustWrite(t, "(string? \"x\")", "#t")
	mustWrite(t, "(eq? 'a 'a)", "#t")
	mustWrite(t, "(equal? (list 1 2) (list 1 2))", "#t")
	mustWrite(t, "(eq? (list 1 2) (list 1 2))", "#f")
	mustWrite(t, "(even? 4)", "#t")
	mustWrite(t, "(odd? 3)", "#t")
}

func TestBuiltinVectors(t *testing.T) {
	mustWrite(t, "(vector-ref (vector 1 2 3) 1)", "2")
	mustWrite(t, "(vector-length (vector 1 2 3))", "3")
	mustWrite(t, "(define v (make-vector 3 0)) (vector-set! v 1 9) v", "#(0 9 0)")
}

func TestBuiltinStrings(t *testing.T) {
	mustWrite(t, `(string-append "foo" "bar")`, `"foobar"`)
	mustWrite(t, `(string-length "hello")`, "5")
	mustWrite(t, `(string-upcase "abc")`, `"ABC"`)
	mustWrite(t, `(substring "hello" 1 3)`, `"el"`)
	mustWrite(t, `(new-string)`, `""`)
	mustWrite(t, `(new-string #\a)`, `"a"`)
	mustWrite(t, `(string #\z)`, `"z"`)
	mustWrite(t, `(make-string 3 #\a)`, `"aaa"`)
}

func TestBuiltinApplyMap(t *testing.T) {
	mustWrite(t, "(apply + (list 1 2 3))", "6")
	mustWrite(t, "(map (lambda (x) (* x x)) (list 1 2 3))", "(1 4 9)")
}

func TestBuiltinConversions(t *testing.T) {
	mustWrite(t, "(number->string 42)", `"42"`)
	mustWrite(t, `(string->number "42")`, "42")
	mustWrite(t, "(symbol->string 'foo)", `"foo"`)
	mustWrite(t, `(string->symbol "foo")`, "foo")
}
