package interp

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

// TestEvalSnapshots runs a handful of representative programs and snapshots
// their write-form results with go-snaps, the way the teacher's own
// fixture-driven tests snapshot full program output rather than hand-writing
// every expected string.
func TestEvalSnapshots(t *testing.T) {
	programs := map[string]string{
		"factorial":       "(define (fact n) (if (= n 0) 1 (* n (fact (- n 1))))) (fact 10)",
		"closures":        "(define (counter) (define n 0) (lambda () (set! n (+ n 1)) n)) (define c (counter)) (c) (c) (c)",
		"numeric_tower":   "(+ 1/2 1/3 0.25 (expt 2 64))",
		"quasiquote":      "(define x 5) `(a b ,x ,@(list 1 2 3))",
		"vector_and_list": "(map (lambda (v) (vector-ref v 0)) (list (vector 1 2) (vector 3 4)))",
		"string_ops":      `(string-append (string-upcase "hi") "-" (number->string 42))`,
	}

	for name, src := range programs {
		t.Run(name, func(t *testing.T) {
			result := evalSrc(t, src)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_result", name), value.Write(result))
		})
	}
}
