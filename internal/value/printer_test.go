package value

import "testing"

func TestPrintVsWriteStrings(t *testing.T) {
	s := Str("hi\n")
	if got := Print(s); got != "hi\n" {
		t.Errorf("Print(%q) = %q, want raw text", s.Str, got)
	}
	if got := Write(s); got != `"hi\n"` {
		t.Errorf("Write(%q) = %q, want quoted/escaped", s.Str, got)
	}
}

func TestPrintVsWriteChars(t *testing.T) {
	c := Char(' ')
	if got := Print(c); got != " " {
		t.Errorf("Print(space char) = %q, want a literal space", got)
	}
	if got := Write(c); got != `#\space` {
		t.Errorf(`Write(space char) = %q, want #\space`, got)
	}
}

func TestPrintList(t *testing.T) {
	list := FromSlice([]Expr{Num(IntFromInt64(1)), Num(IntFromInt64(2)), Num(IntFromInt64(3))})
	if got := Write(list); got != "(1 2 3)" {
		t.Errorf("Write(list) = %q, want (1 2 3)", got)
	}
}

func TestPrintDottedPair(t *testing.T) {
	p := Cons(Num(IntFromInt64(1)), Num(IntFromInt64(2)))
	if got := Write(p); got != "(1 . 2)" {
		t.Errorf("Write(dotted pair) = %q, want (1 . 2)", got)
	}
}

func TestPrintCyclicPairDoesNotHang(t *testing.T) {
	p := &Pair{Car: Num(IntFromInt64(1))}
	self := Expr{Kind: KindPair, Pair: p}
	p.Cdr = self

	got := Write(self)
	if got == "" {
		t.Fatal("expected a printed form, even for a cyclic list")
	}
}

func TestPrintSharedAcyclicSublistTwice(t *testing.T) {
	// (define t (list 1 2 3)) (list t t) — t is shared but acyclic, so
	// both occurrences must print in full, not "..." on the repeat.
	shared := FromSlice([]Expr{Num(IntFromInt64(1)), Num(IntFromInt64(2)), Num(IntFromInt64(3))})
	outer := FromSlice([]Expr{shared, shared})
	if got := Write(outer); got != "((1 2 3) (1 2 3))" {
		t.Errorf("Write(shared sublist twice) = %q, want ((1 2 3) (1 2 3))", got)
	}
}

func TestPrintVector(t *testing.T) {
	v := NewVector([]Expr{Bool(true), Str("x")})
	if got := Write(v); got != `#(#t "x")` {
		t.Errorf(`Write(vector) = %q, want #(#t "x")`, got)
	}
}

func TestPrintByteVector(t *testing.T) {
	bv := NewByteVector([]byte{1, 2, 255})
	if got := Write(bv); got != "#u8(1 2 255)" {
		t.Errorf("Write(bytevector) = %q, want #u8(1 2 255)", got)
	}
}

func TestToSliceDetectsCycle(t *testing.T) {
	p := &Pair{Car: Num(IntFromInt64(1))}
	self := Expr{Kind: KindPair, Pair: p}
	p.Cdr = self

	if _, ok := ToSlice(self); ok {
		t.Fatal("ToSlice should report a cyclic list as not-ok")
	}
}

func TestToSliceRejectsImproperList(t *testing.T) {
	improper := Cons(Num(IntFromInt64(1)), Num(IntFromInt64(2)))
	if _, ok := ToSlice(improper); ok {
		t.Fatal("ToSlice should reject a dotted (improper) list")
	}
}

func TestIsTruthy(t *testing.T) {
	if Bool(false).IsTruthy() {
		t.Error("#f must be falsy")
	}
	truthyCases := []Expr{Bool(true), Num(IntFromInt64(0)), Str(""), Null}
	for _, e := range truthyCases {
		if !e.IsTruthy() {
			t.Errorf("%#v should be truthy", e)
		}
	}
}
