package value

import (
	"math/big"
	"testing"
)

func TestParseNumberKinds(t *testing.T) {
	cases := map[string]NumKind{
		"42":    NumInt,
		"-7":    NumInt,
		"#xFF":  NumInt,
		"1/2":   NumRational,
		"4/2":   NumInt, // reduces to 2, demoted
		"1.5":   NumReal,
		"1e3":   NumReal,
		"3i":    NumComplex,
		"1+2i":  NumComplex,
	}
	for text, want := range cases {
		n, err := ParseNumber(text)
		if err != nil {
			t.Fatalf("ParseNumber(%q): %v", text, err)
		}
		if n.Kind != want {
			t.Errorf("ParseNumber(%q).Kind = %v, want %v", text, n.Kind, want)
		}
	}
}

func TestIntOverflowPromotesToBig(t *testing.T) {
	huge := new(big.Int)
	huge.SetString("99999999999999999999999999999999", 10)
	n := IntFromBig(huge)
	if n.Big == nil {
		t.Fatal("expected Big to be set for an overflowing integer")
	}
	if n.String() != huge.String() {
		t.Errorf("got %s, want %s", n.String(), huge.String())
	}
}

func TestRationalDemotesToInt(t *testing.T) {
	r := big.NewRat(4, 2)
	n := RatFromBig(r)
	if n.Kind != NumInt {
		t.Errorf("RatFromBig(4/2).Kind = %v, want NumInt", n.Kind)
	}
	if n.String() != "2" {
		t.Errorf("RatFromBig(4/2).String() = %q, want %q", n.String(), "2")
	}
}

func TestArithmeticPromotion(t *testing.T) {
	i := IntFromInt64(1)
	r := RatFromBig(big.NewRat(1, 2))
	sum := i.Add(r)
	if sum.Kind != NumRational {
		t.Errorf("int+rational Kind = %v, want NumRational", sum.Kind)
	}
	if sum.String() != "3/2" {
		t.Errorf("1 + 1/2 = %s, want 3/2", sum.String())
	}

	real := RealFromFloat64(0.5)
	sum2 := i.Add(real)
	if sum2.Kind != NumReal {
		t.Errorf("int+real Kind = %v, want NumReal", sum2.Kind)
	}
}

func TestDivByExactZeroFlagged(t *testing.T) {
	zero := IntFromInt64(0)
	if !zero.IsExactZeroDivisor() {
		t.Error("exact 0 should report IsExactZeroDivisor")
	}
	inexactZero := RealFromFloat64(0)
	if inexactZero.IsExactZeroDivisor() {
		t.Error("inexact 0.0 should not report IsExactZeroDivisor")
	}
}

func TestCmpOrdersAcrossKinds(t *testing.T) {
	a := IntFromInt64(1)
	b := RatFromBig(big.NewRat(3, 2))
	cmp, err := a.Cmp(b)
	if err != nil {
		t.Fatalf("Cmp: %v", err)
	}
	if cmp >= 0 {
		t.Errorf("1 vs 3/2: Cmp = %d, want < 0", cmp)
	}
}

func TestCmpRejectsComplex(t *testing.T) {
	a := ComplexFromComplex128(complex(1, 1))
	b := IntFromInt64(1)
	if _, err := a.Cmp(b); err == nil {
		t.Fatal("expected an error comparing a complex number")
	}
}

func TestFormatRealSpecials(t *testing.T) {
	inf := RealFromFloat64(1)
	huge := 1e308
	inf.Real = huge * 10 // overflow to +Inf
	if got := inf.String(); got != "+inf.0" {
		t.Errorf("+inf.0 formatting: got %q", got)
	}
}

func TestFormatIntegralFloatHasTrailingDot(t *testing.T) {
	n := RealFromFloat64(3)
	if got := n.String(); got != "3." {
		t.Errorf("RealFromFloat64(3).String() = %q, want %q", got, "3.")
	}
}
