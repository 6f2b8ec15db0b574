package value

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"
	"strconv"
	"strings"
)

// NumKind discriminates the rung of the numeric tower a Number occupies:
// Int < Rational < Real < Complex, mirroring the promotion lattice of
// original_source/src/types/number.rs's Number enum (Fixnum/Bignum share a
// single Int rung; Number keeps that split itself in its Small and Big
// fields).
type NumKind int

const (
	NumInt NumKind = iota
	NumRational
	NumReal
	NumComplex
)

// Number is copper's numeric tower value. Only the field(s) matching Kind
// are meaningful. Int values that fit in a machine word are kept in Small
// with Big == nil; values that overflow are promoted to Big, matching the
// original's Fixnum(i64)/Bignum(BigInt) split and its checked-arithmetic
// overflow promotion.
type Number struct {
	Kind    NumKind
	Small   int64
	Big     *big.Int // non-nil only when the Int doesn't fit in Small
	Rat     *big.Rat
	Real    float64
	Complex complex128
	Exact   bool // read by IsExact for NumReal/NumComplex; no constructor or parser sets it
}

// IntFromInt64 builds an exact integer Number.
func IntFromInt64(n int64) Number {
	return Number{Kind: NumInt, Small: n}
}

// IntFromBig builds an exact integer Number from a big.Int, demoting to
// Small when it fits — mirroring Number::from_bigint in the original.
func IntFromBig(n *big.Int) Number {
	if n.IsInt64() {
		return Number{Kind: NumInt, Small: n.Int64()}
	}
	return Number{Kind: NumInt, Big: new(big.Int).Set(n)}
}

// RatFromBig builds a Rational Number, demoting to Int if the denominator
// reduces to 1, mirroring Number::from_rational's auto-demotion.
func RatFromBig(r *big.Rat) Number {
	if r.IsInt() {
		return IntFromBig(r.Num())
	}
	return Number{Kind: NumRational, Rat: new(big.Rat).Set(r)}
}

// RealFromFloat64 builds an inexact Real Number.
func RealFromFloat64(f float64) Number {
	return Number{Kind: NumReal, Real: f}
}

// ComplexFromComplex128 builds a Complex Number.
func ComplexFromComplex128(c complex128) Number {
	return Number{Kind: NumComplex, Complex: c}
}

// bigInt returns n's value as a *big.Int, valid only when Kind == NumInt.
func (n Number) bigInt() *big.Int {
	if n.Big != nil {
		return n.Big
	}
	return big.NewInt(n.Small)
}

// IsExactZeroDivisor reports whether n is an exact zero, used by Div to
// reject division by exact zero the way the original's pre-check does
// ("unable to divide by 0"), before falling into IEEE-754 Inf/NaN behavior
// for inexact zero.
func (n Number) IsExactZeroDivisor() bool {
	switch n.Kind {
	case NumInt:
		return n.bigInt().Sign() == 0
	case NumRational:
		return n.Rat.Sign() == 0
	default:
		return false
	}
}

// IsExact reports whether n carries exact arithmetic semantics (Int and
// Rational are always exact; Real/Complex report their Exact field, which
// is false for every Number ParseNumber builds, since a #e prefix turns a
// real literal into a Rational instead).
func (n Number) IsExact() bool {
	switch n.Kind {
	case NumInt, NumRational:
		return true
	default:
		return n.Exact
	}
}

// IsZero reports whether n is numerically zero, exact or not.
func (n Number) IsZero() bool {
	switch n.Kind {
	case NumInt:
		return n.bigInt().Sign() == 0
	case NumRational:
		return n.Rat.Sign() == 0
	case NumReal:
		return n.Real == 0
	case NumComplex:
		return n.Complex == 0
	}
	return false
}

// rung returns the Kind's position on the promotion lattice, used to find
// the common type two operands must be coerced to before an operator runs.
func rung(k NumKind) int { return int(k) }

// commonKind returns the higher of a's and b's rungs on the promotion
// lattice Int < Rational < Real < Complex.
func commonKind(a, b NumKind) NumKind {
	if rung(a) > rung(b) {
		return a
	}
	return b
}

func (n Number) toRat() *big.Rat {
	switch n.Kind {
	case NumInt:
		return new(big.Rat).SetInt(n.bigInt())
	case NumRational:
		return n.Rat
	}
	panic("toRat: not an exact number")
}

func (n Number) toFloat() float64 {
	switch n.Kind {
	case NumInt:
		f := new(big.Float).SetInt(n.bigInt())
		v, _ := f.Float64()
		return v
	case NumRational:
		f, _ := n.Rat.Float64()
		return f
	case NumReal:
		return n.Real
	}
	panic("toFloat: complex number")
}

func (n Number) toComplex() complex128 {
	if n.Kind == NumComplex {
		return n.Complex
	}
	return complex(n.toFloat(), 0)
}

// promoteTo coerces n up to the target rung of the lattice. It never
// demotes; callers pick target via commonKind.
func (n Number) promoteTo(target NumKind) Number {
	if n.Kind == target {
		return n
	}
	switch target {
	case NumRational:
		return Number{Kind: NumRational, Rat: n.toRat()}
	case NumReal:
		return Number{Kind: NumReal, Real: n.toFloat()}
	case NumComplex:
		return Number{Kind: NumComplex, Complex: n.toComplex()}
	}
	return n
}

// Add returns a+b, promoting operands to a common rung first.
func (a Number) Add(b Number) Number {
	k := commonKind(a.Kind, b.Kind)
	a, b = a.promoteTo(k), b.promoteTo(k)
	switch k {
	case NumInt:
		return IntFromBig(new(big.Int).Add(a.bigInt(), b.bigInt()))
	case NumRational:
		return RatFromBig(new(big.Rat).Add(a.Rat, b.Rat))
	case NumReal:
		return RealFromFloat64(a.Real + b.Real)
	default:
		return ComplexFromComplex128(a.Complex + b.Complex)
	}
}

// Sub returns a-b.
func (a Number) Sub(b Number) Number {
	k := commonKind(a.Kind, b.Kind)
	a, b = a.promoteTo(k), b.promoteTo(k)
	switch k {
	case NumInt:
		return IntFromBig(new(big.Int).Sub(a.bigInt(), b.bigInt()))
	case NumRational:
		return RatFromBig(new(big.Rat).Sub(a.Rat, b.Rat))
	case NumReal:
		return RealFromFloat64(a.Real - b.Real)
	default:
		return ComplexFromComplex128(a.Complex - b.Complex)
	}
}

// Mul returns a*b.
func (a Number) Mul(b Number) Number {
	k := commonKind(a.Kind, b.Kind)
	a, b = a.promoteTo(k), b.promoteTo(k)
	switch k {
	case NumInt:
		return IntFromBig(new(big.Int).Mul(a.bigInt(), b.bigInt()))
	case NumRational:
		return RatFromBig(new(big.Rat).Mul(a.Rat, b.Rat))
	case NumReal:
		return RealFromFloat64(a.Real * b.Real)
	default:
		return ComplexFromComplex128(a.Complex * b.Complex)
	}
}

// Div returns a/b. Dividing by an exact zero is a caller-checked error
// (see IsExactZeroDivisor); dividing by inexact zero follows IEEE-754 and
// produces +Inf/-Inf/NaN.
func (a Number) Div(b Number) Number {
	k := commonKind(a.Kind, b.Kind)
	if k == NumInt {
		k = NumRational // int/int may not be exactly integral
	}
	a, b = a.promoteTo(k), b.promoteTo(k)
	switch k {
	case NumRational:
		return RatFromBig(new(big.Rat).Quo(a.Rat, b.Rat))
	case NumReal:
		return RealFromFloat64(a.Real / b.Real)
	default:
		return ComplexFromComplex128(a.Complex / b.Complex)
	}
}

// Neg returns -a.
func (a Number) Neg() Number {
	switch a.Kind {
	case NumInt:
		return IntFromBig(new(big.Int).Neg(a.bigInt()))
	case NumRational:
		return RatFromBig(new(big.Rat).Neg(a.Rat))
	case NumReal:
		return RealFromFloat64(-a.Real)
	default:
		return ComplexFromComplex128(-a.Complex)
	}
}

// Rem returns the integer remainder of a%b. Both operands must be exact
// integers, matching the original's Rem impl ("expected integer").
func (a Number) Rem(b Number) (Number, error) {
	if a.Kind != NumInt || b.Kind != NumInt {
		return Number{}, fmt.Errorf("expected integer")
	}
	if b.IsExactZeroDivisor() {
		return Number{}, fmt.Errorf("unable to divide by 0")
	}
	return IntFromBig(new(big.Int).Rem(a.bigInt(), b.bigInt())), nil
}

// Cmp compares a and b numerically; both must be real-valued (Int,
// Rational, or Real — not Complex, which R7RS leaves unordered).
func (a Number) Cmp(b Number) (int, error) {
	if a.Kind == NumComplex || b.Kind == NumComplex {
		return 0, fmt.Errorf("complex numbers are not orderable")
	}
	k := commonKind(a.Kind, b.Kind)
	a, b = a.promoteTo(k), b.promoteTo(k)
	switch k {
	case NumInt:
		return a.bigInt().Cmp(b.bigInt()), nil
	case NumRational:
		return a.Rat.Cmp(b.Rat), nil
	default:
		switch {
		case a.Real < b.Real:
			return -1, nil
		case a.Real > b.Real:
			return 1, nil
		default:
			return 0, nil
		}
	}
}

// Abs returns |a|.
func (a Number) Abs() Number {
	switch a.Kind {
	case NumInt:
		return IntFromBig(new(big.Int).Abs(a.bigInt()))
	case NumRational:
		return RatFromBig(new(big.Rat).Abs(a.Rat))
	case NumReal:
		return RealFromFloat64(math.Abs(a.Real))
	default:
		return RealFromFloat64(cmplx.Abs(a.Complex))
	}
}

// String renders n the way `display`/`write` and the REPL print numbers.
func (n Number) String() string {
	switch n.Kind {
	case NumInt:
		return n.bigInt().String()
	case NumRational:
		return n.Rat.RatString()
	case NumReal:
		return formatReal(n.Real)
	default:
		return formatComplex(n.Complex)
	}
}

func formatReal(f float64) string {
	if math.IsInf(f, 1) {
		return "+inf.0"
	}
	if math.IsInf(f, -1) {
		return "-inf.0"
	}
	if math.IsNaN(f) {
		return "+nan.0"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += "."
	}
	return s
}

func formatComplex(c complex128) string {
	re, im := real(c), imag(c)
	if re == 0 {
		return formatReal(im) + "i"
	}
	imStr := formatReal(im)
	if im >= 0 && !strings.HasPrefix(imStr, "+") {
		imStr = "+" + imStr
	}
	return formatReal(re) + imStr + "i"
}
