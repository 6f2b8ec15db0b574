package interp

import (
	"math"
	"math/big"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

// registerMath installs the numeric-tower arithmetic and comparison
// procedures, grounded on original_source/src/env/procedures.rs's Math
// group (add/sub/mult/div/exponent/modulo/abs/ceil/floor/min/max) and
// env/operators.rs's comparison operators.
func registerMath(env *Env) {
	define(env, "+", builtinAdd)
	define(env, "-", builtinSub)
	define(env, "*", builtinMul)
	define(env, "/", builtinDiv)
	define(env, "expt", builtinExpt)
	define(env, "modulo", builtinModulo)
	define(env, "remainder", builtinRemainder)
	define(env, "quotient", builtinQuotient)
	define(env, "abs", builtinAbs)
	define(env, "ceiling", builtinCeiling)
	define(env, "floor", builtinFloor)
	define(env, "round", builtinRound)
	define(env, "truncate", builtinTruncate)
	define(env, "min", builtinMin)
	define(env, "max", builtinMax)
	define(env, "=", builtinNumEq)
	define(env, "<", builtinLt)
	define(env, ">", builtinGt)
	define(env, "<=", builtinLe)
	define(env, ">=", builtinGe)
	define(env, "sqrt", builtinSqrt)
	define(env, "zero?", builtinZero)
}

func nums(name string, args []value.Expr) ([]value.Number, error) {
	out := make([]value.Number, len(args))
	for i, a := range args {
		if a.Kind != value.KindNumber {
			return nil, typeErrorf("%s: argument %d is not a number, got %s", name, i+1, a.TypeName())
		}
		out[i] = a.Num
	}
	return out, nil
}

func builtinAdd(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("+", args)
	if err != nil {
		return value.Expr{}, err
	}
	acc := value.IntFromInt64(0)
	for _, n := range ns {
		acc = acc.Add(n)
	}
	return value.Num(acc), nil
}

func builtinSub(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("-", args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) == 0 {
		return value.Expr{}, arityErrorf("- expects at least 1 argument")
	}
	if len(ns) == 1 {
		return value.Num(ns[0].Neg()), nil
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		acc = acc.Sub(n)
	}
	return value.Num(acc), nil
}

func builtinMul(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("*", args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) == 0 {
		return value.Expr{}, arityErrorf("* expects at least 1 argument")
	}
	acc := value.IntFromInt64(1)
	for _, n := range ns {
		acc = acc.Mul(n)
	}
	return value.Num(acc), nil
}

func builtinDiv(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("/", args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) == 0 {
		return value.Expr{}, arityErrorf("/ expects at least 1 argument")
	}
	if len(ns) == 1 {
		if ns[0].IsExactZeroDivisor() {
			return value.Expr{}, arithErrorf("unable to divide by 0")
		}
		return value.Num(value.IntFromInt64(1).Div(ns[0])), nil
	}
	acc := ns[0]
	for _, n := range ns[1:] {
		if n.IsExactZeroDivisor() {
			return value.Expr{}, arithErrorf("unable to divide by 0")
		}
		acc = acc.Div(n)
	}
	return value.Num(acc), nil
}

func builtinExpt(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("expt", args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) != 2 {
		return value.Expr{}, arityErrorf("expt expects 2 arguments, got %d", len(ns))
	}
	base, exp := ns[0], ns[1]
	if base.Kind == value.NumInt && exp.Kind == value.NumInt && exp.Big == nil && exp.Small >= 0 {
		result := new(big.Int).Exp(bigOf(base), big.NewInt(exp.Small), nil)
		return value.Num(value.IntFromBig(result)), nil
	}
	return value.Num(value.RealFromFloat64(math.Pow(approxFloat(base), approxFloat(exp)))), nil
}

// approxFloat is a local float coercion for transcendental-ish ops (expt
// with a non-integer exponent, sqrt) where exactness cannot be preserved
// regardless of operand kind.
func approxFloat(n value.Number) float64 {
	switch n.Kind {
	case value.NumInt:
		bi := n.Big
		if bi == nil {
			return float64(n.Small)
		}
		f := new(big.Float).SetInt(bi)
		v, _ := f.Float64()
		return v
	case value.NumRational:
		v, _ := n.Rat.Float64()
		return v
	case value.NumReal:
		return n.Real
	default:
		return real(n.Complex)
	}
}

func builtinModulo(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("modulo", args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) != 2 {
		return value.Expr{}, arityErrorf("modulo expects 2 arguments, got %d", len(ns))
	}
	rem, err := ns[0].Rem(ns[1])
	if err != nil {
		return value.Expr{}, arithErrorf("%s", err)
	}
	// modulo's sign follows the divisor, unlike remainder (which follows
	// the dividend); adjust when Rem's sign disagrees with the divisor's.
	if !rem.IsZero() {
		rs, _ := rem.Cmp(value.IntFromInt64(0))
		ds, _ := ns[1].Cmp(value.IntFromInt64(0))
		if (rs < 0) != (ds < 0) {
			rem = rem.Add(ns[1])
		}
	}
	return value.Num(rem), nil
}

func builtinRemainder(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("remainder", args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) != 2 {
		return value.Expr{}, arityErrorf("remainder expects 2 arguments, got %d", len(ns))
	}
	rem, err := ns[0].Rem(ns[1])
	if err != nil {
		return value.Expr{}, arithErrorf("%s", err)
	}
	return value.Num(rem), nil
}

func builtinQuotient(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("quotient", args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) != 2 {
		return value.Expr{}, arityErrorf("quotient expects 2 arguments, got %d", len(ns))
	}
	if ns[0].Kind != value.NumInt || ns[1].Kind != value.NumInt {
		return value.Expr{}, typeErrorf("quotient expects integer arguments")
	}
	if ns[1].IsExactZeroDivisor() {
		return value.Expr{}, arithErrorf("unable to divide by 0")
	}
	a, b := bigOf(ns[0]), bigOf(ns[1])
	return value.Num(value.IntFromBig(new(big.Int).Quo(a, b))), nil
}

func bigOf(n value.Number) *big.Int {
	if n.Big != nil {
		return n.Big
	}
	return big.NewInt(n.Small)
}

func builtinAbs(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("abs", args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) != 1 {
		return value.Expr{}, arityErrorf("abs expects 1 argument, got %d", len(ns))
	}
	return value.Num(ns[0].Abs()), nil
}

func roundingOp(name string, args []value.Expr, op func(float64) float64, intPassthrough bool) (value.Expr, error) {
	ns, err := nums(name, args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) != 1 {
		return value.Expr{}, arityErrorf("%s expects 1 argument, got %d", name, len(ns))
	}
	n := ns[0]
	if intPassthrough && n.Kind == value.NumInt {
		return value.Num(n), nil
	}
	return value.Num(value.RealFromFloat64(op(approxFloat(n)))), nil
}

func builtinCeiling(args []value.Expr, env value.Environment) (value.Expr, error) {
	return roundingOp("ceiling", args, math.Ceil, true)
}

func builtinFloor(args []value.Expr, env value.Environment) (value.Expr, error) {
	return roundingOp("floor", args, math.Floor, true)
}

func builtinRound(args []value.Expr, env value.Environment) (value.Expr, error) {
	return roundingOp("round", args, math.RoundToEven, true)
}

func builtinTruncate(args []value.Expr, env value.Environment) (value.Expr, error) {
	return roundingOp("truncate", args, math.Trunc, true)
}

func builtinMin(args []value.Expr, env value.Environment) (value.Expr, error) {
	return minMax("min", args, -1)
}

func builtinMax(args []value.Expr, env value.Environment) (value.Expr, error) {
	return minMax("max", args, 1)
}

func minMax(name string, args []value.Expr, want int) (value.Expr, error) {
	ns, err := nums(name, args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) == 0 {
		return value.Expr{}, arityErrorf("%s expects at least 1 argument", name)
	}
	best := ns[0]
	for _, n := range ns[1:] {
		c, err := best.Cmp(n)
		if err != nil {
			return value.Expr{}, typeErrorf("%s: %s", name, err)
		}
		if (want < 0 && c > 0) || (want > 0 && c < 0) {
			best = n
		}
	}
	return value.Num(best), nil
}

func compareAll(name string, args []value.Expr, ok func(c int) bool) (value.Expr, error) {
	ns, err := nums(name, args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) < 2 {
		return value.Expr{}, arityErrorf("%s expects at least 2 arguments, got %d", name, len(ns))
	}
	for i := 1; i < len(ns); i++ {
		c, err := ns[i-1].Cmp(ns[i])
		if err != nil {
			return value.Expr{}, typeErrorf("%s: %s", name, err)
		}
		if !ok(c) {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

func builtinNumEq(args []value.Expr, env value.Environment) (value.Expr, error) {
	return compareAll("=", args, func(c int) bool { return c == 0 })
}
func builtinLt(args []value.Expr, env value.Environment) (value.Expr, error) {
	return compareAll("<", args, func(c int) bool { return c < 0 })
}
func builtinGt(args []value.Expr, env value.Environment) (value.Expr, error) {
	return compareAll(">", args, func(c int) bool { return c > 0 })
}
func builtinLe(args []value.Expr, env value.Environment) (value.Expr, error) {
	return compareAll("<=", args, func(c int) bool { return c <= 0 })
}
func builtinGe(args []value.Expr, env value.Environment) (value.Expr, error) {
	return compareAll(">=", args, func(c int) bool { return c >= 0 })
}

func builtinSqrt(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("sqrt", args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) != 1 {
		return value.Expr{}, arityErrorf("sqrt expects 1 argument, got %d", len(ns))
	}
	f := approxFloat(ns[0])
	if f < 0 {
		return value.Num(value.ComplexFromComplex128(complex(0, math.Sqrt(-f)))), nil
	}
	root := math.Sqrt(f)
	if ns[0].Kind == value.NumInt {
		if asInt := math.Round(root); asInt*asInt == f {
			return value.Num(value.IntFromInt64(int64(asInt))), nil
		}
	}
	return value.Num(value.RealFromFloat64(root)), nil
}

func builtinZero(args []value.Expr, env value.Environment) (value.Expr, error) {
	ns, err := nums("zero?", args)
	if err != nil {
		return value.Expr{}, err
	}
	if len(ns) != 1 {
		return value.Expr{}, arityErrorf("zero? expects 1 argument, got %d", len(ns))
	}
	return value.Bool(ns[0].IsZero()), nil
}
