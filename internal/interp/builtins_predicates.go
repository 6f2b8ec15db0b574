package interp

import (
	"unicode"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

// registerPredicates installs the type and numeric-tower predicates,
// grounded on original_source/src/env/procedures.rs's predicate group
// (is-number/is-real/.../is-list/is-pair/is-vector/is-procedure), plus
// the eqv?/equal? equality predicates member/assoc above depend on.
func registerPredicates(env *Env) {
	define(env, "eq?", builtinEq)
	define(env, "eqv?", builtinEq)
	define(env, "equal?", builtinEqual)

	define(env, "number?", kindPredicate(value.KindNumber))
	define(env, "symbol?", kindPredicate(value.KindSymbol))
	define(env, "string?", kindPredicate(value.KindString))
	define(env, "char?", kindPredicate(value.KindChar))
	define(env, "boolean?", kindPredicate(value.KindBoolean))
	define(env, "vector?", kindPredicate(value.KindVector))
	define(env, "bytevector?", kindPredicate(value.KindByteVector))
	define(env, "null?", kindPredicate(value.KindNull))
	define(env, "pair?", kindPredicate(value.KindPair))

	define(env, "procedure?", builtinProcedurePredicate)
	define(env, "list?", builtinListPredicate)

	define(env, "real?", numKindAtMost(value.NumReal))
	define(env, "rational?", numKindAtMost(value.NumRational))
	define(env, "complex?", isNumber)
	define(env, "integer?", builtinIsInteger)
	define(env, "exact-integer?", builtinIsExactInteger)
	define(env, "exact?", builtinIsExact)
	define(env, "inexact?", builtinIsInexact)
	define(env, "even?", builtinIsEven)
	define(env, "odd?", builtinIsOdd)

	define(env, "char-alphabetic?", charPredicate(unicode.IsLetter))
	define(env, "char-numeric?", charPredicate(unicode.IsDigit))
	define(env, "char-whitespace?", charPredicate(unicode.IsSpace))
	define(env, "char-upper-case?", charPredicate(unicode.IsUpper))
	define(env, "char-lower-case?", charPredicate(unicode.IsLower))
}

// equalExpr implements structural equality, used by equal?, member, and
// assoc. Numbers compare by numeric value regardless of exactness kind;
// pairs/vectors/bytevectors compare element-wise.
func equalExpr(a, b value.Expr) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case value.KindNull, value.KindVoid:
		return true
	case value.KindBoolean:
		return a.Bool == b.Bool
	case value.KindNumber:
		c, err := a.Num.Cmp(b.Num)
		return err == nil && c == 0
	case value.KindChar:
		return a.Ch == b.Ch
	case value.KindString:
		return a.Str == b.Str
	case value.KindSymbol:
		return a.Sym == b.Sym
	case value.KindPair:
		return equalExpr(a.Pair.Car, b.Pair.Car) && equalExpr(a.Pair.Cdr, b.Pair.Cdr)
	case value.KindVector:
		if len(a.Vector.Elems) != len(b.Vector.Elems) {
			return false
		}
		for i := range a.Vector.Elems {
			if !equalExpr(a.Vector.Elems[i], b.Vector.Elems[i]) {
				return false
			}
		}
		return true
	case value.KindByteVector:
		if len(a.Bytes.Bytes) != len(b.Bytes.Bytes) {
			return false
		}
		for i := range a.Bytes.Bytes {
			if a.Bytes.Bytes[i] != b.Bytes.Bytes[i] {
				return false
			}
		}
		return true
	case value.KindClosure:
		return a.Proc == b.Proc
	case value.KindFunc:
		return a.Func == b.Func
	default:
		return false
	}
}

// identExpr implements eq?/eqv?: identity for pointer-backed aggregates,
// value equality for the small immutable kinds (numbers, chars, symbols,
// booleans, strings).
func identExpr(a, b value.Expr) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case value.KindPair:
		return a.Pair == b.Pair
	case value.KindVector:
		return a.Vector == b.Vector
	case value.KindByteVector:
		return a.Bytes == b.Bytes
	case value.KindClosure:
		return a.Proc == b.Proc
	case value.KindFunc:
		return a.Func == b.Func
	default:
		return equalExpr(a, b)
	}
}

func builtinEq(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("eq?/eqv? expects 2 arguments, got %d", len(args))
	}
	return value.Bool(identExpr(args[0], args[1])), nil
}

func builtinEqual(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("equal? expects 2 arguments, got %d", len(args))
	}
	return value.Bool(equalExpr(args[0], args[1])), nil
}

func kindPredicate(k value.Kind) builtinFn {
	return func(args []value.Expr, env value.Environment) (value.Expr, error) {
		if len(args) != 1 {
			return value.Expr{}, arityErrorf("%s? expects 1 argument, got %d", k.String(), len(args))
		}
		return value.Bool(args[0].Kind == k), nil
	}
}

func builtinProcedurePredicate(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("procedure? expects 1 argument, got %d", len(args))
	}
	return value.Bool(args[0].Kind == value.KindClosure || args[0].Kind == value.KindFunc), nil
}

func builtinListPredicate(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("list? expects 1 argument, got %d", len(args))
	}
	_, ok := value.ToSlice(args[0])
	return value.Bool(ok), nil
}

func isNumber(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("complex? expects 1 argument, got %d", len(args))
	}
	return value.Bool(args[0].Kind == value.KindNumber), nil
}

// numKindAtMost builds a predicate true when the argument is a number
// whose tower rung is no higher than max (e.g. real? accepts Int,
// Rational, and Real, but not Complex).
func numKindAtMost(max value.NumKind) builtinFn {
	return func(args []value.Expr, env value.Environment) (value.Expr, error) {
		if len(args) != 1 {
			return value.Expr{}, arityErrorf("predicate expects 1 argument, got %d", len(args))
		}
		if args[0].Kind != value.KindNumber {
			return value.Bool(false), nil
		}
		return value.Bool(args[0].Num.Kind <= max), nil
	}
}

func builtinIsInteger(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("integer? expects 1 argument, got %d", len(args))
	}
	if args[0].Kind != value.KindNumber {
		return value.Bool(false), nil
	}
	n := args[0].Num
	if n.Kind == value.NumInt {
		return value.Bool(true), nil
	}
	if n.Kind == value.NumReal {
		return value.Bool(n.Real == float64(int64(n.Real))), nil
	}
	return value.Bool(false), nil
}

func builtinIsExactInteger(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("exact-integer? expects 1 argument, got %d", len(args))
	}
	return value.Bool(args[0].Kind == value.KindNumber && args[0].Num.Kind == value.NumInt), nil
}

func builtinIsExact(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 || args[0].Kind != value.KindNumber {
		return value.Expr{}, typeErrorf("exact? requires a number argument")
	}
	return value.Bool(args[0].Num.IsExact()), nil
}

func builtinIsInexact(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 || args[0].Kind != value.KindNumber {
		return value.Expr{}, typeErrorf("inexact? requires a number argument")
	}
	return value.Bool(!args[0].Num.IsExact()), nil
}

func builtinIsEven(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 || args[0].Kind != value.KindNumber || args[0].Num.Kind != value.NumInt {
		return value.Expr{}, typeErrorf("even? requires an integer argument")
	}
	rem, err := args[0].Num.Rem(value.IntFromInt64(2))
	if err != nil {
		return value.Expr{}, arithErrorf("%s", err)
	}
	return value.Bool(rem.IsZero()), nil
}

func builtinIsOdd(args []value.Expr, env value.Environment) (value.Expr, error) {
	result, err := builtinIsEven(args, env)
	if err != nil {
		return value.Expr{}, err
	}
	return value.Bool(!result.Bool), nil
}

func charPredicate(test func(rune) bool) builtinFn {
	return func(args []value.Expr, env value.Environment) (value.Expr, error) {
		if len(args) != 1 || args[0].Kind != value.KindChar {
			return value.Expr{}, typeErrorf("char predicate requires a char argument")
		}
		return value.Bool(test(args[0].Ch)), nil
	}
}
