package interp

import "github.com/sebastian-j-ibanez/copper-sub000/internal/value"

// registerBool installs not/and/or as regular, eagerly-evaluated
// procedures, grounded on original_source/src/env/bool.rs — unlike most
// Schemes, this dialect's and/or do not short-circuit, since a procedure
// call evaluates every argument before Call ever sees them.
func registerBool(env *Env) {
	define(env, "not", builtinNot)
	define(env, "and", builtinAnd)
	define(env, "or", builtinOr)
}

func builtinNot(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("not expects 1 argument, got %d", len(args))
	}
	return value.Bool(!args[0].IsTruthy()), nil
}

// builtinAnd returns #f if any argument is falsy, else #t (or #t when
// called with no arguments). Unlike standard Scheme, it always yields a
// Boolean rather than the last value, matching bool.rs's
// `all(!matches!(.., Boolean(false)))`.
func builtinAnd(args []value.Expr, env value.Environment) (value.Expr, error) {
	for _, a := range args {
		if !a.IsTruthy() {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

// builtinOr returns #t if any argument is truthy, else #f (or #f when
// called with no arguments). Unlike standard Scheme, it always yields a
// Boolean rather than the first truthy value, matching bool.rs's
// `all(!matches!(.., Boolean(true)))`.
func builtinOr(args []value.Expr, env value.Environment) (value.Expr, error) {
	for _, a := range args {
		if a.IsTruthy() {
			return value.Bool(true), nil
		}
	}
	return value.Bool(false), nil
}
