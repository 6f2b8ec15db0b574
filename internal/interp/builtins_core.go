package interp

import "github.com/sebastian-j-ibanez/copper-sub000/internal/value"

// builtinFn is the uniform shape every built-in procedure implements:
// `(args []Expr, env EnvRef) -> (Expr, error)`, stored as a first-class
// value.Func in the environment exactly like a Closure. This matches the
// function-pointer-in-environment design named in SPEC_FULL.md's evaluator
// section, grounded on original_source/src/env/procedures.rs.
type builtinFn func(args []value.Expr, env value.Environment) (value.Expr, error)

func define(env *Env, name string, fn builtinFn) {
	env.Define(name, value.NewFunc(&value.Func{Name: name, Call: fn}))
}

// RegisterBuiltins installs every built-in procedure spec.md §6 names into
// env, split across builtins_*.go files by category the way the teacher
// splits builtins_core.go/builtins_math.go/builtins_strings.go.
func RegisterBuiltins(env *Env) {
	registerIO(env)
	registerMath(env)
	registerBool(env)
	registerPairs(env)
	registerVectors(env)
	registerByteVectors(env)
	registerStrings(env)
	registerConversions(env)
	registerPredicates(env)
	registerApply(env)
}
