package interp

import (
	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

// specialForm handles one special form's raw (unevaluated) argument list.
type specialForm func(args []value.Expr, env *Env) (value.Expr, error)

var specialForms map[string]specialForm

// init wires the special-form table. `and`/`or`/`not` are deliberately
// NOT here: original_source/src/env/bool.rs implements them as regular,
// eagerly-evaluated procedures rather than short-circuiting special forms,
// and this port preserves that (see builtins_bool.go). `load` is also a
// regular procedure, not a special form: original_source/src/env/io.rs's
// load_file takes an already-evaluated string path, so it needs no access
// to unevaluated syntax (see builtins_io.go).
func init() {
	specialForms = map[string]specialForm{
		"quote":      evalQuote,
		"quasiquote": evalQuasiquote,
		"define":     evalDefine,
		"set!":       evalSet,
		"lambda":     evalLambda,
		"if":         evalIf,
		"cond":       evalCond,
		"set-car!":   evalSetCar,
		"set-cdr!":   evalSetCdr,
	}
}

// Eval is copper's single evaluator entry point: a type switch on
// expr.Kind, mirroring the teacher's Interpreter.Eval(node ast.Node) Value
// big-switch dispatcher, adapted to return (value.Expr, error) explicitly
// instead of carrying exceptions through interpreter-internal fields.
func Eval(expr value.Expr, env *Env) (value.Expr, error) {
	switch expr.Kind {
	case value.KindSymbol:
		v, ok := env.Lookup(expr.Sym)
		if !ok {
			return value.Expr{}, unboundErrorf(expr.Sym)
		}
		return v, nil

	case value.KindPair:
		return evalCombination(expr, env)

	case value.KindNull:
		return value.Expr{}, typeErrorf("ill-formed special form: ()")

	default:
		// Numbers, strings, chars, booleans, vectors, bytevectors,
		// closures, funcs, and void are all self-evaluating.
		return expr, nil
	}
}

// evalCombination evaluates a non-empty list: either a special form (when
// the head is a recognized keyword symbol) or a procedure application.
func evalCombination(expr value.Expr, env *Env) (value.Expr, error) {
	head := expr.Pair.Car
	rest, ok := value.ToSlice(expr.Pair.Cdr)
	if !ok {
		return value.Expr{}, typeErrorf("combination is not a proper list")
	}

	if head.Kind == value.KindSymbol {
		if form, isForm := specialForms[head.Sym]; isForm {
			env.trace("special-form %s", head.Sym)
			return form(rest, env)
		}
	}

	proc, err := Eval(head, env)
	if err != nil {
		return value.Expr{}, err
	}

	args := make([]value.Expr, len(rest))
	for i, a := range rest {
		v, err := Eval(a, env)
		if err != nil {
			return value.Expr{}, err
		}
		args[i] = v
	}

	return apply(proc, args, env)
}

// apply invokes proc (a Closure or a built-in Func) with already-evaluated
// args, the shared application path used both by evalCombination and by
// the `apply`/`map`/`for-each` builtins.
func apply(proc value.Expr, args []value.Expr, env *Env) (value.Expr, error) {
	switch proc.Kind {
	case value.KindFunc:
		env.trace("call %s (%d args)", proc.Func.Name, len(args))
		return proc.Func.Call(args, env)

	case value.KindClosure:
		c := proc.Proc
		if c.Rest == "" && len(args) != len(c.Params) {
			return value.Expr{}, arityErrorf("procedure %s expects %d argument(s), got %d", closureName(c), len(c.Params), len(args))
		}
		if c.Rest != "" && len(args) < len(c.Params) {
			return value.Expr{}, arityErrorf("procedure %s expects at least %d argument(s), got %d", closureName(c), len(c.Params), len(args))
		}

		callerEnv, ok := c.Env.(*Env)
		if !ok {
			return value.Expr{}, typeErrorf("closure has no environment")
		}
		frame := callerEnv.Child().(*Env)
		for i, p := range c.Params {
			frame.Define(p, args[i])
		}
		if c.Rest != "" {
			frame.Define(c.Rest, value.FromSlice(args[len(c.Params):]))
		}

		env.trace("apply %s (%d args)", closureName(c), len(args))

		var result value.Expr = value.Void
		var err error
		for _, bodyExpr := range c.Body {
			result, err = Eval(bodyExpr, frame)
			if err != nil {
				return value.Expr{}, err
			}
		}
		return result, nil

	default:
		return value.Expr{}, typeErrorf("%s is not applicable", value.Write(proc))
	}
}

func closureName(c *value.Closure) string {
	if c.Name == "" {
		return "#<anonymous>"
	}
	return c.Name
}
