package interp

import (
	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

// evalQuote implements `(quote datum)`: returns datum unevaluated.
func evalQuote(args []value.Expr, env *Env) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("quote expects exactly 1 argument, got %d", len(args))
	}
	return args[0], nil
}

// evalQuasiquote implements `(quasiquote datum)`, expanding any nested
// `unquote`/`unquote-splicing` forms at depth 1. Deeper quasiquote nesting
// is tracked so `unquote` inside a nested quasiquote is left untouched,
// matching standard Scheme quasiquote semantics.
func evalQuasiquote(args []value.Expr, env *Env) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("quasiquote expects exactly 1 argument, got %d", len(args))
	}
	return quasiExpand(args[0], 1, env)
}

func quasiExpand(expr value.Expr, depth int, env *Env) (value.Expr, error) {
	if expr.Kind != value.KindPair {
		if expr.Kind == value.KindVector {
			elems := make([]value.Expr, len(expr.Vector.Elems))
			for i, el := range expr.Vector.Elems {
				v, err := quasiExpand(el, depth, env)
				if err != nil {
					return value.Expr{}, err
				}
				elems[i] = v
			}
			return value.NewVector(elems), nil
		}
		return expr, nil
	}

	if head, ok := headSymbol(expr); ok {
		switch head {
		case "unquote":
			if depth == 1 {
				return Eval(secondOf(expr), env)
			}
			inner, err := quasiExpand(secondOf(expr), depth-1, env)
			if err != nil {
				return value.Expr{}, err
			}
			return value.Cons(value.Sym("unquote"), value.Cons(inner, value.Null)), nil
		case "quasiquote":
			inner, err := quasiExpand(secondOf(expr), depth+1, env)
			if err != nil {
				return value.Expr{}, err
			}
			return value.Cons(value.Sym("quasiquote"), value.Cons(inner, value.Null)), nil
		}
	}

	// General pair: walk car/cdr, splicing in `,@` results at depth 1.
	if carHead, ok := headSymbol(expr.Pair.Car); ok && carHead == "unquote-splicing" && depth == 1 {
		spliced, err := Eval(secondOf(expr.Pair.Car), env)
		if err != nil {
			return value.Expr{}, err
		}
		restExpanded, err := quasiExpand(expr.Pair.Cdr, depth, env)
		if err != nil {
			return value.Expr{}, err
		}
		return appendList(spliced, restExpanded)
	}

	carExpanded, err := quasiExpand(expr.Pair.Car, depth, env)
	if err != nil {
		return value.Expr{}, err
	}
	cdrExpanded, err := quasiExpand(expr.Pair.Cdr, depth, env)
	if err != nil {
		return value.Expr{}, err
	}
	return value.Cons(carExpanded, cdrExpanded), nil
}

func headSymbol(e value.Expr) (string, bool) {
	if e.Kind != value.KindPair || e.Pair.Car.Kind != value.KindSymbol {
		return "", false
	}
	return e.Pair.Car.Sym, true
}

func secondOf(e value.Expr) value.Expr {
	return e.Pair.Cdr.Pair.Car
}

func appendList(front, back value.Expr) (value.Expr, error) {
	items, ok := value.ToSlice(front)
	if !ok {
		return value.Expr{}, typeErrorf("unquote-splicing requires a proper list")
	}
	result := back
	for i := len(items) - 1; i >= 0; i-- {
		result = value.Cons(items[i], result)
	}
	return result, nil
}

// evalDefine implements both `(define name expr)` and the procedure-sugar
// `(define (name params...) body...)`.
func evalDefine(args []value.Expr, env *Env) (value.Expr, error) {
	if len(args) < 1 {
		return value.Expr{}, arityErrorf("define expects at least 1 argument")
	}

	switch args[0].Kind {
	case value.KindSymbol:
		if len(args) != 2 {
			return value.Expr{}, arityErrorf("define expects exactly 2 arguments for a variable binding, got %d", len(args))
		}
		val, err := Eval(args[1], env)
		if err != nil {
			return value.Expr{}, err
		}
		if val.Kind == value.KindClosure && val.Proc.Name == "" {
			val.Proc.Name = args[0].Sym
		}
		env.Define(args[0].Sym, val)
		return value.Void, nil

	case value.KindPair:
		header, ok := value.ToSlice(args[0])
		if !ok || len(header) == 0 || header[0].Kind != value.KindSymbol {
			// Allow a dotted param list, e.g. (define (f a . rest) ...).
			name, params, rest, err := parseDottedHeader(args[0])
			if err != nil {
				return value.Expr{}, err
			}
			return defineClosure(name, params, rest, args[1:], env)
		}
		name := header[0].Sym
		params := make([]string, 0, len(header)-1)
		for _, p := range header[1:] {
			if p.Kind != value.KindSymbol {
				return value.Expr{}, typeErrorf("procedure parameter must be a symbol")
			}
			params = append(params, p.Sym)
		}
		return defineClosure(name, params, "", args[1:], env)

	default:
		return value.Expr{}, typeErrorf("define's first argument must be a symbol or a procedure header")
	}
}

func defineClosure(name string, params []string, rest string, body []value.Expr, env *Env) (value.Expr, error) {
	if len(body) == 0 {
		return value.Expr{}, arityErrorf("define requires at least one body expression for procedure %s", name)
	}
	closure := &value.Closure{Name: name, Params: params, Rest: rest, Body: body, Env: env}
	env.Define(name, value.NewClosure(closure))
	return value.Void, nil
}

// parseDottedHeader handles `(name a b . rest)` procedure headers, where
// ToSlice on the whole header fails because it is an improper list.
func parseDottedHeader(header value.Expr) (name string, params []string, rest string, err error) {
	if header.Kind != value.KindPair || header.Pair.Car.Kind != value.KindSymbol {
		return "", nil, "", typeErrorf("malformed procedure header")
	}
	name = header.Pair.Car.Sym
	cur := header.Pair.Cdr
	for cur.Kind == value.KindPair {
		if cur.Pair.Car.Kind != value.KindSymbol {
			return "", nil, "", typeErrorf("procedure parameter must be a symbol")
		}
		params = append(params, cur.Pair.Car.Sym)
		cur = cur.Pair.Cdr
	}
	if cur.Kind == value.KindSymbol {
		rest = cur.Sym
	} else if cur.Kind != value.KindNull {
		return "", nil, "", typeErrorf("malformed procedure header")
	}
	return name, params, rest, nil
}

// evalSet implements `(set! name expr)`.
func evalSet(args []value.Expr, env *Env) (value.Expr, error) {
	if len(args) != 2 || args[0].Kind != value.KindSymbol {
		return value.Expr{}, arityErrorf("set! expects (set! symbol expr)")
	}
	val, err := Eval(args[1], env)
	if err != nil {
		return value.Expr{}, err
	}
	if !env.Set(args[0].Sym, val) {
		return value.Expr{}, unboundErrorf(args[0].Sym)
	}
	return value.Void, nil
}

// evalLambda implements `(lambda params body...)`, where params is a
// symbol (all args collected as a rest list), a proper list of symbols, or
// a dotted list mixing fixed params with a rest symbol.
func evalLambda(args []value.Expr, env *Env) (value.Expr, error) {
	if len(args) < 2 {
		return value.Expr{}, arityErrorf("lambda expects a parameter list and at least one body expression")
	}

	var params []string
	var rest string

	switch args[0].Kind {
	case value.KindSymbol:
		rest = args[0].Sym
	case value.KindNull:
		// no parameters
	case value.KindPair:
		cur := args[0]
		for cur.Kind == value.KindPair {
			if cur.Pair.Car.Kind != value.KindSymbol {
				return value.Expr{}, typeErrorf("lambda parameter must be a symbol")
			}
			params = append(params, cur.Pair.Car.Sym)
			cur = cur.Pair.Cdr
		}
		if cur.Kind == value.KindSymbol {
			rest = cur.Sym
		} else if cur.Kind != value.KindNull {
			return value.Expr{}, typeErrorf("malformed lambda parameter list")
		}
	default:
		return value.Expr{}, typeErrorf("malformed lambda parameter list")
	}

	closure := &value.Closure{Params: params, Rest: rest, Body: args[1:], Env: env}
	return value.NewClosure(closure), nil
}

// evalIf implements `(if test then [else])`. Only #f is false; every
// other value, including 0 and the empty list, takes the `then` branch.
func evalIf(args []value.Expr, env *Env) (value.Expr, error) {
	if len(args) < 2 || len(args) > 3 {
		return value.Expr{}, arityErrorf("if expects (if test then [else]), got %d argument(s)", len(args))
	}
	test, err := Eval(args[0], env)
	if err != nil {
		return value.Expr{}, err
	}
	if test.IsTruthy() {
		return Eval(args[1], env)
	}
	if len(args) == 3 {
		return Eval(args[2], env)
	}
	return value.Void, nil
}

// evalCond implements `(cond (test expr...) ... (else expr...))`.
func evalCond(args []value.Expr, env *Env) (value.Expr, error) {
	for _, clause := range args {
		parts, ok := value.ToSlice(clause)
		if !ok || len(parts) == 0 {
			return value.Expr{}, typeErrorf("malformed cond clause")
		}

		isElse := parts[0].Kind == value.KindSymbol && parts[0].Sym == "else"

		var test value.Expr
		var err error
		if isElse {
			test = value.Bool(true)
		} else {
			test, err = Eval(parts[0], env)
			if err != nil {
				return value.Expr{}, err
			}
		}

		if !test.IsTruthy() {
			continue
		}
		if len(parts) == 1 {
			return test, nil
		}
		var result value.Expr = value.Void
		for _, bodyExpr := range parts[1:] {
			result, err = Eval(bodyExpr, env)
			if err != nil {
				return value.Expr{}, err
			}
		}
		return result, nil
	}
	return value.Void, nil
}

// evalSetCar implements `(set-car! pair expr)`, mutating the pair in
// place so every other reference to it observes the change.
func evalSetCar(args []value.Expr, env *Env) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("set-car! expects 2 arguments, got %d", len(args))
	}
	p, err := Eval(args[0], env)
	if err != nil {
		return value.Expr{}, err
	}
	if p.Kind != value.KindPair {
		return value.Expr{}, typeErrorf("set-car! requires a pair, got %s", p.TypeName())
	}
	v, err := Eval(args[1], env)
	if err != nil {
		return value.Expr{}, err
	}
	p.Pair.Car = v
	return value.Void, nil
}

// evalSetCdr implements `(set-cdr! pair expr)`.
func evalSetCdr(args []value.Expr, env *Env) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("set-cdr! expects 2 arguments, got %d", len(args))
	}
	p, err := Eval(args[0], env)
	if err != nil {
		return value.Expr{}, err
	}
	if p.Kind != value.KindPair {
		return value.Expr{}, typeErrorf("set-cdr! requires a pair, got %s", p.TypeName())
	}
	v, err := Eval(args[1], env)
	if err != nil {
		return value.Expr{}, err
	}
	p.Pair.Cdr = v
	return value.Void, nil
}
