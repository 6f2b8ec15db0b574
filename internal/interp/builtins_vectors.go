package interp

import "github.com/sebastian-j-ibanez/copper-sub000/internal/value"

// registerVectors installs the vector procedures, grounded on
// original_source/src/env/procedures.rs's vector group (new/make/ref/set/
// length/copy/fill/append).
func registerVectors(env *Env) {
	define(env, "vector", builtinVector)
	define(env, "make-vector", builtinMakeVector)
	define(env, "vector-ref", builtinVectorRef)
	define(env, "vector-set!", builtinVectorSet)
	define(env, "vector-length", builtinVectorLength)
	define(env, "vector-copy", builtinVectorCopy)
	define(env, "vector-fill!", builtinVectorFill)
	define(env, "vector-append", builtinVectorAppend)
}

func builtinVector(args []value.Expr, env value.Environment) (value.Expr, error) {
	elems := make([]value.Expr, len(args))
	copy(elems, args)
	return value.NewVector(elems), nil
}

func builtinMakeVector(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) < 1 || len(args) > 2 || args[0].Kind != value.KindNumber || args[0].Num.Kind != value.NumInt {
		return value.Expr{}, arityErrorf("make-vector expects (make-vector size [fill])")
	}
	size := args[0].Num.Small
	if size < 0 {
		return value.Expr{}, rangeErrorf("make-vector size must be non-negative, got %d", size)
	}
	fill := value.Bool(false)
	if len(args) == 2 {
		fill = args[1]
	}
	elems := make([]value.Expr, size)
	for i := range elems {
		elems[i] = fill
	}
	return value.NewVector(elems), nil
}

func requireVector(name string, e value.Expr) (*value.Vector, error) {
	if e.Kind != value.KindVector {
		return nil, typeErrorf("%s requires a vector, got %s", name, e.TypeName())
	}
	return e.Vector, nil
}

func vectorIndex(name string, v *value.Vector, idxExpr value.Expr) (int, error) {
	if idxExpr.Kind != value.KindNumber || idxExpr.Num.Kind != value.NumInt {
		return 0, typeErrorf("%s requires an integer index", name)
	}
	idx := int(idxExpr.Num.Small)
	if idx < 0 || idx >= len(v.Elems) {
		return 0, rangeErrorf("%s index %d out of range for a vector of length %d", name, idx, len(v.Elems))
	}
	return idx, nil
}

func builtinVectorRef(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("vector-ref expects 2 arguments, got %d", len(args))
	}
	v, err := requireVector("vector-ref", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	idx, err := vectorIndex("vector-ref", v, args[1])
	if err != nil {
		return value.Expr{}, err
	}
	return v.Elems[idx], nil
}

func builtinVectorSet(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 3 {
		return value.Expr{}, arityErrorf("vector-set! expects 3 arguments, got %d", len(args))
	}
	v, err := requireVector("vector-set!", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	idx, err := vectorIndex("vector-set!", v, args[1])
	if err != nil {
		return value.Expr{}, err
	}
	v.Elems[idx] = args[2]
	return value.Void, nil
}

func builtinVectorLength(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("vector-length expects 1 argument, got %d", len(args))
	}
	v, err := requireVector("vector-length", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	return value.Num(value.IntFromInt64(int64(len(v.Elems)))), nil
}

func builtinVectorCopy(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("vector-copy expects 1 argument, got %d", len(args))
	}
	v, err := requireVector("vector-copy", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	elems := make([]value.Expr, len(v.Elems))
	copy(elems, v.Elems)
	return value.NewVector(elems), nil
}

func builtinVectorFill(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("vector-fill! expects 2 arguments, got %d", len(args))
	}
	v, err := requireVector("vector-fill!", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	for i := range v.Elems {
		v.Elems[i] = args[1]
	}
	return value.Void, nil
}

func builtinVectorAppend(args []value.Expr, env value.Environment) (value.Expr, error) {
	var elems []value.Expr
	for _, a := range args {
		v, err := requireVector("vector-append", a)
		if err != nil {
			return value.Expr{}, err
		}
		elems = append(elems, v.Elems...)
	}
	return value.NewVector(elems), nil
}
