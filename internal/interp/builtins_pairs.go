package interp

import "github.com/sebastian-j-ibanez/copper-sub000/internal/value"

// registerPairs installs cons/car/cdr and the list-processing procedures,
// grounded on original_source/src/env/procedures.rs's pair/list group
// (cons/car/cdr/list/append/length/reverse), plus the cadr-family
// compositions it also names individually.
func registerPairs(env *Env) {
	define(env, "cons", builtinCons)
	define(env, "car", builtinCar)
	define(env, "cdr", builtinCdr)
	define(env, "caar", composeCxr("aa"))
	define(env, "cadr", composeCxr("ad"))
	define(env, "cdar", composeCxr("da"))
	define(env, "cddr", composeCxr("dd"))
	define(env, "caddr", composeCxr("add"))
	define(env, "cdddr", composeCxr("ddd"))
	define(env, "list", builtinList)
	define(env, "list-append", builtinAppend)
	define(env, "append", builtinAppend)
	define(env, "list-length", builtinLength)
	define(env, "length", builtinLength)
	define(env, "list-reverse", builtinReverse)
	define(env, "reverse", builtinReverse)
	define(env, "list-ref", builtinListRef)
	define(env, "list-tail", builtinListTail)
	define(env, "member", builtinMember)
	define(env, "assoc", builtinAssoc)
}

func builtinCons(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("cons expects 2 arguments, got %d", len(args))
	}
	return value.Cons(args[0], args[1]), nil
}

func requirePair(name string, args []value.Expr) (*value.Pair, error) {
	if len(args) != 1 {
		return nil, arityErrorf("%s expects 1 argument, got %d", name, len(args))
	}
	if args[0].Kind != value.KindPair {
		return nil, typeErrorf("%s requires a pair, got %s", name, args[0].TypeName())
	}
	return args[0].Pair, nil
}

func builtinCar(args []value.Expr, env value.Environment) (value.Expr, error) {
	p, err := requirePair("car", args)
	if err != nil {
		return value.Expr{}, err
	}
	return p.Car, nil
}

func builtinCdr(args []value.Expr, env value.Environment) (value.Expr, error) {
	p, err := requirePair("cdr", args)
	if err != nil {
		return value.Expr{}, err
	}
	return p.Cdr, nil
}

// composeCxr builds a builtin implementing one of the cNr compositions
// (e.g. "ad" -> cadr == car(cdr(x))), applying the letters right-to-left
// the way R7RS names them.
func composeCxr(letters string) builtinFn {
	name := "c" + letters + "r"
	return func(args []value.Expr, env value.Environment) (value.Expr, error) {
		if len(args) != 1 {
			return value.Expr{}, arityErrorf("%s expects 1 argument, got %d", name, len(args))
		}
		cur := args[0]
		for i := len(letters) - 1; i >= 0; i-- {
			if cur.Kind != value.KindPair {
				return value.Expr{}, typeErrorf("%s requires a pair at each step, got %s", name, cur.TypeName())
			}
			if letters[i] == 'a' {
				cur = cur.Pair.Car
			} else {
				cur = cur.Pair.Cdr
			}
		}
		return cur, nil
	}
}

func builtinList(args []value.Expr, env value.Environment) (value.Expr, error) {
	return value.FromSlice(args), nil
}

func builtinAppend(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) == 0 {
		return value.Null, nil
	}
	result := args[len(args)-1]
	for i := len(args) - 2; i >= 0; i-- {
		items, ok := value.ToSlice(args[i])
		if !ok {
			return value.Expr{}, typeErrorf("append requires proper lists for all but its last argument")
		}
		for j := len(items) - 1; j >= 0; j-- {
			result = value.Cons(items[j], result)
		}
	}
	return result, nil
}

func builtinLength(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("length expects 1 argument, got %d", len(args))
	}
	items, ok := value.ToSlice(args[0])
	if !ok {
		return value.Expr{}, typeErrorf("length requires a proper list")
	}
	return value.Num(value.IntFromInt64(int64(len(items)))), nil
}

func builtinReverse(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("reverse expects 1 argument, got %d", len(args))
	}
	items, ok := value.ToSlice(args[0])
	if !ok {
		return value.Expr{}, typeErrorf("reverse requires a proper list")
	}
	reversed := make([]value.Expr, len(items))
	for i, it := range items {
		reversed[len(items)-1-i] = it
	}
	return value.FromSlice(reversed), nil
}

func builtinListRef(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 || args[1].Kind != value.KindNumber || args[1].Num.Kind != value.NumInt {
		return value.Expr{}, arityErrorf("list-ref expects (list-ref list index)")
	}
	items, ok := value.ToSlice(args[0])
	if !ok {
		return value.Expr{}, typeErrorf("list-ref requires a proper list")
	}
	idx := int(args[1].Num.Small)
	if idx < 0 || idx >= len(items) {
		return value.Expr{}, rangeErrorf("list-ref index %d out of range for a list of length %d", idx, len(items))
	}
	return items[idx], nil
}

func builtinListTail(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 || args[1].Kind != value.KindNumber || args[1].Num.Kind != value.NumInt {
		return value.Expr{}, arityErrorf("list-tail expects (list-tail list index)")
	}
	cur := args[0]
	for i := int64(0); i < args[1].Num.Small; i++ {
		if cur.Kind != value.KindPair {
			return value.Expr{}, rangeErrorf("list-tail index out of range")
		}
		cur = cur.Pair.Cdr
	}
	return cur, nil
}

func builtinMember(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("member expects 2 arguments, got %d", len(args))
	}
	cur := args[1]
	for cur.Kind == value.KindPair {
		if equalExpr(cur.Pair.Car, args[0]) {
			return cur, nil
		}
		cur = cur.Pair.Cdr
	}
	return value.Bool(false), nil
}

func builtinAssoc(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("assoc expects 2 arguments, got %d", len(args))
	}
	cur := args[1]
	for cur.Kind == value.KindPair {
		entry := cur.Pair.Car
		if entry.Kind == value.KindPair && equalExpr(entry.Pair.Car, args[0]) {
			return entry, nil
		}
		cur = cur.Pair.Cdr
	}
	return value.Bool(false), nil
}
