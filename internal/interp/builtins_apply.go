package interp

import "github.com/sebastian-j-ibanez/copper-sub000/internal/value"

// registerApply installs the higher-order procedures that call back into
// the evaluator through the value.Environment interface, grounded on
// original_source/src/env/procedures.rs's apply/map/for-each group plus
// the eval special form it documents as a regular procedure taking an
// optional environment argument.
func registerApply(env *Env) {
	define(env, "apply", builtinApply)
	define(env, "map", builtinMap)
	define(env, "for-each", builtinForEach)
	define(env, "eval", builtinEval)
}

// builtinApply implements `(apply proc arg1 ... args)`: every argument but
// the last is passed through directly, and the last must be a list whose
// elements are appended to the call.
func builtinApply(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) < 2 {
		return value.Expr{}, arityErrorf("apply expects at least 2 arguments, got %d", len(args))
	}
	tail, ok := value.ToSlice(args[len(args)-1])
	if !ok {
		return value.Expr{}, typeErrorf("apply's last argument must be a proper list")
	}
	callArgs := append(append([]value.Expr{}, args[1:len(args)-1]...), tail...)
	return env.Apply(args[0], callArgs)
}

// builtinMap implements `(map proc list1 list2 ...)`, applying proc to the
// elementwise tuple of each list and collecting the results; all lists
// must share the same length.
func builtinMap(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) < 2 {
		return value.Expr{}, arityErrorf("map expects at least 2 arguments, got %d", len(args))
	}
	lists, err := mapLists("map", args[1:])
	if err != nil {
		return value.Expr{}, err
	}
	results := make([]value.Expr, len(lists[0]))
	for i := range results {
		call := make([]value.Expr, len(lists))
		for j := range lists {
			call[j] = lists[j][i]
		}
		v, err := env.Apply(args[0], call)
		if err != nil {
			return value.Expr{}, err
		}
		results[i] = v
	}
	return value.FromSlice(results), nil
}

// builtinForEach is map's side-effecting sibling: it discards the results
// and returns void.
func builtinForEach(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) < 2 {
		return value.Expr{}, arityErrorf("for-each expects at least 2 arguments, got %d", len(args))
	}
	lists, err := mapLists("for-each", args[1:])
	if err != nil {
		return value.Expr{}, err
	}
	for i := 0; i < len(lists[0]); i++ {
		call := make([]value.Expr, len(lists))
		for j := range lists {
			call[j] = lists[j][i]
		}
		if _, err := env.Apply(args[0], call); err != nil {
			return value.Expr{}, err
		}
	}
	return value.Void, nil
}

func mapLists(name string, listArgs []value.Expr) ([][]value.Expr, error) {
	lists := make([][]value.Expr, len(listArgs))
	for i, a := range listArgs {
		items, ok := value.ToSlice(a)
		if !ok {
			return nil, typeErrorf("%s requires proper lists", name)
		}
		lists[i] = items
	}
	for i := 1; i < len(lists); i++ {
		if len(lists[i]) != len(lists[0]) {
			return nil, typeErrorf("%s requires all lists to have the same length", name)
		}
	}
	return lists, nil
}

// builtinEval implements `(eval expr)`, evaluating expr (typically quoted
// data) in the calling environment.
func builtinEval(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("eval expects 1 argument, got %d", len(args))
	}
	return env.Eval(args[0])
}
