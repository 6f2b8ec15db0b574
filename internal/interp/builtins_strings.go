package interp

import (
	"strings"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

// registerStrings installs the string procedures, grounded on
// original_source/src/env/procedures.rs's string group (append/length/
// new-string/upcase/downcase), supplemented with the ref/substring/
// comparison operations original_source's string.rs tests exercise and
// with R7RS make-string for length+fill construction.
func registerStrings(env *Env) {
	define(env, "string-append", builtinStringAppend)
	define(env, "string-length", builtinStringLength)
	define(env, "new-string", builtinNewString)
	define(env, "string", builtinNewString)
	define(env, "make-string", builtinMakeString)
	define(env, "string-upcase", builtinStringUpcase)
	define(env, "string-downcase", builtinStringDowncase)
	define(env, "string-ref", builtinStringRef)
	define(env, "substring", builtinSubstring)
	define(env, "string-copy", builtinStringCopy)
	define(env, "string-reverse", builtinStringReverse)
	define(env, "string=?", builtinStringEq)
	define(env, "string<?", builtinStringLt)
	define(env, "string>?", builtinStringGt)
}

func requireString(name string, e value.Expr) (string, error) {
	if e.Kind != value.KindString {
		return "", typeErrorf("%s requires a string, got %s", name, e.TypeName())
	}
	return e.Str, nil
}

func builtinStringAppend(args []value.Expr, env value.Environment) (value.Expr, error) {
	var sb strings.Builder
	for _, a := range args {
		s, err := requireString("string-append", a)
		if err != nil {
			return value.Expr{}, err
		}
		sb.WriteString(s)
	}
	return value.Str(sb.String()), nil
}

func builtinStringLength(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("string-length expects 1 argument, got %d", len(args))
	}
	s, err := requireString("string-length", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	return value.Num(value.IntFromInt64(int64(len([]rune(s))))), nil
}

// builtinNewString builds either an empty string or a one-character string
// from a char, matching procedures.rs::new_string exactly; also bound to
// "string", the constructor name.
func builtinNewString(args []value.Expr, env value.Environment) (value.Expr, error) {
	switch len(args) {
	case 0:
		return value.Str(""), nil
	case 1:
		if args[0].Kind != value.KindChar {
			return value.Expr{}, typeErrorf("expected character")
		}
		return value.Str(string(args[0].Ch)), nil
	default:
		return value.Expr{}, typeErrorf("expected character")
	}
}

// builtinMakeString builds a string of a given length filled with a
// repeated character, the R7RS make-string constructor.
func builtinMakeString(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) < 1 || len(args) > 2 || args[0].Kind != value.KindNumber || args[0].Num.Kind != value.NumInt {
		return value.Expr{}, arityErrorf("make-string expects (make-string length [fill])")
	}
	n := args[0].Num.Small
	if n < 0 {
		return value.Expr{}, rangeErrorf("make-string length must be non-negative, got %d", n)
	}
	fill := ' '
	if len(args) == 2 {
		if args[1].Kind != value.KindChar {
			return value.Expr{}, typeErrorf("make-string fill must be a char")
		}
		fill = args[1].Ch
	}
	return value.Str(strings.Repeat(string(fill), int(n))), nil
}

func builtinStringUpcase(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("string-upcase expects 1 argument, got %d", len(args))
	}
	s, err := requireString("string-upcase", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	return value.Str(strings.ToUpper(s)), nil
}

func builtinStringDowncase(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("string-downcase expects 1 argument, got %d", len(args))
	}
	s, err := requireString("string-downcase", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	return value.Str(strings.ToLower(s)), nil
}

func builtinStringRef(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("string-ref expects 2 arguments, got %d", len(args))
	}
	s, err := requireString("string-ref", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	if args[1].Kind != value.KindNumber || args[1].Num.Kind != value.NumInt {
		return value.Expr{}, typeErrorf("string-ref requires an integer index")
	}
	runes := []rune(s)
	idx := int(args[1].Num.Small)
	if idx < 0 || idx >= len(runes) {
		return value.Expr{}, rangeErrorf("string-ref index %d out of range for a string of length %d", idx, len(runes))
	}
	return value.Char(runes[idx]), nil
}

func builtinSubstring(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 3 {
		return value.Expr{}, arityErrorf("substring expects 3 arguments, got %d", len(args))
	}
	s, err := requireString("substring", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	if args[1].Kind != value.KindNumber || args[1].Num.Kind != value.NumInt ||
		args[2].Kind != value.KindNumber || args[2].Num.Kind != value.NumInt {
		return value.Expr{}, typeErrorf("substring requires integer start/end")
	}
	runes := []rune(s)
	start, end := int(args[1].Num.Small), int(args[2].Num.Small)
	if start < 0 || end > len(runes) || start > end {
		return value.Expr{}, rangeErrorf("substring range [%d,%d) out of bounds for a string of length %d", start, end, len(runes))
	}
	return value.Str(string(runes[start:end])), nil
}

func builtinStringCopy(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("string-copy expects 1 argument, got %d", len(args))
	}
	s, err := requireString("string-copy", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	return value.Str(s), nil
}

func builtinStringReverse(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("string-reverse expects 1 argument, got %d", len(args))
	}
	s, err := requireString("string-reverse", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return value.Str(string(runes)), nil
}

func stringCompareAll(name string, args []value.Expr, ok func(c int) bool) (value.Expr, error) {
	if len(args) < 2 {
		return value.Expr{}, arityErrorf("%s expects at least 2 arguments, got %d", name, len(args))
	}
	strs := make([]string, len(args))
	for i, a := range args {
		s, err := requireString(name, a)
		if err != nil {
			return value.Expr{}, err
		}
		strs[i] = s
	}
	for i := 1; i < len(strs); i++ {
		if !ok(strings.Compare(strs[i-1], strs[i])) {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

func builtinStringEq(args []value.Expr, env value.Environment) (value.Expr, error) {
	return stringCompareAll("string=?", args, func(c int) bool { return c == 0 })
}
func builtinStringLt(args []value.Expr, env value.Environment) (value.Expr, error) {
	return stringCompareAll("string<?", args, func(c int) bool { return c < 0 })
}
func builtinStringGt(args []value.Expr, env value.Environment) (value.Expr, error) {
	return stringCompareAll("string>?", args, func(c int) bool { return c > 0 })
}
