package interp

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

// registerConversions installs the between-type conversion procedures,
// grounded on original_source/src/env/procedures.rs's conversion group
// (num->string/string->num/string->symbol/string->list/string->vector/
// symbol->string/list->string/list->vector/vector->list/vector->string).
// utf8->string/string->utf8 decode and encode real UTF-8 via
// golang.org/x/text/encoding/unicode rather than the original's
// hex-digit-string workaround for bytes outside ASCII.
func registerConversions(env *Env) {
	define(env, "number->string", builtinNumberToString)
	define(env, "string->number", builtinStringToNumber)
	define(env, "string->symbol", builtinStringToSymbol)
	define(env, "symbol->string", builtinSymbolToString)
	define(env, "string->list", builtinStringToList)
	define(env, "list->string", builtinListToString)
	define(env, "string->vector", builtinStringToVector)
	define(env, "vector->string", builtinVectorToString)
	define(env, "vector->list", builtinVectorToList)
	define(env, "list->vector", builtinListToVector)
	define(env, "char->integer", builtinCharToInteger)
	define(env, "integer->char", builtinIntegerToChar)
	define(env, "utf8->string", builtinUTF8ToString)
	define(env, "string->utf8", builtinStringToUTF8)
}

func builtinNumberToString(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 || args[0].Kind != value.KindNumber {
		return value.Expr{}, typeErrorf("number->string requires a number argument")
	}
	return value.Str(args[0].Num.String()), nil
}

func builtinStringToNumber(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("string->number expects 1 argument, got %d", len(args))
	}
	s, err := requireString("string->number", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	n, perr := value.ParseNumber(s)
	if perr != nil {
		return value.Bool(false), nil
	}
	return value.Num(n), nil
}

func builtinStringToSymbol(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("string->symbol expects 1 argument, got %d", len(args))
	}
	s, err := requireString("string->symbol", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	return value.Sym(s), nil
}

func builtinSymbolToString(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 || args[0].Kind != value.KindSymbol {
		return value.Expr{}, typeErrorf("symbol->string requires a symbol argument")
	}
	return value.Str(args[0].Sym), nil
}

func builtinStringToList(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("string->list expects 1 argument, got %d", len(args))
	}
	s, err := requireString("string->list", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	runes := []rune(s)
	chars := make([]value.Expr, len(runes))
	for i, r := range runes {
		chars[i] = value.Char(r)
	}
	return value.FromSlice(chars), nil
}

func builtinListToString(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("list->string expects 1 argument, got %d", len(args))
	}
	items, ok := value.ToSlice(args[0])
	if !ok {
		return value.Expr{}, typeErrorf("list->string requires a proper list")
	}
	var sb strings.Builder
	for _, it := range items {
		if it.Kind != value.KindChar {
			return value.Expr{}, typeErrorf("list->string requires a list of chars")
		}
		sb.WriteRune(it.Ch)
	}
	return value.Str(sb.String()), nil
}

func builtinStringToVector(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("string->vector expects 1 argument, got %d", len(args))
	}
	s, err := requireString("string->vector", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	runes := []rune(s)
	elems := make([]value.Expr, len(runes))
	for i, r := range runes {
		elems[i] = value.Char(r)
	}
	return value.NewVector(elems), nil
}

func builtinVectorToString(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("vector->string expects 1 argument, got %d", len(args))
	}
	v, err := requireVector("vector->string", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	var sb strings.Builder
	for _, e := range v.Elems {
		if e.Kind != value.KindChar {
			return value.Expr{}, typeErrorf("vector->string requires a vector of chars")
		}
		sb.WriteRune(e.Ch)
	}
	return value.Str(sb.String()), nil
}

func builtinVectorToList(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("vector->list expects 1 argument, got %d", len(args))
	}
	v, err := requireVector("vector->list", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	return value.FromSlice(v.Elems), nil
}

func builtinListToVector(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("list->vector expects 1 argument, got %d", len(args))
	}
	items, ok := value.ToSlice(args[0])
	if !ok {
		return value.Expr{}, typeErrorf("list->vector requires a proper list")
	}
	elems := make([]value.Expr, len(items))
	copy(elems, items)
	return value.NewVector(elems), nil
}

func builtinCharToInteger(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 || args[0].Kind != value.KindChar {
		return value.Expr{}, typeErrorf("char->integer requires a char argument")
	}
	return value.Num(value.IntFromInt64(int64(args[0].Ch))), nil
}

func builtinIntegerToChar(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 || args[0].Kind != value.KindNumber || args[0].Num.Kind != value.NumInt {
		return value.Expr{}, typeErrorf("integer->char requires an integer argument")
	}
	return value.Char(rune(args[0].Num.Small)), nil
}

// builtinUTF8ToString decodes a bytevector as UTF-8, replacing malformed
// sequences with U+FFFD rather than the original's hex-digit fallback.
func builtinUTF8ToString(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("utf8->string expects 1 argument, got %d", len(args))
	}
	bv, err := requireByteVector("utf8->string", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	decoded, _, terr := transform.Bytes(unicode.UTF8.NewDecoder(), bv.Bytes)
	if terr != nil {
		return value.Expr{}, ioErrorf("utf8->string: %s", terr)
	}
	return value.Str(string(decoded)), nil
}

func builtinStringToUTF8(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("string->utf8 expects 1 argument, got %d", len(args))
	}
	s, err := requireString("string->utf8", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	encoded, _, terr := transform.Bytes(unicode.UTF8.NewEncoder(), []byte(s))
	if terr != nil {
		return value.Expr{}, ioErrorf("string->utf8: %s", terr)
	}
	return value.NewByteVector(encoded), nil
}
