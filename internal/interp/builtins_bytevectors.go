package interp

import "github.com/sebastian-j-ibanez/copper-sub000/internal/value"

// registerByteVectors installs the bytevector procedures, grounded on
// original_source/src/env/procedures.rs's bytevector group (new/make/
// length/ref/set/copy/append), mirroring the vector group's shape.
func registerByteVectors(env *Env) {
	define(env, "bytevector", builtinByteVector)
	define(env, "make-bytevector", builtinMakeByteVector)
	define(env, "bytevector-length", builtinByteVectorLength)
	define(env, "bytevector-u8-ref", builtinByteVectorRef)
	define(env, "bytevector-u8-set!", builtinByteVectorSet)
	define(env, "bytevector-copy", builtinByteVectorCopy)
	define(env, "bytevector-append", builtinByteVectorAppend)
}

func byteOf(name string, e value.Expr) (byte, error) {
	if e.Kind != value.KindNumber || e.Num.Kind != value.NumInt {
		return 0, typeErrorf("%s requires integer elements", name)
	}
	n := e.Num.Small
	if n < 0 || n > 255 {
		return 0, rangeErrorf("%s element %d out of byte range [0,255]", name, n)
	}
	return byte(n), nil
}

func builtinByteVector(args []value.Expr, env value.Environment) (value.Expr, error) {
	bytes := make([]byte, len(args))
	for i, a := range args {
		b, err := byteOf("bytevector", a)
		if err != nil {
			return value.Expr{}, err
		}
		bytes[i] = b
	}
	return value.NewByteVector(bytes), nil
}

func builtinMakeByteVector(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) < 1 || len(args) > 2 || args[0].Kind != value.KindNumber || args[0].Num.Kind != value.NumInt {
		return value.Expr{}, arityErrorf("make-bytevector expects (make-bytevector size [fill])")
	}
	size := args[0].Num.Small
	if size < 0 {
		return value.Expr{}, rangeErrorf("make-bytevector size must be non-negative, got %d", size)
	}
	var fill byte
	if len(args) == 2 {
		b, err := byteOf("make-bytevector", args[1])
		if err != nil {
			return value.Expr{}, err
		}
		fill = b
	}
	bytes := make([]byte, size)
	for i := range bytes {
		bytes[i] = fill
	}
	return value.NewByteVector(bytes), nil
}

func requireByteVector(name string, e value.Expr) (*value.ByteVector, error) {
	if e.Kind != value.KindByteVector {
		return nil, typeErrorf("%s requires a bytevector, got %s", name, e.TypeName())
	}
	return e.Bytes, nil
}

func builtinByteVectorLength(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("bytevector-length expects 1 argument, got %d", len(args))
	}
	bv, err := requireByteVector("bytevector-length", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	return value.Num(value.IntFromInt64(int64(len(bv.Bytes)))), nil
}

func builtinByteVectorRef(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 2 {
		return value.Expr{}, arityErrorf("bytevector-u8-ref expects 2 arguments, got %d", len(args))
	}
	bv, err := requireByteVector("bytevector-u8-ref", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	if args[1].Kind != value.KindNumber || args[1].Num.Kind != value.NumInt {
		return value.Expr{}, typeErrorf("bytevector-u8-ref requires an integer index")
	}
	idx := int(args[1].Num.Small)
	if idx < 0 || idx >= len(bv.Bytes) {
		return value.Expr{}, rangeErrorf("bytevector-u8-ref index %d out of range for a bytevector of length %d", idx, len(bv.Bytes))
	}
	return value.Num(value.IntFromInt64(int64(bv.Bytes[idx]))), nil
}

func builtinByteVectorSet(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 3 {
		return value.Expr{}, arityErrorf("bytevector-u8-set! expects 3 arguments, got %d", len(args))
	}
	bv, err := requireByteVector("bytevector-u8-set!", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	if args[1].Kind != value.KindNumber || args[1].Num.Kind != value.NumInt {
		return value.Expr{}, typeErrorf("bytevector-u8-set! requires an integer index")
	}
	idx := int(args[1].Num.Small)
	if idx < 0 || idx >= len(bv.Bytes) {
		return value.Expr{}, rangeErrorf("bytevector-u8-set! index %d out of range for a bytevector of length %d", idx, len(bv.Bytes))
	}
	b, err := byteOf("bytevector-u8-set!", args[2])
	if err != nil {
		return value.Expr{}, err
	}
	bv.Bytes[idx] = b
	return value.Void, nil
}

func builtinByteVectorCopy(args []value.Expr, env value.Environment) (value.Expr, error) {
	if len(args) != 1 {
		return value.Expr{}, arityErrorf("bytevector-copy expects 1 argument, got %d", len(args))
	}
	bv, err := requireByteVector("bytevector-copy", args[0])
	if err != nil {
		return value.Expr{}, err
	}
	bytes := make([]byte, len(bv.Bytes))
	copy(bytes, bv.Bytes)
	return value.NewByteVector(bytes), nil
}

func builtinByteVectorAppend(args []value.Expr, env value.Environment) (value.Expr, error) {
	var bytes []byte
	for _, a := range args {
		bv, err := requireByteVector("bytevector-append", a)
		if err != nil {
			return value.Expr{}, err
		}
		bytes = append(bytes, bv.Bytes...)
	}
	return value.NewByteVector(bytes), nil
}
