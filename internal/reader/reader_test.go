package reader

import (
	"testing"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

func readOne(t *testing.T, src string) value.Expr {
	t.Helper()
	forms, err := ReadAll(src, "")
	if err != nil {
		t.Fatalf("ReadAll(%q): %v", src, err)
	}
	if len(forms) != 1 {
		t.Fatalf("ReadAll(%q) returned %d forms, want 1", src, len(forms))
	}
	return forms[0]
}

func TestReadAtoms(t *testing.T) {
	if got := readOne(t, "42"); got.Kind != value.KindNumber {
		t.Errorf("42: got kind %s, want number", got.Kind)
	}
	if got := readOne(t, `"hi"`); got.Kind != value.KindString || got.Str != "hi" {
		t.Errorf(`"hi": got %#v`, got)
	}
	if got := readOne(t, "#t"); got.Kind != value.KindBoolean || !got.Bool {
		t.Errorf("#t: got %#v", got)
	}
	if got := readOne(t, "foo"); got.Kind != value.KindSymbol || got.Sym != "foo" {
		t.Errorf("foo: got %#v", got)
	}
}

func TestReadProperList(t *testing.T) {
	got := readOne(t, "(1 2 3)")
	items, ok := value.ToSlice(got)
	if !ok || len(items) != 3 {
		t.Fatalf("(1 2 3): got ok=%v items=%v", ok, items)
	}
}

func TestReadDottedPair(t *testing.T) {
	got := readOne(t, "(1 . 2)")
	if got.Kind != value.KindPair {
		t.Fatalf("(1 . 2): got kind %s", got.Kind)
	}
	if got.Pair.Cdr.Kind != value.KindNumber {
		t.Errorf("(1 . 2): cdr kind = %s, want number", got.Pair.Cdr.Kind)
	}
	if _, ok := value.ToSlice(got); ok {
		t.Errorf("(1 . 2) should not be a proper list")
	}
}

func TestReadQuoteSugar(t *testing.T) {
	cases := map[string]string{
		"'x":  "quote",
		"`x":  "quasiquote",
		",x":  "unquote",
		",@x": "unquote-splicing",
	}
	for src, head := range cases {
		got := readOne(t, src)
		if got.Kind != value.KindPair || got.Pair.Car.Sym != head {
			t.Errorf("%s: got %#v, want (%s x)", src, got, head)
		}
	}
}

func TestReadByteVector(t *testing.T) {
	got := readOne(t, "#u8(1 2 255)")
	if got.Kind != value.KindByteVector {
		t.Fatalf("#u8(...): got kind %s", got.Kind)
	}
	want := []byte{1, 2, 255}
	if len(got.Bytes.Bytes) != len(want) {
		t.Fatalf("got %v, want %v", got.Bytes.Bytes, want)
	}
	for i := range want {
		if got.Bytes.Bytes[i] != want[i] {
			t.Errorf("byte %d: got %d, want %d", i, got.Bytes.Bytes[i], want[i])
		}
	}
}

func TestReadUnterminatedListIsError(t *testing.T) {
	if _, err := ReadAll("(1 2", ""); err == nil {
		t.Fatal("expected an error for an unterminated list")
	}
}

func TestReadAllMultipleForms(t *testing.T) {
	forms, err := ReadAll("1 2 3", "")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("got %d forms, want 3", len(forms))
	}
}

func TestReadCharLiteral(t *testing.T) {
	got := readOne(t, `#\space`)
	if got.Kind != value.KindChar || got.Ch != ' ' {
		t.Errorf(`#\space: got %#v`, got)
	}
}
