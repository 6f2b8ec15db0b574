package lexer

import "testing"

func tokenTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	l := New(src)
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			return types
		}
	}
}

func TestNextTokenDelimitersAndSugar(t *testing.T) {
	got := tokenTypes(t, "(+ 1 'x `(,y ,@z))")
	want := []TokenType{
		LPAREN, IDENT, INT, QUOTE, IDENT,
		QUASIQUOTE, LPAREN, UNQUOTE, IDENT, UNQUOTE_AT, IDENT, RPAREN, RPAREN, EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, tt := range want {
		if got[i] != tt {
			t.Errorf("token %d: got %s, want %s", i, got[i], tt)
		}
	}
}

func TestClassifyAtomNumberKinds(t *testing.T) {
	cases := map[string]TokenType{
		"123":    INT,
		"-42":    INT,
		"#xFF":   INT,
		"1.5":    FLOAT,
		"1e10":   FLOAT,
		"1/2":    RATIONAL,
		"1+2i":   COMPLEX,
		"3i":     COMPLEX,
		"list->vector": IDENT,
		"string=?":     IDENT,
		"+":             IDENT,
	}
	for text, want := range cases {
		if got := classifyAtom(text); got != want {
			t.Errorf("classifyAtom(%q) = %s, want %s", text, got, want)
		}
	}
}

func TestSkipAtmosphereComments(t *testing.T) {
	got := tokenTypes(t, "; line comment\n#| block #| nested |# comment |# 42")
	want := []TokenType{INT, EOF}
	if len(got) != len(want) || got[0] != INT {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReadStringEscapes(t *testing.T) {
	l := New(`"a\nb\tc\"d"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("got type %s, want STRING", tok.Type)
	}
	want := "a\nb\tc\"d"
	if tok.Literal != want {
		t.Errorf("got literal %q, want %q", tok.Literal, want)
	}
}

func TestCharLiteral(t *testing.T) {
	cases := []string{`#\a`, `#\space`, `#\newline`, `#\x41`}
	for _, src := range cases {
		l := New(src)
		tok := l.NextToken()
		if tok.Type != CHAR {
			t.Errorf("New(%q).NextToken().Type = %s, want CHAR", src, tok.Type)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("(+ 1 2)")
	first := l.Peek(0)
	second := l.Peek(0)
	if first.Type != second.Type || first.Literal != second.Literal {
		t.Fatalf("Peek(0) not idempotent: %v vs %v", first, second)
	}
	if l.NextToken().Type != first.Type {
		t.Fatalf("NextToken() did not return the peeked token")
	}
}

func TestSaveRestoreState(t *testing.T) {
	l := New("a b c")
	l.NextToken() // a
	state := l.SaveState()
	l.NextToken() // b
	l.RestoreState(state)
	tok := l.NextToken()
	if tok.Literal != "b" {
		t.Fatalf("RestoreState did not rewind: got %q, want %q", tok.Literal, "b")
	}
}

func TestBytevectorMarker(t *testing.T) {
	got := tokenTypes(t, "#u8(1 2 3)")
	want := []TokenType{BYTEVEC, INT, INT, INT, RPAREN, EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
