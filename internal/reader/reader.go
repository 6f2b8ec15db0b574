// Package reader turns copper source text into value.Expr trees: a
// recursive-descent parser over internal/lexer's token stream, grounded on
// original_source/src/parser.rs's parse()/parse_right_expr() shape.
package reader

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/sebastian-j-ibanez/copper-sub000/internal/ixerrors"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/lexer"
	"github.com/sebastian-j-ibanez/copper-sub000/internal/value"
)

// Reader parses a token stream into Exprs, one datum per call to Read.
type Reader struct {
	lex    *lexer.Lexer
	source string
	file   string
}

// New wraps a Lexer for source, recorded only so parse errors can render a
// caret-pointing excerpt.
func New(l *lexer.Lexer, source, file string) *Reader {
	return &Reader{lex: l, source: source, file: file}
}

// ReadAll reads source completely, returning every top-level datum. Used
// by `load` and by running a file passed on the command line.
func ReadAll(source, file string, opts ...lexer.LexerOption) ([]value.Expr, error) {
	r := New(lexer.New(source, opts...), source, file)
	var forms []value.Expr
	for {
		tok := r.lex.Peek(0)
		if tok.Type == lexer.EOF {
			break
		}
		expr, err := r.Read()
		if err != nil {
			return nil, err
		}
		forms = append(forms, expr)
	}
	return forms, nil
}

// Read parses and returns the next top-level datum. When the input is
// exhausted it returns an "unexpected end of input" parse error.
func (r *Reader) Read() (value.Expr, error) {
	tok := r.lex.NextToken()
	return r.parseFrom(tok)
}

// AtEOF reports whether the underlying lexer has nothing left but EOF.
func (r *Reader) AtEOF() bool {
	return r.lex.Peek(0).Type == lexer.EOF
}

func (r *Reader) parseErr(tok lexer.Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return ixerrors.NewParseError(tok.Pos, r.source, r.file, msg)
}

func (r *Reader) parseFrom(tok lexer.Token) (value.Expr, error) {
	switch tok.Type {
	case lexer.EOF:
		return value.Expr{}, r.parseErr(tok, "unexpected end of input")

	case lexer.LPAREN:
		return r.parseList()

	case lexer.BYTEVEC:
		return r.parseByteVector()

	case lexer.RPAREN:
		return value.Expr{}, r.parseErr(tok, "unexpected ')'")

	case lexer.QUOTE:
		return r.parseSugar("quote")
	case lexer.QUASIQUOTE:
		return r.parseSugar("quasiquote")
	case lexer.UNQUOTE:
		return r.parseSugar("unquote")
	case lexer.UNQUOTE_AT:
		return r.parseSugar("unquote-splicing")

	case lexer.BOOL:
		return value.Bool(tok.Literal == "#t" || tok.Literal == "#true"), nil

	case lexer.CHAR:
		ch, err := parseCharLiteral(tok.Literal)
		if err != nil {
			return value.Expr{}, r.parseErr(tok, "%s", err)
		}
		return value.Char(ch), nil

	case lexer.STRING:
		// NFC-normalize string literals so string=? and the case-folding
		// builtins aren't fooled by combining-character variants of the
		// same text.
		return value.Str(norm.NFC.String(tok.Literal)), nil

	case lexer.INT, lexer.FLOAT, lexer.RATIONAL, lexer.COMPLEX:
		n, err := value.ParseNumber(tok.Literal)
		if err != nil {
			return value.Expr{}, r.parseErr(tok, "%s", err)
		}
		return value.Num(n), nil

	case lexer.IDENT:
		return value.Sym(tok.Literal), nil

	case lexer.DOT:
		return value.Expr{}, r.parseErr(tok, "unexpected '.'")

	default:
		return value.Expr{}, r.parseErr(tok, "unexpected token %q", tok.Literal)
	}
}

func (r *Reader) parseSugar(head string) (value.Expr, error) {
	inner, err := r.Read()
	if err != nil {
		return value.Expr{}, err
	}
	return value.Cons(value.Sym(head), value.Cons(inner, value.Null)), nil
}

// parseList parses the contents of a `(` already consumed by Read, up to
// its matching `)`, including proper R7RS dotted-pair syntax `(a b . c)`.
func (r *Reader) parseList() (value.Expr, error) {
	var items []value.Expr
	tail := value.Null

	for {
		tok := r.lex.Peek(0)
		switch tok.Type {
		case lexer.EOF:
			return value.Expr{}, r.parseErr(tok, "unexpected end of input, expected ')'")
		case lexer.RPAREN:
			r.lex.NextToken()
			return buildList(items, tail), nil
		case lexer.DOT:
			r.lex.NextToken()
			var err error
			tail, err = r.Read()
			if err != nil {
				return value.Expr{}, err
			}
			closeTok := r.lex.NextToken()
			if closeTok.Type != lexer.RPAREN {
				return value.Expr{}, r.parseErr(closeTok, "expected ')' after dotted tail")
			}
			return buildList(items, tail), nil
		default:
			item, err := r.Read()
			if err != nil {
				return value.Expr{}, err
			}
			items = append(items, item)
		}
	}
}

func buildList(items []value.Expr, tail value.Expr) value.Expr {
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = value.Cons(items[i], result)
	}
	return result
}

// parseByteVector parses the contents of a `#u8(` already consumed, up to
// its matching `)`. Each element must be an exact integer in [0, 255].
func (r *Reader) parseByteVector() (value.Expr, error) {
	var bytes []byte
	for {
		tok := r.lex.Peek(0)
		switch tok.Type {
		case lexer.EOF:
			return value.Expr{}, r.parseErr(tok, "unexpected end of input, expected ')'")
		case lexer.RPAREN:
			r.lex.NextToken()
			return value.NewByteVector(bytes), nil
		case lexer.INT:
			r.lex.NextToken()
			n, err := value.ParseNumber(tok.Literal)
			if err != nil || n.Kind != value.NumInt || n.Big != nil || n.Small < 0 || n.Small > 255 {
				return value.Expr{}, r.parseErr(tok, "bytevector element out of range [0,255]: %s", tok.Literal)
			}
			bytes = append(bytes, byte(n.Small))
		default:
			return value.Expr{}, r.parseErr(tok, "expected byte literal in bytevector, got %q", tok.Literal)
		}
	}
}

// parseCharLiteral interprets a `#\...` token's literal text into its rune
// value: named characters (#\space, #\newline, ...), hex escapes (#\x41),
// and single-character literals (#\a).
func parseCharLiteral(text string) (rune, error) {
	if !strings.HasPrefix(text, `#\`) {
		return 0, fmt.Errorf("malformed character literal: %s", text)
	}
	body := text[2:]
	if body == "" {
		return 0, fmt.Errorf("empty character literal")
	}

	runes := []rune(body)
	if len(runes) == 1 {
		return runes[0], nil
	}

	lower := strings.ToLower(body)
	if (lower[0] == 'x') && len(lower) > 1 {
		if v, err := strconv.ParseInt(lower[1:], 16, 32); err == nil {
			return rune(v), nil
		}
	}
	if name, ok := namedCharLookup[lower]; ok {
		return name, nil
	}
	return 0, fmt.Errorf("unknown character name: %s", body)
}

var namedCharLookup = map[string]rune{
	"space":     ' ',
	"newline":   '\n',
	"tab":       '\t',
	"nul":       0,
	"null":      0,
	"altmode":   27,
	"backspace": 8,
	"delete":    127,
	"escape":    27,
	"linefeed":  '\n',
	"page":      12,
	"return":    '\r',
	"rubout":    127,
}
