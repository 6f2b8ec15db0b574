package value

import (
	"strconv"
	"strings"
)

// Print renders e the way `display` does: strings and chars render as raw
// text, with no quoting.
func Print(e Expr) string {
	var b strings.Builder
	printExpr(&b, e, false, newCycleGuard())
	return b.String()
}

// Write renders e the way `write` does: strings are quoted and escaped,
// chars are written as `#\x` literals, matching read/write round-tripping.
func Write(e Expr) string {
	var b strings.Builder
	printExpr(&b, e, true, newCycleGuard())
	return b.String()
}

// cycleGuard tracks aggregate pointers currently being printed, so a
// self-referential pair or vector (built via set-car!/vector-set!) prints
// as `...` at the point of recursion instead of looping forever.
type cycleGuard struct {
	pairs   map[*Pair]bool
	vectors map[*Vector]bool
}

func newCycleGuard() *cycleGuard {
	return &cycleGuard{pairs: map[*Pair]bool{}, vectors: map[*Vector]bool{}}
}

func printExpr(b *strings.Builder, e Expr, write bool, g *cycleGuard) {
	switch e.Kind {
	case KindNull:
		b.WriteString("()")
	case KindVoid:
		// Void has no printed representation; callers skip printing it at
		// the REPL top level. If one ends up nested (e.g. in a list built
		// by a test), render nothing rather than crash.
	case KindBoolean:
		if e.Bool {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case KindNumber:
		b.WriteString(e.Num.String())
	case KindChar:
		if write {
			b.WriteString(writeChar(e.Ch))
		} else {
			b.WriteRune(e.Ch)
		}
	case KindString:
		if write {
			b.WriteString(strconv.Quote(e.Str))
		} else {
			b.WriteString(e.Str)
		}
	case KindSymbol:
		b.WriteString(e.Sym)
	case KindPair:
		printPair(b, e.Pair, write, g)
	case KindVector:
		printVector(b, e.Vector, write, g)
	case KindByteVector:
		printByteVector(b, e.Bytes)
	case KindClosure:
		name := e.Proc.Name
		if name == "" {
			name = "anonymous"
		}
		b.WriteString("#<procedure:" + name + ">")
	case KindFunc:
		b.WriteString("#<procedure:" + e.Func.Name + ">")
	}
}

func printPair(b *strings.Builder, p *Pair, write bool, g *cycleGuard) {
	if g.pairs[p] {
		b.WriteString("...")
		return
	}

	// Every pair advanced along the spine gets marked so a cycle through
	// it is caught, and unmarked again once the list is fully printed so
	// an acyclic sublist shared by two siblings (e.g. (list t t)) doesn't
	// misprint its second occurrence as "...".
	var spine []*Pair
	defer func() {
		for _, sp := range spine {
			delete(g.pairs, sp)
		}
	}()

	g.pairs[p] = true
	spine = append(spine, p)

	b.WriteByte('(')
	cur := Expr{Kind: KindPair, Pair: p}
	first := true
	for {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		printExpr(b, cur.Pair.Car, write, g)

		switch cur.Pair.Cdr.Kind {
		case KindNull:
			b.WriteByte(')')
			return
		case KindPair:
			if g.pairs[cur.Pair.Cdr.Pair] {
				b.WriteString(" . ...)")
				return
			}
			cur = cur.Pair.Cdr
			g.pairs[cur.Pair] = true
			spine = append(spine, cur.Pair)
		default:
			b.WriteString(" . ")
			printExpr(b, cur.Pair.Cdr, write, g)
			b.WriteByte(')')
			return
		}
	}
}

func printVector(b *strings.Builder, v *Vector, write bool, g *cycleGuard) {
	if g.vectors[v] {
		b.WriteString("#(...)")
		return
	}
	g.vectors[v] = true
	defer delete(g.vectors, v)

	b.WriteString("#(")
	for i, el := range v.Elems {
		if i > 0 {
			b.WriteByte(' ')
		}
		printExpr(b, el, write, g)
	}
	b.WriteByte(')')
}

func printByteVector(b *strings.Builder, bv *ByteVector) {
	b.WriteString("#u8(")
	for i, by := range bv.Bytes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(by)))
	}
	b.WriteByte(')')
}

var charNames = map[rune]string{
	' ':    "space",
	'\n':   "newline",
	'\t':   "tab",
	'\r':   "return",
	0:      "null",
	127:    "delete",
	27:     "escape",
	8:      "backspace",
	12:     "page",
}

func writeChar(r rune) string {
	if name, ok := charNames[r]; ok {
		return "#\\" + name
	}
	return "#\\" + string(r)
}
