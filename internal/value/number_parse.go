package value

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ParseNumber parses a numeric token's literal text into a Number,
// following the same prefix/shape checks as Number::from_token in the
// original source: radix/exactness prefixes, then a complex `a+bi`/`bi`
// suffix, then a rational `num/den`, then a real containing `.`/`e`,
// then a plain integer.
func ParseNumber(text string) (Number, error) {
	radix := 10
	var forceExact, forceInexact bool

	for len(text) >= 2 && text[0] == '#' {
		switch text[1] {
		case 'x', 'X':
			radix = 16
		case 'o', 'O':
			radix = 8
		case 'b', 'B':
			radix = 2
		case 'd', 'D':
			radix = 10
		case 'e', 'E':
			forceExact = true
		case 'i', 'I':
			forceInexact = true
		default:
			return Number{}, fmt.Errorf("invalid number prefix: %s", text)
		}
		text = text[2:]
	}

	if text == "" {
		return Number{}, fmt.Errorf("empty numeric literal")
	}

	n, err := parseReal(text, radix)
	if err != nil {
		return Number{}, err
	}
	if forceExact {
		n = toExact(n)
	}
	if forceInexact {
		n = toInexact(n)
	}
	return n, nil
}

// parseReal parses everything but the radix/exactness prefixes: complex,
// rational, float, or plain integer, in that priority order, mirroring
// Number::from_token.
func parseReal(text string, radix int) (Number, error) {
	if strings.HasSuffix(text, "i") || strings.HasSuffix(text, "I") {
		return parseComplex(text, radix)
	}

	if idx := strings.IndexByte(text, '/'); idx > 0 {
		num, ok1 := new(big.Int).SetString(text[:idx], radix)
		den, ok2 := new(big.Int).SetString(text[idx+1:], radix)
		if !ok1 || !ok2 {
			return Number{}, fmt.Errorf("malformed rational literal: %s", text)
		}
		if den.Sign() == 0 {
			return Number{}, fmt.Errorf("rational literal with zero denominator: %s", text)
		}
		return RatFromBig(new(big.Rat).SetFrac(num, den)), nil
	}

	if radix == 10 && strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Number{}, fmt.Errorf("malformed real literal: %s", text)
		}
		return RealFromFloat64(f), nil
	}

	bi, ok := new(big.Int).SetString(text, radix)
	if !ok {
		return Number{}, fmt.Errorf("malformed integer literal: %s", text)
	}
	return IntFromBig(bi), nil
}

// parseComplex parses `<real>` (possibly signed) + `<imag>i`, including
// the bare-imaginary shorthand `i`/`3i`/`+i`/`-i`.
func parseComplex(text string, radix int) (Number, error) {
	body := text[:len(text)-1] // strip trailing i/I

	if body == "" || body == "+" {
		return ComplexFromComplex128(complex(0, 1)), nil
	}
	if body == "-" {
		return ComplexFromComplex128(complex(0, -1)), nil
	}

	// Find the sign that separates the real part from the imaginary part,
	// scanning from the right so exponents like `1e+10` aren't mistaken
	// for the split point.
	splitAt := -1
	for i := len(body) - 1; i > 0; i-- {
		if (body[i] == '+' || body[i] == '-') && body[i-1] != 'e' && body[i-1] != 'E' {
			splitAt = i
			break
		}
	}

	if splitAt < 0 {
		// No real part: pure imaginary, e.g. `3i`, `-3i`.
		imag, err := parseReal(body, radix)
		if err != nil {
			return Number{}, fmt.Errorf("malformed complex literal: %s", text)
		}
		return ComplexFromComplex128(complex(0, imag.toFloat())), nil
	}

	rePart, imPart := body[:splitAt], body[splitAt:]
	if imPart == "+" {
		imPart = "1"
	} else if imPart == "-" {
		imPart = "-1"
	}

	re, err1 := parseReal(rePart, radix)
	im, err2 := parseReal(imPart, radix)
	if err1 != nil || err2 != nil {
		return Number{}, fmt.Errorf("malformed complex literal: %s", text)
	}
	return ComplexFromComplex128(complex(re.toFloat(), im.toFloat())), nil
}

func toExact(n Number) Number {
	switch n.Kind {
	case NumReal:
		r := new(big.Rat).SetFloat64(n.Real)
		if r == nil {
			return n
		}
		return RatFromBig(r)
	default:
		return n
	}
}

func toInexact(n Number) Number {
	switch n.Kind {
	case NumInt, NumRational:
		return RealFromFloat64(n.toFloat())
	default:
		return n
	}
}
