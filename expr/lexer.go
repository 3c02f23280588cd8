package expr

import (
	"github.com/ITGourmand/bigNumber/block"
)

// Kind is the kind of a token.
type Kind int

const (
	Literal Kind = iota
	Op
	Open
	Close
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Op:
		return "operator"
	case Open:
		return "("
	case Close:
		return ")"
	}

	return "unknown"
}

// Token is a lexical unit of a preprocessed expression.
type Token struct {
	Kind Kind
	Text string
	Op   Operator
	Pos  int
}

// Scan splits a preprocessed expression into tokens.
func Scan(src string) (toks []Token, err error) {
	for i := 0; i < len(src); {
		c := src[i]

		switch {
		case isDigit(c) || c == '.':
			end, err := scanLiteral(src, i)
			if err != nil {
				return nil, err
			}

			toks = append(toks, Token{Kind: Literal, Text: src[i:end], Pos: i})
			i = end
		case c == '(':
			toks = append(toks, Token{Kind: Open, Text: "(", Pos: i})
			i++
		case c == ')':
			toks = append(toks, Token{Kind: Close, Text: ")", Pos: i})
			i++
		default:
			o, ok := Operators.Match(c)
			if !ok {
				return nil, block.FormatError.New("unexpected %q at %d in %q", c, i, src)
			}

			toks = append(toks, Token{Kind: Op, Text: string(c), Op: o, Pos: i})
			i++
		}
	}

	return toks, nil
}

// scanLiteral returns the end of the literal starting at i: digits with an
// optional decimal point followed by suffix characters.
func scanLiteral(src string, i int) (end int, err error) {
	start := i

	for i < len(src) && isDigit(src[i]) {
		i++
	}

	if i < len(src) && src[i] == '.' {
		i++

		digits := i
		for i < len(src) && isDigit(src[i]) {
			i++
		}

		if i == digits {
			return 0, block.FormatError.New("no digits after decimal point at %d in %q", i, src)
		}
	}

	for i < len(src) && isSuffix(src[i]) {
		i++
	}

	if i < len(src) && (isDigit(src[i]) || src[i] == '.') {
		return 0, block.FormatError.New("malformed literal %q in %q", src[start:i+1], src)
	}

	return i, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSuffix(c byte) bool {
	return c == '!' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
