package expr

import (
	"github.com/ITGourmand/bigNumber/block"
)

// Operator is an operator of the expression grammar.
type Operator struct {
	Symbol     byte
	Precedence int

	// Right is set for right associative operators.
	Right bool

	// Unary is set for prefix signs.
	Unary bool
}

// Match returns true if this operator is written as b.
func (o Operator) Match(b byte) bool {
	return !o.Unary && o.Symbol == b
}

// Binds reports whether o, sitting on the stack, is applied before next is
// pushed.
func (o Operator) Binds(next Operator) bool {
	return o.Precedence > next.Precedence ||
		(o.Precedence == next.Precedence && !next.Right)
}

type operators []Operator

func (os operators) Match(b byte) (o Operator, ok bool) {
	for _, o := range os {
		if o.Match(b) {
			return o, true
		}
	}

	return o, false
}

var (
	Unknown = Operator{}
	Add     = Operator{'+', 1, false, false}
	Sub     = Operator{'-', 1, false, false}
	Mul     = Operator{'*', 2, false, false}
	Quo     = Operator{'/', 2, false, false}
	Pow     = Operator{'^', 3, true, false}

	// Signs bind tighter than * and / and looser than ^: -2^2 = -(2^2).
	Pos = Operator{'+', 2, false, true}
	Neg = Operator{'-', 2, false, true}

	// Group marks an open parenthesis on the operator stack.
	Group = Operator{'(', 0, false, false}

	Operators = operators{
		Add,
		Sub,
		Mul,
		Quo,
		Pow,
	}
)

// apply computes the binary operator o over a and b.
func (o Operator) apply(a, b block.Number) (block.Number, error) {
	switch o {
	case Add:
		return a.Add(b), nil
	case Sub:
		return a.Sub(b), nil
	case Mul:
		return a.Mul(b), nil
	case Quo:
		return a.Quo(b)
	case Pow:
		return a.Pow(b)
	}

	return block.Number{}, block.FormatError.New("unknown operator %q", o.Symbol)
}

// sign computes the unary operator o over a.
func (o Operator) sign(a block.Number) block.Number {
	if o == Neg {
		return a.Neg()
	}

	return a
}
