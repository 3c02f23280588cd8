package bignumber

import (
	"github.com/ITGourmand/bigNumber/block"
	"github.com/ITGourmand/bigNumber/expr"
)

// Number is an evaluated expression bound to a display.
type Number struct {
	v block.Number
	d block.Display
}

// New evaluates the expression.
func New(expression string, d block.Display) (n Number, err error) {
	v, err := expr.Eval(expression)
	if err != nil {
		return n, err
	}

	return Number{v: v, d: d}, nil
}

// MustNew is like New but panics if the expression cannot be evaluated.
func MustNew(expression string, d block.Display) Number {
	n, err := New(expression, d)
	if err != nil {
		panic(err)
	}

	return n
}

// Of returns the number v with display d.
func Of(v block.Number, d block.Display) Number {
	return Number{v: v, d: d}
}

// String renders the number with its display.
func (n Number) String() string {
	return n.v.Format(n.d)
}

// Value returns the exact value of n.
func (n Number) Value() block.Number {
	return n.v
}

// Display returns the display of n.
func (n Number) Display() block.Display {
	return n.d
}

// WithDisplay returns n with another display.
func (n Number) WithDisplay(d block.Display) Number {
	n.d = d

	return n
}

// combine evaluates o and returns a number with n's display holding
// fn(n, o).
func (n Number) combine(o Operand, fn func(a, b block.Number) (block.Number, error)) (r Number, err error) {
	b, err := valueOf(o)
	if err != nil {
		return r, err
	}

	v, err := fn(n.v, b)
	if err != nil {
		return r, err
	}

	return Number{v: v, d: n.d}, nil
}

// Add returns n + o.
func (n Number) Add(o Operand) (Number, error) {
	return n.combine(o, func(a, b block.Number) (block.Number, error) {
		return a.Add(b), nil
	})
}

// Sub returns n - o.
func (n Number) Sub(o Operand) (Number, error) {
	return n.combine(o, func(a, b block.Number) (block.Number, error) {
		return a.Sub(b), nil
	})
}

// Mul returns n * o.
func (n Number) Mul(o Operand) (Number, error) {
	return n.combine(o, func(a, b block.Number) (block.Number, error) {
		return a.Mul(b), nil
	})
}

// Quo returns n / o.
func (n Number) Quo(o Operand) (Number, error) {
	return n.combine(o, block.Number.Quo)
}

// Pow returns n ^ o; o must be a non-negative integer.
func (n Number) Pow(o Operand) (Number, error) {
	return n.combine(o, block.Number.Pow)
}

// Cmp compares n and o and returns -1, 0 or +1.
func (n Number) Cmp(o Operand) (c int, err error) {
	b, err := valueOf(o)
	if err != nil {
		return 0, err
	}

	return n.v.Cmp(b), nil
}

// Equal reports whether n and o have the same value. Displays are not
// compared.
func (n Number) Equal(o Operand) (bool, error) {
	c, err := n.Cmp(o)
	if err != nil {
		return false, err
	}

	return c == 0, nil
}
