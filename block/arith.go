package block

import (
	"math/big"
)

// QuoFloor is the lowest exponent long division generates fractional blocks
// for. Quotients that do not terminate above it are truncated.
const QuoFloor = -1000

// CmpAbs compares the magnitudes of n and o, ignoring signs, and returns
// -1, 0 or +1.
func (n Number) CmpAbs(o Number) int {
	a, b := n.blocks.Exponents(), o.blocks.Exponents()

	for i, j := 0, 0; i < len(a) || j < len(b); {
		var e int
		switch {
		case j >= len(b) || (i < len(a) && a[i] > b[j]):
			e = a[i]
			i++
		case i >= len(a) || b[j] > a[i]:
			e = b[j]
			j++
		default:
			e = a[i]
			i++
			j++
		}

		av, bv := n.blocks[e], o.blocks[e]
		switch {
		case av > bv:
			return 1
		case av < bv:
			return -1
		}
	}

	return 0
}

// Add returns n + o.
func (n Number) Add(o Number) Number {
	if n.negative == o.negative {
		sum := n.blocks.Clone()
		for e, v := range o.blocks {
			sum[e] += v
		}

		return New(n.negative, sum)
	}

	switch n.CmpAbs(o) {
	case 0:
		return Number{}
	case 1:
		return New(n.negative, difference(n.blocks, o.blocks))
	}

	return New(o.negative, difference(o.blocks, n.blocks))
}

// difference subtracts the blocks of b from a copy of a. The result still
// needs normalizing.
func difference(a, b Blocks) Blocks {
	diff := a.Clone()
	for e, v := range b {
		diff[e] -= v
	}

	return diff
}

// Sub returns n - o.
func (n Number) Sub(o Number) Number {
	return n.Add(o.Neg())
}

// Mul returns n * o.
func (n Number) Mul(o Number) Number {
	prod := make(Blocks, len(n.blocks)+len(o.blocks))
	for ea, va := range n.blocks {
		for eb, vb := range o.blocks {
			prod[ea+eb] += va * vb
		}
	}

	return New(n.negative != o.negative, prod)
}

// ToInteger collapses b into a single integer. The blocks below exponent 0
// are dropped; exact reports whether there were none.
func ToInteger(b Blocks) (i *big.Int, exact bool) {
	i = new(big.Int)
	exact = true

	thousand := big.NewInt(Base)
	scale := new(big.Int)

	// Horner's rule over the present exponents, scaling across gaps.
	prev := -1
	for _, e := range b.Exponents() {
		if e < 0 {
			exact = false
			break
		}

		if prev >= 0 {
			scale.Exp(thousand, big.NewInt(int64(prev-e)), nil)
			i.Mul(i, scale)
		}
		i.Add(i, big.NewInt(b[e]))
		prev = e
	}

	if prev > 0 {
		scale.Exp(thousand, big.NewInt(int64(prev)), nil)
		i.Mul(i, scale)
	}

	return i, exact
}

// Int returns the signed integer part of n; exact reports whether n has no
// fractional part.
func (n Number) Int() (i *big.Int, exact bool) {
	i, exact = ToInteger(n.blocks)
	if n.negative {
		i.Neg(i)
	}

	return i, exact
}

// Quo returns n / o computed by long division over the blocks. A quotient
// that does not terminate is truncated below QuoFloor.
func (n Number) Quo(o Number) (q Number, err error) {
	// A fractional divisor is scaled up to an integer and the dividend with
	// it.
	var k int
	if exps := o.blocks.Exponents(); len(exps) > 0 && exps[len(exps)-1] < 0 {
		k = -exps[len(exps)-1]
	}

	d, _ := ToInteger(o.blocks.shift(k))
	if d.Sign() == 0 {
		return Number{}, DivisionByZero.New("%s / %s", n, o)
	}

	if n.IsZero() {
		return Number{}, nil
	}

	a := n.blocks.shift(k)
	exps := a.Exponents()
	hi, lo := exps[0], exps[len(exps)-1]

	quo := make(Blocks, len(exps))
	thousand := big.NewInt(Base)
	v, rem := new(big.Int), new(big.Int)
	qb := new(big.Int)

	step := func(e int) {
		v.SetInt64(a[e])
		v.Add(v, rem)
		qb.QuoRem(v, d, rem)
		rem.Mul(rem, thousand)

		if qb.Sign() != 0 {
			quo[e] = qb.Int64()
		}
	}

	for i, e := 0, hi; e >= lo; e-- {
		// Nothing carries across a gap when the remainder is zero.
		if rem.Sign() == 0 && a[e] == 0 {
			for exps[i] > e {
				i++
			}
			e = exps[i]
		}

		step(e)
	}

	for e := lo - 1; rem.Sign() != 0 && e > QuoFloor; e-- {
		step(e)
	}

	return New(n.negative != o.negative, quo), nil
}

// PowInt returns n ** e for an exponent e >= 0 by binary exponentiation.
func (n Number) PowInt(e *big.Int) (p Number, err error) {
	if e.Sign() < 0 {
		return Number{}, InvalidExponent.New("negative exponent %s", e)
	}

	if e.Sign() == 0 {
		return One(), nil
	}

	// Zero and units stay bounded for any exponent.
	if n.IsZero() || n.Abs().Equal(One()) {
		if n.negative && e.Bit(0) == 1 {
			return n, nil
		}

		return n.Abs(), nil
	}

	exps := n.blocks.Exponents()
	top, bottom := exps[0], exps[len(exps)-1]
	if !e.IsInt64() || outOfRange(top, e.Int64()) || outOfRange(bottom, e.Int64()) {
		return Number{}, InvalidExponent.New("exponent %s too large", e)
	}

	p = One()
	acc := n
	for i, bits := 0, e.BitLen(); i < bits; i++ {
		if e.Bit(i) == 1 {
			p = p.Mul(acc)
		}
		if i+1 < bits {
			acc = acc.Mul(acc)
		}
	}

	return p, nil
}

// outOfRange reports whether a block at exponent x raised to the power e
// would land past MaxExponent.
func outOfRange(x int, e int64) bool {
	if x < 0 {
		x = -x
	}

	return e > MaxExponent || (x != 0 && int64(x) > MaxExponent/e)
}

// Pow returns n ** e. The exponent must be a non-negative integer.
func (n Number) Pow(e Number) (p Number, err error) {
	exps := e.blocks.Exponents()
	if len(exps) > 0 && exps[len(exps)-1] < 0 {
		return Number{}, InvalidExponent.New("fractional exponent %s", e)
	}
	if e.negative {
		return Number{}, InvalidExponent.New("negative exponent %s", e)
	}

	// 1000^5 is past MaxExponent: only zero and units can take such a power,
	// and the exponent is not collapsed for them.
	if len(exps) > 0 && exps[0] >= 5 {
		if !n.IsZero() && !n.Abs().Equal(One()) {
			return Number{}, InvalidExponent.New("exponent %s too large", e)
		}

		// 1000^k is even for k > 0, so the units block decides parity.
		if n.negative && e.blocks[0]%2 == 1 {
			return n, nil
		}

		return n.Abs(), nil
	}

	i, _ := e.Int()

	return n.PowInt(i)
}
