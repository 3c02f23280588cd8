package block

import (
	"sort"
)

// Blocks maps a magnitude index (power of 1000) to the base 1000 digit
// stored there.
type Blocks map[int]int64

// Exponents returns the present exponents in descending order.
func (b Blocks) Exponents() []int {
	exps := make([]int, 0, len(b))
	for e := range b {
		exps = append(exps, e)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(exps)))

	return exps
}

// Clone returns a copy of the blocks.
func (b Blocks) Clone() Blocks {
	c := make(Blocks, len(b))
	for e, v := range b {
		c[e] = v
	}

	return c
}

// shift returns a copy of the blocks moved up by k exponents.
func (b Blocks) shift(k int) Blocks {
	c := make(Blocks, len(b))
	for e, v := range b {
		c[e+k] = v
	}

	return c
}

// Number is a signed exact decimal number stored as base 1000 blocks.
//
// Numbers are values: operations return new numbers and never modify their
// operands. The zero value is the number zero.
type Number struct {
	negative bool
	blocks   Blocks
}

// New returns the number sign * b in canonical form. The blocks may hold
// values outside [0, 999]; they are normalized into a fresh mapping.
func New(negative bool, b Blocks) Number {
	nb, flip := Normalize(b)
	if len(nb) == 0 {
		return Number{}
	}

	return Number{
		negative: negative != flip,
		blocks:   nb,
	}
}

// One returns the number 1.
func One() Number {
	return Number{blocks: Blocks{0: 1}}
}

// Sign returns -1 for negative numbers and +1 otherwise (zero included).
func (n Number) Sign() int {
	if n.negative {
		return -1
	}

	return 1
}

// IsZero reports whether n is zero.
func (n Number) IsZero() bool {
	return len(n.blocks) == 0
}

// Blocks returns a copy of the magnitude blocks of n.
func (n Number) Blocks() Blocks {
	return n.blocks.Clone()
}

// Neg returns -n.
func (n Number) Neg() Number {
	if n.IsZero() {
		return n
	}

	return Number{
		negative: !n.negative,
		blocks:   n.blocks,
	}
}

// Abs returns |n|.
func (n Number) Abs() Number {
	return Number{blocks: n.blocks}
}

// Equal reports whether n and o have the same value.
func (n Number) Equal(o Number) bool {
	return n.Cmp(o) == 0
}

// Cmp compares the signed values of n and o and returns -1, 0 or +1.
func (n Number) Cmp(o Number) int {
	switch {
	case n.negative && !o.negative:
		return -1
	case !n.negative && o.negative:
		return 1
	case n.negative:
		return -n.CmpAbs(o)
	}

	return n.CmpAbs(o)
}
