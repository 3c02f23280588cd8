package block

import "sort"

// Base is the radix of a block.
const Base = 1000

// Normalize returns b in canonical form: every value in [1, 999] and no zero
// entries. The input is not modified.
//
// Out of range values are carried (or borrowed) upward in a single sweep
// from the lowest exponent. If the total is negative the canonical blocks
// of -b are returned with negative set.
func Normalize(b Blocks) (_ Blocks, negative bool) {
	out := make(Blocks, len(b))
	if len(b) == 0 {
		return out, false
	}

	exps := make([]int, 0, len(b))
	for e := range b {
		exps = append(exps, e)
	}
	sort.Ints(exps)

	var carry int64
	e, i := exps[0], 0

	for i < len(exps) || carry != 0 {
		if i >= len(exps) && carry < 0 {
			neg := make(Blocks, len(b))
			for e, v := range b {
				neg[e] = -v
			}

			out, _ = Normalize(neg)

			return out, true
		}

		if carry == 0 {
			e = exps[i]
		}

		v := carry
		if i < len(exps) && exps[i] == e {
			v += b[e]
			i++
		}

		carry = floorDiv(v, Base)
		v -= carry * Base
		if v != 0 {
			out[e] = v
		}

		e++
	}

	return out, false
}

func floorDiv(v, d int64) int64 {
	q := v / d
	if v%d < 0 {
		q--
	}

	return q
}
