package block

import (
	"strconv"
	"strings"

	"github.com/ITGourmand/bigNumber/suffix"
)

// Display selects how a number is rendered as text.
type Display struct {
	// Compact renders a signed sum of per block terms (1k+500) instead of a
	// single mantissa with a suffix (1.5k).
	Compact bool

	// MinExp is the lowest exponent rendered once the walk from the most
	// significant block has reached the integer part. It is ignored when
	// Full is set.
	MinExp int

	// Full renders every block.
	Full bool
}

// String renders n with every block, as a single term.
func (n Number) String() string {
	return n.Format(Display{Full: true})
}

// Format renders n as text.
func (n Number) Format(d Display) string {
	if n.IsZero() {
		return "0"
	}

	if d.Compact {
		return n.compact(d)
	}

	return n.noncompact(d)
}

func (n Number) noncompact(d Display) string {
	exps := n.blocks.Exponents()
	top := exps[0]

	// The walk below the top block reaches the integer part right away
	// when top-1 >= 0, and never otherwise.
	cut := exps[len(exps)-1]
	if !d.Full && top-1 >= 0 && d.MinExp > cut {
		cut = d.MinExp
	}

	var frac strings.Builder
	prev := top
	for _, e := range exps[1:] {
		if e < cut {
			break
		}

		for gap := prev - e - 1; gap > 0; gap-- {
			frac.WriteString("000")
		}

		v := strconv.FormatInt(n.blocks[e], 10)
		frac.WriteString(strings.Repeat("0", 3-len(v)))
		frac.WriteString(v)
		prev = e
	}

	var sb strings.Builder
	if n.negative {
		sb.WriteByte('-')
	}

	sb.WriteString(strconv.FormatInt(n.blocks[top], 10))

	if f := strings.TrimRight(frac.String(), "0"); f != "" {
		sb.WriteByte('.')
		sb.WriteString(f)
	}

	sb.WriteString(suffix.Encode(top))

	return sb.String()
}

func (n Number) compact(d Display) string {
	var sb strings.Builder

	var armed bool
	for i, e := range n.blocks.Exponents() {
		if e >= 0 {
			armed = true
		}
		if armed && !d.Full && e < d.MinExp {
			break
		}

		switch {
		case n.negative:
			sb.WriteByte('-')
		case i > 0:
			sb.WriteByte('+')
		}

		sb.WriteString(strconv.FormatInt(n.blocks[e], 10))
		sb.WriteString(suffix.Encode(e))
	}

	// Every term sat below MinExp.
	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
