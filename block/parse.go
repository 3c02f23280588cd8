package block

import (
	"strconv"

	"github.com/ITGourmand/bigNumber/suffix"
)

// Parse reads a literal of the form
//
//  [+-]digits[.digits][suffix]
//
// where at least one digit follows the decimal point when there is one and
// the suffix is a magnitude suffix (see package suffix).
func Parse(s string) (n Number, err error) {
	i := 0

	var negative bool
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	whole := s[start:i]

	var frac string
	if i < len(s) && s[i] == '.' {
		i++

		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		frac = s[start:i]

		if frac == "" {
			return Number{}, FormatError.New("invalid literal %q: no digits after decimal point", s)
		}
	} else if whole == "" {
		return Number{}, FormatError.New("invalid literal %q", s)
	}

	exp, err := suffix.Decode(s[i:])
	if err != nil {
		return Number{}, FormatError.Wrap(err)
	}

	if exp > MaxExponent || exp < -MaxExponent ||
		exp+(len(whole)+2)/3 > MaxExponent || exp-(len(frac)+2)/3 < -MaxExponent {
		return Number{}, FormatError.New("invalid literal %q: magnitude out of range", s)
	}

	b := make(Blocks, (len(whole)+len(frac))/3+2)

	// Group the integer digits by three from the right: the lowest group
	// lands on the literal's exponent.
	for end, e := len(whole), exp; end > 0; end, e = end-3, e+1 {
		begin := end - 3
		if begin < 0 {
			begin = 0
		}

		b[e] = atoi(whole[begin:end])
	}

	for j, e := 0, exp-1; j < len(frac); j, e = j+3, e-1 {
		group := frac[j:]
		if len(group) > 3 {
			group = group[:3]
		}
		for len(group) < 3 {
			group += "0"
		}

		b[e] = atoi(group)
	}

	return New(negative, b), nil
}

// MustParse is like Parse but panics if the literal is malformed.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// atoi converts at most three ASCII digits.
func atoi(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)

	return v
}
