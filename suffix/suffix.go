package suffix

import (
	"math"

	"github.com/zeebo/errs"
)

// Error is the class of suffix decoding errors.
var Error = errs.Class("suffix")

// Negative marks the suffix of a fractional (negative) magnitude index.
const Negative = '!'

// names holds the named suffixes. The position in the table is the
// magnitude index.
var names = [...]string{"", "k", "M", "B", "T", "Qa", "Qt", "Sx", "Sp", "Oc", "No"}

// offset maps the first generated code ("aa" = 27 in bijective base 26)
// onto the first index past the named table.
const offset uint64 = 27 - uint64(len(names))

// Named returns the named suffix for index if it has one.
func Named(index int) (s string, ok bool) {
	if index < 0 || index >= len(names) {
		return "", false
	}

	return names[index], true
}

// Encode returns the suffix for the magnitude index.
func Encode(index int) string {
	if index < 0 {
		// -math.MinInt overflows int.
		return string(Negative) + encode(uint64(-(index+1))+1)
	}

	return encode(uint64(index))
}

func encode(n uint64) string {
	if n < uint64(len(names)) {
		return names[n]
	}

	n = n - uint64(len(names)) + 26

	var buf [16]byte
	i := len(buf)

	for {
		i--
		buf[i] = byte('a' + n%26)
		n /= 26
		if n == 0 {
			break
		}
		n--
	}

	return string(buf[i:])
}

// Decode returns the magnitude index of the suffix.
func Decode(s string) (index int, err error) {
	if s == "" {
		return 0, nil
	}

	if s[0] == Negative {
		n, err := decode(s[1:])
		if err != nil {
			return 0, err
		}
		switch {
		case n == 0:
			return 0, nil
		case n > -math.MinInt:
			return 0, Error.New("suffix %q out of range", s)
		}

		return -int(n-1) - 1, nil
	}

	n, err := decode(s)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt {
		return 0, Error.New("suffix %q out of range", s)
	}

	return int(n), nil
}

// decode returns the unsigned magnitude index of s.
func decode(s string) (n uint64, err error) {
	for i, name := range names {
		if s == name {
			return uint64(i), nil
		}
	}

	if len(s) < 2 {
		return 0, Error.New("unknown suffix %q", s)
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return 0, Error.New("invalid character %q in suffix %q", c, s)
		}

		if n > (math.MaxUint64-26)/26 {
			return 0, Error.New("suffix %q out of range", s)
		}
		n = n*26 + uint64(c-'a'+1)
	}

	return n - offset, nil
}
