package expr

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ITGourmand/bigNumber/block"
)

var (
	// 1.5e3 and 2ke3M: mantissa, mantissa suffix, exponent digits and
	// exponent suffix.
	scientific = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?|\.[0-9]+)([!a-zA-Z]*)e([0-9]+)([!a-zA-Z]*)`)

	shape     = regexp.MustCompile(`^[0-9.!a-zA-Z+\-*/^()]*$`)
	malformed = regexp.MustCompile(`[!a-zA-Z]\.|\.[^0-9]|\.$|\.[0-9]+\.`)

	// *-5k, /-5k and ^-5k.
	negated = regexp.MustCompile(`([*/^])-([0-9]+(?:\.[0-9]+)?|\.[0-9]+)([!a-zA-Z]*)`)

	signs = strings.NewReplacer("+-", "-", "-+", "-", "--", "+")
)

// Preprocess rewrites an expression into the form Scan and the evaluator
// expect: no whitespace, '.' decimal points, '^' for powers, explicit
// scientific notation and no sign standing where an operand is expected.
func Preprocess(src string) (s string, err error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, src)

	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, "**", "^")
	s = scientific.ReplaceAllString(s, "(${1}${2}*10^${3}${4})")

	if !shape.MatchString(s) {
		return "", block.FormatError.New("invalid expression %q", src)
	}
	if m := malformed.FindString(s); m != "" {
		return "", block.FormatError.New("invalid expression %q near %q", src, m)
	}

	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		s = "0" + s
	}

	s = negated.ReplaceAllString(s, "${1}(-${2}${3})")
	s = negateGroups(s)
	s = strings.NewReplacer("(+", "(0+", "(-", "(0-").Replace(s)

	for {
		next := signs.Replace(s)
		if next == s {
			break
		}
		s = next
	}

	return s, nil
}

// negateGroups rewrites every -( ... ) whose sign stands where an operand
// is expected as (0-1*( ... )).
func negateGroups(s string) string {
	for i := 0; i+1 < len(s); i++ {
		if s[i] != '-' || s[i+1] != '(' {
			continue
		}
		if i > 0 && !strings.ContainsRune("+-*/^(", rune(s[i-1])) {
			continue
		}

		end := closing(s, i+1)
		if end < 0 {
			// Left for the evaluator to report.
			return s
		}

		s = s[:i] + "(0-1*(" + s[i+2:end] + "))" + s[end+1:]
	}

	return s
}

// closing returns the index of the parenthesis closing the one at open, or
// -1.
func closing(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
