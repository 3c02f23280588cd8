// Package suffix provides the magnitude suffixes of the short number notation.
//
// A magnitude index is a power of 1000. The number 12Qa is 12 * 1000^5 and
// the suffix "Qa" is the label for index 5. The first eleven indexes have
// names:
//
//  | Index | Suffix | Value  |
//  |-------|--------|--------|
//  |     0 |        | 10^0   |
//  |     1 | k      | 10^3   |
//  |     2 | M      | 10^6   |
//  |     3 | B      | 10^9   |
//  |     4 | T      | 10^12  |
//  |     5 | Qa     | 10^15  |
//  |     6 | Qt     | 10^18  |
//  |     7 | Sx     | 10^21  |
//  |     8 | Sp     | 10^24  |
//  |     9 | Oc     | 10^27  |
//  |    10 | No     | 10^30  |
//  |-------|--------|--------|
//
// Generated Codes
//
// Indexes past the named table use lowercase bijective base 26 codes (the
// scheme spreadsheets use for column names) starting at two letters:
//
//  | Index | Suffix |
//  |-------|--------|
//  |    11 | aa     |
//  |    12 | ab     |
//  |    36 | az     |
//  |    37 | ba     |
//  |   686 | zz     |
//  |   687 | aaa    |
//  |-------|--------|
//
// Single letters are never generated. A single letter that is not a named
// suffix ("x") is rejected rather than read as a short code.
//
// Fractional Indexes
//
// Negative indexes address blocks after the decimal point. Their suffix is
// the suffix of the absolute index prefixed with '!':
//
//  500!k = 500 * 1000^-1 = 0.5
//  1!aa  = 1000^-11      = 10^-33
//
package suffix
