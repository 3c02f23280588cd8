// Package block provides exact decimal numbers of unbounded magnitude.
//
// A number is a sign and a sparse set of base 1000 digits, called blocks,
// keyed by their exponent:
//
//  number = sign * Σ blocks[e] * 1000^e
//
// Exponent 0 holds the units group, exponent 1 the thousands group and
// exponent -1 the first three digits after the decimal point. For example:
//
//  | Number      | Blocks                 |
//  |-------------|------------------------|
//  | 0           | {}                     |
//  | 1.5k        | {1: 1, 0: 500}         |
//  | 1000000.25  | {2: 1, -1: 250}        |
//  | -0.000007   | {-2: 7} (negative)     |
//  |-------------|------------------------|
//
// Canonical Form
//
// Every number handed out by this package is canonical: each stored block
// lies in [1, 999], zero blocks are absent and zero itself is the empty
// mapping with a positive sign. Normalize restores this form after raw
// block arithmetic by carrying values >= 1000 and borrowing for negative
// values.
//
// Literals
//
// Parse reads the short notation: an optional sign, digits with an optional
// decimal point and an optional magnitude suffix (see package suffix).
// The suffix scales the whole literal, so 1.5k = 1500 and 250!k = 0.25.
//
// Rendering
//
// Format renders a number either as one term with a suffix (1.5k) or, in
// compact mode, as a sum of block terms (1k+500). The Display MinExp
// truncation applies only once the integer part is reached; fractions with
// no integer part are always rendered in full.
//
// Arithmetic
//
// Add, Sub, Mul, Quo and Pow are exact, except that Quo stops generating
// fractional blocks at QuoFloor for quotients that do not terminate.
package block
