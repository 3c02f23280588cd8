// Package expr evaluates infix arithmetic over short notation numbers.
//
// Expressions combine literals (see package block) with the operators
// below and parentheses:
//
//  | Operator | Meaning          | Precedence | Associativity |
//  |----------|------------------|------------|---------------|
//  | + -      | add, subtract    | 1          | left          |
//  | * /      | multiply, divide | 2          | left          |
//  | + -      | sign             | 2          | prefix        |
//  | ^ **     | integer power    | 3          | right         |
//  |----------|------------------|------------|---------------|
//
// Whitespace is ignored and a comma may stand for the decimal point, so
// "1 000,5" and "1000.5" are the same literal. Scientific notation scales
// the mantissa by a power of ten: 1.5e3 = 1.5*10^3 and 2ke2 = 2k*10^2.
//
// Evaluation
//
// Preprocess normalizes the text and rewrites signs into binary operations
// where it can (-(x) becomes (0-1*(x)), 2*-3 becomes 2*(0-3)). Scan splits
// the result into tokens and Evaluate applies the shunting-yard algorithm,
// parsing each literal with block.Parse and applying each operator with
// the matching block.Number method. The right operand of ^ must be a
// non-negative integer.
//
// All failures are block error classes: malformed text is a
// block.FormatError, x/0 a block.DivisionByZero and a negative or
// fractional power a block.InvalidExponent.
package expr
