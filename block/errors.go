package block

import "github.com/zeebo/errs"

// Error classes. Use Has to tell them apart:
//
//  if block.DivisionByZero.Has(err) { ... }
var (
	FormatError     = errs.Class("format")
	DivisionByZero  = errs.Class("division by zero")
	InvalidExponent = errs.Class("invalid exponent")
)

// MaxExponent bounds the block exponents a literal may address and a power
// may produce. A number at this magnitude has more than 8*10^14 digits.
const MaxExponent = 1 << 48
