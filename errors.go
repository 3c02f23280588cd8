package bignumber

import (
	"github.com/zeebo/errs"

	"github.com/ITGourmand/bigNumber/block"
)

// UnsupportedOperand is the class of errors for values that cannot be used
// as an operand.
var UnsupportedOperand = errs.Class("unsupported operand")

// Error classes of the lower layers, so callers can test any error returned
// by this package:
//
//  if bignumber.DivisionByZero.Has(err) { ... }
var (
	FormatError     = &block.FormatError
	DivisionByZero  = &block.DivisionByZero
	InvalidExponent = &block.InvalidExponent
)
