// Package bignumber evaluates and renders exact numbers written in short
// notation, such as 1.5k, 12Qa or 3!M.
//
// A Number is the value of an expression bound to a block.Display:
//
//  n, err := bignumber.New("1.5k*2M", block.Display{})
//  // n.String() == "3B"
//
//  m, err := n.Quo(bignumber.Text("1k"))
//  // m.String() == "3M"
//
// Operands are Int, Float, Text (an expression) or another Number;
// OperandOf converts plain Go values. Arithmetic keeps the receiver's
// display and never changes the receiver.
//
// Errors
//
// Every error belongs to one of the classes below. Test with Has:
//
//  | Class              | Cause                                    |
//  |--------------------|------------------------------------------|
//  | FormatError        | malformed expression or literal          |
//  | DivisionByZero     | division by a zero value                 |
//  | InvalidExponent    | negative or fractional power             |
//  | UnsupportedOperand | value that cannot be used as an operand  |
//  |--------------------|------------------------------------------|
package bignumber
