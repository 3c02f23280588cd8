package bignumber

import (
	"math"
	"strconv"

	"github.com/ITGourmand/bigNumber/block"
	"github.com/ITGourmand/bigNumber/expr"
)

// Operand is a value that can be combined with a Number: an Int, a Float,
// a Text expression or another Number.
type Operand interface {
	value() (block.Number, error)
}

// Int is an integer operand.
type Int int64

func (i Int) value() (block.Number, error) {
	return block.Parse(strconv.FormatInt(int64(i), 10))
}

// Float is a floating point operand. It is converted through its shortest
// decimal representation, so Float(0.1) is exactly 0.1.
type Float float64

func (f Float) value() (block.Number, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return block.Number{}, UnsupportedOperand.New("%v", v)
	}

	return block.Parse(strconv.FormatFloat(v, 'f', -1, 64))
}

// Text is an expression operand; it is evaluated when used.
type Text string

func (t Text) value() (block.Number, error) {
	return expr.Eval(string(t))
}

func (n Number) value() (block.Number, error) {
	return n.v, nil
}

// OperandOf converts v to an Operand. It accepts the Go integer and float
// types, strings, Numbers and Operands.
func OperandOf(v interface{}) (o Operand, err error) {
	switch v := v.(type) {
	case *Number:
		if v == nil {
			return nil, UnsupportedOperand.New("nil *Number")
		}

		return *v, nil
	case Operand:
		return v, nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint:
		return Text(strconv.FormatUint(uint64(v), 10)), nil
	case uint64:
		return Text(strconv.FormatUint(v, 10)), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case string:
		return Text(v), nil
	}

	return nil, UnsupportedOperand.New("%T", v)
}

// From returns the value of o as a Number with display d. It puts a plain
// operand on the left of an operation:
//
//  n, err := bignumber.From(bignumber.Int(5), d)
//  n, err = n.Sub(m) // 5 - m
func From(o Operand, d block.Display) (n Number, err error) {
	v, err := valueOf(o)
	if err != nil {
		return n, err
	}

	return Number{v: v, d: d}, nil
}

// valueOf evaluates o, rejecting nil operands.
func valueOf(o Operand) (block.Number, error) {
	switch o := o.(type) {
	case nil:
		return block.Number{}, UnsupportedOperand.New("nil operand")
	case *Number:
		if o == nil {
			return block.Number{}, UnsupportedOperand.New("nil *Number")
		}
	}

	return o.value()
}
