package bignumber_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	bignumber "github.com/ITGourmand/bigNumber"
	"github.com/ITGourmand/bigNumber/block"
)

func TestNew(t *testing.T) {
	type TC struct {
		Expression string
		Display    block.Display
		Output     string
		Mark       error
	}

	tcs := []TC{
		{
			Expression: "1.5k*2M",
			Output:     "3B",
			Mark:       oops.New("unexpected"),
		},
		{
			Expression: "-1234567.891",
			Output:     "-1.234567M",
			Mark:       oops.New("unexpected"),
		},
		{
			Expression: "-1234567.891",
			Display:    block.Display{Full: true},
			Output:     "-1.234567891M",
			Mark:       oops.New("unexpected"),
		},
		{
			Expression: "-1234567.891",
			Display:    block.Display{Compact: true},
			Output:     "-1M-234k-567",
			Mark:       oops.New("unexpected"),
		},
		{
			Expression: "",
			Output:     "0",
			Mark:       oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		tc := tc

		t.Run(fmt.Sprintf("%02d/%s", i, tc.Expression), func(t *testing.T) {
			n, err := bignumber.New(tc.Expression, tc.Display)
			require.NoError(t, err, tc.Mark)

			t.Logf("Number: %s", spew.Sdump(n.Value().Blocks()))

			require.Equal(t, tc.Output, n.String(), tc.Mark)
			require.Equal(t, tc.Display, n.Display(), tc.Mark)
		})
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := bignumber.New("1x+2", block.Display{})
	require.Error(t, err)
	require.True(t, bignumber.FormatError.Has(err), err)

	_, err = bignumber.New("1/0", block.Display{})
	require.True(t, bignumber.DivisionByZero.Has(err), err)

	_, err = bignumber.New("2^-1", block.Display{})
	require.True(t, bignumber.InvalidExponent.Has(err), err)

	require.Panics(t, func() {
		bignumber.MustNew("(", block.Display{})
	})
}

func TestArithmetic(t *testing.T) {
	type TC struct {
		Name    string
		Op      func(n bignumber.Number, o bignumber.Operand) (bignumber.Number, error)
		Left    string
		Operand bignumber.Operand
		Output  string
		Mark    error
	}

	add := bignumber.Number.Add
	sub := bignumber.Number.Sub
	mul := bignumber.Number.Mul
	quo := bignumber.Number.Quo
	pow := bignumber.Number.Pow

	tcs := []TC{
		{Name: "add int", Op: add, Left: "1k", Operand: bignumber.Int(500), Output: "1.5k", Mark: oops.New("unexpected")},
		{Name: "add text", Op: add, Left: "1k", Operand: bignumber.Text("1k*2"), Output: "3k", Mark: oops.New("unexpected")},
		{Name: "add float", Op: add, Left: "1", Operand: bignumber.Float(0.1), Output: "1.1", Mark: oops.New("unexpected")},
		{Name: "add number", Op: add, Left: "1M", Operand: bignumber.MustNew("1M", block.Display{}), Output: "2M", Mark: oops.New("unexpected")},
		{Name: "sub", Op: sub, Left: "1k", Operand: bignumber.Int(1500), Output: "-500", Mark: oops.New("unexpected")},
		{Name: "sub self", Op: sub, Left: "7B", Operand: bignumber.Text("7B"), Output: "0", Mark: oops.New("unexpected")},
		{Name: "mul", Op: mul, Left: "1.5k", Operand: bignumber.Int(-2), Output: "-3k", Mark: oops.New("unexpected")},
		{Name: "mul min int", Op: mul, Left: "1", Operand: bignumber.Int(math.MinInt64), Output: "-9.223372036854775808Qt", Mark: oops.New("unexpected")},
		{Name: "quo", Op: quo, Left: "10", Operand: bignumber.Int(4), Output: "2.5", Mark: oops.New("unexpected")},
		{Name: "quo float", Op: quo, Left: "3", Operand: bignumber.Float(1.5), Output: "2", Mark: oops.New("unexpected")},
		{Name: "pow", Op: pow, Left: "2", Operand: bignumber.Int(10), Output: "1.024k", Mark: oops.New("unexpected")},
		{Name: "pow zero", Op: pow, Left: "0", Operand: bignumber.Int(0), Output: "1", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		tc := tc

		t.Run(fmt.Sprintf("%02d/%s", i, tc.Name), func(t *testing.T) {
			n := bignumber.MustNew(tc.Left, block.Display{Full: true})

			r, err := tc.Op(n, tc.Operand)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, r.String(), tc.Mark)
			require.Equal(t, n.Display(), r.Display(), tc.Mark)

			// The receiver is unchanged.
			require.Equal(t, tc.Left, n.String(), tc.Mark)
		})
	}
}

func TestArithmeticErrors(t *testing.T) {
	n := bignumber.MustNew("5", block.Display{})

	_, err := n.Quo(bignumber.Int(0))
	require.True(t, bignumber.DivisionByZero.Has(err), err)

	_, err = n.Quo(bignumber.Text("1k-1000"))
	require.True(t, bignumber.DivisionByZero.Has(err), err)

	_, err = n.Pow(bignumber.Int(-1))
	require.True(t, bignumber.InvalidExponent.Has(err), err)

	_, err = n.Pow(bignumber.Float(0.5))
	require.True(t, bignumber.InvalidExponent.Has(err), err)

	_, err = n.Add(bignumber.Text("1k.5"))
	require.True(t, bignumber.FormatError.Has(err), err)

	_, err = n.Add(bignumber.Float(math.NaN()))
	require.True(t, bignumber.UnsupportedOperand.Has(err), err)

	_, err = n.Add(bignumber.Float(math.Inf(-1)))
	require.True(t, bignumber.UnsupportedOperand.Has(err), err)

	_, err = n.Add(nil)
	require.True(t, bignumber.UnsupportedOperand.Has(err), err)
}

func TestNilNumberOperand(t *testing.T) {
	n := bignumber.MustNew("5", block.Display{})

	var p *bignumber.Number

	ops := map[string]func(o bignumber.Operand) (bignumber.Number, error){
		"add": n.Add,
		"sub": n.Sub,
		"mul": n.Mul,
		"quo": n.Quo,
		"pow": n.Pow,
		"from": func(o bignumber.Operand) (bignumber.Number, error) {
			return bignumber.From(o, block.Display{})
		},
	}

	for name, op := range ops {
		op := op

		t.Run(name, func(t *testing.T) {
			require.NotPanics(t, func() {
				_, err := op(p)
				require.True(t, bignumber.UnsupportedOperand.Has(err), err)
			})
		})
	}

	require.NotPanics(t, func() {
		_, err := n.Cmp(p)
		require.True(t, bignumber.UnsupportedOperand.Has(err), err)

		eq, err := n.Equal(p)
		require.True(t, bignumber.UnsupportedOperand.Has(err), err)
		require.False(t, eq)
	})

	// A non-nil pointer is a usable operand.
	m := bignumber.MustNew("2", block.Display{})

	r, err := n.Mul(&m)
	require.NoError(t, err)
	require.Equal(t, "10", r.String())
}

func TestEqualError(t *testing.T) {
	n := bignumber.MustNew("0", block.Display{})

	eq, err := n.Equal(bignumber.Text("1/0"))
	require.True(t, bignumber.DivisionByZero.Has(err), err)
	require.False(t, eq)
}

func TestCompare(t *testing.T) {
	n := bignumber.MustNew("1.5k", block.Display{})

	eq, err := n.Equal(bignumber.Int(1500))
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = n.Equal(bignumber.MustNew("1500", block.Display{Compact: true}))
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = n.Equal(bignumber.Float(1500.001))
	require.NoError(t, err)
	require.False(t, eq)

	c, err := n.Cmp(bignumber.Text("1M"))
	require.NoError(t, err)
	require.Equal(t, -1, c)

	c, err = n.Cmp(bignumber.Int(-2000))
	require.NoError(t, err)
	require.Equal(t, 1, c)

	_, err = n.Equal(bignumber.Text("("))
	require.True(t, bignumber.FormatError.Has(err), err)
}

func TestWithDisplay(t *testing.T) {
	n := bignumber.MustNew("-1234567.891", block.Display{})
	c := n.WithDisplay(block.Display{Compact: true})

	require.Equal(t, "-1.234567M", n.String())
	require.Equal(t, "-1M-234k-567", c.String())
	require.True(t, n.Value().Equal(c.Value()))

	v := block.MustParse("2.5k")
	require.Equal(t, "2k+500", bignumber.Of(v, block.Display{Compact: true}).String())
}

func TestOperandOf(t *testing.T) {
	n := bignumber.MustNew("3", block.Display{})

	type TC struct {
		Value  interface{}
		Output string
		Mark   error
	}

	tcs := []TC{
		{Value: 7, Output: "10", Mark: oops.New("unexpected")},
		{Value: int8(-3), Output: "0", Mark: oops.New("unexpected")},
		{Value: int16(7), Output: "10", Mark: oops.New("unexpected")},
		{Value: int32(7), Output: "10", Mark: oops.New("unexpected")},
		{Value: int64(997), Output: "1k", Mark: oops.New("unexpected")},
		{Value: uint(7), Output: "10", Mark: oops.New("unexpected")},
		{Value: uint8(7), Output: "10", Mark: oops.New("unexpected")},
		{Value: uint16(7), Output: "10", Mark: oops.New("unexpected")},
		{Value: uint32(7), Output: "10", Mark: oops.New("unexpected")},
		{Value: uint64(math.MaxUint64), Output: "18.446744073709551618Qt", Mark: oops.New("unexpected")},
		{Value: float32(0.5), Output: "3.5", Mark: oops.New("unexpected")},
		{Value: 0.25, Output: "3.25", Mark: oops.New("unexpected")},
		{Value: "1k", Output: "1.003k", Mark: oops.New("unexpected")},
		{Value: n, Output: "6", Mark: oops.New("unexpected")},
		{Value: &n, Output: "6", Mark: oops.New("unexpected")},
		{Value: bignumber.Text("2*2"), Output: "7", Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		tc := tc

		t.Run(fmt.Sprintf("%02d/%T", i, tc.Value), func(t *testing.T) {
			o, err := bignumber.OperandOf(tc.Value)
			require.NoError(t, err, tc.Mark)

			r, err := n.Add(o)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, r.WithDisplay(block.Display{Full: true}).String(), tc.Mark)
		})
	}
}

func TestOperandOfUnsupported(t *testing.T) {
	var nilNumber *bignumber.Number

	for _, v := range []interface{}{nil, true, []byte("1"), struct{}{}, 1i, nilNumber} {
		_, err := bignumber.OperandOf(v)
		require.Error(t, err)
		require.True(t, bignumber.UnsupportedOperand.Has(err), "%T: %v", v, err)
	}
}

func TestFrom(t *testing.T) {
	m := bignumber.MustNew("1.5k", block.Display{Compact: true})

	n, err := bignumber.From(bignumber.Int(5), block.Display{})
	require.NoError(t, err)

	r, err := n.Sub(m)
	require.NoError(t, err)
	require.Equal(t, "-1.495k", r.String())

	r, err = n.Quo(bignumber.Int(2))
	require.NoError(t, err)
	require.Equal(t, "2.5", r.WithDisplay(block.Display{Full: true}).String())

	n, err = bignumber.From(m, block.Display{})
	require.NoError(t, err)
	require.Equal(t, "1.5k", n.String())

	_, err = bignumber.From(bignumber.Text("2/0"), block.Display{})
	require.True(t, bignumber.DivisionByZero.Has(err), err)

	_, err = bignumber.From(nil, block.Display{})
	require.True(t, bignumber.UnsupportedOperand.Has(err), err)
}
