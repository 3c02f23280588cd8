package expr

import (
	"github.com/ITGourmand/bigNumber/block"
)

// Stack holds the pending operators of an evaluation.
type Stack []Operator

func (s *Stack) Push(o Operator) {
	*s = append(*s, o)
}

// Top returns the most recently pushed operator, or Unknown when the stack
// is empty.
func (s *Stack) Top() Operator {
	if len(*s) == 0 {
		return Unknown
	}

	return (*s)[len(*s)-1]
}

func (s *Stack) Pop() Operator {
	top := s.Top()
	if len(*s) > 0 {
		*s = (*s)[:len(*s)-1]
	}

	return top
}

func (s *Stack) Empty() bool {
	return len(*s) == 0
}

// operands holds the evaluated values of an evaluation.
type operands []block.Number

func (s *operands) push(n block.Number) {
	*s = append(*s, n)
}

func (s *operands) pop() (n block.Number, err error) {
	if len(*s) == 0 {
		return n, block.FormatError.New("missing operand")
	}

	n = (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]

	return n, nil
}
