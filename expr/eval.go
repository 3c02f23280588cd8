package expr

import (
	"github.com/ITGourmand/bigNumber/block"
)

// Eval evaluates an infix expression over number literals. An empty
// expression evaluates to zero.
func Eval(src string) (n block.Number, err error) {
	s, err := Preprocess(src)
	if err != nil {
		return n, err
	}

	toks, err := Scan(s)
	if err != nil {
		return n, err
	}

	return Evaluate(toks)
}

// Evaluate runs the shunting-yard algorithm over the tokens.
func Evaluate(toks []Token) (n block.Number, err error) {
	if len(toks) == 0 {
		return n, nil
	}

	e := &evaluation{}
	operand := true

	for _, tok := range toks {
		switch tok.Kind {
		case Literal:
			if !operand {
				return n, block.FormatError.New("unexpected literal %q at %d", tok.Text, tok.Pos)
			}

			v, err := block.Parse(tok.Text)
			if err != nil {
				return n, err
			}

			e.values.push(v)
			operand = false
		case Open:
			if !operand {
				return n, block.FormatError.New("unexpected ( at %d", tok.Pos)
			}

			e.ops.Push(Group)
		case Close:
			if operand {
				return n, block.FormatError.New("unexpected ) at %d", tok.Pos)
			}

			for e.ops.Top() != Group {
				if e.ops.Empty() {
					return n, block.FormatError.New("unbalanced ) at %d", tok.Pos)
				}

				err = e.reduce()
				if err != nil {
					return n, err
				}
			}
			e.ops.Pop()
		case Op:
			if operand {
				switch tok.Op {
				case Add:
					e.ops.Push(Pos)
				case Sub:
					e.ops.Push(Neg)
				default:
					return n, block.FormatError.New("unexpected %q at %d", tok.Text, tok.Pos)
				}

				continue
			}

			for top := e.ops.Top(); top != Group && top != Unknown && top.Binds(tok.Op); top = e.ops.Top() {
				err = e.reduce()
				if err != nil {
					return n, err
				}
			}

			e.ops.Push(tok.Op)
			operand = true
		}
	}

	if operand {
		return n, block.FormatError.New("missing operand at end of expression")
	}

	for !e.ops.Empty() {
		if e.ops.Top() == Group {
			return n, block.FormatError.New("unbalanced (")
		}

		err = e.reduce()
		if err != nil {
			return n, err
		}
	}

	n, err = e.values.pop()
	if err != nil {
		return n, err
	}
	if len(e.values) != 0 {
		return n, block.FormatError.New("missing operator")
	}

	return n, nil
}

type evaluation struct {
	ops    Stack
	values operands
}

// reduce applies the operator on top of the stack to its operands.
func (e *evaluation) reduce() (err error) {
	o := e.ops.Pop()

	b, err := e.values.pop()
	if err != nil {
		return err
	}

	if o.Unary {
		e.values.push(o.sign(b))

		return nil
	}

	a, err := e.values.pop()
	if err != nil {
		return err
	}

	v, err := o.apply(a, b)
	if err != nil {
		return err
	}

	e.values.push(v)

	return nil
}
