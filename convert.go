package postfix

import (
	"io"
)

// stacked is an operator stack entry, remembering where it was read
// to report unbalanced parentheses.
type stacked struct {
	tok Token
	pos int
}

type opStack struct {
	s []stacked
}

func (o *opStack) unsafePop() stacked {
	op := o.s[len(o.s)-1]
	o.s = o.s[0 : len(o.s)-1]
	return op
}

func (o *opStack) push(t Token, pos int) {
	o.s = append(o.s, stacked{tok: t, pos: pos})
}

func (o *opStack) size() int {
	return len(o.s)
}

func (o *opStack) unsafeTop() Token {
	return o.s[len(o.s)-1].tok
}

func isLeftParen(t Token) bool {
	_, ok := t.(LeftParen)
	return ok
}

// popUntilLeftParen moves operators from the stack to output until a
// LeftParen is on top, and reports whether one was found.
func popUntilLeftParen(output Postfix, stack *opStack) (Postfix, bool) {
	for stack.size() > 0 && !isLeftParen(stack.unsafeTop()) {
		output = append(output, stack.unsafePop().tok)
	}
	return output, stack.size() > 0
}

// pushOperator pops every operator that binds at least as tight as
// op, then pushes op.
func pushOperator(output Postfix, stack *opStack, op Operator, pos int) Postfix {
	for stack.size() > 0 {
		top, ok := stack.unsafeTop().(Operator)
		if !ok {
			break
		}
		if top.Associativity == Left && top.Precedence <= op.Precedence ||
			top.Associativity == Right && top.Precedence < op.Precedence {
			output = append(output, stack.unsafePop().tok)
			continue
		}
		break
	}
	stack.push(op, pos)
	return output
}

// Convert turns an infix expression into its postfix form. The
// returned error is a *ParseError describing the first fault found.
func Convert(infix string) (Postfix, error) {
	l := newLexer(infix)

	output := Postfix{}
	stack := opStack{}
	// a minus sign is unary when an operand is expected
	expectOperand := true

	for {
		t, err := l.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t.typ {
		case tokValue:
			output = append(output, Number(t.value))
		case tokVariable:
			output = append(output, Variable(t.value))
		case tokFunction:
			stack.push(Function{Name: t.value}, t.pos)
		case tokOperator:
			s := operatorSymbols[t.value[0]]
			if s == Subtract && expectOperand {
				s = UnaryMinus
			}
			output = pushOperator(output, &stack, newOperator(s), t.pos)
		case tokOParen:
			stack.push(LeftParen{}, t.pos)
		case tokCParen:
			var found bool
			if output, found = popUntilLeftParen(output, &stack); !found {
				return nil, &ParseError{Kind: MismatchedParentheses, Offset: t.pos, Text: t.value}
			}
			stack.unsafePop()
			// pop the next if this is a function
			if stack.size() > 0 {
				if _, ok := stack.unsafeTop().(Function); ok {
					output = append(output, stack.unsafePop().tok)
				}
			}
		case tokComma:
			var found bool
			if output, found = popUntilLeftParen(output, &stack); !found {
				return nil, &ParseError{Kind: MismatchedParentheses, Offset: t.pos, Text: t.value}
			}
		}

		expectOperand = t.typ != tokValue && t.typ != tokVariable && t.typ != tokCParen
	}

	for stack.size() > 0 {
		top := stack.unsafePop()
		switch top.tok.(type) {
		case LeftParen, RightParen:
			return nil, &ParseError{Kind: MismatchedParentheses, Offset: top.pos, Text: top.tok.String()}
		}
		output = append(output, top.tok)
	}

	return output, nil
}
