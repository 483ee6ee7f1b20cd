package postfix

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Postfix is an expression in Reverse Polish order, as returned by
// Convert. It only holds Number, Variable, Operator and Function
// tokens and is never modified once converted, so it may be
// evaluated concurrently.
type Postfix []Token

type valueStack struct {
	s []float64
}

func (v *valueStack) push(f float64) {
	v.s = append(v.s, f)
}

// popN removes the n topmost values and returns them, the deepest one
// first.
func (v *valueStack) popN(n int) []float64 {
	args := v.s[len(v.s)-n:]
	v.s = v.s[:len(v.s)-n]
	return args
}

func (v *valueStack) size() int {
	return len(v.s)
}

// Eval evaluates the expression, looking variables up in c. A nil
// Context has no variables. On failure the result is NaN and the
// error an *EvalError.
func (p Postfix) Eval(c Context) (float64, error) {
	stack := valueStack{s: make([]float64, 0, len(p))}

	for _, t := range p {
		switch t := t.(type) {
		case Number:
			value, err := strconv.ParseFloat(string(t), 64)
			// out of range literals follow IEEE semantics
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return math.NaN(), &EvalError{Kind: InvalidNumber, Token: t}
			}
			stack.push(value)
		case Variable:
			var value float64
			var ok bool
			if c != nil {
				value, ok = c.Lookup(string(t))
			}
			if !ok {
				return math.NaN(), &EvalError{Kind: UndefinedVariable, Token: t, Name: string(t)}
			}
			stack.push(value)
		case Operator:
			op, ok := operators[t.Symbol]
			if !ok {
				return math.NaN(), &EvalError{Kind: UnexpectedToken, Token: t}
			}
			if err := apply(&stack, t, op.card, op.evaluer); err != nil {
				return math.NaN(), err
			}
		case Function:
			fn, ok := functions[t.Name]
			if !ok {
				return math.NaN(), &EvalError{Kind: UnexpectedToken, Token: t}
			}
			if err := apply(&stack, t, fn.card, fn.evaluer); err != nil {
				return math.NaN(), err
			}
		default:
			return math.NaN(), &EvalError{Kind: UnexpectedToken, Token: t}
		}
	}

	switch stack.size() {
	case 1:
		return stack.s[0], nil
	case 0:
		return math.NaN(), &EvalError{Kind: TooFewValues}
	default:
		return math.NaN(), &EvalError{Kind: TooManyValues, Have: stack.size()}
	}
}

func apply(stack *valueStack, t Token, card int, e evaluer) error {
	if stack.size() < card {
		return &EvalError{
			Kind:  InsufficientOperands,
			Token: t,
			Need:  card,
			Have:  stack.size(),
		}
	}
	stack.push(e(stack.popN(card)))
	return nil
}

// Evaluate converts infix and evaluates it with bindings, which may
// be nil. Conversion errors are returned unchanged.
func Evaluate(infix string, bindings map[string]float64) (float64, error) {
	p, err := Convert(infix)
	if err != nil {
		return math.NaN(), err
	}
	return p.Eval(MapContext(bindings))
}
