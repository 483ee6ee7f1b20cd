package postfix

import (
	. "gopkg.in/check.v1"
)

type FormatSuite struct{}

var _ = Suite(&FormatSuite{})

type FormatResult struct {
	input, simple, detailed string
}

func (s *FormatSuite) TestFormat(c *C) {
	tests := []FormatResult{
		{"", "", ""},
		{"3 + 4 * 2", "3 4 2 * +", "3[0] 4[0] 2[0] *[1] +[1]"},
		{"-3 + 4", "3 ~ 4 +", "3[0] ~[1] 4[0] +[1]"},
		{"sin(x) ^ 2.5", "x sin 2.5 ^", "x[2] sin[3] 2.5[0] ^[1]"},
		{"max(a, b) / min(a, b)", "a b max a b min /", "a[2] b[2] max[3] a[2] b[2] min[3] /[1]"},
	}
	for _, t := range tests {
		p, err := Convert(t.input)
		c.Assert(err, IsNil)
		c.Check(p.String(), Equals, t.simple)
		c.Check(p.Detailed(), Equals, t.detailed)
	}
}

func (s *FormatSuite) TestTokenNames(c *C) {
	c.Check(TypeFunction.String(), Equals, "function")
	c.Check(TypeLeftParen.String(), Equals, "left parenthesis")
	c.Check(TokenType(12).String(), Equals, "TokenType(12)")
	c.Check(Symbol(42).String(), Equals, "Symbol(42)")
	c.Check(Left.String(), Equals, "left")
	c.Check(Right.String(), Equals, "right")
	c.Check(Postfix{LeftParen{}, RightParen{}}.Detailed(), Equals, "([4] )[5]")
}

func (s *FormatSuite) TestArity(c *C) {
	for _, sym := range []Symbol{Add, Subtract, Multiply, Divide, Power} {
		c.Check(newOperator(sym).Arity(), Equals, 2, Commentf("%s", sym))
	}
	c.Check(newOperator(UnaryMinus).Arity(), Equals, 1)
	c.Check(Function{Name: "sin"}.Arity(), Equals, 1)
	c.Check(Function{Name: "cos"}.Arity(), Equals, 1)
	c.Check(Function{Name: "max"}.Arity(), Equals, 2)
	c.Check(Function{Name: "min"}.Arity(), Equals, 2)
	c.Check(Function{Name: "tan"}.Arity(), Equals, 0)
}

func (s *FormatSuite) TestErrorKindNames(c *C) {
	c.Check(MismatchedParentheses.Error(), Equals, "mismatched parentheses")
	c.Check(ErrorKind(0).String(), Equals, "ErrorKind(0)")
	c.Check((&EvalError{Kind: UnexpectedToken, Token: LeftParen{}}).Error(), Equals, `unexpected token "("`)
	c.Check((&ParseError{Kind: UnknownSymbol, Offset: 3}).Error(), Equals, "unknown symbol at 3")
}
