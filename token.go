package postfix

import (
	"fmt"
	"math"
)

// A Token is one element of a Postfix sequence. It is implemented by
// Number, Operator, Variable, Function, LeftParen and RightParen.
type Token interface {
	fmt.Stringer
	// Type returns the token category, used by Postfix.Detailed.
	Type() TokenType
}

// TokenType is the category of a Token.
type TokenType int

const (
	TypeNumber TokenType = iota
	TypeOperator
	TypeVariable
	TypeFunction
	TypeLeftParen
	TypeRightParen
)

var tokenTypeNames = []string{
	TypeNumber:     "number",
	TypeOperator:   "operator",
	TypeVariable:   "variable",
	TypeFunction:   "function",
	TypeLeftParen:  "left parenthesis",
	TypeRightParen: "right parenthesis",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
	return tokenTypeNames[t]
}

// Number is a numeric literal, kept with its original spelling until
// evaluation.
type Number string

func (n Number) String() string { return string(n) }
func (Number) Type() TokenType { return TypeNumber }

// Variable is a single letter variable name.
type Variable string

func (v Variable) String() string { return string(v) }
func (Variable) Type() TokenType { return TypeVariable }

// Symbol identifies an operator.
type Symbol int

const (
	Add Symbol = iota
	Subtract
	Multiply
	Divide
	Power
	// UnaryMinus is a leading minus sign. It is never confused with
	// Subtract.
	UnaryMinus
)

// Associativity tells which of two adjacent operators of the same
// precedence is applied first.
type Associativity int

const (
	Left Associativity = iota
	Right
)

func (a Associativity) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// Operator is an arithmetic operator. Lower Precedence binds
// tighter.
type Operator struct {
	Symbol        Symbol
	Precedence    int
	Associativity Associativity
}

func (o Operator) String() string { return o.Symbol.String() }
func (Operator) Type() TokenType { return TypeOperator }

// Arity returns the number of operands the operator consumes.
func (o Operator) Arity() int {
	return operators[o.Symbol].card
}

// Function is a call to one of the registered functions.
type Function struct {
	Name string
}

func (f Function) String() string { return f.Name }
func (Function) Type() TokenType { return TypeFunction }

// Arity returns the number of arguments of the function, or 0 if it
// is not registered.
func (f Function) Arity() int {
	return functions[f.Name].card
}

// LeftParen and RightParen only ever appear on the operator stack of
// the converter. They are never part of a converted Postfix.
type (
	LeftParen  struct{}
	RightParen struct{}
)

func (LeftParen) String() string { return "(" }
func (LeftParen) Type() TokenType { return TypeLeftParen }
func (RightParen) String() string { return ")" }
func (RightParen) Type() TokenType { return TypeRightParen }

type unaryEvaluer func(float64) float64

type binaryEvaluer func(float64, float64) float64

// evaluer applies an operator or function to exactly card values,
// given in reading order.
type evaluer func(args []float64) float64

type operator struct {
	symbol        string
	precedence    int
	associativity Associativity
	card          int
	evaluer       evaluer
}

type function struct {
	card    int
	evaluer evaluer
}

// operators and functions are filled once by init and only read
// afterwards.
var operators = make(map[Symbol]operator)
var functions = make(map[string]function)

// operatorSymbols maps an operator character to its binary Symbol.
var operatorSymbols = make(map[byte]Symbol)

func fromBinary(e binaryEvaluer) evaluer {
	return func(args []float64) float64 { return e(args[0], args[1]) }
}

func fromUnary(e unaryEvaluer) evaluer {
	return func(args []float64) float64 { return e(args[0]) }
}

func registerOperator(s Symbol,
	symbol string,
	precedence int,
	associativity Associativity,
	evaluer binaryEvaluer) {
	operators[s] = operator{
		symbol:        symbol,
		precedence:    precedence,
		associativity: associativity,
		card:          2,
		evaluer:       fromBinary(evaluer),
	}
	operatorSymbols[symbol[0]] = s
}

func registerUnaryOperator(s Symbol,
	symbol string,
	precedence int,
	associativity Associativity,
	evaluer unaryEvaluer) {
	operators[s] = operator{
		symbol:        symbol,
		precedence:    precedence,
		associativity: associativity,
		card:          1,
		evaluer:       fromUnary(evaluer),
	}
}

func registerFunction(name string, card int, e evaluer) {
	functions[name] = function{card: card, evaluer: e}
}

func init() {
	registerOperator(Add, "+", 4, Left, func(a, b float64) float64 { return a + b })
	registerOperator(Subtract, "-", 4, Left, func(a, b float64) float64 { return a - b })
	registerOperator(Multiply, "*", 3, Left, func(a, b float64) float64 { return a * b })
	registerOperator(Divide, "/", 3, Left, func(a, b float64) float64 { return a / b })
	registerOperator(Power, "^", 2, Right, math.Pow)
	registerUnaryOperator(UnaryMinus, "~", 1, Right, func(a float64) float64 { return -a })

	registerFunction("sin", 1, fromUnary(math.Sin))
	registerFunction("cos", 1, fromUnary(math.Cos))
	registerFunction("max", 2, fromBinary(math.Max))
	registerFunction("min", 2, fromBinary(math.Min))
}

// newOperator builds the Operator token for s from the registry.
func newOperator(s Symbol) Operator {
	op := operators[s]
	return Operator{
		Symbol:        s,
		Precedence:    op.precedence,
		Associativity: op.associativity,
	}
}

func (s Symbol) String() string {
	if op, ok := operators[s]; ok {
		return op.symbol
	}
	return fmt.Sprintf("Symbol(%d)", int(s))
}
