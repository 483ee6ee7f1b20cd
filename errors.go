package postfix

import (
	"fmt"
	"strconv"
)

// ErrorKind classifies a conversion or evaluation failure. It is
// itself an error, and both *ParseError and *EvalError unwrap to
// their kind, so errors.Is(err, InvalidNumber) can be used.
type ErrorKind int

const (
	// InvalidNumber is a literal with several decimal points, or one
	// at either end.
	InvalidNumber ErrorKind = iota + 1
	// UnknownOperator is a run of operator characters that is not an
	// operator.
	UnknownOperator
	// UnknownSymbol is a character that starts no lexeme.
	UnknownSymbol
	// InvalidIdentifier is a multi-letter name that is not a function
	// call.
	InvalidIdentifier
	MismatchedParentheses
	UndefinedVariable
	// InsufficientOperands is an operator or function applied with
	// fewer values on the stack than its arity.
	InsufficientOperands
	TooFewValues
	TooManyValues
	// UnexpectedToken is a token that has no evaluation semantics,
	// such as a parenthesis in a hand-built Postfix.
	UnexpectedToken
)

var errorKindNames = map[ErrorKind]string{
	InvalidNumber:         "invalid number",
	UnknownOperator:       "unknown operator",
	UnknownSymbol:         "unknown symbol",
	InvalidIdentifier:     "invalid identifier",
	MismatchedParentheses: "mismatched parentheses",
	UndefinedVariable:     "undefined variable",
	InsufficientOperands:  "insufficient operands",
	TooFewValues:          "too few values",
	TooManyValues:         "too many values",
	UnexpectedToken:       "unexpected token",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

func (k ErrorKind) Error() string {
	return k.String()
}

// InputError is an error with position information. Every error
// resulting from a malformed infix string implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset of the faulty lexeme in the input
	// once whitespace has been removed.
	Pos() int
}

// ParseError is returned by Convert.
type ParseError struct {
	Kind ErrorKind
	// Offset is the byte offset of Text in the whitespace-free input.
	Offset int
	// Text is the faulty lexeme.
	Text string
}

func (err *ParseError) Error() string {
	if err.Text == "" {
		return fmt.Sprintf("%s at %d", err.Kind, err.Offset)
	}
	return fmt.Sprintf("%s %q at %d", err.Kind, err.Text, err.Offset)
}

func (err *ParseError) Pos() int {
	return err.Offset
}

func (err *ParseError) Unwrap() error {
	return err.Kind
}

// EvalError is returned by Postfix.Eval.
type EvalError struct {
	Kind ErrorKind
	// Token is the token being evaluated, nil for TooFewValues and
	// TooManyValues.
	Token Token
	// Name is the missing variable for UndefinedVariable.
	Name string
	// Need and Have are the values needed by Token and the values
	// available for InsufficientOperands, and the values left on the
	// stack for TooFewValues and TooManyValues.
	Need, Have int
}

func (err *EvalError) Error() string {
	switch err.Kind {
	case UndefinedVariable:
		return fmt.Sprintf("%s %q", err.Kind, err.Name)
	case InsufficientOperands:
		return fmt.Sprintf("%s for '%s': need %d, got %d", err.Kind, err.Token, err.Need, err.Have)
	case TooFewValues, TooManyValues:
		return fmt.Sprintf("%s: %d left on the stack instead of 1", err.Kind, err.Have)
	case InvalidNumber, UnexpectedToken:
		return fmt.Sprintf("%s %q", err.Kind, fmt.Sprint(err.Token))
	}
	return err.Kind.String()
}

func (err *EvalError) Unwrap() error {
	return err.Kind
}

var (
	_ InputError = (*ParseError)(nil)
	_ error      = (*EvalError)(nil)
)
