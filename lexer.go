package postfix

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexemeType int

const (
	tokValue lexemeType = iota
	tokOperator
	tokOParen
	tokCParen
	tokComma
	tokFunction
	tokVariable
)

type lexeme struct {
	typ   lexemeType
	value string
	pos   int
}

type lexer struct {
	input      string
	pending    []lexeme
	err        error
	action     lActionFn
	start, pos int
}

type lActionFn func(l *lexer) lActionFn

// stripSpaces removes every whitespace rune from s.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func newLexer(input string) *lexer {
	return &lexer{
		input:  stripSpaces(input),
		action: lexAny,
	}
}

// Next returns the next lexeme, or io.EOF once the input is
// exhausted. After an error, every call returns that error.
func (l *lexer) Next() (lexeme, error) {
	for len(l.pending) == 0 {
		if l.err != nil {
			return lexeme{}, l.err
		}
		if l.action == nil {
			return lexeme{}, io.EOF
		}
		l.action = l.action(l)
	}
	lx := l.pending[0]
	l.pending = l.pending[1:]
	return lx, nil
}

const eof byte = 0

// Actions

func lexAny(l *lexer) lActionFn {
	c := l.peek()
	switch {
	case l.pos >= len(l.input):
		return nil
	case strings.IndexByte(numeric+".", c) >= 0:
		return lexNumber
	case strings.IndexByte(alphabetic, c) >= 0:
		return lexIdentifier
	case isOperatorByte(c):
		return lexOperator
	}

	if action, ok := byteToken[c]; ok {
		l.next()
		return action
	}

	// report the whole rune, the input may not be ASCII
	_, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	return l.fail(UnknownSymbol)
}

func lexNumber(l *lexer) lActionFn {
	l.acceptRun(numeric + ".")
	n := l.current()
	if strings.Count(n, ".") > 1 || n[0] == '.' || n[len(n)-1] == '.' {
		return l.fail(InvalidNumber)
	}
	l.emit(tokValue)
	return lexAny
}

// lexOperator scans a run of operator characters. An adjacent "--"
// pair cancels out, every other character must be an operator and
// only the first one may be something else than a minus sign.
func lexOperator(l *lexer) lActionFn {
	for c := l.peek(); l.pos < len(l.input) && isOperatorRun(c); c = l.peek() {
		l.next()
	}
	run := l.current()

	var ops []lexeme
	for i := 0; i < len(run); {
		if strings.HasPrefix(run[i:], "--") {
			i += 2
			continue
		}
		if !isOperatorByte(run[i]) || (i > 0 && run[i] != '-') {
			return l.fail(UnknownOperator)
		}
		ops = append(ops, lexeme{typ: tokOperator, value: run[i : i+1], pos: l.start + i})
		i++
	}
	l.pending = append(l.pending, ops...)
	l.ignore()
	return lexAny
}

func lexIdentifier(l *lexer) lActionFn {
	l.acceptRun(alphabetic)
	name := l.current()
	if _, ok := functions[name]; ok && l.peek() == '(' {
		l.emit(tokFunction)
		return lexAny
	}
	if len(name) == 1 {
		l.emit(tokVariable)
		return lexAny
	}
	return l.fail(InvalidIdentifier)
}

// static data

var numeric = "0123456789"

var alphabetic = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var byteToken = make(map[byte]lActionFn)

func registerByteToken(c byte, t lexemeType) {
	byteToken[c] = func(l *lexer) lActionFn {
		l.emit(t)
		return lexAny
	}
}

func init() {
	registerByteToken('(', tokOParen)
	registerByteToken(')', tokCParen)
	registerByteToken(',', tokComma)
}

func isOperatorByte(c byte) bool {
	_, ok := operatorSymbols[c]
	return ok
}

// isOperatorRun tells if c may be part of an operator run: anything
// but letters, digits, parentheses and commas. Spaces are already
// gone.
func isOperatorRun(c byte) bool {
	return strings.IndexByte(numeric+alphabetic+"(),", c) < 0
}

// helpers

func (l *lexer) current() string {
	return l.input[l.start:l.pos]
}

func (l *lexer) emit(t lexemeType) {
	l.pending = append(l.pending, lexeme{typ: t, value: l.current(), pos: l.start})
	l.ignore()
}

func (l *lexer) fail(kind ErrorKind) lActionFn {
	l.err = &ParseError{Kind: kind, Offset: l.start, Text: l.current()}
	return nil
}

func (l *lexer) next() byte {
	if l.pos >= len(l.input) {
		return eof
	}
	c := l.input[l.pos]
	l.pos++
	return c
}

func (l *lexer) peek() byte {
	if l.pos >= len(l.input) {
		return eof
	}
	return l.input[l.pos]
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) acceptRun(valid string) {
	for l.pos < len(l.input) && strings.IndexByte(valid, l.input[l.pos]) >= 0 {
		l.pos++
	}
}
