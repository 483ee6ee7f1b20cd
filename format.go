package postfix

import (
	"strconv"
	"strings"
)

// String returns the tokens separated by spaces, e.g. "3 4 2 * +".
// Unary minus is written "~".
func (p Postfix) String() string {
	var b strings.Builder
	for i, t := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Detailed is like String but annotates each token with its
// TokenType number, e.g. "3[0] 4[0] +[1]".
func (p Postfix) Detailed() string {
	var b strings.Builder
	for i, t := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(int(t.Type())))
		b.WriteByte(']')
	}
	return b.String()
}
