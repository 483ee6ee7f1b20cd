// Copyright 2014 Alexandre Tuleu
// This file is part of go-postfix.
//
// go-postfix is free software: you can redistribute it and/or modify it
// under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-postfix is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public
// License along with go-postfix.  If not, see
// <http://www.gnu.org/licenses/>.

/*
Package postfix converts mathematical expressions from infix notation
to postfix (Reverse Polish) notation using the shunting-yard
algorithm, and evaluates the postfix form against a set of variable
bindings.

Grammar

Whitespace is removed before anything else, so "1 2" is the number
12. Numbers are digit runs with at most one decimal point inside them
("1.5" is fine, ".5" and "5." are not). Variables are single ASCII
letters. The binary operators are + - * / and ^, where ^ is right
associative. A minus sign at the start of the expression, or right
after an operator, an opening parenthesis or a comma, is a unary
minus and binds tighter than anything else. Two adjacent minus signs
cancel each other.

The functions are sin and cos (radians), max and min. A function name
must be directly followed by its parenthesized argument list.

Basics

Evaluate converts and evaluates in one call. Convert returns the
Postfix sequence, which can be printed or evaluated many times with
different Context.

Errors

Every failure is either a *ParseError or an *EvalError. Both unwrap
to an ErrorKind, so errors.Is(err, UndefinedVariable) works.
*/
package postfix
