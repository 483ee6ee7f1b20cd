package postfix

import (
	"errors"

	. "gopkg.in/check.v1"
)

type ContextSuite struct {
	c MapContext
}

var _ = Suite(&ContextSuite{})

func (s *ContextSuite) SetUpTest(c *C) {
	s.c = NewMapContext()
}

func (s *ContextSuite) TestSetLookupDelete(c *C) {
	_, ok := s.c.Lookup("x")
	c.Check(ok, Equals, false)

	s.c.Set("x", 42)
	v, ok := s.c.Lookup("x")
	c.Check(ok, Equals, true)
	c.Check(v, Equals, 42.0)

	s.c.Delete("x")
	_, ok = s.c.Lookup("x")
	c.Check(ok, Equals, false)
}

func (s *ContextSuite) TestDefine(c *C) {
	c.Assert(s.c.Define("y=2"), IsNil)
	c.Assert(s.c.Define(" z = -0.5 "), IsNil)
	c.Assert(s.c.Define("w=max(2, 3) ^ 2"), IsNil)
	c.Check(s.c, DeepEquals, MapContext{"y": 2, "z": -0.5, "w": 9})

	c.Assert(s.c.Define("y=4"), IsNil)
	v, _ := s.c.Lookup("y")
	c.Check(v, Equals, 4.0)
}

func (s *ContextSuite) TestDefineError(c *C) {
	err := s.c.Define("y")
	c.Assert(err, NotNil)
	c.Check(err.Error(), Equals, `variable definitions must be "name=value", not "y"`)

	err = s.c.Define("foo=1")
	c.Assert(err, NotNil)
	c.Check(err.Error(), Equals, `invalid variable name "foo", must be a single letter`)

	err = s.c.Define("=1")
	c.Assert(err, NotNil)
	c.Check(err.Error(), Equals, `invalid variable name "", must be a single letter`)

	err = s.c.Define("y=q")
	c.Assert(err, NotNil)
	c.Check(err.Error(), Equals, `defining y: undefined variable "q"`)
	c.Check(errors.Is(err, UndefinedVariable), Equals, true)

	err = s.c.Define("y=(1")
	c.Assert(err, NotNil)
	var pe *ParseError
	c.Check(errors.As(err, &pe), Equals, true)

	c.Check(s.c, HasLen, 0)
}
