package postfix

import (
	"strings"

	"github.com/pkg/errors"
)

// A Context provides the values of variables to Postfix.Eval.
type Context interface {
	// Lookup returns the value bound to name, and false if there is
	// none.
	Lookup(name string) (float64, bool)
}

// MapContext represents the most simple context, aka a dictionnary of
// values. It is safe for concurrent reads only.
type MapContext map[string]float64

// NewMapContext creates an empty MapContext
func NewMapContext() MapContext {
	return make(MapContext)
}

// Lookup returns the value bound to name.
func (c MapContext) Lookup(name string) (float64, bool) {
	v, ok := c[name]
	return v, ok
}

// Set binds name to v.
func (c MapContext) Set(name string, v float64) {
	c[name] = v
}

// Delete deletes the given variable from the MapContext if it
// exists.
func (c MapContext) Delete(name string) {
	delete(c, name)
}

// Define parses a "name=value" definition and binds name. The value
// is itself an expression without variables, so "y=-2^0.5" is
// allowed. name must be a single ASCII letter.
func (c MapContext) Define(def string) error {
	d := strings.SplitN(def, "=", 2)
	if len(d) != 2 {
		return errors.Errorf("variable definitions must be \"name=value\", not %q", def)
	}
	name := strings.TrimSpace(d[0])
	if len(name) != 1 || strings.IndexByte(alphabetic, name[0]) < 0 {
		return errors.Errorf("invalid variable name %q, must be a single letter", name)
	}
	v, err := Evaluate(d[1], nil)
	if err != nil {
		return errors.Wrapf(err, "defining %s", name)
	}
	c.Set(name, v)
	return nil
}
