package samples

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/goinspect/internal/introspect"
)

// Class members reported by Class and Object.
const (
	MemberClass = "class"
	MemberBases = "bases"
	MemberName  = "name"
)

// Class is a type declared at runtime. Its bases may form any graph,
// cycles included, which Go's own types cannot.
type Class struct {
	Name  string
	Bases []*Class
	Attrs *orderedmap.OrderedMap[string, any]
	Meta  *Class // Class of this class; nil means Metaclass
}

// Metaclass is the class of every class, itself included.
var Metaclass = &Class{Name: "type", Attrs: orderedmap.NewOrderedMap[string, any]()}

// NewClass declares a class with the given bases.
func NewClass(name string, bases ...*Class) *Class {
	return &Class{
		Name:  name,
		Bases: bases,
		Attrs: orderedmap.NewOrderedMap[string, any](),
	}
}

// Set declares a class attribute and returns c for chaining.
func (c *Class) Set(name string, value any) *Class {
	c.Attrs.Set(name, value)
	return c
}

// New creates an instance of c.
func (c *Class) New() *Object {
	return &Object{Class: c, Attrs: orderedmap.NewOrderedMap[string, any]()}
}

func (c *Class) meta() *Class {
	if c.Meta != nil {
		return c.Meta
	}
	return Metaclass
}

func (c *Class) String() string {
	return "<class " + c.Name + ">"
}

// InspectName implements introspect.Named.
func (c *Class) InspectName() string {
	return c.Name
}

// InspectAncestors implements introspect.Ancestral.
func (c *Class) InspectAncestors() []any {
	out := make([]any, len(c.Bases))
	for i, b := range c.Bases {
		out[i] = b
	}
	return out
}

// InspectType implements introspect.Typed.
func (c *Class) InspectType() any {
	return c.meta()
}

// InspectMembers implements introspect.Inspectable.
func (c *Class) InspectMembers() []string {
	names := []string{MemberBases, MemberClass, MemberName}
	for el := c.Attrs.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// InspectMember implements introspect.Inspectable. Attributes are looked up
// on c first and then on its bases in declaration order.
func (c *Class) InspectMember(name string) (any, error) {
	switch name {
	case MemberBases:
		return c.InspectAncestors(), nil
	case MemberClass:
		return c.meta(), nil
	case MemberName:
		return c.Name, nil
	}
	if v, ok := c.lookup(name, map[*Class]bool{}); ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: class %s has no attribute %s", introspect.ErrNoMember, c.Name, name)
}

func (c *Class) lookup(name string, seen map[*Class]bool) (any, bool) {
	if seen[c] {
		return nil, false
	}
	seen[c] = true
	if v, ok := c.Attrs.Get(name); ok {
		return v, true
	}
	for _, b := range c.Bases {
		if v, ok := b.lookup(name, seen); ok {
			return v, true
		}
	}
	return nil, false
}

// Object is an instance of a Class.
type Object struct {
	Class *Class
	Attrs *orderedmap.OrderedMap[string, any]
}

// Set assigns an instance attribute and returns o for chaining.
func (o *Object) Set(name string, value any) *Object {
	o.Attrs.Set(name, value)
	return o
}

func (o *Object) String() string {
	return "<" + o.Class.Name + " object>"
}

// InspectType implements introspect.Typed.
func (o *Object) InspectType() any {
	return o.Class
}

// InspectMembers implements introspect.Inspectable.
func (o *Object) InspectMembers() []string {
	names := []string{MemberClass}
	for el := o.Attrs.Front(); el != nil; el = el.Next() {
		names = append(names, el.Key)
	}
	return names
}

// InspectMember implements introspect.Inspectable. Instance attributes
// shadow class attributes.
func (o *Object) InspectMember(name string) (any, error) {
	if name == MemberClass {
		return o.Class, nil
	}
	if v, ok := o.Attrs.Get(name); ok {
		return v, nil
	}
	return o.Class.InspectMember(name)
}
