// Package introspect exposes the members, names and ancestors of arbitrary
// Go values. Plain values are described through reflection; types that want
// control over how they are inspected implement the capability interfaces
// declared here.
package introspect

import (
	"errors"
	"fmt"
	"reflect"
)

// Inspectable is implemented by values that enumerate and resolve their own
// members instead of relying on reflection.
type Inspectable interface {
	InspectMembers() []string
	InspectMember(name string) (any, error)
}

// Ancestral is implemented by type descriptors that declare their bases.
type Ancestral interface {
	InspectAncestors() []any
}

// Named is implemented by values that carry a declared display name.
type Named interface {
	InspectName() string
}

// Typed is implemented by instances that report their own type descriptor.
type Typed interface {
	InspectType() any
}

// Reflective pseudo-members. Their "$" prefix cannot collide with Go
// identifiers or with the keys of most decoded documents.
const (
	MemberType    = "$type"
	MemberKind    = "$kind"
	MemberName    = "$name"
	MemberLen     = "$len"
	MemberElem    = "$elem"
	MemberKey     = "$key"
	MemberString  = "$string"
	MemberPkgPath = "$pkgpath"
	MemberSize    = "$size"
	MemberFields  = "$fields"
	MemberMethods = "$methods"
	MemberEmbeds  = "$embeds"
)

// PseudoPrefix starts the name of every reflective pseudo-member.
const PseudoPrefix = "$"

// ErrNoMember is returned when a value has no member with the requested name.
var ErrNoMember = errors.New("no such member")

var (
	typeDescriptorType = reflect.TypeOf((*reflect.Type)(nil)).Elem()
	stringerType       = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// ValueOf wraps x for inspection. A reflect.Value is used as is.
func ValueOf(x any) reflect.Value {
	if rv, ok := x.(reflect.Value); ok {
		return rv
	}
	return reflect.ValueOf(x)
}

// Indirect unwraps interface values down to the concrete value they hold.
// Pointers are left alone since they carry identity.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// IsAbsent reports whether v holds nothing that could be inspected:
// an invalid value, a nil interface or a nil reference.
func IsAbsent(v reflect.Value) bool {
	v = Indirect(v)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// as extracts the capability T from v when v's value is reachable.
func as[T any](v reflect.Value) (T, bool) {
	var zero T
	if !v.IsValid() || !v.CanInterface() {
		return zero, false
	}
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return zero, false
	}
	c, ok := v.Interface().(T)
	return c, ok
}

// TypeDescriptor returns the reflect.Type held by v, if v is one.
func TypeDescriptor(v reflect.Value) (reflect.Type, bool) {
	v = Indirect(v)
	if !v.IsValid() || !v.Type().Implements(typeDescriptorType) {
		return nil, false
	}
	return as[reflect.Type](v)
}
