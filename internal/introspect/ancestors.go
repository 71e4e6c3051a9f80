package introspect

import (
	"reflect"

	"github.com/elliotchance/orderedmap/v2"
)

// Bases returns the declared bases of t. A struct type's bases are the types
// of its embedded fields in declaration order, with embedded pointers
// followed to the struct they point to. A pointer type's only base is its
// element type. Other types have no bases.
func Bases(t reflect.Type) []reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Ptr:
		return []reflect.Type{t.Elem()}
	case reflect.Struct:
		var bases []reflect.Type
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.Anonymous {
				continue
			}
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			bases = append(bases, ft)
		}
		return bases
	}
	return nil
}

// Ancestors returns the immediate ancestors of v. isType reports whether v
// declares a base list itself (a type descriptor or an Ancestral value).
// Anything else is an instance whose only ancestor is its own type.
func Ancestors(v reflect.Value) (ancestors []reflect.Value, isType bool) {
	v = Indirect(v)
	if !v.IsValid() {
		return nil, false
	}
	if anc, ok := as[Ancestral](v); ok {
		for _, a := range anc.InspectAncestors() {
			ancestors = append(ancestors, ValueOf(a))
		}
		return ancestors, true
	}
	if t, ok := TypeDescriptor(v); ok {
		for _, b := range Bases(t) {
			ancestors = append(ancestors, reflect.ValueOf(b))
		}
		return ancestors, true
	}
	if typed, ok := as[Typed](v); ok {
		return []reflect.Value{ValueOf(typed.InspectType())}, false
	}
	return []reflect.Value{reflect.ValueOf(v.Type())}, false
}

// OwnAttributes snapshots the attributes v declares itself, excluding
// anything promoted from a base. For a struct type these are its fields
// mapped to their types; for a struct value, its fields mapped to their
// rendered values; for an Inspectable, every member it reports.
func OwnAttributes(v reflect.Value, render func(reflect.Value) string) *orderedmap.OrderedMap[string, string] {
	attrs := orderedmap.NewOrderedMap[string, string]()
	v = Indirect(v)
	if !v.IsValid() {
		return attrs
	}

	if insp, ok := as[Inspectable](v); ok {
		for _, name := range insp.InspectMembers() {
			mv, err := Member(v, name)
			if err != nil {
				attrs.Set(name, err.Error())
				continue
			}
			attrs.Set(name, render(mv))
		}
		return attrs
	}

	if t, ok := TypeDescriptor(v); ok {
		if t.Kind() == reflect.Struct {
			for i := 0; i < t.NumField(); i++ {
				f := t.Field(i)
				attrs.Set(f.Name, f.Type.String())
			}
		}
		return attrs
	}

	s := deref(v)
	if s.Kind() == reflect.Struct {
		for i := 0; i < s.NumField(); i++ {
			attrs.Set(s.Type().Field(i).Name, render(s.Field(i)))
		}
	}
	return attrs
}

// Normalize flattens a resolved drilldown value into the ordered sequence of
// targets to recurse into. Nothing yields an empty sequence; arrays and
// slices yield their non-nil elements; byte slices, strings and every other
// value yield themselves.
func Normalize(v reflect.Value) []reflect.Value {
	if IsAbsent(v) {
		return nil
	}
	v = Indirect(v)

	switch v.Kind() {
	case reflect.Array, reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return []reflect.Value{v}
		}
		out := make([]reflect.Value, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if IsAbsent(elem) {
				continue
			}
			out = append(out, Indirect(elem))
		}
		return out
	}
	return []reflect.Value{v}
}
