package introspect

import (
	"fmt"
	"reflect"
	"sort"
)

// Members returns the names of all members visible on v: the names an
// Inspectable reports, or, for plain values, struct fields (promoted ones
// included), exported methods, string map keys and the applicable
// reflective pseudo-members. Reflected names are sorted.
func Members(v reflect.Value) []string {
	v = Indirect(v)
	if !v.IsValid() {
		return nil
	}
	if insp, ok := as[Inspectable](v); ok {
		return append([]string(nil), insp.InspectMembers()...)
	}
	if t, ok := TypeDescriptor(v); ok {
		return typeMembers(t)
	}

	seen := make(map[string]bool)
	add := func(name string) {
		if name != "" {
			seen[name] = true
		}
	}

	add(MemberType)
	add(MemberKind)
	if _, ok := DeclaredName(v); ok {
		add(MemberName)
	}
	switch v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		add(MemberLen)
	case reflect.Ptr:
		add(MemberElem)
	}
	if v.Type().Implements(stringerType) {
		add(MemberString)
	}

	s := deref(v)
	switch s.Kind() {
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(s.Type()) {
			add(f.Name)
		}
	case reflect.Map:
		if s.Type().Key().Kind() == reflect.String {
			for _, k := range s.MapKeys() {
				add(k.String())
			}
		}
	}

	mv := methodReceiver(v)
	for i := 0; i < mv.NumMethod(); i++ {
		add(mv.Type().Method(i).Name)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Member resolves the member called name on v. Panics raised while
// resolving are returned as errors. A member that exists but holds nothing
// resolves to the zero reflect.Value and a nil error.
func Member(v reflect.Value, name string) (out reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = reflect.Value{}
			err = fmt.Errorf("resolving %s panicked: %v", name, r)
		}
	}()

	v = Indirect(v)
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %s (value is nil)", ErrNoMember, name)
	}
	if insp, ok := as[Inspectable](v); ok {
		res, err := insp.InspectMember(name)
		if err != nil {
			return reflect.Value{}, err
		}
		return ValueOf(res), nil
	}
	if t, ok := TypeDescriptor(v); ok {
		return typeMember(t, name)
	}

	switch name {
	case MemberType:
		if typed, ok := as[Typed](v); ok {
			return ValueOf(typed.InspectType()), nil
		}
		return reflect.ValueOf(v.Type()), nil
	case MemberKind:
		return reflect.ValueOf(v.Kind().String()), nil
	case MemberName:
		if n, ok := DeclaredName(v); ok {
			return reflect.ValueOf(n), nil
		}
	case MemberLen:
		switch v.Kind() {
		case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
			return reflect.ValueOf(v.Len()), nil
		}
	case MemberElem:
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, nil
			}
			return v.Elem(), nil
		}
	case MemberString:
		if s, ok := as[fmt.Stringer](v); ok {
			return reflect.ValueOf(s.String()), nil
		}
	}

	s := deref(v)
	switch s.Kind() {
	case reflect.Struct:
		if f, ok := s.Type().FieldByName(name); ok {
			return s.FieldByIndexErr(f.Index)
		}
	case reflect.Map:
		kt := s.Type().Key()
		if kt.Kind() == reflect.String {
			if mv := s.MapIndex(reflect.ValueOf(name).Convert(kt)); mv.IsValid() {
				return mv, nil
			}
		}
	}

	if m := methodReceiver(v).MethodByName(name); m.IsValid() {
		return m, nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %s", ErrNoMember, name)
}

// deref follows a single non-nil pointer so fields of *T are visible on it.
func deref(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Ptr && !v.IsNil() {
		return v.Elem()
	}
	return v
}

// methodReceiver widens addressable values to their pointer so that
// pointer-receiver methods are listed too.
func methodReceiver(v reflect.Value) reflect.Value {
	if v.Kind() != reflect.Ptr && v.CanAddr() {
		return v.Addr()
	}
	return v
}

func typeMembers(t reflect.Type) []string {
	names := []string{
		MemberType, MemberKind, MemberName, MemberPkgPath,
		MemberSize, MemberString, MemberMethods,
	}
	switch t.Kind() {
	case reflect.Struct:
		names = append(names, MemberFields, MemberEmbeds)
	case reflect.Ptr:
		names = append(names, MemberElem, MemberEmbeds)
	case reflect.Map:
		names = append(names, MemberElem, MemberKey)
	case reflect.Array:
		names = append(names, MemberElem, MemberLen)
	case reflect.Chan, reflect.Slice:
		names = append(names, MemberElem)
	}
	sort.Strings(names)
	return names
}

func typeMember(t reflect.Type, name string) (reflect.Value, error) {
	switch name {
	case MemberType:
		return reflect.ValueOf(reflect.TypeOf(t)), nil
	case MemberKind:
		return reflect.ValueOf(t.Kind().String()), nil
	case MemberName:
		return reflect.ValueOf(TypeLabel(t)), nil
	case MemberPkgPath:
		return reflect.ValueOf(t.PkgPath()), nil
	case MemberSize:
		return reflect.ValueOf(t.Size()), nil
	case MemberString:
		return reflect.ValueOf(t.String()), nil
	case MemberMethods:
		methods := make([]string, 0, t.NumMethod())
		for i := 0; i < t.NumMethod(); i++ {
			methods = append(methods, t.Method(i).Name)
		}
		return reflect.ValueOf(methods), nil
	case MemberFields:
		if t.Kind() == reflect.Struct {
			fields := make([]string, 0, t.NumField())
			for i := 0; i < t.NumField(); i++ {
				fields = append(fields, t.Field(i).Name)
			}
			return reflect.ValueOf(fields), nil
		}
	case MemberEmbeds:
		if t.Kind() == reflect.Struct || t.Kind() == reflect.Ptr {
			return reflect.ValueOf(Bases(t)), nil
		}
	case MemberElem:
		switch t.Kind() {
		case reflect.Array, reflect.Chan, reflect.Map, reflect.Ptr, reflect.Slice:
			return reflect.ValueOf(t.Elem()), nil
		}
	case MemberKey:
		if t.Kind() == reflect.Map {
			return reflect.ValueOf(t.Key()), nil
		}
	case MemberLen:
		if t.Kind() == reflect.Array {
			return reflect.ValueOf(t.Len()), nil
		}
	}
	return reflect.Value{}, fmt.Errorf("%w: %s on type %s", ErrNoMember, name, t)
}
