package introspect

import (
	"reflect"
	"runtime"
)

// UnnamedPrefix starts the display name of objects without a declared name.
const UnnamedPrefix = "Unnamed instance of "

// TypeLabel returns the short name of t, or its full form for unnamed types
// such as pointers and slices.
func TypeLabel(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// TypeName returns the name of the type of v.
func TypeName(v reflect.Value) string {
	v = Indirect(v)
	if !v.IsValid() {
		return "nil"
	}
	if typed, ok := as[Typed](v); ok {
		if name, ok := safeDeclaredName(ValueOf(typed.InspectType())); ok {
			return name
		}
	}
	return TypeLabel(v.Type())
}

// DeclaredName returns the name v declares for itself. Type descriptors,
// functions and Named values declare names; other values do not.
func DeclaredName(v reflect.Value) (string, bool) {
	return safeDeclaredName(Indirect(v))
}

func safeDeclaredName(v reflect.Value) (name string, ok bool) {
	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()

	if !v.IsValid() {
		return "", false
	}
	if named, isNamed := as[Named](v); isNamed {
		if n := named.InspectName(); n != "" {
			return n, true
		}
		return "", false
	}
	if t, isType := TypeDescriptor(v); isType {
		return TypeLabel(t), true
	}
	if v.Kind() == reflect.Func && !v.IsNil() {
		if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
			return fn.Name(), true
		}
	}
	return "", false
}

// DisplayName returns the declared name of v, or a label synthesized from
// its type when it has none.
func DisplayName(v reflect.Value) string {
	if name, ok := DeclaredName(v); ok {
		return name
	}
	return UnnamedPrefix + TypeName(v)
}
