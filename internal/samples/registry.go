package samples

import (
	"fmt"
	"reflect"

	"github.com/elliotchance/orderedmap/v2"
)

// Sample is a named inspection target.
type Sample struct {
	Name        string
	Description string
	New         func() any // Builds a fresh target on every call
}

var registry = orderedmap.NewOrderedMap[string, Sample]()

func register(name, description string, build func() any) {
	registry.Set(name, Sample{Name: name, Description: description, New: build})
}

func typeOf[T any]() func() any {
	return func() any {
		return reflect.TypeOf((*T)(nil)).Elem()
	}
}

func init() {
	register("A", "lattice type A", typeOf[A]())
	register("B", "lattice type B, embeds A", typeOf[B]())
	register("C", "lattice type C, embeds B", typeOf[C]())
	register("D", "lattice type D", typeOf[D]())
	register("E", "lattice type E, embeds D", typeOf[E]())
	register("F", "lattice type F, embeds E", typeOf[F]())
	register("G", "lattice type G, embeds C and F", typeOf[G]())
	register("H", "lattice type H", typeOf[H]())
	register("J", "lattice type J, embeds G, H and D", typeOf[J]())
	register("J{}", "instance of J", func() any { return &J{} })
	register("Super", "type Super", typeOf[Super]())
	register("Sub", "type Sub, embeds Super", typeOf[Sub]())
	register("Sub{}", "instance of Sub after Hello and Hola", func() any {
		s := NewSub()
		s.Hello()
		s.Hola()
		return s
	})
	register("diamond", "type Diamond, reaches DiamondBase twice", typeOf[Diamond]())
	register("ring", "three nodes linked in a cycle", func() any { return NewRing(3) })
	register("class", "runtime class Sub with base Super", func() any { return classPair() })
	register("object", "instance of runtime class Sub", func() any {
		return classPair().New().Set("data2", "Cowbell")
	})
	register("metaclass", "the runtime metaclass, its own class", func() any { return Metaclass })
	register("cyclic", "runtime classes whose bases form a cycle", func() any { return cyclicClasses() })
}

func classPair() *Class {
	base := NewClass("Super").Set("class_level_variable", "Who can see me?")
	return NewClass("Sub", base).Set("greeting", "hola")
}

func cyclicClasses() *Class {
	first := NewClass("First")
	second := NewClass("Second", first)
	third := NewClass("Third", second)
	first.Bases = []*Class{third}
	return first
}

// Lookup builds the sample called name.
func Lookup(name string) (any, error) {
	s, ok := registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("sample %q not found", name)
	}
	return s.New(), nil
}

// All returns every sample in registration order.
func All() []Sample {
	out := make([]Sample, 0, registry.Len())
	for el := registry.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Names returns the name of every sample in registration order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}
