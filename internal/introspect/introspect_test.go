package introspect

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type base struct {
	ID int
}

func (b base) Describe() string { return fmt.Sprintf("base %d", b.ID) }

type derived struct {
	base
	Label  string
	hidden bool
}

func (d *derived) Rename(label string) { d.Label = label }

type stringer struct{}

func (stringer) String() string { return "I am a stringer" }

type panicky struct{}

func (*panicky) String() string { panic("boom") }

type withNilEmbed struct {
	*base
	Note string
}

type class struct {
	label string
	bases []*class
}

func (c *class) InspectName() string { return c.label }

func (c *class) InspectAncestors() []any {
	out := make([]any, len(c.bases))
	for i, b := range c.bases {
		out[i] = b
	}
	return out
}

type object struct {
	cls *class
}

func (o *object) InspectType() any { return o.cls }

type custom struct{}

func (custom) InspectMembers() []string { return []string{"zeta", "alpha", "broken"} }

func (custom) InspectMember(name string) (any, error) {
	switch name {
	case "zeta":
		return 26, nil
	case "alpha":
		return "first", nil
	}
	return nil, errors.New("cannot resolve " + name)
}

func TestMembers_Struct(t *testing.T) {
	d := &derived{base: base{ID: 7}, Label: "x"}

	names := Members(reflect.ValueOf(d))

	for _, want := range []string{"ID", "Label", "hidden", "base", "Describe", "Rename", MemberType, MemberKind, MemberElem} {
		assert.Contains(t, names, want)
	}
	assert.True(t, sortedStrings(names), "members must be sorted")
}

func TestMembers_ValueReceiverMethodsOnly(t *testing.T) {
	names := Members(reflect.ValueOf(derived{}))

	assert.Contains(t, names, "Describe")
	assert.NotContains(t, names, "Rename", "pointer methods are not in the method set of a non-addressable value")
	assert.NotContains(t, names, MemberElem)
}

func TestMembers_MapKeys(t *testing.T) {
	names := Members(reflect.ValueOf(map[string]any{"b": 1, "a": 2}))

	assert.Contains(t, names, "a")
	assert.Contains(t, names, "b")
	assert.Contains(t, names, MemberLen)
}

func TestMembers_Stringer(t *testing.T) {
	assert.Contains(t, Members(reflect.ValueOf(stringer{})), MemberString)
	assert.NotContains(t, Members(reflect.ValueOf(base{})), MemberString)
}

func TestMembers_Invalid(t *testing.T) {
	assert.Nil(t, Members(reflect.Value{}))
}

func TestMembers_Inspectable(t *testing.T) {
	assert.Equal(t, []string{"zeta", "alpha", "broken"}, Members(reflect.ValueOf(custom{})))
}

func TestMembers_TypeDescriptor(t *testing.T) {
	names := Members(reflect.ValueOf(reflect.TypeOf(derived{})))

	assert.Contains(t, names, MemberEmbeds)
	assert.Contains(t, names, MemberFields)
	assert.Contains(t, names, MemberType)
	assert.NotContains(t, names, "Label", "type descriptors do not expose instance fields")
}

func TestMember_Fields(t *testing.T) {
	d := &derived{base: base{ID: 7}, Label: "x", hidden: true}
	v := reflect.ValueOf(d)

	id, err := Member(v, "ID")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id.Int(), "promoted fields resolve")

	hidden, err := Member(v, "hidden")
	require.NoError(t, err)
	assert.True(t, hidden.Bool(), "unexported fields resolve")
}

func TestMember_Method(t *testing.T) {
	m, err := Member(reflect.ValueOf(&derived{}), "Rename")
	require.NoError(t, err)
	assert.Equal(t, reflect.Func, m.Kind())
}

func TestMember_Missing(t *testing.T) {
	_, err := Member(reflect.ValueOf(base{}), "Nope")
	assert.True(t, errors.Is(err, ErrNoMember))
}

func TestMember_NilEmbeddedPointer(t *testing.T) {
	_, err := Member(reflect.ValueOf(withNilEmbed{Note: "n"}), "ID")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoMember), "the member exists but cannot be reached")
}

func TestMember_PanicIsRecovered(t *testing.T) {
	_, err := Member(reflect.ValueOf(&panicky{}), MemberString)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestMember_Type(t *testing.T) {
	v, err := Member(reflect.ValueOf(base{}), MemberType)
	require.NoError(t, err)

	typ, ok := TypeDescriptor(v)
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf(base{}), typ)
}

func TestMember_TypeOfTypeIsFixedPoint(t *testing.T) {
	v, err := Member(reflect.ValueOf(reflect.TypeOf(base{})), MemberType)
	require.NoError(t, err)
	meta, _ := TypeDescriptor(v)

	v2, err := Member(v, MemberType)
	require.NoError(t, err)
	meta2, _ := TypeDescriptor(v2)

	assert.Equal(t, meta, meta2)
	assert.Equal(t, v.Pointer(), v2.Pointer(), "the descriptor of the descriptor type is itself")
}

func TestMember_Elem(t *testing.T) {
	var nilPtr *base
	v, err := Member(reflect.ValueOf(nilPtr), MemberElem)
	require.NoError(t, err)
	assert.False(t, v.IsValid(), "nil pointers have an absent element")

	v, err = Member(reflect.ValueOf(&base{ID: 3}), MemberElem)
	require.NoError(t, err)
	assert.Equal(t, base{ID: 3}, v.Interface())
}

func TestMember_MapKey(t *testing.T) {
	v, err := Member(reflect.ValueOf(map[string]int{"a": 1}), "a")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Interface())
}

func TestMember_Inspectable(t *testing.T) {
	v, err := Member(reflect.ValueOf(custom{}), "zeta")
	require.NoError(t, err)
	assert.Equal(t, 26, v.Interface())

	_, err = Member(reflect.ValueOf(custom{}), "broken")
	assert.EqualError(t, err, "cannot resolve broken")
}

func TestMember_TypeDescriptorEmbeds(t *testing.T) {
	v, err := Member(reflect.ValueOf(reflect.TypeOf(derived{})), MemberEmbeds)
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{reflect.TypeOf(base{})}, v.Interface())
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Unnamed instance of derived", DisplayName(reflect.ValueOf(derived{})))
	assert.Equal(t, "Unnamed instance of *introspect.derived", DisplayName(reflect.ValueOf(&derived{})))
	assert.Equal(t, "derived", DisplayName(reflect.ValueOf(reflect.TypeOf(derived{}))))
	assert.Equal(t, "*introspect.derived", DisplayName(reflect.ValueOf(reflect.TypeOf(&derived{}))))
	assert.Equal(t, "root", DisplayName(reflect.ValueOf(&class{label: "root"})))

	fn := DisplayName(reflect.ValueOf(strings.ToUpper))
	assert.Equal(t, "strings.ToUpper", fn)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "derived", TypeName(reflect.ValueOf(derived{})))
	assert.Equal(t, "*reflect.rtype", TypeName(reflect.ValueOf(reflect.TypeOf(0))))
	assert.Equal(t, "Widget", TypeName(reflect.ValueOf(&object{cls: &class{label: "Widget"}})))
	assert.Equal(t, "nil", TypeName(reflect.Value{}))
}

func TestBases(t *testing.T) {
	type A struct{}
	type B struct{ A }
	type C struct {
		*A
		Name string
	}
	type D struct {
		B
		C
		Extra int
	}

	assert.Empty(t, Bases(reflect.TypeOf(A{})))
	assert.Equal(t, []reflect.Type{reflect.TypeOf(A{})}, Bases(reflect.TypeOf(C{})), "embedded pointers resolve to their struct")
	assert.Equal(t, []reflect.Type{reflect.TypeOf(B{}), reflect.TypeOf(C{})}, Bases(reflect.TypeOf(D{})))
	assert.Equal(t, []reflect.Type{reflect.TypeOf(D{})}, Bases(reflect.TypeOf(&D{})))
	assert.Empty(t, Bases(reflect.TypeOf(0)))
	assert.Nil(t, Bases(nil))
}

func TestAncestors(t *testing.T) {
	top := &class{label: "Top"}
	mid := &class{label: "Mid", bases: []*class{top}}

	anc, isType := Ancestors(reflect.ValueOf(mid))
	assert.True(t, isType)
	require.Len(t, anc, 1)
	assert.Equal(t, "Top", DisplayName(anc[0]))

	anc, isType = Ancestors(reflect.ValueOf(&object{cls: mid}))
	assert.False(t, isType)
	require.Len(t, anc, 1)
	assert.Equal(t, "Mid", DisplayName(anc[0]))

	anc, isType = Ancestors(reflect.ValueOf(derived{}))
	assert.False(t, isType)
	require.Len(t, anc, 1)
	assert.Equal(t, "derived", DisplayName(anc[0]))

	anc, isType = Ancestors(reflect.ValueOf(reflect.TypeOf(derived{})))
	assert.True(t, isType)
	require.Len(t, anc, 1)
	assert.Equal(t, "base", DisplayName(anc[0]))
}

func TestOwnAttributes(t *testing.T) {
	render := func(v reflect.Value) string { return fmt.Sprintf("%v", v) }

	attrs := OwnAttributes(reflect.ValueOf(reflect.TypeOf(derived{})), render)
	assert.Equal(t, []string{"base", "Label", "hidden"}, keysOf(attrs))
	label, _ := attrs.Get("Label")
	assert.Equal(t, "string", label)

	attrs = OwnAttributes(reflect.ValueOf(&derived{Label: "lbl"}), render)
	label, _ = attrs.Get("Label")
	assert.Equal(t, "lbl", label)
	_, promoted := attrs.Get("ID")
	assert.False(t, promoted, "promoted fields are not own attributes")

	attrs = OwnAttributes(reflect.ValueOf(custom{}), render)
	broken, _ := attrs.Get("broken")
	assert.Equal(t, "cannot resolve broken", broken)
}

func TestNormalize(t *testing.T) {
	a, b := &base{ID: 1}, &base{ID: 2}

	assert.Empty(t, Normalize(reflect.Value{}))
	assert.Empty(t, Normalize(reflect.ValueOf((*base)(nil))))
	assert.Empty(t, Normalize(reflect.ValueOf([]*base(nil))))

	single := Normalize(reflect.ValueOf(a))
	require.Len(t, single, 1)
	assert.Equal(t, a, single[0].Interface())

	seq := Normalize(reflect.ValueOf([]*base{a, nil, b}))
	require.Len(t, seq, 2, "nil elements are skipped")
	assert.Equal(t, a, seq[0].Interface())
	assert.Equal(t, b, seq[1].Interface())

	arr := Normalize(reflect.ValueOf([2]any{"x", 3}))
	require.Len(t, arr, 2)
	assert.Equal(t, reflect.String, arr[0].Kind(), "interface elements are unwrapped")

	assert.Len(t, Normalize(reflect.ValueOf([]byte("abc"))), 1)
	assert.Len(t, Normalize(reflect.ValueOf("abc")), 1)
}

func TestIsAbsent(t *testing.T) {
	var iface fmt.Stringer
	assert.True(t, IsAbsent(reflect.Value{}))
	assert.True(t, IsAbsent(reflect.ValueOf(&iface).Elem()))
	assert.True(t, IsAbsent(reflect.ValueOf(map[string]int(nil))))
	assert.False(t, IsAbsent(reflect.ValueOf(0)))
	assert.False(t, IsAbsent(reflect.ValueOf("")))
}

func TestValueOf(t *testing.T) {
	rv := reflect.ValueOf(42)
	assert.Equal(t, rv, ValueOf(rv))
	assert.Equal(t, 42, ValueOf(42).Interface())
}

func keysOf(m *orderedmap.OrderedMap[string, string]) []string {
	var keys []string
	for el := m.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
