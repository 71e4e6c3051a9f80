// Package history provides the identity-keyed visit history shared by the
// goinspect traversal walkers.
package history

import (
	"fmt"
	"reflect"

	"github.com/elliotchance/orderedmap/v2"
)

// Key identifies an inspected object by identity rather than by content.
// Objects with an address are keyed by (Type, Addr), slices additionally by
// Len. Detached scalars are keyed by (Type, Val). Anything else carries a Seq
// that is unique within the owning Store.
type Key struct {
	Type reflect.Type
	Addr uintptr
	Len  int
	Val  any // string, bool, int64, uint64, float64 or complex128
	Seq  uint64
}

// String renders the key for report headers.
func (k Key) String() string {
	switch {
	case k.Addr != 0 && k.Len != 0:
		return fmt.Sprintf("0x%x[:%d]", k.Addr, k.Len)
	case k.Addr != 0:
		return fmt.Sprintf("0x%x", k.Addr)
	case k.Val != nil:
		return fmt.Sprintf("%q", fmt.Sprint(k.Val))
	}
	return fmt.Sprintf("#%d", k.Seq)
}

// VisitedRecord describes an object the first time it is visited.
type VisitedRecord struct {
	Key      Key
	Name     string                                 // Display name
	TypeName string                                 // Name of the object's type
	Snapshot *orderedmap.OrderedMap[string, string] // Own attributes, may be nil
}

// EdgeRecord maps a display name to the display names of its ancestors.
// Index is the insertion position in the owning Store's edge list.
type EdgeRecord struct {
	Index    int      `yaml:"index"`
	Parent   string   `yaml:"parent"`
	Children []string `yaml:"children"`
}

// DuplicateKeyError is returned when a key is recorded twice.
type DuplicateKeyError struct {
	Key  Key
	Name string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("object %q (%s) is already recorded", e.Name, e.Key)
}
