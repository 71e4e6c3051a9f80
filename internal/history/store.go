package history

import (
	"reflect"

	"github.com/elliotchance/orderedmap/v2"
)

// Store records which objects a traversal has already visited and the
// ancestor edges it discovered. A Store belongs to a single traversal run
// and is not safe for concurrent use.
type Store struct {
	records *orderedmap.OrderedMap[Key, VisitedRecord]
	edges   []EdgeRecord
	entryID int    // next edge index
	seq     uint64 // last sequence handed out by KeyOf
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		records: orderedmap.NewOrderedMap[Key, VisitedRecord](),
	}
}

// KeyOf returns the identity key for v. Pointer-like values are keyed by the
// address they refer to, slices also by their length, and addressable values
// by their own address. Detached strings, booleans and numbers are keyed by
// their value, so equal scalars of the same type are the same object. Every
// other value gets a fresh sequence number and never collides with a
// previously visited object.
func (s *Store) KeyOf(v reflect.Value) Key {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() {
		return s.nextSeq(nil)
	}

	t := v.Type()
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		if p := v.Pointer(); p != 0 {
			return Key{Type: t, Addr: p}
		}
	case reflect.Slice:
		if v.Len() > 0 {
			return Key{Type: t, Addr: v.Pointer(), Len: v.Len()}
		}
	}

	if v.CanAddr() {
		return Key{Type: t, Addr: v.UnsafeAddr()}
	}
	if val, ok := scalarOf(v); ok {
		return Key{Type: t, Val: val}
	}
	return s.nextSeq(t)
}

// scalarOf reads v without Interface so values taken from unexported fields
// work too.
func scalarOf(v reflect.Value) (any, bool) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return v.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Complex64, reflect.Complex128:
		return v.Complex(), true
	}
	return nil, false
}

func (s *Store) nextSeq(t reflect.Type) Key {
	s.seq++
	return Key{Type: t, Seq: s.seq}
}

// IsVisited reports whether key has been recorded in this run.
func (s *Store) IsVisited(key Key) bool {
	_, ok := s.records.Get(key)
	return ok
}

// Record stores rec under rec.Key.
// Returns a DuplicateKeyError if the key is already present.
func (s *Store) Record(rec VisitedRecord) error {
	if s.IsVisited(rec.Key) {
		return &DuplicateKeyError{Key: rec.Key, Name: rec.Name}
	}
	s.records.Set(rec.Key, rec)
	return nil
}

// Get returns the record for key, if any.
func (s *Store) Get(key Key) (VisitedRecord, bool) {
	return s.records.Get(key)
}

// Records returns all visited records in the order they were recorded.
func (s *Store) Records() []VisitedRecord {
	out := make([]VisitedRecord, 0, s.records.Len())
	for el := s.records.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Len returns the number of visited records.
func (s *Store) Len() int {
	return s.records.Len()
}

// AppendEdge appends a parent -> children edge and returns it.
// Edges are never deduplicated; the same parent may appear many times.
func (s *Store) AppendEdge(parent string, children []string) EdgeRecord {
	edge := EdgeRecord{
		Index:    s.entryID,
		Parent:   parent,
		Children: append([]string(nil), children...),
	}
	s.edges = append(s.edges, edge)
	s.entryID++
	return edge
}

// Edges returns the edge list in insertion order.
func (s *Store) Edges() []EdgeRecord {
	return append([]EdgeRecord(nil), s.edges...)
}

// EdgeCount returns the number of recorded edges.
func (s *Store) EdgeCount() int {
	return len(s.edges)
}

// Clear resets the store to empty with the edge counter at zero.
func (s *Store) Clear() {
	s.records = orderedmap.NewOrderedMap[Key, VisitedRecord]()
	s.edges = nil
	s.entryID = 0
	s.seq = 0
}
