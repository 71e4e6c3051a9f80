package walker

import (
	"reflect"

	"github.com/dbsmedya/goinspect/internal/history"
	"github.com/dbsmedya/goinspect/internal/introspect"
)

// InstancePrefix starts the display name of an instance whose ancestors are
// being climbed.
const InstancePrefix = "Instance "

// ClimbBases records the ancestor graph of root in the session history.
// Types contribute their declared bases; any other value is an instance
// whose only ancestor is its type. Every step appends an edge, including
// steps that reach an object already climbed, but each object is expanded
// only once.
func (s *Session) ClimbBases(root any) error {
	v := introspect.Indirect(introspect.ValueOf(root))
	if !v.IsValid() {
		return &InvalidRootError{Op: "bases"}
	}

	label := s.rootLabel(1)
	edges := s.history.EdgeCount()
	s.log.Debugw("ancestor climb started", "caller", label)

	s.climb(v, label)

	s.log.Infow("ancestor climb finished", "caller", label,
		"edges", s.history.EdgeCount()-edges, "visited", s.history.Len())
	return nil
}

func (s *Session) climb(v reflect.Value, label string) {
	name, ancestors := nodeOf(v, label)

	children := make([]string, len(ancestors))
	for i, a := range ancestors {
		children[i], _ = nodeOf(a, introspect.TypeName(a))
	}
	s.history.AppendEdge(name, children)

	log := s.log.WithObject(name)
	key := s.history.KeyOf(v)
	if s.history.IsVisited(key) {
		log.Debug("already climbed")
		return
	}
	rec := history.VisitedRecord{
		Key:      key,
		Name:     name,
		TypeName: introspect.TypeName(v),
		Snapshot: introspect.OwnAttributes(v, s.render),
	}
	if err := s.history.Record(rec); err != nil {
		log.Warnw("failed to record object", "error", err)
		return
	}
	log.Debugw("climbing", "ancestors", children)

	for _, a := range ancestors {
		s.climb(a, introspect.TypeName(a))
	}
}

// nodeOf returns the display name and ancestors of v. Instances are named
// after label since they have no name of their own.
func nodeOf(v reflect.Value, label string) (string, []reflect.Value) {
	v = introspect.Indirect(v)
	ancestors, isType := introspect.Ancestors(v)
	if !isType {
		return InstancePrefix + label, ancestors
	}
	return introspect.DisplayName(v), ancestors
}
