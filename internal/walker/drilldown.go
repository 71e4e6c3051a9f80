package walker

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dbsmedya/goinspect/internal/history"
	"github.com/dbsmedya/goinspect/internal/introspect"
	"github.com/dbsmedya/goinspect/internal/report"
	"github.com/dbsmedya/goinspect/internal/textfmt"
)

// DrillOptions controls DrillDown.
type DrillOptions struct {
	Attribute      string   // Member to recurse into; empty reports the root only
	MaxOutputChars int      // Bound on each rendered value, textfmt.Unbounded for none
	IgnorePrefix   string   // Members starting with this are not reported; empty reports all
	Exclude        []string // Members reported with a placeholder and never resolved
}

// DefaultDrillOptions reports everything without recursing. Stringer output
// is not evaluated since String methods on partially built values panic.
func DefaultDrillOptions() DrillOptions {
	return DrillOptions{
		MaxOutputChars: textfmt.Unbounded,
		Exclude:        []string{introspect.MemberString},
	}
}

func (o DrillOptions) excluded(name string) bool {
	for _, e := range o.Exclude {
		if e == name {
			return true
		}
	}
	return false
}

// DrillDown reports root and every member on it, then follows
// opts.Attribute into whatever it resolves to and repeats. Resolved
// sequences are walked element by element. Each object is reported at most
// once per session, which bounds the walk on cyclic graphs.
func (s *Session) DrillDown(root any, opts DrillOptions) error {
	v := introspect.Indirect(introspect.ValueOf(root))
	if !v.IsValid() {
		return &InvalidRootError{Op: "drilldown"}
	}

	caller := s.rootLabel(1)
	before := s.history.Len()
	s.log.Debugw("drilldown started", "caller", caller, "attribute", opts.Attribute)

	s.drill(v, opts, caller, 0)

	s.log.Infow("drilldown finished", "caller", caller, "reported", s.history.Len()-before)
	return nil
}

func (s *Session) drill(v reflect.Value, opts DrillOptions, caller string, depth int) {
	v = introspect.Indirect(v)
	members := introspect.Members(v)
	name := introspect.DisplayName(v)
	log := s.log.WithObject(name)

	key := s.history.KeyOf(v)
	if s.history.IsVisited(key) {
		log.Debugw("already reported", "id", key.String())
		return
	}
	typeName := introspect.TypeName(v)
	if err := s.history.Record(history.VisitedRecord{Key: key, Name: name, TypeName: typeName}); err != nil {
		log.Warnw("failed to record object", "error", err)
		return
	}

	s.sink.BeginObject(report.Header{
		Caller:   caller,
		ID:       key.String(),
		TypeName: typeName,
		Name:     name,
		Depth:    depth,
	})
	for _, member := range members {
		if opts.IgnorePrefix != "" && strings.HasPrefix(member, opts.IgnorePrefix) {
			continue
		}
		s.sink.Member(member, s.memberText(v, member, opts))
	}
	s.sink.EndObject()

	if opts.Attribute == "" {
		return
	}
	if opts.excluded(opts.Attribute) {
		log.Debugw("drilldown attribute is excluded", "attribute", opts.Attribute)
		return
	}

	next, err := introspect.Member(v, opts.Attribute)
	if err != nil {
		log.Debugw("drilldown ends", "attribute", opts.Attribute, "reason", err)
		return
	}
	targets := introspect.Normalize(next)
	if len(targets) == 0 {
		log.Debugw("drilldown ends", "attribute", opts.Attribute, "reason", "nil")
		return
	}

	childCaller := name + "." + opts.Attribute
	for _, target := range targets {
		s.drill(target, opts, childCaller, depth+1)
	}
}

// memberText renders one member. Failures become placeholders so a single
// bad member never aborts the walk.
func (s *Session) memberText(v reflect.Value, member string, opts DrillOptions) string {
	if opts.excluded(member) {
		return report.ExcludedPlaceholder(member)
	}
	mv, err := introspect.Member(v, member)
	if err != nil {
		return report.ErrorPlaceholder(err)
	}
	return textfmt.Truncate(s.render(mv), opts.MaxOutputChars)
}

func (s *Session) render(v reflect.Value) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = report.ErrorPlaceholder(fmt.Errorf("rendering panicked: %v", r))
		}
	}()
	return s.renderer.Render(v)
}
