// Package walker implements the two recursive traversals of goinspect: the
// attribute drilldown, which reports every member of an object and follows a
// single named member, and the ancestor climb, which records the base graph
// of a type. Both share a Session holding the visit history of one run.
package walker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dbsmedya/goinspect/internal/callsite"
	"github.com/dbsmedya/goinspect/internal/history"
	"github.com/dbsmedya/goinspect/internal/logger"
	"github.com/dbsmedya/goinspect/internal/report"
	"github.com/dbsmedya/goinspect/internal/textfmt"
)

// InvalidRootError is returned when a walk starts from nothing.
type InvalidRootError struct {
	Op string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("%s: root is nil and cannot be inspected", e.Op)
}

// Session is one traversal run. Objects visited by any walk on the session
// are not reported again until Reset is called. A Session is not safe for
// concurrent use.
type Session struct {
	id       string
	history  *history.Store
	sink     report.Sink
	log      *logger.Logger
	renderer *textfmt.Renderer
	label    string
}

// Option configures a Session.
type Option func(s *Session)

// WithSink directs drilldown reports to sink.
func WithSink(sink report.Sink) Option {
	return func(s *Session) {
		s.sink = sink
	}
}

// WithLogger sets the logger; walks log at debug level.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithRenderer sets how member values are turned into text.
func WithRenderer(r *textfmt.Renderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithLabel fixes the caller label instead of reading it from the calling
// statement.
func WithLabel(label string) Option {
	return func(s *Session) {
		s.label = label
	}
}

// NewSession creates a session with an empty history. Without options the
// reports are recorded in memory and nothing is logged.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		history:  history.NewStore(),
		sink:     report.NewRecorder(),
		log:      logger.NewNop(),
		renderer: textfmt.NewRenderer(textfmt.RendererFmt, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithSession(s.id)
	return s
}

// ID returns the run id used in log entries.
func (s *Session) ID() string {
	return s.id
}

// History returns the visit history of the session.
func (s *Session) History() *history.Store {
	return s.history
}

// Sink returns the sink receiving drilldown reports.
func (s *Session) Sink() report.Sink {
	return s.sink
}

// Reset forgets every visited object and edge so the session can start an
// independent traversal.
func (s *Session) Reset() {
	s.history.Clear()
	s.log.Debug("history cleared")
}

// rootLabel returns the label of the statement skip levels above the caller.
func (s *Session) rootLabel(skip int) string {
	if s.label != "" {
		return s.label
	}
	return callsite.Label(skip + 1)
}
