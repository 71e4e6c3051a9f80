// Package report renders inspection results. Walkers describe each visited
// object as a header followed by name/value rows; a Sink decides where and
// how those rows are written.
package report

// Output modes.
const (
	ModeText   = "text"
	ModeMarkup = "markup"
)

// Header identifies an inspected object at the top of its report block.
type Header struct {
	Caller   string `yaml:"caller"`    // Expression or path that led to the object
	ID       string `yaml:"id"`        // Identity key
	TypeName string `yaml:"type_name"` // Name of the object's type
	Name     string `yaml:"name"`      // Display name
	Depth    int    `yaml:"depth"`     // Recursion depth, 0 for the root
}

// Row is a single member of an inspected object.
type Row struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Sink receives the report of a walk. Each object produces one BeginObject,
// zero or more Member calls and one EndObject.
type Sink interface {
	BeginObject(h Header)
	Member(name, value string)
	EndObject()
}

// Block is one recorded object report.
type Block struct {
	Header Header `yaml:"header"`
	Rows   []Row  `yaml:"rows"`
}

// Recorder is a Sink that keeps every block in memory.
type Recorder struct {
	Blocks []Block
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// BeginObject starts a new block.
func (r *Recorder) BeginObject(h Header) {
	r.Blocks = append(r.Blocks, Block{Header: h})
}

// Member appends a row to the current block.
func (r *Recorder) Member(name, value string) {
	if len(r.Blocks) == 0 {
		return
	}
	cur := &r.Blocks[len(r.Blocks)-1]
	cur.Rows = append(cur.Rows, Row{Name: name, Value: value})
}

// EndObject is a no-op; blocks are complete once the next one begins.
func (r *Recorder) EndObject() {}

// Headers returns the header of every recorded block in order.
func (r *Recorder) Headers() []Header {
	headers := make([]Header, len(r.Blocks))
	for i, b := range r.Blocks {
		headers[i] = b.Header
	}
	return headers
}

// Names returns the display name of every recorded block in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.Blocks))
	for i, b := range r.Blocks {
		names[i] = b.Header.Name
	}
	return names
}

// Reset drops all recorded blocks.
func (r *Recorder) Reset() {
	r.Blocks = nil
}

// multiSink fans a report out to several sinks.
type multiSink []Sink

// Tee returns a Sink that forwards every call to each of sinks in order.
func Tee(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) BeginObject(h Header) {
	for _, s := range m {
		s.BeginObject(h)
	}
}

func (m multiSink) Member(name, value string) {
	for _, s := range m {
		s.Member(name, value)
	}
}

func (m multiSink) EndObject() {
	for _, s := range m {
		s.EndObject()
	}
}
