package report

import (
	"fmt"
	"html"
	"io"

	"github.com/gookit/color"

	"github.com/dbsmedya/goinspect/internal/textfmt"
)

const (
	// DefaultNameWidth is the column width used for member names.
	DefaultNameWidth = 20
	ruleWidth        = 80
)

// TextSink writes plain line-separated reports.
type TextSink struct {
	w         io.Writer
	nameWidth int
	colored   bool
	label     color.Style
	rule      color.Style
}

// NewTextSink creates a text sink. nameWidth <= 0 selects DefaultNameWidth.
// When colored is set, header labels and rules are highlighted.
func NewTextSink(w io.Writer, nameWidth int, colored bool) *TextSink {
	if nameWidth <= 0 {
		nameWidth = DefaultNameWidth
	}
	return &TextSink{
		w:         w,
		nameWidth: nameWidth,
		colored:   colored,
		label:     color.New(color.FgCyan, color.OpBold),
		rule:      color.New(color.FgGray),
	}
}

func (s *TextSink) paint(style color.Style, text string) string {
	if !s.colored {
		return text
	}
	return style.Sprint(text)
}

// BeginObject writes the header block.
func (s *TextSink) BeginObject(h Header) {
	fmt.Fprintln(s.w)
	fmt.Fprintln(s.w, s.paint(s.rule, textfmt.Rule("*", ruleWidth)))
	fmt.Fprintf(s.w, "%s %s\n", s.paint(s.label, "Inspection called by:"), h.Caller)
	fmt.Fprintf(s.w, "%s %s\n", s.paint(s.label, "The type name of this object is:"), h.TypeName)
	fmt.Fprintf(s.w, "%s %s\n", s.paint(s.label, "The name of this object is:"), h.Name)
	fmt.Fprintf(s.w, "%s %s\n", s.paint(s.label, "The object id is:"), h.ID)
	fmt.Fprintln(s.w, s.paint(s.rule, textfmt.Rule("-", ruleWidth)))
}

// Member writes one aligned name = value row.
func (s *TextSink) Member(name, value string) {
	fmt.Fprintf(s.w, "%s = %s\n", textfmt.PadRight(name, s.nameWidth), value)
}

// EndObject closes the block with a rule.
func (s *TextSink) EndObject() {
	fmt.Fprintln(s.w, s.paint(s.rule, textfmt.Rule("-", ruleWidth)))
}

// MarkupSink writes HTML fragments. Values that merely look like a single
// tag, such as "<nil>", are unwrapped before escaping.
type MarkupSink struct {
	w io.Writer
}

// NewMarkupSink creates a markup sink.
func NewMarkupSink(w io.Writer) *MarkupSink {
	return &MarkupSink{w: w}
}

// Escape prepares a value for markup output.
func Escape(value string) string {
	return html.EscapeString(textfmt.StripSingleTag(value))
}

// BeginObject writes the header block.
func (s *MarkupSink) BeginObject(h Header) {
	fmt.Fprintf(s.w, "<hr><b>Inspection called by:</b> %s<br>", Escape(h.Caller))
	fmt.Fprintf(s.w, "<b>Type:</b> %s<br>", Escape(h.TypeName))
	fmt.Fprintf(s.w, "<b>Name:</b> %s<br>", Escape(h.Name))
	fmt.Fprintf(s.w, "<b>Object id:</b> %s<br>\n", Escape(h.ID))
}

// Member writes one row.
func (s *MarkupSink) Member(name, value string) {
	fmt.Fprintf(s.w, "<hr>%s:<br>%s<br>%s\n", html.EscapeString(name), textfmt.Rule("-", DefaultNameWidth), Escape(value))
}

// EndObject closes the block.
func (s *MarkupSink) EndObject() {
	fmt.Fprintln(s.w, "<hr>")
}

// NewSink returns the sink for the given mode, falling back to text.
func NewSink(mode string, w io.Writer, nameWidth int, colored bool) Sink {
	if mode == ModeMarkup {
		return NewMarkupSink(w)
	}
	return NewTextSink(w, nameWidth, colored)
}
