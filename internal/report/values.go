package report

import (
	"fmt"
	"strings"

	"github.com/dbsmedya/goinspect/internal/introspect"
	"github.com/dbsmedya/goinspect/internal/textfmt"
)

// ValuesOptions controls Values.
type ValuesOptions struct {
	Mode           string            // ModeText or ModeMarkup
	ExcludePrefix  string            // Members starting with this are skipped; "" disables filtering
	MaxOutputChars int               // Per-value bound, textfmt.Unbounded for none
	Renderer       *textfmt.Renderer // nil selects the fmt renderer
}

// DefaultValuesOptions hides the reflective pseudo-members.
func DefaultValuesOptions() ValuesOptions {
	return ValuesOptions{
		Mode:           ModeText,
		ExcludePrefix:  introspect.PseudoPrefix,
		MaxOutputChars: textfmt.Unbounded,
	}
}

// Values lists the type of x followed by each of its members and their
// values, one level deep. Members that fail to resolve are reported inline.
func Values(x any, opts ValuesOptions) string {
	renderer := opts.Renderer
	if renderer == nil {
		renderer = textfmt.NewRenderer(textfmt.RendererFmt, 0)
	}

	v := introspect.ValueOf(x)
	typeName := "<nil>"
	if v.IsValid() {
		typeName = v.Type().String()
	}

	var sb strings.Builder
	markup := opts.Mode == ModeMarkup
	if markup {
		fmt.Fprintf(&sb, "Variable type: %s<br>", Escape(typeName))
	} else {
		fmt.Fprintf(&sb, "Variable type: %s\n", typeName)
	}

	for _, name := range introspect.Members(v) {
		if opts.ExcludePrefix != "" && strings.HasPrefix(name, opts.ExcludePrefix) {
			continue
		}

		var value string
		if mv, err := introspect.Member(v, name); err != nil {
			value = ErrorPlaceholder(err)
		} else {
			value = textfmt.Truncate(renderer.Render(mv), opts.MaxOutputChars)
		}

		if markup {
			fmt.Fprintf(&sb, "<hr>%s:<br>%s<br>%s", Escape(name), textfmt.Rule("-", DefaultNameWidth), Escape(value))
		} else {
			fmt.Fprintf(&sb, "\n%s:\n%s\n%s\n", name, textfmt.Rule("-", DefaultNameWidth), value)
		}
	}
	return sb.String()
}

// ErrorPlaceholder is reported in place of a member that failed to resolve.
func ErrorPlaceholder(err error) string {
	return fmt.Sprintf("** Error resolving member: %v **", err)
}

// ExcludedPlaceholder is reported in place of a member that is never resolved.
func ExcludedPlaceholder(name string) string {
	return fmt.Sprintf("** Not evaluated, resolving %s can panic or has side effects **", name)
}
