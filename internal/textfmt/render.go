package textfmt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Renderer names accepted by NewRenderer.
const (
	RendererFmt  = "fmt"
	RendererSpew = "spew"
)

// DefaultSpewDepth limits how far the spew renderer descends into a value.
const DefaultSpewDepth = 3

// Renderer converts inspected values into report text.
type Renderer struct {
	mode string
	spew *spew.ConfigState
}

// NewRenderer creates a renderer for the given mode. Unknown modes fall back
// to fmt. spewDepth is only used by the spew renderer; values <= 0 select
// DefaultSpewDepth.
func NewRenderer(mode string, spewDepth int) *Renderer {
	if spewDepth <= 0 {
		spewDepth = DefaultSpewDepth
	}
	r := &Renderer{mode: RendererFmt}
	if mode == RendererSpew {
		r.mode = RendererSpew
		r.spew = &spew.ConfigState{
			Indent:                  "  ",
			MaxDepth:                spewDepth,
			SortKeys:                true,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}
	}
	return r
}

// Mode returns the active renderer mode.
func (r *Renderer) Mode() string {
	return r.mode
}

// Render returns the text form of v. Functions render as their signature
// since their address carries no useful information.
func (r *Renderer) Render(v reflect.Value) string {
	if !v.IsValid() {
		return "<nil>"
	}
	if v.Kind() == reflect.Func {
		if v.IsNil() {
			return "<nil>"
		}
		return v.Type().String()
	}
	if r.mode == RendererSpew && v.CanInterface() {
		return strings.TrimRight(r.spew.Sdump(v.Interface()), "\n")
	}
	return fmt.Sprintf("%v", v)
}
