package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(markup string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, markup)
}

// text writes escaped character data.
func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

// attr writes one escaped attribute with a leading space.
func (h *htmlWriter) attr(name string, value string) {
	h.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

// flag writes a boolean attribute when on is true.
func (h *htmlWriter) flag(name string, on bool) {
	if on {
		h.raw(" " + name)
	}
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func formatCapacity(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
