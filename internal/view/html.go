// Package view renders the server-side HTML pages as templ components.
package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first write error, so
// components can emit a page without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// tags writes one span per item. Nothing is written for an empty list.
func (h *htmlWriter) tags(class string, items []string) {
	for _, item := range items {
		h.raw(`<span class="` + class + `">`)
		h.text(item)
		h.raw(`</span>`)
	}
}
