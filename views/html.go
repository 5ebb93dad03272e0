package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so markup code can stay linear.
type writer struct {
	out io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err == nil {
		_, w.err = io.WriteString(w.out, s)
	}
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (w *writer) attr(name, value string) {
	w.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (w *writer) render(ctx context.Context, c templ.Component) {
	if w.err == nil && c != nil {
		w.err = c.Render(ctx, w.out)
	}
}

func component(fn func(ctx context.Context, w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{out: out}
		fn(ctx, w)
		return w.err
	})
}
