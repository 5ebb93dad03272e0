package lightbox

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Frame is what the overlay shows for a session.
type Frame struct {
	Open      bool
	Item      Item
	Index     int
	Total     int
	PrevIndex int
	NextIndex int
	// ShowNav is false for single-item sessions: no prev/next controls and
	// no counter.
	ShowNav bool
	Counter string
}

// FrameOf derives the frame for s. A closed session yields the zero Frame.
func FrameOf(s *Session) Frame {
	item, ok := s.Current()
	if !ok {
		return Frame{}
	}
	f := Frame{
		Open:      true,
		Item:      item,
		Index:     s.Index(),
		Total:     s.Len(),
		PrevIndex: s.PrevIndex(),
		NextIndex: s.NextIndex(),
		ShowNav:   s.Len() > 1,
	}
	if f.ShowNav {
		f.Counter = fmt.Sprintf("%d / %d", f.Index+1, f.Total)
	}
	return f
}

// DocumentHost is the Host used when the overlay is rendered as an HTML
// fragment. The browser holds the real listener and scroll state; the
// fragment carries both, so swapping it out of the page releases them.
// DocumentHost records what the fragment has to carry.
type DocumentHost struct {
	keys   bool
	scroll bool
}

func (h *DocumentHost) BindKeys(func(Key)) func() {
	h.keys = true
	return func() { h.keys = false }
}

func (h *DocumentHost) LockScroll() func() {
	h.scroll = true
	return func() { h.scroll = false }
}

func (h *DocumentHost) KeysBound() bool    { return h.keys }
func (h *DocumentHost) ScrollLocked() bool { return h.scroll }

// NewDocument returns a Lightbox backed by a fresh DocumentHost.
func NewDocument() (*Lightbox, *DocumentHost) {
	host := &DocumentHost{}
	return New(host), host
}

// KeyAttr marks the control a bound key activates.
const KeyAttr = "data-lightbox-key"

// Routes tells the overlay where its controls point.
type Routes struct {
	// Page is the URL of the page hosting the viewer. Controls link to it
	// with ?lightbox=N so they work without JavaScript.
	Page string
	// Fragment is the htmx endpoint returning the next overlay state.
	Fragment string
	// Target is the selector of the overlay slot. Defaults to "#lightbox".
	Target string
}

func (r Routes) target() string {
	if r.Target == "" {
		return "#lightbox"
	}
	return r.Target
}

// PageAt returns the no-JS URL with the viewer open at index.
func (r Routes) PageAt(index int) string {
	return r.Page + "?lightbox=" + strconv.Itoa(index)
}

// FragmentFor returns the htmx URL applying op to the session open at at.
func (r Routes) FragmentFor(at int, op Op) string {
	q := url.Values{}
	q.Set("at", strconv.Itoa(at))
	if op != OpNone {
		q.Set("op", string(op))
	}
	return r.Fragment + "?" + q.Encode()
}

// TriggerFor returns the htmx URL opening a session from trigger position p.
func (r Routes) TriggerFor(p int) string {
	return r.Fragment + "?img=" + strconv.Itoa(p)
}

// Overlay renders lb. It renders nothing when the session is closed.
func Overlay(lb *Lightbox, host *DocumentHost, routes Routes) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		f := FrameOf(lb.Session())
		if !f.Open {
			return nil
		}
		var b strings.Builder
		b.WriteString(`<div class="lightbox" role="dialog" aria-modal="true" aria-label="Image viewer">`)
		if host != nil && host.ScrollLocked() {
			b.WriteString(`<style data-scroll-lock>html,body{overflow:hidden}</style>`)
		}
		writeControl(&b, lb, host, routes, "lightbox-backdrop", routes.Page, routes.FragmentFor(f.Index, OpClose), OpNone, "Close viewer", "")
		b.WriteString(`<figure class="lightbox-figure">`)
		b.WriteString(`<img class="lightbox-image" src="` + templ.EscapeString(f.Item.Src) + `" alt="` + templ.EscapeString(f.Item.Alt) + `"/>`)
		if f.Item.Caption != "" {
			b.WriteString(`<figcaption>` + templ.EscapeString(f.Item.Caption) + `</figcaption>`)
		}
		b.WriteString(`</figure>`)
		writeControl(&b, lb, host, routes, "lightbox-close", routes.Page, routes.FragmentFor(f.Index, OpClose), OpClose, "Close", "&times;")
		if f.ShowNav {
			writeControl(&b, lb, host, routes, "lightbox-prev", routes.PageAt(f.PrevIndex), routes.FragmentFor(f.Index, OpPrev), OpPrev, "Previous image", "&lsaquo;")
			writeControl(&b, lb, host, routes, "lightbox-next", routes.PageAt(f.NextIndex), routes.FragmentFor(f.Index, OpNext), OpNext, "Next image", "&rsaquo;")
			b.WriteString(`<p class="lightbox-counter">` + f.Counter + `</p>`)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writeControl writes an anchor that navigates to href without JavaScript
// and swaps the overlay slot with fragment under htmx. When bound is not
// OpNone and the host holds the key binding, the anchor is marked with the
// key that fires it. The page's single key listener looks the marked anchor
// up in the live overlay when the key is handled, so successive presses each
// act on the state the previous one produced.
func writeControl(b *strings.Builder, lb *Lightbox, host *DocumentHost, routes Routes, class, href, fragment string, bound Op, label, body string) {
	b.WriteString(`<a class="` + class + `"`)
	if bound != OpNone && host != nil && host.KeysBound() {
		if k, ok := lb.Keymap().KeyFor(bound); ok {
			b.WriteString(` ` + KeyAttr + `="` + templ.EscapeString(string(k)) + `"`)
		}
	}
	b.WriteString(` href="` + templ.EscapeString(href) + `"`)
	b.WriteString(` hx-get="` + templ.EscapeString(fragment) + `" hx-target="` + templ.EscapeString(routes.target()) + `" hx-swap="innerHTML"`)
	b.WriteString(` aria-label="` + templ.EscapeString(label) + `">` + body + `</a>`)
}
