package lightbox

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RootAttr marks the element whose images a ScanSource enumerates.
const RootAttr = "data-lightbox-root"

// Trigger identifies the element that was activated to open a session.
// For static lists Position is the item index. For scans it is the ordinal
// of the clicked <img> among every image under the scan root, linked or not.
type Trigger struct {
	Position int
}

// Source supplies the items of a session. Sources never cache between calls:
// every open derives its items afresh.
type Source interface {
	// Items returns the ordered sequence a session would open over.
	Items(ctx context.Context) ([]Item, error)
	// Resolve maps a trigger to the items and the start index. A trigger
	// that does not designate an eligible item yields no items.
	Resolve(ctx context.Context, t Trigger) ([]Item, int, error)
}

// StaticSource serves a fixed, pre-ordered list.
type StaticSource []Item

func (s StaticSource) Items(context.Context) ([]Item, error) {
	return []Item(s), nil
}

func (s StaticSource) Resolve(_ context.Context, t Trigger) ([]Item, int, error) {
	if t.Position < 0 || t.Position >= len(s) {
		return nil, -1, nil
	}
	return []Item(s), t.Position, nil
}

// ScanSource enumerates images in rendered markup. Render is called on every
// Items or Resolve so edits to the content are picked up by the next open.
//
// Only images inside the first element carrying RootAttr are considered.
// Images that descend from a hyperlink are skipped, as are images inside a
// nested element that carries RootAttr itself (a separate region).
type ScanSource struct {
	Render func(ctx context.Context) ([]byte, error)
}

// candidate is an image under the root in document order.
type candidate struct {
	item     Item
	eligible bool
}

func (s ScanSource) Items(ctx context.Context) ([]Item, error) {
	cands, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}
	return eligibleItems(cands), nil
}

func (s ScanSource) Resolve(ctx context.Context, t Trigger) ([]Item, int, error) {
	cands, err := s.scan(ctx)
	if err != nil {
		return nil, -1, err
	}
	if t.Position < 0 || t.Position >= len(cands) || !cands[t.Position].eligible {
		return nil, -1, nil
	}
	start := 0
	for _, c := range cands[:t.Position] {
		if c.eligible {
			start++
		}
	}
	return eligibleItems(cands), start, nil
}

func eligibleItems(cands []candidate) []Item {
	var items []Item
	for _, c := range cands {
		if c.eligible {
			items = append(items, c.item)
		}
	}
	return items
}

func (s ScanSource) scan(ctx context.Context) ([]candidate, error) {
	if s.Render == nil {
		return nil, nil
	}
	markup, err := s.Render(ctx)
	if err != nil {
		return nil, fmt.Errorf("render scan root: %w", err)
	}
	doc, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse scan root: %w", err)
	}
	root := findRoot(doc)
	if root == nil {
		return nil, nil
	}
	var cands []candidate
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		collect(c, false, &cands)
	}
	return cands, nil
}

func findRoot(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && hasAttr(n, RootAttr) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if r := findRoot(c); r != nil {
			return r
		}
	}
	return nil
}

func collect(n *html.Node, linked bool, out *[]candidate) {
	if n.Type == html.ElementNode {
		switch {
		case hasAttr(n, RootAttr):
			return
		case n.DataAtom == atom.A && hasAttr(n, "href"):
			linked = true
		case n.DataAtom == atom.Img:
			src := strings.TrimSpace(attr(n, "src"))
			*out = append(*out, candidate{
				item: Item{
					Src:     src,
					Alt:     attr(n, "alt"),
					Caption: attr(n, "title"),
				},
				eligible: !linked && src != "",
			})
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, linked, out)
	}
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
