package folio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eringen/folio/lightbox"
)

// Content is the static part of the site: the bookshelf, the photo gallery
// and the Markdown sources of the about and contact pages.
type Content struct {
	Books   []Book
	Photos  []Photo
	About   string
	Contact string
	// Modified holds, per page ("about", "bookshelf", "contact"), the newest
	// modification time of the files the page is built from.
	Modified map[string]time.Time
}

// LoadContent reads dir/books.yaml, dir/photos.yaml, dir/pages/about.md and
// dir/pages/contact.md. Missing files yield empty sections.
func LoadContent(dir string) (*Content, error) {
	c := &Content{Modified: make(map[string]time.Time)}
	sources := []struct {
		page  string
		path  string
		apply func([]byte) error
	}{
		{"bookshelf", filepath.Join(dir, "books.yaml"), yamlInto(&c.Books)},
		{"about", filepath.Join(dir, "photos.yaml"), yamlInto(&c.Photos)},
		{"about", filepath.Join(dir, "pages", "about.md"), textInto(&c.About)},
		{"contact", filepath.Join(dir, "pages", "contact.md"), textInto(&c.Contact)},
	}
	for _, src := range sources {
		data, mod, err := readSource(src.path)
		if err != nil {
			return nil, err
		}
		if data == nil {
			continue
		}
		if err := src.apply(data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", src.path, err)
		}
		if mod.After(c.Modified[src.page]) {
			c.Modified[src.page] = mod
		}
	}
	return c, nil
}

// readSource returns the file's bytes and modification time, or nil data
// when it does not exist.
func readSource(path string) ([]byte, time.Time, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("read %s: %w", path, err)
	}
	return data, info.ModTime(), nil
}

func yamlInto(v any) func([]byte) error {
	return func(data []byte) error { return yaml.Unmarshal(data, v) }
}

func textInto(s *string) func([]byte) error {
	return func(data []byte) error {
		*s = string(data)
		return nil
	}
}

// Shelf splits the books into the featured one (nil if none is marked) and
// the grid, keeping file order.
func (c *Content) Shelf() (*Book, []Book) {
	var hero *Book
	var rest []Book
	for i := range c.Books {
		if c.Books[i].Hero && hero == nil {
			hero = &c.Books[i]
			continue
		}
		rest = append(rest, c.Books[i])
	}
	return hero, rest
}

// GalleryItems returns the photos as viewer items, in gallery order.
func (c *Content) GalleryItems() []lightbox.Item {
	items := make([]lightbox.Item, 0, len(c.Photos))
	for _, p := range c.Photos {
		items = append(items, lightbox.Item{Src: p.Src, Alt: p.Alt, Caption: p.Caption})
	}
	return items
}

// BookItems returns the grid covers as viewer items. The hero is excluded.
func (c *Content) BookItems() []lightbox.Item {
	_, books := c.Shelf()
	items := make([]lightbox.Item, 0, len(books))
	for _, b := range books {
		items = append(items, lightbox.Item{
			Src:     b.Cover,
			Alt:     BookLabel(b),
			Caption: b.Note,
		})
	}
	return items
}

// BookLabel is the "Title by Author" text used for alt text and captions.
func BookLabel(b Book) string {
	if b.Author == "" {
		return b.Title
	}
	return b.Title + " by " + b.Author
}
