package folio

import (
	"encoding/json"
	"strings"
)

// Structured data for the <head> of each page. json.Marshal escapes <, >
// and &, so the output is safe inside a script element.

const schemaContext = "https://schema.org"

type ldPerson struct {
	Type  string `json:"@type"`
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Email string `json:"email,omitempty"`
}

type ldOrganization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type ldImage struct {
	Type        string `json:"@type"`
	ContentURL  string `json:"contentUrl"`
	Caption     string `json:"caption,omitempty"`
	Description string `json:"description,omitempty"`
}

type ldBook struct {
	Type   string    `json:"@type"`
	Name   string    `json:"name"`
	Author *ldPerson `json:"author,omitempty"`
	Image  string    `json:"image,omitempty"`
	URL    string    `json:"url,omitempty"`
}

type ldListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Item     ldBook `json:"item"`
}

func (c SiteConfig) author() *ldPerson {
	if c.Author == "" {
		return nil
	}
	return &ldPerson{Type: "Person", Name: c.Author, URL: c.PageURL("about")}
}

func marshalLD(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebsiteJsonLD describes the site itself.
func WebsiteJsonLD(cfg SiteConfig) string {
	return marshalLD(struct {
		Context     string    `json:"@context"`
		Type        string    `json:"@type"`
		Name        string    `json:"name"`
		URL         string    `json:"url"`
		Description string    `json:"description,omitempty"`
		Author      *ldPerson `json:"author,omitempty"`
	}{schemaContext, "WebSite", cfg.Name, cfg.PageURL(), cfg.Description, cfg.author()})
}

// BlogPostingJsonLD describes a post page.
func BlogPostingJsonLD(post BlogPost, cfg SiteConfig) string {
	postURL := cfg.PageURL("blog", post.Slug)
	var publisher *ldOrganization
	if cfg.Name != "" {
		publisher = &ldOrganization{Type: "Organization", Name: cfg.Name}
	}
	return marshalLD(struct {
		Context          string            `json:"@context"`
		Type             string            `json:"@type"`
		Headline         string            `json:"headline"`
		Description      string            `json:"description,omitempty"`
		DatePublished    string            `json:"datePublished"`
		URL              string            `json:"url"`
		MainEntityOfPage map[string]string `json:"mainEntityOfPage"`
		Author           *ldPerson         `json:"author,omitempty"`
		Publisher        *ldOrganization   `json:"publisher,omitempty"`
		Keywords         string            `json:"keywords,omitempty"`
	}{
		Context:          schemaContext,
		Type:             "BlogPosting",
		Headline:         post.Title,
		Description:      post.Summary,
		DatePublished:    post.Date,
		URL:              postURL,
		MainEntityOfPage: map[string]string{"@type": "WebPage", "@id": postURL},
		Author:           cfg.author(),
		Publisher:        publisher,
		Keywords:         strings.Join(post.Tags, ", "),
	})
}

// ProfileJsonLD describes the about page: the site's author and the photos
// of the gallery.
func ProfileJsonLD(cfg SiteConfig, photos []Photo) string {
	person := ldPerson{Type: "Person", Name: cfg.Author, URL: cfg.PageURL("about"), Email: cfg.Email}
	if person.Name == "" {
		person.Name = cfg.Name
	}
	images := make([]ldImage, 0, len(photos))
	for _, p := range photos {
		images = append(images, ldImage{
			Type:        "ImageObject",
			ContentURL:  cfg.AssetURL(p.Src),
			Caption:     p.Caption,
			Description: p.Alt,
		})
	}
	return marshalLD(struct {
		Context    string    `json:"@context"`
		Type       string    `json:"@type"`
		URL        string    `json:"url"`
		MainEntity ldPerson  `json:"mainEntity"`
		Image      []ldImage `json:"image,omitempty"`
	}{schemaContext, "ProfilePage", cfg.PageURL("about"), person, images})
}

// BookshelfJsonLD lists the shelf as an ItemList of books, the featured book
// first.
func BookshelfJsonLD(cfg SiteConfig, hero *Book, books []Book) string {
	shelf := books
	if hero != nil {
		shelf = append([]Book{*hero}, books...)
	}
	items := make([]ldListItem, 0, len(shelf))
	for i, b := range shelf {
		book := ldBook{Type: "Book", Name: b.Title, Image: cfg.AssetURL(b.Cover), URL: b.URL}
		if b.Author != "" {
			book.Author = &ldPerson{Type: "Person", Name: b.Author}
		}
		items = append(items, ldListItem{Type: "ListItem", Position: i + 1, Item: book})
	}
	return marshalLD(struct {
		Context string       `json:"@context"`
		Type    string       `json:"@type"`
		Name    string       `json:"name"`
		URL     string       `json:"url"`
		Items   []ldListItem `json:"itemListElement"`
	}{schemaContext, "ItemList", "Bookshelf", cfg.PageURL("bookshelf"), items})
}
