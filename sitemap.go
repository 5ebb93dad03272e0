package folio

import (
	"encoding/xml"
	"time"
)

const sitemapContentType = "application/xml; charset=utf-8"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	ImageNS string       `xml:"xmlns:image,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string         `xml:"loc"`
	LastMod string         `xml:"lastmod,omitempty"`
	Images  []sitemapImage `xml:"image:image"`
}

type sitemapImage struct {
	Loc string `xml:"image:loc"`
}

// staticPages are the non-post pages listed in the sitemap, in nav order.
var staticPages = []string{"about", "blog", "bookshelf", "contact"}

// newSitemap lists the home page, the static pages and every published post.
// Content pages carry the modification time of their source files and the
// images shown on them; the home and blog index carry the newest post date.
func newSitemap(cfg SiteConfig, posts []BlogPost, content *Content) sitemapURLSet {
	if content == nil {
		content = &Content{}
	}
	newest := ""
	if len(posts) > 0 {
		newest = posts[0].Date
	}
	urls := []sitemapURL{{Loc: cfg.PageURL(), LastMod: newest}}
	for _, page := range staticPages {
		u := sitemapURL{Loc: cfg.PageURL(page)}
		switch page {
		case "blog":
			u.LastMod = newest
		case "about":
			for _, p := range content.Photos {
				u.Images = append(u.Images, sitemapImage{Loc: cfg.AssetURL(p.Src)})
			}
		case "bookshelf":
			for _, b := range content.Books {
				if b.Cover != "" {
					u.Images = append(u.Images, sitemapImage{Loc: cfg.AssetURL(b.Cover)})
				}
			}
		}
		if mod, ok := content.Modified[page]; ok && !mod.IsZero() {
			u.LastMod = mod.UTC().Format(time.DateOnly)
		}
		urls = append(urls, u)
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     cfg.PageURL("blog", p.Slug),
			LastMod: p.Date,
		})
	}
	return sitemapURLSet{
		XMLNS:   "http://www.sitemaps.org/schemas/sitemap/0.9",
		ImageNS: "http://www.google.com/schemas/sitemap-image/1.1",
		URLs:    urls,
	}
}
