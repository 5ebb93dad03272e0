package folio

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"
)

func TestNewFeed(t *testing.T) {
	cfg := SiteConfig{Name: "Site", URL: "https://example.com", Description: "Notes"}
	feed := newFeed(cfg, []BlogPost{
		{Slug: "newer", Title: "Newer", Date: "2024-05-02", Tags: []string{"go"}},
		{Slug: "older", Title: "Older", Date: "not a date"},
	})

	ch := feed.Channel
	if ch.Self.Href != "https://example.com/feed.xml" || ch.Link != "https://example.com/" {
		t.Errorf("channel links = %q / %q", ch.Self.Href, ch.Link)
	}
	if !strings.HasPrefix(ch.LastBuildDate, "Thu, 02 May 2024") {
		t.Errorf("LastBuildDate = %q, want the newest post date", ch.LastBuildDate)
	}
	if len(ch.Items) != 2 {
		t.Fatalf("got %d items", len(ch.Items))
	}
	if ch.Items[0].GUID.Value != "https://example.com/blog/newer/" || !ch.Items[0].GUID.IsPermaLink {
		t.Errorf("guid = %+v", ch.Items[0].GUID)
	}
	if ch.Items[1].PubDate != "" {
		t.Errorf("unparseable date rendered as %q", ch.Items[1].PubDate)
	}

	out, err := xml.Marshal(feed)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`xmlns:atom="http://www.w3.org/2005/Atom"`,
		`<atom:link href="https://example.com/feed.xml" rel="self" type="application/rss+xml"></atom:link>`,
		`<category>go</category>`,
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("feed missing %s:\n%s", want, out)
		}
	}
}

func TestNewSitemap(t *testing.T) {
	cfg := SiteConfig{URL: "https://example.com"}
	content := &Content{
		Photos: []Photo{{Src: "/public/photos/1.jpg"}},
		Books: []Book{
			{Title: "Hero", Cover: "/public/covers/hero.jpg", Hero: true},
			{Title: "No cover"},
		},
		Modified: map[string]time.Time{
			"about": time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC),
		},
	}
	posts := []BlogPost{{Slug: "b", Date: "2024-07-01"}, {Slug: "a", Date: "2024-01-01"}}

	set := newSitemap(cfg, posts, content)
	byLoc := make(map[string]sitemapURL)
	for _, u := range set.URLs {
		byLoc[u.Loc] = u
	}
	if len(set.URLs) != 1+len(staticPages)+len(posts) {
		t.Errorf("got %d urls", len(set.URLs))
	}

	if got := byLoc["https://example.com/"].LastMod; got != "2024-07-01" {
		t.Errorf("home lastmod = %q", got)
	}
	if got := byLoc["https://example.com/blog/"].LastMod; got != "2024-07-01" {
		t.Errorf("blog lastmod = %q", got)
	}
	about := byLoc["https://example.com/about/"]
	if about.LastMod != "2024-06-09" || len(about.Images) != 1 || about.Images[0].Loc != "https://example.com/public/photos/1.jpg" {
		t.Errorf("about = %+v", about)
	}
	shelf := byLoc["https://example.com/bookshelf/"]
	if shelf.LastMod != "" || len(shelf.Images) != 1 {
		t.Errorf("bookshelf = %+v", shelf)
	}
	if got := byLoc["https://example.com/blog/a/"].LastMod; got != "2024-01-01" {
		t.Errorf("post lastmod = %q", got)
	}

	out, err := xml.Marshal(set)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "<image:image><image:loc>https://example.com/public/photos/1.jpg</image:loc></image:image>") {
		t.Errorf("missing image entry:\n%s", out)
	}
}

func TestNewSitemapWithoutContent(t *testing.T) {
	set := newSitemap(SiteConfig{URL: "https://example.com"}, nil, nil)
	if len(set.URLs) != 1+len(staticPages) {
		t.Errorf("got %d urls", len(set.URLs))
	}
}
