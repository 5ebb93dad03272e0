package folio

import (
	"encoding/xml"
	"time"
)

const (
	rssContentType = "application/rss+xml; charset=utf-8"
	feedPath       = "/feed.xml"
)

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Self          atomLink  `xml:"atom:link"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

// atomLink is the channel's self reference feed validators ask for.
type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description,omitempty"`
	Categories  []string `xml:"category"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        rssGUID  `xml:"guid"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// newFeed builds the RSS document for posts, newest first as stored. The
// channel's build date is the newest post's date.
func newFeed(cfg SiteConfig, posts []BlogPost) rssFeed {
	ch := rssChannel{
		Title:       cfg.Name,
		Link:        cfg.PageURL(),
		Description: cfg.Description,
		Self:        atomLink{Href: cfg.URL + feedPath, Rel: "self", Type: "application/rss+xml"},
		Items:       make([]rssItem, 0, len(posts)),
	}
	for _, p := range posts {
		link := cfg.PageURL("blog", p.Slug)
		pubDate := rssDate(p.Date)
		if ch.LastBuildDate == "" {
			ch.LastBuildDate = pubDate
		}
		ch.Items = append(ch.Items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Summary,
			Categories:  p.Tags,
			PubDate:     pubDate,
			GUID:        rssGUID{Value: link, IsPermaLink: true},
		})
	}
	return rssFeed{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: ch,
	}
}

// rssDate converts a stored YYYY-MM-DD date to RFC 1123, or "" if it does
// not parse.
func rssDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.Format(time.RFC1123Z)
}
