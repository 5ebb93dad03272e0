package folio

import (
	"net/url"
	"os"
	"path"
	"sort"
	"strings"
)

// Slugify lowercases s and joins its runs of ASCII letters and digits with
// single hyphens.
func Slugify(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	return strings.Join(words, "-")
}

// PageURL returns the absolute URL of a site page. Segments are path-escaped
// and the result ends in a slash like every page route.
func (c SiteConfig) PageURL(segments ...string) string {
	escaped := make([]string, 0, len(segments)+1)
	escaped = append(escaped, "/")
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	p := path.Join(escaped...)
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return c.URL + p
}

// AssetURL makes a site-relative image or file path absolute. Absolute URLs
// and empty strings are returned as they are.
func (c SiteConfig) AssetURL(src string) string {
	if src == "" || strings.Contains(src, "://") {
		return src
	}
	return c.URL + "/" + strings.TrimPrefix(src, "/")
}

const relatedLimit = 3

// RelatedPosts returns up to relatedLimit posts sharing tags with current,
// most shared tags first. Posts with the same count keep their order.
func RelatedPosts(current BlogPost, posts []BlogPost) []BlogPost {
	want := tagSet(current.Tags)
	if len(want) == 0 {
		return nil
	}
	type match struct {
		post   BlogPost
		shared int
	}
	var matches []match
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		shared := 0
		for t := range tagSet(p.Tags) {
			if _, ok := want[t]; ok {
				shared++
			}
		}
		if shared > 0 {
			matches = append(matches, match{p, shared})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].shared > matches[j].shared
	})
	related := make([]BlogPost, 0, min(len(matches), relatedLimit))
	for _, m := range matches[:min(len(matches), relatedLimit)] {
		related = append(related, m.post)
	}
	return related
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if n := normalizeTag(t); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
