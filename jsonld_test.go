package folio

import (
	"encoding/json"
	"strings"
	"testing"
)

func decodeLD(t *testing.T, s string) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("invalid JSON-LD %q: %v", s, err)
	}
	if v["@context"] != "https://schema.org" {
		t.Errorf("@context = %v", v["@context"])
	}
	return v
}

func TestProfileJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Site", URL: "https://example.com", Author: "Ada", Email: "ada@example.com"}
	v := decodeLD(t, ProfileJsonLD(cfg, []Photo{
		{Src: "/public/photos/1.jpg", Alt: "Harbour", Caption: "Morning"},
	}))

	if v["@type"] != "ProfilePage" {
		t.Errorf("@type = %v", v["@type"])
	}
	person := v["mainEntity"].(map[string]any)
	if person["name"] != "Ada" || person["email"] != "ada@example.com" {
		t.Errorf("mainEntity = %v", person)
	}
	images := v["image"].([]any)
	if len(images) != 1 {
		t.Fatalf("image = %v", images)
	}
	img := images[0].(map[string]any)
	if img["contentUrl"] != "https://example.com/public/photos/1.jpg" || img["caption"] != "Morning" {
		t.Errorf("image[0] = %v", img)
	}
}

func TestBookshelfJsonLD(t *testing.T) {
	cfg := SiteConfig{URL: "https://example.com"}
	hero := &Book{Title: "Featured", Author: "A", Cover: "/c/f.jpg"}
	v := decodeLD(t, BookshelfJsonLD(cfg, hero, []Book{
		{Title: "Second", Cover: "https://covers.test/2.jpg"},
	}))

	if v["@type"] != "ItemList" {
		t.Errorf("@type = %v", v["@type"])
	}
	items := v["itemListElement"].([]any)
	if len(items) != 2 {
		t.Fatalf("itemListElement has %d entries, want 2", len(items))
	}
	first := items[0].(map[string]any)
	book := first["item"].(map[string]any)
	if first["position"] != float64(1) || book["name"] != "Featured" || book["image"] != "https://example.com/c/f.jpg" {
		t.Errorf("first entry = %v", first)
	}
	second := items[1].(map[string]any)["item"].(map[string]any)
	if _, ok := second["author"]; ok {
		t.Errorf("book without author has author: %v", second)
	}
}

func TestJsonLDEscapesScriptClose(t *testing.T) {
	out := BlogPostingJsonLD(BlogPost{Slug: "x", Title: "</script><b>"}, SiteConfig{URL: "https://example.com"})
	if strings.Contains(out, "</script>") {
		t.Errorf("JSON-LD can close its script element: %s", out)
	}
	v := decodeLD(t, out)
	if v["url"] != "https://example.com/blog/x/" {
		t.Errorf("url = %v", v["url"])
	}
}
