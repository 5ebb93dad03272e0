package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func render(t *testing.T, input string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, input); err != nil {
		t.Fatalf("RenderMarkdown(%q) failed: %v", input, err)
	}
	return buf.String()
}

func TestRenderMarkdownInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
		{"use `fmt.Println` here", "use <code>fmt.Println</code> here"},
		{"`**not bold**`", "<code>**not bold**</code>"},
		{"~~gone~~", "<del>gone</del>"},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("RenderMarkdown(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownBoldNotMatchedAsItalic(t *testing.T) {
	got := render(t, "**bold**")
	if strings.Contains(got, "<em>") {
		t.Errorf("RenderMarkdown(**bold**) = %q, should not contain <em>", got)
	}
}

func TestRenderMarkdownHeadings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", `<h1 id="heading-1">Heading 1</h1>`},
		{"## Heading 2", `<h2 id="heading-2">Heading 2</h2>`},
		{"### Heading 3", `<h3 id="heading-3">Heading 3</h3>`},
	}
	for _, tt := range tests {
		got := render(t, tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("RenderMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownCodeBlock(t *testing.T) {
	got := render(t, "```\ncode here\n```")
	if !strings.Contains(got, "<pre") || !strings.Contains(got, "<code") {
		t.Errorf("RenderMarkdown code block failed: %q", got)
	}
	if !strings.Contains(got, "code here") {
		t.Errorf("RenderMarkdown code block missing content: %q", got)
	}
}

func TestRenderMarkdownCodeBlockWithLanguage(t *testing.T) {
	got := render(t, "```go\nfmt.Println(\"hello\")\n```")
	if !strings.Contains(got, "<pre") {
		t.Errorf("code block should render a pre element: %q", got)
	}
	if !strings.Contains(got, "Println") {
		t.Errorf("code block missing content: %q", got)
	}
	if !strings.Contains(got, "<span") {
		t.Errorf("go code block should be highlighted: %q", got)
	}
}

func TestRenderMarkdownLists(t *testing.T) {
	got := render(t, "- item 1\n- item 2")
	if !strings.Contains(got, "<ul>") || !strings.Contains(got, "<li>item 1</li>") || !strings.Contains(got, "<li>item 2</li>") {
		t.Errorf("unordered list: %q", got)
	}

	got = render(t, "1. **bold** item\n2. *italic* item\n\nsome text")
	if !strings.Contains(got, "<ol>") || !strings.Contains(got, "<li><strong>bold</strong> item</li>") {
		t.Errorf("ordered list: %q", got)
	}
	if !strings.Contains(got, "<p>some text</p>") {
		t.Errorf("expected paragraph after list: %q", got)
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	got := render(t, "| a | b |\n|---|---|\n| 1 | 2 |")
	for _, want := range []string{"<table>", "<thead>", "<th>a</th>", "<tbody>", "<td>1</td>"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q: %q", want, got)
		}
	}
}

func TestRenderMarkdownLinks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"external opens in new tab",
			"[Google](https://google.com)",
			`<a href="https://google.com" class="underline decoration-2 underline-offset-4" target="_blank" rel="noopener noreferrer">Google</a>`,
		},
		{
			"underscores in URL survive",
			"[Wikipedia](https://en.wikipedia.org/wiki/Some_Article_Title)",
			`href="https://en.wikipedia.org/wiki/Some_Article_Title"`,
		},
		{
			"internal stays in tab",
			"[posts](/blog/)",
			`<a href="/blog/" class="underline decoration-2 underline-offset-4">posts</a>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.input)
			if !strings.Contains(got, tt.expected) {
				t.Errorf("RenderMarkdown(%q)\n  got:  %q\n  want: %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderMarkdownImages(t *testing.T) {
	got := render(t, "![first](/public/a.jpg)\n\n![second](/public/b.jpg)")
	if !strings.Contains(got, `src="/public/a.jpg" alt="first"`) {
		t.Errorf("first image missing: %q", got)
	}
	if !strings.Contains(got, `loading="eager"`) {
		t.Errorf("first image should load eagerly: %q", got)
	}
	if strings.Count(got, `loading="lazy"`) != 1 {
		t.Errorf("second image should load lazily: %q", got)
	}
	if strings.Count(got, `decoding="async"`) != 2 {
		t.Errorf("images should decode async: %q", got)
	}
}

func TestRenderMarkdownLinkedImage(t *testing.T) {
	got := render(t, "[![badge](/public/badge.svg)](https://example.com)")
	a := strings.Index(got, "<a ")
	img := strings.Index(got, "<img ")
	end := strings.Index(got, "</a>")
	if a < 0 || img < 0 || end < 0 || !(a < img && img < end) {
		t.Errorf("image should be wrapped in the link: %q", got)
	}
}

func TestRenderMarkdownDropsUnsafeContent(t *testing.T) {
	got := render(t, "<script>alert(1)</script>\n\n[x](javascript:alert(1))")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML should be dropped: %q", got)
	}
	if strings.Contains(got, "javascript:") {
		t.Errorf("dangerous URL should be removed: %q", got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("hello *world*").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<p>hello <em>world</em></p>") {
		t.Errorf("Markdown component = %q", buf.String())
	}
}

func TestIsExternal(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"https://example.com", true},
		{"HTTP://example.com/x", true},
		{"/blog/post/", false},
		{"#section", false},
		{"mailto:me@example.com", false},
		{"https://", false},
	}
	for _, tt := range tests {
		if got := IsExternal(tt.input); got != tt.expected {
			t.Errorf("IsExternal(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/public/a.jpg", "/public/a.jpg"},
		{"#top", "#top"},
		{"https://example.com/?a=1&b=2", "https://example.com/?a=1&amp;b=2"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"javascript:alert(1)", ""},
		{"relative/path", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
