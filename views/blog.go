package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

func (s site) blog(posts []folio.BlogPost, activeTag string, tags []string) templ.Component {
	title := "Blog"
	path := "/blog/"
	if activeTag != "" {
		title = "Posts tagged " + activeTag
		path += "?tag=" + url.QueryEscape(activeTag)
	}
	return s.layout(page{
		meta:   s.meta(title, "", path, ""),
		active: "/blog/",
		body:   s.blogSection(posts, activeTag, tags),
	})
}

// blogSection is the tag filter and post list. Tag pills swap just this
// section and push the filtered URL.
func (s site) blogSection(posts []folio.BlogPost, activeTag string, tags []string) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<section id="blog-section"><h1 class="text-3xl font-bold">Blog</h1>`)
		if len(tags) > 0 {
			w.raw(`<nav class="mt-4 flex flex-wrap gap-2" aria-label="Tags">`)
			tagPill(w, "All", "", activeTag == "")
			for _, t := range tags {
				tagPill(w, t, t, t == activeTag)
			}
			w.raw(`</nav>`)
		}
		postList(w, posts)
		w.raw(`</section>`)
	})
}

func tagPill(w *writer, label, tag string, active bool) {
	href := "/blog/"
	partial := "/blog/?partial=blog"
	if tag != "" {
		href += "?tag=" + url.QueryEscape(tag)
		partial += "&tag=" + url.QueryEscape(tag)
	}
	w.raw(`<a`)
	w.attr("class", TagClass(active))
	w.attr("href", href)
	w.attr("hx-get", partial)
	w.attr("hx-push-url", href)
	w.raw(` hx-target="#blog-section" hx-swap="outerHTML">`)
	w.text(label)
	w.raw(`</a>`)
}

func postList(w *writer, posts []folio.BlogPost) {
	if len(posts) == 0 {
		w.raw(`<p class="mt-6">No posts yet.</p>`)
		return
	}
	w.raw(`<ul class="mt-6 space-y-6">`)
	for _, p := range posts {
		w.raw(`<li><a class="text-xl font-semibold"`)
		w.attr("href", p.Link)
		w.raw(`>`)
		w.text(p.Title)
		w.raw(`</a><p class="text-sm opacity-70"><time`)
		w.attr("datetime", p.Date)
		w.raw(`>`)
		w.text(displayDate(p.Date))
		w.raw(`</time></p>`)
		if p.Summary != "" {
			w.raw(`<p class="mt-1">`)
			w.text(p.Summary)
			w.raw(`</p>`)
		}
		w.raw(`</li>`)
	}
	w.raw(`</ul>`)
}

func (s site) post(post folio.BlogPost, related []folio.BlogPost, overlay templ.Component) templ.Component {
	return s.layout(page{
		meta:    s.meta(post.Title, post.Summary, post.Link, "article"),
		active:  "/blog/",
		jsonLD:  folio.BlogPostingJsonLD(post, s.cfg),
		overlay: overlay,
		body: component(func(ctx context.Context, w *writer) {
			w.raw(`<article><header class="mb-8"><h1 class="text-4xl font-bold">`)
			w.text(post.Title)
			w.raw(`</h1><p class="mt-2 text-sm opacity-70"><time`)
			w.attr("datetime", post.Date)
			w.raw(`>`)
			w.text(displayDate(post.Date))
			w.raw(`</time></p>`)
			if len(post.Tags) > 0 {
				w.raw(`<p class="mt-3 flex flex-wrap gap-2">`)
				for _, t := range post.Tags {
					w.raw(`<a`)
					w.attr("class", TagClass(false))
					w.attr("href", "/blog/?tag="+url.QueryEscape(t))
					w.raw(`>`)
					w.text(t)
					w.raw(`</a>`)
				}
				w.raw(`</p>`)
			}
			w.raw(`</header>`)
			w.render(ctx, folio.ArticleBody(post))
			w.raw(`</article>`)
			if len(related) > 0 {
				w.raw(`<aside class="mt-12"><h2 class="text-2xl font-semibold">Related</h2>`)
				postList(w, related)
				w.raw(`</aside>`)
			}
		}),
	})
}
