package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
	"github.com/eringen/folio/lightbox"
	"github.com/eringen/folio/markdown"
)

func (s site) home(posts []folio.BlogPost) templ.Component {
	return s.layout(page{
		meta:   s.meta("", "", "/", ""),
		active: "/",
		body: component(func(ctx context.Context, w *writer) {
			w.raw(`<section class="py-8"><h1 class="text-4xl font-bold">`)
			w.text(s.cfg.Name)
			w.raw(`</h1>`)
			if s.cfg.Description != "" {
				w.raw(`<p class="mt-4 text-lg">`)
				w.text(s.cfg.Description)
				w.raw(`</p>`)
			}
			w.raw(`</section><section><h2 class="text-2xl font-semibold">Recent writing</h2>`)
			postList(w, posts)
			w.raw(`<p class="mt-6"><a href="/blog/">All posts &rarr;</a></p></section>`)
		}),
	})
}

// thumb writes a grid tile that opens the viewer at index. Without htmx the
// anchor loads the page with the viewer open.
func thumb(w *writer, routes lightbox.Routes, index int, src, alt string, width, height int) {
	w.raw(`<a class="block overflow-hidden rounded"`)
	w.attr("href", routes.PageAt(index))
	w.attr("hx-get", routes.TriggerFor(index))
	w.raw(` hx-target="#lightbox" hx-swap="innerHTML"><img class="h-full w-full object-cover" loading="lazy" decoding="async"`)
	w.attr("src", src)
	w.attr("alt", alt)
	if width > 0 && height > 0 {
		w.attr("width", itoa(width))
		w.attr("height", itoa(height))
	}
	w.raw(`/></a>`)
}

func (s site) about(about string, photos []folio.Photo, overlay templ.Component) templ.Component {
	return s.layout(page{
		meta:    s.meta("About", "", "/about/", "profile"),
		active:  "/about/",
		jsonLD:  folio.ProfileJsonLD(s.cfg, photos),
		overlay: overlay,
		body: component(func(ctx context.Context, w *writer) {
			w.raw(`<article class="prose">`)
			w.render(ctx, markdown.Markdown(about))
			w.raw(`</article>`)
			if len(photos) == 0 {
				return
			}
			w.raw(`<section class="mt-10"><h2 class="text-2xl font-semibold">Photos</h2><div class="gallery mt-4 grid grid-cols-2 gap-3 sm:grid-cols-3">`)
			for i, p := range photos {
				thumb(w, folio.GalleryRoutes, i, p.Src, p.Alt, p.Width, p.Height)
			}
			w.raw(`</div></section>`)
		}),
	})
}

func (s site) bookshelf(hero *folio.Book, books []folio.Book, overlay templ.Component) templ.Component {
	return s.layout(page{
		meta:    s.meta("Bookshelf", "Books I have read and keep coming back to.", "/bookshelf/", ""),
		active:  "/bookshelf/",
		jsonLD:  folio.BookshelfJsonLD(s.cfg, hero, books),
		overlay: overlay,
		body: component(func(ctx context.Context, w *writer) {
			w.raw(`<h1 class="text-3xl font-bold">Bookshelf</h1>`)
			if hero != nil {
				// The featured book is not part of the grid's viewer.
				w.raw(`<section class="hero-book mt-6 flex gap-6">`)
				if hero.Cover != "" {
					w.raw(`<img class="w-40 rounded shadow" loading="eager"`)
					w.attr("src", hero.Cover)
					w.attr("alt", folio.BookLabel(*hero))
					w.raw(`/>`)
				}
				w.raw(`<div><p class="text-xs uppercase tracking-widest">Currently reading</p><h2 class="text-2xl font-semibold">`)
				bookTitle(w, *hero)
				w.raw(`</h2>`)
				bookDetails(w, *hero)
				w.raw(`</div></section>`)
			}
			w.raw(`<div class="books mt-10 grid grid-cols-2 gap-6 sm:grid-cols-4">`)
			for i, b := range books {
				w.raw(`<div class="book">`)
				thumb(w, folio.BookshelfRoutes, i, b.Cover, folio.BookLabel(b), 0, 0)
				w.raw(`<h3 class="mt-2 font-semibold">`)
				bookTitle(w, b)
				w.raw(`</h3>`)
				bookDetails(w, b)
				w.raw(`</div>`)
			}
			w.raw(`</div>`)
		}),
	})
}

func bookTitle(w *writer, b folio.Book) {
	if href := markdown.SafeURL(b.URL); href != "" {
		// SafeURL output is already escaped.
		w.raw(`<a href="` + href + `" target="_blank" rel="noopener noreferrer">`)
		w.text(b.Title)
		w.raw(`</a>`)
		return
	}
	w.text(b.Title)
}

func bookDetails(w *writer, b folio.Book) {
	if b.Author != "" {
		w.raw(`<p class="text-sm">`)
		w.text(b.Author)
		w.raw(`</p>`)
	}
	if b.Note != "" {
		w.raw(`<p class="mt-1 text-sm opacity-80">`)
		w.text(b.Note)
		w.raw(`</p>`)
	}
}

func (s site) contact(contact string) templ.Component {
	return s.layout(page{
		meta:   s.meta("Contact", "", "/contact/", ""),
		active: "/contact/",
		body: component(func(ctx context.Context, w *writer) {
			w.raw(`<h1 class="text-3xl font-bold">Contact</h1><div class="prose mt-6">`)
			w.render(ctx, markdown.Markdown(contact))
			w.raw(`</div>`)
			if s.cfg.Email != "" {
				w.raw(`<p class="mt-6"><a class="underline decoration-2 underline-offset-4"`)
				w.attr("href", "mailto:"+s.cfg.Email)
				w.raw(`>`)
				w.text(s.cfg.Email)
				w.raw(`</a></p>`)
			}
		}),
	})
}
