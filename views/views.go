// Package views is the default set of page templates for a folio site.
package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

// New returns the default templates for cfg.
func New(cfg folio.SiteConfig) folio.ViewFuncs {
	s := site{cfg: cfg}
	return folio.ViewFuncs{
		Home:             s.home,
		About:            s.about,
		Blog:             s.blog,
		BlogSection:      s.blogSection,
		Post:             s.post,
		Bookshelf:        s.bookshelf,
		Contact:          s.contact,
		AdminLogin:       s.adminLogin,
		AdminDashboard:   s.adminDashboard,
		AdminFormPartial: s.adminForm,
		AdminImages:      s.adminImages,
		NotFound:         s.notFound,
		ServerError:      s.serverError,
	}
}

type site struct {
	cfg folio.SiteConfig
}

type navLink struct {
	href, label string
}

var nav = []navLink{
	{"/", "Home"},
	{"/about/", "About"},
	{"/blog/", "Blog"},
	{"/bookshelf/", "Bookshelf"},
	{"/contact/", "Contact"},
}

// page describes one full document.
type page struct {
	meta    folio.PageMeta
	active  string // nav href to mark current
	jsonLD  string
	body    templ.Component
	overlay templ.Component
}

func (s site) meta(title, description, path, ogType string) folio.PageMeta {
	full := s.cfg.Name
	if title != "" {
		full = title + " | " + s.cfg.Name
	}
	if description == "" {
		description = s.cfg.Description
	}
	if ogType == "" {
		ogType = "website"
	}
	return folio.PageMeta{
		Title:       full,
		Description: description,
		URL:         s.cfg.URL + path,
		OGType:      ogType,
	}
}

func (s site) layout(p page) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		w.raw(`<title>`)
		w.text(p.meta.Title)
		w.raw(`</title>`)
		w.raw(`<meta name="description"`)
		w.attr("content", p.meta.Description)
		w.raw(`/><link rel="canonical"`)
		w.attr("href", p.meta.URL)
		w.raw(`/><meta property="og:title"`)
		w.attr("content", p.meta.Title)
		w.raw(`/><meta property="og:description"`)
		w.attr("content", p.meta.Description)
		w.raw(`/><meta property="og:url"`)
		w.attr("content", p.meta.URL)
		w.raw(`/><meta property="og:type"`)
		w.attr("content", p.meta.OGType)
		w.raw(`/><link rel="alternate" type="application/rss+xml"`)
		w.attr("title", s.cfg.Name)
		w.raw(` href="/feed.xml"/>`)
		w.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
		w.raw(`<link rel="stylesheet" href="/public/styles.css"/>`)
		w.raw(`<script src="/public/htmx.min.js" defer></script>`)
		w.raw(`<script src="/public/site.js" defer></script>`)
		jsonLD := p.jsonLD
		if jsonLD == "" {
			jsonLD = folio.WebsiteJsonLD(s.cfg)
		}
		// json.Marshal escapes <, > and &, so the payload cannot close the tag.
		w.raw(`<script type="application/ld+json">` + jsonLD + `</script>`)
		w.raw(`</head><body class="bg-stone-50 text-ink dark:bg-neutral-900 dark:text-white">`)

		w.raw(`<header class="mx-auto flex max-w-3xl items-center justify-between gap-4 px-4 py-6"><a class="font-bold" href="/">`)
		w.text(s.cfg.Name)
		w.raw(`</a><nav class="flex flex-wrap gap-4">`)
		for _, l := range nav {
			w.raw(`<a`)
			w.attr("href", l.href)
			if l.href == p.active {
				w.raw(` aria-current="page" class="underline decoration-2 underline-offset-4"`)
			}
			w.raw(`>`)
			w.text(l.label)
			w.raw(`</a>`)
		}
		w.raw(`<button type="button" data-theme-toggle aria-label="Toggle dark mode">&#9680;</button></nav></header>`)

		w.raw(`<main class="mx-auto max-w-3xl px-4 pb-16">`)
		w.render(ctx, p.body)
		w.raw(`</main>`)

		w.raw(`<div id="lightbox">`)
		w.render(ctx, p.overlay)
		w.raw(`</div>`)

		w.raw(`<footer class="mx-auto max-w-3xl px-4 py-8 text-sm opacity-70">&copy; `)
		w.text(s.cfg.Author)
		if s.cfg.Author == "" {
			w.text(s.cfg.Name)
		}
		w.raw(` &middot; <a href="/feed.xml">RSS</a></footer>`)
		w.raw(`<button type="button" class="scroll-top" data-scroll-top hidden aria-label="Back to top">&uarr;</button>`)
		w.raw(`</body></html>`)
	})
}

func (s site) notFound() templ.Component {
	return s.layout(page{
		meta: s.meta("Not found", "", "/404/", ""),
		body: component(func(_ context.Context, w *writer) {
			w.raw(`<h1 class="text-3xl font-bold">Page not found</h1><p class="mt-4">The page you are looking for does not exist. <a href="/">Go home</a>.</p>`)
		}),
	})
}

func (s site) serverError() templ.Component {
	return s.layout(page{
		meta: s.meta("Error", "", "/", ""),
		body: component(func(_ context.Context, w *writer) {
			w.raw(`<h1 class="text-3xl font-bold">Something went wrong</h1><p class="mt-4">Please try again in a moment.</p>`)
		}),
	})
}
