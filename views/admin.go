package views

import (
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/folio"
)

func (s site) adminPage(title string, body func(ctx context.Context, w *writer)) templ.Component {
	return s.layout(page{
		meta: s.meta(title, "", "/admin/", ""),
		body: component(body),
	})
}

func csrfField(w *writer, token string) {
	w.raw(`<input type="hidden" name="_csrf"`)
	w.attr("value", token)
	w.raw(`/>`)
}

// adminRoot opens the container htmx admin requests target. It carries the
// CSRF header for hx-delete.
func adminRoot(w *writer, token string) {
	w.raw(`<div id="admin"`)
	w.attr("hx-headers", `{"X-CSRF-Token":"`+token+`"}`)
	w.raw(`>`)
}

func (s site) adminLogin(showError bool, csrfToken string) templ.Component {
	return s.adminPage("Admin", func(_ context.Context, w *writer) {
		w.raw(`<h1 class="text-3xl font-bold">Admin</h1>`)
		if showError {
			w.raw(`<p class="mt-4 text-red-600" role="alert">Wrong password.</p>`)
		}
		w.raw(`<form class="mt-6 space-y-4" method="post" action="/admin/login/">`)
		csrfField(w, csrfToken)
		w.raw(`<label class="block">Password <input class="block w-full border p-2" type="password" name="password" autocomplete="current-password" required/></label>`)
		w.raw(`<button class="border px-4 py-2" type="submit">Log in</button></form>`)
	})
}

func (s site) adminDashboard(posts []folio.BlogPost, message string, csrfToken string) templ.Component {
	return s.adminPage("Dashboard", func(ctx context.Context, w *writer) {
		adminRoot(w, csrfToken)
		w.raw(`<div class="flex items-center justify-between"><h1 class="text-3xl font-bold">Posts</h1><div class="flex gap-4"><a href="/admin/images/">Images</a>`)
		w.raw(`<form method="post" action="/admin/logout/">`)
		csrfField(w, csrfToken)
		w.raw(`<button type="submit">Log out</button></form></div></div>`)
		if message != "" {
			w.raw(`<p class="mt-4" role="status">`)
			w.text(message)
			w.raw(`</p>`)
		}
		w.raw(`<table class="mt-6 w-full text-left"><thead><tr><th>Title</th><th>Date</th><th>Status</th><th></th></tr></thead><tbody>`)
		for _, p := range posts {
			w.raw(`<tr><td>`)
			w.text(p.Title)
			w.raw(`</td><td>`)
			w.text(p.Date)
			w.raw(`</td><td>`)
			if p.Published {
				w.raw(`published`)
			} else {
				w.raw(`draft`)
			}
			slugPath := "/admin/post/" + url.PathEscape(p.Slug) + "/"
			w.raw(`</td><td class="flex gap-2"><button type="button"`)
			w.attr("hx-get", slugPath)
			w.raw(` hx-target="#editor" hx-swap="innerHTML">Edit</button><button type="button"`)
			w.attr("hx-delete", slugPath)
			w.attr("hx-confirm", "Delete "+p.Title+"?")
			w.raw(` hx-target="#admin" hx-select="#admin" hx-swap="outerHTML">Delete</button></td></tr>`)
		}
		w.raw(`</tbody></table><section id="editor" class="mt-10">`)
		w.render(ctx, s.adminForm(folio.BlogPost{Published: true}, csrfToken))
		w.raw(`</section></div>`)
	})
}

func (s site) adminForm(post folio.BlogPost, csrfToken string) templ.Component {
	return component(func(_ context.Context, w *writer) {
		heading := "New post"
		if post.Slug != "" {
			heading = "Edit " + post.Title
		}
		w.raw(`<h2 class="text-2xl font-semibold">`)
		w.text(heading)
		w.raw(`</h2><form class="mt-4 space-y-4" method="post" action="/admin/save/">`)
		csrfField(w, csrfToken)
		field(w, "Title", "title", post.Title, true)
		field(w, "Slug", "slug", post.Slug, false)
		field(w, "Date (YYYY-MM-DD)", "date", post.Date, false)
		field(w, "Tags (comma separated)", "tags", strings.Join(post.Tags, ", "), false)
		field(w, "Summary", "summary", post.Summary, false)
		w.raw(`<label class="block">Content <textarea class="block h-96 w-full border p-2 font-mono" name="content">`)
		w.text(post.Content)
		w.raw(`</textarea></label><label><input type="checkbox" name="published" value="1"`)
		if post.Published {
			w.raw(` checked`)
		}
		w.raw(`/> Published</label> <button class="border px-4 py-2" type="submit">Save</button></form>`)
	})
}

func field(w *writer, label, name, value string, required bool) {
	w.raw(`<label class="block">`)
	w.text(label)
	w.raw(` <input class="block w-full border p-2" type="text"`)
	w.attr("name", name)
	w.attr("value", value)
	if required {
		w.raw(` required`)
	}
	w.raw(`/></label>`)
}

func (s site) adminImages(images []folio.Image, csrfToken string) templ.Component {
	return s.adminPage("Images", func(_ context.Context, w *writer) {
		adminRoot(w, csrfToken)
		w.raw(`<div class="flex items-center justify-between"><h1 class="text-3xl font-bold">Images</h1><a href="/admin/">Posts</a></div>`)
		w.raw(`<form class="mt-6" method="post" action="/admin/images/upload/" enctype="multipart/form-data">`)
		csrfField(w, csrfToken)
		w.raw(`<input type="file" name="image" accept="image/jpeg,image/png,image/gif" required/> <button class="border px-4 py-2" type="submit">Upload</button></form>`)
		w.raw(`<ul class="mt-8 grid grid-cols-2 gap-6 sm:grid-cols-3">`)
		for _, img := range images {
			src := "/public/uploads/" + img.Filename
			w.raw(`<li><img loading="lazy"`)
			w.attr("src", src)
			w.attr("alt", img.OriginalName)
			w.raw(`/><p class="text-xs">`)
			w.text(img.Filename + " · " + itoa(img.Width) + "×" + itoa(img.Height))
			w.raw(`</p><input class="w-full border p-1 font-mono text-xs" readonly`)
			w.attr("value", "!["+strings.TrimSuffix(img.OriginalName, path.Ext(img.OriginalName))+"]("+src+")")
			w.raw(`/><button type="button"`)
			w.attr("hx-delete", "/admin/images/"+url.PathEscape(img.Filename)+"/")
			w.attr("hx-confirm", "Delete "+img.Filename+"?")
			w.raw(` hx-target="#admin" hx-select="#admin" hx-swap="outerHTML">Delete</button></li>`)
		}
		w.raw(`</ul></div>`)
	})
}
