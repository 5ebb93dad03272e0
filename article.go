package folio

import (
	"bytes"
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/eringen/folio/lightbox"
	"github.com/eringen/folio/markdown"
)

// Viewer routes for the static-list pages.
var (
	GalleryRoutes   = lightbox.Routes{Page: "/about/", Fragment: "/lightbox/gallery/"}
	BookshelfRoutes = lightbox.Routes{Page: "/bookshelf/", Fragment: "/lightbox/bookshelf/"}
)

// PostRoutes returns the viewer routes of the post with the given slug.
func PostRoutes(slug string) lightbox.Routes {
	page := "/blog/" + url.PathEscape(slug) + "/"
	return lightbox.Routes{Page: page, Fragment: page + "lightbox/"}
}

// articleTrigger fires on clicks landing on an image that is not inside a
// link. site.js adds the image's position as the img parameter.
const articleTrigger = "click[event.target.tagName=='IMG' && !event.target.closest('a[href]')]"

// ArticleBody renders a post's Markdown inside its scan root. The post page
// and the post viewer endpoint both render this component, so the images
// the viewer enumerates are exactly the ones the reader sees.
func ArticleBody(post BlogPost) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		routes := PostRoutes(post.Slug)
		open := `<div class="prose" ` + lightbox.RootAttr +
			` hx-get="` + templ.EscapeString(routes.Fragment) + `"` +
			` hx-trigger="` + templ.EscapeString(articleTrigger) + `"` +
			` hx-target="#lightbox" hx-swap="innerHTML">`
		if _, err := io.WriteString(w, open); err != nil {
			return err
		}
		if err := markdown.Markdown(post.Content).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// postSource enumerates the images of a post as they render in ArticleBody.
func postSource(post BlogPost) lightbox.ScanSource {
	return lightbox.ScanSource{
		Render: func(ctx context.Context) ([]byte, error) {
			var buf bytes.Buffer
			if err := ArticleBody(post).Render(ctx, &buf); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	}
}
