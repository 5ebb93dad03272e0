package folio

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/lightbox"
)

const homePostCount = 5

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.Recent(homePostCount)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(posts))
}

func (a *App) handleAbout(c echo.Context) error {
	src := lightbox.StaticSource(a.Content.GalleryItems())
	return withViewer(c, src, GalleryRoutes, func(overlay templ.Component) error {
		return Render(c, a.Views.About(a.Content.About, a.Content.Photos, overlay))
	})
}

func (a *App) handleBlog(c echo.Context) error {
	tag := c.QueryParam("tag")
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	if c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == "blog" {
		return Render(c, a.Views.BlogSection(posts, tag, tags))
	}
	return Render(c, a.Views.Blog(posts, tag, tags))
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Cache.GetPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	related := RelatedPosts(post, posts)
	return withViewer(c, postSource(post), PostRoutes(post.Slug), func(overlay templ.Component) error {
		return Render(c, a.Views.Post(post, related, overlay))
	})
}

func (a *App) handleBookshelf(c echo.Context) error {
	hero, books := a.Content.Shelf()
	src := lightbox.StaticSource(a.Content.BookItems())
	return withViewer(c, src, BookshelfRoutes, func(overlay templ.Component) error {
		return Render(c, a.Views.Bookshelf(hero, books, overlay))
	})
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact(a.Content.Contact))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return renderXML(c, sitemapContentType, newSitemap(a.Config, posts, a.Content))
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return renderXML(c, rssContentType, newFeed(a.Config, posts))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.staticDir, "favicon.svg"))
}

// handleRobots serves <static>/robots.txt if present and otherwise allows
// everything except the admin area.
func (a *App) handleRobots(c echo.Context) error {
	path := filepath.Join(a.staticDir, "robots.txt")
	if fileExists(path) {
		return c.File(path)
	}
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Sitemap: " + a.Config.URL + "/sitemap.xml\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
