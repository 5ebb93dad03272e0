package folio

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/lightbox"
)

// The viewer keeps no server-side state. Each request rebuilds the session
// from its query and renders the result:
//
//	img=P           open from trigger position P
//	at=I&op=OP&to=J reopen at I, then apply OP (next, prev, close, jump to J)
//	lightbox=I      page request with the viewer open at I
//
// A closed session renders as an empty body, which removes the overlay and
// with it the key bindings and scroll lock it carried.

// openViewer applies the request's viewer state to lb. Malformed parameters
// leave the viewer closed.
func openViewer(c echo.Context, lb *lightbox.Lightbox, src lightbox.Source) error {
	ctx := c.Request().Context()

	if p := c.QueryParam("img"); p != "" {
		pos, err := strconv.Atoi(p)
		if err != nil {
			return nil
		}
		items, start, err := src.Resolve(ctx, lightbox.Trigger{Position: pos})
		if err != nil {
			return err
		}
		lb.Open(items, start)
		return nil
	}

	at := c.QueryParam("at")
	if at == "" {
		at = c.QueryParam("lightbox")
	}
	if at == "" {
		return nil
	}
	index, err := strconv.Atoi(at)
	if err != nil {
		return nil
	}
	items, err := src.Items(ctx)
	if err != nil {
		return err
	}
	if !lb.Open(items, index) {
		return nil
	}
	to, _ := strconv.Atoi(c.QueryParam("to"))
	lb.Apply(lightbox.ParseOp(c.QueryParam("op")), to)
	return nil
}

// withViewer runs render with the overlay for the request's viewer state.
// The lightbox is unmounted once the response is written.
func withViewer(c echo.Context, src lightbox.Source, routes lightbox.Routes, render func(overlay templ.Component) error) error {
	lb, host := lightbox.NewDocument()
	defer lb.Unmount()
	if err := openViewer(c, lb, src); err != nil {
		return err
	}
	return render(lightbox.Overlay(lb, host, routes))
}

func (a *App) handleViewer(c echo.Context, src lightbox.Source, routes lightbox.Routes) error {
	return withViewer(c, src, routes, func(overlay templ.Component) error {
		return Render(c, overlay)
	})
}

func (a *App) handleGalleryViewer(c echo.Context) error {
	return a.handleViewer(c, lightbox.StaticSource(a.Content.GalleryItems()), GalleryRoutes)
}

func (a *App) handleBookshelfViewer(c echo.Context) error {
	return a.handleViewer(c, lightbox.StaticSource(a.Content.BookItems()), BookshelfRoutes)
}

func (a *App) handlePostViewer(c echo.Context) error {
	post, err := a.Cache.GetPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return a.handleViewer(c, postSource(post), PostRoutes(post.Slug))
}
