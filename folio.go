// Package folio is a personal website engine built with Go, Echo, and templ.
// It serves a blog, a photo gallery, a bookshelf and a contact page, and
// shows images in an in-page viewer driven by the lightbox package.
//
// Users provide their own templ templates via the ViewFuncs struct; the
// views package ships a default set. folio handles the handler logic,
// middleware, content loading and database operations.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 5 * time.Second

// ViewFuncs holds the templ components the framework calls when rendering
// pages. overlay is the viewer markup for pages that can have it open on
// load (?lightbox=N); it renders nothing when the viewer is closed.
type ViewFuncs struct {
	Home             func(posts []BlogPost) templ.Component
	About            func(about string, photos []Photo, overlay templ.Component) templ.Component
	Blog             func(posts []BlogPost, activeTag string, tags []string) templ.Component
	BlogSection      func(posts []BlogPost, activeTag string, tags []string) templ.Component
	Post             func(post BlogPost, related []BlogPost, overlay templ.Component) templ.Component
	Bookshelf        func(hero *Book, books []Book, overlay templ.Component) templ.Component
	Contact          func(contact string) templ.Component
	AdminLogin       func(showError bool, csrfToken string) templ.Component
	AdminDashboard   func(posts []BlogPost, message string, csrfToken string) templ.Component
	AdminFormPartial func(post BlogPost, csrfToken string) templ.Component
	AdminImages      func(images []Image, csrfToken string) templ.Component
	NotFound         func() templ.Component
	ServerError      func() templ.Component
}

// App is the central folio application. It wires together the store,
// cache, content, handlers, middleware, and templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Store   *Store
	Cache   *PostCache
	Content *Content
	Views   ViewFuncs

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a folio App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: cfg.StaticDir,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init opens the database, loads content and registers middleware and
// routes. After Init the App can serve requests through a.Echo.
func (a *App) Init() error {
	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	if a.Content == nil {
		content, err := LoadContent(a.Config.ContentDir)
		if err != nil {
			return fmt.Errorf("folio: load content: %w", err)
		}
		a.Content = content
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start validates the configuration, initializes the App and starts the server.
func (a *App) Start() error {
	if err := a.prepare(); err != nil {
		return err
	}
	return a.listen()
}

// Run is Start with graceful shutdown: when ctx is done the server stops
// accepting connections and gets shutdownTimeout to drain.
func (a *App) Run(ctx context.Context) error {
	if err := a.prepare(); err != nil {
		return err
	}
	serverErr := make(chan error, 1)
	go func() { serverErr <- a.listen() }()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		a.Echo.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.Echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("folio: shutdown: %w", err)
		}
		return <-serverErr
	}
}

func (a *App) prepare() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}
	return a.Init()
}

func (a *App) listen() error {
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework assets are served under /public/ ahead of the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	e.GET("/bookshelf/", a.handleBookshelf)
	e.GET("/contact/", a.handleContact)

	// Viewer fragments.
	e.GET(GalleryRoutes.Fragment, a.handleGalleryViewer)
	e.GET(BookshelfRoutes.Fragment, a.handleBookshelfViewer)
	e.GET("/blog/:slug/lightbox/", a.handlePostViewer)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)

	admin := e.Group("/admin", requireAdmin)
	admin.GET("/post/:slug/", a.handleAdminPost)
	admin.POST("/save/", a.handleAdminSave)
	admin.DELETE("/post/:slug/", a.handleAdminDelete)
	admin.GET("/images/", a.handleImageList)
	admin.POST("/images/upload/", a.handleImageUpload)
	admin.DELETE("/images/:filename/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
