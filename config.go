package folio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides: FOLIO_ADMIN_PASSWORD sets
// admin_password.
const EnvPrefix = "FOLIO_"

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Site name (default "Folio")
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Site description for RSS and meta tags
	Author      string `koanf:"author"`      // Author name for JSON-LD
	Email       string `koanf:"email"`       // Shown on the contact page

	Addr         string `koanf:"addr"`          // Listen address (default ":3000")
	DatabasePath string `koanf:"database_path"` // SQLite path (default "data/blog.db")
	ContentDir   string `koanf:"content_dir"`   // books.yaml, photos.yaml, pages/ (default "content")
	StaticDir    string `koanf:"static_dir"`    // User-owned static assets (default "public")

	AdminPassword string `koanf:"admin_password"` // Required: admin login password
	SessionSecret string `koanf:"session_secret"` // Required: session encryption secret
	CookieSecure  bool   `koanf:"cookie_secure"`  // Set true for HTTPS

	PostCacheTTL time.Duration `koanf:"post_cache_ttl"` // Post cache TTL (default 5m)
}

// LoadConfig reads path (YAML, optional) and overlays FOLIO_* environment
// variables. Defaults are applied to whatever is left unset.
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return SiteConfig{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("loading env overrides: %w", err)
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Validate checks the settings Start cannot run without.
func (c SiteConfig) Validate() error {
	if c.AdminPassword == "" {
		return fmt.Errorf("folio: admin_password is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("folio: session_secret is required")
	}
	return nil
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Folio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/blog.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory for user-owned static assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContent supplies site content directly instead of loading ContentDir.
func WithContent(c *Content) Option {
	return func(a *App) {
		a.Content = c
	}
}
