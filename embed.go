package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the framework:
// site.js (theme toggle, scroll-to-top and the viewer trigger hook).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
