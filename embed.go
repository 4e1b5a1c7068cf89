package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the site:
// site.js, site.css, favicon.svg
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
