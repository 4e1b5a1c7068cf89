package views

import "github.com/eringen/folio/content"

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL
	Description string // SITE_DESCRIPTION
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	Image       string // og:image
	Robots      string
}

// Image is an uploaded file in the public uploads directory.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}

// URL is the public path of the uploaded file.
func (i Image) URL() string {
	return "/public/uploads/" + PathEscape(i.Filename)
}

// HomePage is everything the public page renders.
type HomePage struct {
	Site SiteConfig
	Doc  content.Document
	Year int

	ChatEnabled    bool
	ContactEnabled bool
}

// EditorPage is the admin view of the stored document.
type EditorPage struct {
	Site      SiteConfig
	JSON      string
	Message   string
	Error     bool
	UpdatedAt string
	HeroImage string
	CSRFToken string
}
