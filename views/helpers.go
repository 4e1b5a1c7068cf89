package views

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PathEscape wraps url.PathEscape for use in templ expressions.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the portfolio owner.
func PersonJsonLD(cfg SiteConfig, d content.Document) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     d.Name,
		"url":      buildURL(cfg.URL),
		"email":    "mailto:" + d.Email,
		"address":  d.Location,
	}
	if d.HeroImage != "" {
		data["image"] = d.HeroImage
	}
	if d.HeroSubheading != "" {
		data["description"] = d.HeroSubheading
	}
	if len(d.HeroRoles) > 0 {
		data["jobTitle"] = d.HeroRoles[0]
	}
	var sameAs []string
	for _, l := range d.SocialLinks.Links() {
		if isExternal(l.URL) {
			sameAs = append(sameAs, l.URL)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	var knows []string
	for _, a := range d.ExpertiseAreas {
		knows = append(knows, a.Name)
	}
	if len(knows) > 0 {
		data["knowsAbout"] = knows
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func isExternal(u string) bool {
	return strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "http://")
}

// SafeURL returns u when it is an http(s), mailto, tel, fragment or
// site-relative URL, and "#" otherwise.
func SafeURL(u string) string {
	u = strings.TrimSpace(u)
	switch {
	case u == "":
		return "#"
	case strings.HasPrefix(u, "#"), strings.HasPrefix(u, "/") && !strings.HasPrefix(u, "//"):
		return u
	case isExternal(u), strings.HasPrefix(u, "mailto:"), strings.HasPrefix(u, "tel:"):
		return u
	}
	return "#"
}

// page collects HTML into a buffer. Text is escaped; raw is written as is.
type page struct {
	bytes.Buffer
}

func (p *page) raw(parts ...string) {
	for _, s := range parts {
		p.WriteString(s)
	}
}

func (p *page) text(s string) {
	p.WriteString(html.EscapeString(s))
}

func (p *page) attr(name, value string) {
	p.raw(" ", name, `="`, html.EscapeString(value), `"`)
}

func component(fn func(p *page)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var p page
		fn(&p)
		_, err := w.Write(p.Bytes())
		return err
	})
}
