package views

import (
	"fmt"

	"github.com/a-h/templ"
)

func adminShell(p *page, site SiteConfig, title string, body func(p *page)) {
	layout(p, site, PageMeta{Title: title + " | " + site.Name, Robots: "noindex, nofollow"}, "", func(p *page) {
		p.raw(`<main class="admin">`)
		body(p)
		p.raw(`</main>`)
	})
}

func csrfField(p *page, token string) {
	p.raw(`<input type="hidden" name="_csrf"`)
	p.attr("value", token)
	p.raw(`>`)
}

// AdminLogin renders the shared-secret prompt.
func AdminLogin(site SiteConfig, showError bool, csrfToken string) templ.Component {
	return component(func(p *page) {
		adminShell(p, site, "Admin", func(p *page) {
			p.raw(`<h1>Editor access</h1><form method="post" action="/admin/login/" class="login">`)
			csrfField(p, csrfToken)
			p.raw(`<label>Password<input type="password" name="password" autocomplete="current-password" autofocus required></label>`)
			if showError {
				p.raw(`<p class="error" role="alert">Incorrect password.</p>`)
			}
			p.raw(`<button type="submit" class="button">Unlock</button></form>`)
		})
	})
}

// AdminEditor renders the document editor with its save, reset and logout forms.
func AdminEditor(ep EditorPage) templ.Component {
	return component(func(p *page) {
		adminShell(p, ep.Site, "Editor", func(p *page) {
			p.raw(`<header class="admin-bar"><h1>Edit portfolio</h1><a href="/" target="_blank">View site</a><a href="/admin/images/">Images</a>`)
			p.raw(`<form method="post" action="/admin/logout/">`)
			csrfField(p, ep.CSRFToken)
			p.raw(`<button type="submit">Log out</button></form></header>`)
			if ep.Message != "" {
				class := "notice"
				if ep.Error {
					class = "error"
				}
				p.raw(`<p class="`, class, `" role="status">`)
				p.text(ep.Message)
				p.raw(`</p>`)
			}
			if ep.UpdatedAt != "" {
				p.raw(`<p class="meta">Last saved `)
				p.text(ep.UpdatedAt)
				p.raw(`</p>`)
			}
			p.raw(`<form method="post" action="/admin/save/" class="editor">`)
			csrfField(p, ep.CSRFToken)
			p.raw(`<label for="document">Document (JSON)</label><textarea id="document" name="document" rows="40" spellcheck="false">`)
			p.text(ep.JSON)
			p.raw(`</textarea><button type="submit" class="button">Save</button></form>`)
			p.raw(`<form method="post" action="/admin/reset/" data-confirm="Replace the document with the defaults?">`)
			csrfField(p, ep.CSRFToken)
			p.raw(`<button type="submit">Reset to defaults</button></form>`)
		})
	})
}

// AdminImages renders the upload form and the list of uploaded images.
func AdminImages(site SiteConfig, images []Image, heroImage, csrfToken string) templ.Component {
	return component(func(p *page) {
		adminShell(p, site, "Images", func(p *page) {
			p.raw(`<header class="admin-bar"><h1>Images</h1><a href="/admin/">Back to editor</a></header>`)
			p.raw(`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data" class="upload">`)
			csrfField(p, csrfToken)
			p.raw(`<input type="file" name="image" accept="image/jpeg,image/png,image/gif" required>`)
			p.raw(`<label><input type="checkbox" name="hero" value="1"> Use as profile image</label>`)
			p.raw(`<button type="submit" class="button">Upload</button></form>`)
			if len(images) == 0 {
				p.raw(`<p class="meta">No images uploaded yet.</p>`)
				return
			}
			p.raw(`<ul class="images">`)
			for _, img := range images {
				p.raw(`<li><img`)
				p.attr("src", img.URL())
				p.attr("alt", img.OriginalName)
				p.raw(` loading="lazy"><div><code>`)
				p.text(img.URL())
				p.raw(`</code><span class="meta">`)
				p.text(fmt.Sprintf("%dx%d, %d KB", img.Width, img.Height, img.Size/1024))
				p.raw(`</span>`)
				if img.URL() == heroImage {
					p.raw(`<strong>Profile image</strong>`)
				} else {
					p.raw(`<form method="post"`)
					p.attr("action", "/admin/images/"+PathEscape(img.Filename)+"/hero/")
					p.raw(`>`)
					csrfField(p, csrfToken)
					p.raw(`<button type="submit">Use as profile image</button></form>`)
				}
				p.raw(`<button type="button" data-delete-image`)
				p.attr("data-url", "/admin/images/"+PathEscape(img.Filename)+"/")
				p.attr("data-csrf", csrfToken)
				p.raw(`>Delete</button></div></li>`)
			}
			p.raw(`</ul>`)
		})
	})
}
