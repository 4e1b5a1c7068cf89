package views

import "github.com/a-h/templ"

func NotFound(site SiteConfig) templ.Component {
	return component(func(p *page) {
		layout(p, site, PageMeta{Title: "Not found | " + site.Name, Robots: "noindex"}, "", func(p *page) {
			p.raw(`<main class="error-page"><h1>404</h1><p>This page does not exist.</p><a class="button" href="/">Back home</a></main>`)
		})
	})
}

func ServerError(site SiteConfig) templ.Component {
	return component(func(p *page) {
		layout(p, site, PageMeta{Title: "Error | " + site.Name, Robots: "noindex"}, "", func(p *page) {
			p.raw(`<main class="error-page"><h1>500</h1><p>Something went wrong. Please try again later.</p><a class="button" href="/">Back home</a></main>`)
		})
	})
}
