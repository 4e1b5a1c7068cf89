package views

func layout(p *page, site SiteConfig, meta PageMeta, jsonLD string, body func(p *page)) {
	title := meta.Title
	if title == "" {
		title = site.Name
	}
	desc := meta.Description
	if desc == "" {
		desc = site.Description
	}
	p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	p.raw(`<title>`)
	p.text(title)
	p.raw(`</title>`)
	if desc != "" {
		p.raw(`<meta name="description"`)
		p.attr("content", desc)
		p.raw(`>`)
	}
	if meta.Robots != "" {
		p.raw(`<meta name="robots"`)
		p.attr("content", meta.Robots)
		p.raw(`>`)
	}
	if meta.URL != "" {
		p.raw(`<link rel="canonical"`)
		p.attr("href", meta.URL)
		p.raw(`><meta property="og:url"`)
		p.attr("content", meta.URL)
		p.raw(`>`)
	}
	p.raw(`<meta property="og:type" content="website"><meta property="og:title"`)
	p.attr("content", title)
	p.raw(`>`)
	if meta.Image != "" {
		p.raw(`<meta property="og:image"`)
		p.attr("content", meta.Image)
		p.raw(`>`)
	}
	p.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
	p.raw(`<link rel="stylesheet" href="/public/site.css">`)
	p.raw(`<script src="/public/site.js" defer></script>`)
	if jsonLD != "" {
		p.raw(`<script type="application/ld+json">`, jsonLD, `</script>`)
	}
	p.raw(`</head><body>`)
	body(p)
	p.raw(`</body></html>`)
}
