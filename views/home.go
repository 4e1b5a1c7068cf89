package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/folio/content"
)

// Home renders the public portfolio page.
func Home(hp HomePage) templ.Component {
	return component(func(p *page) {
		d := hp.Doc
		meta := PageMeta{
			Title:       d.Name + " | " + hp.Site.Name,
			Description: d.HeroSubheading,
			URL:         buildURL(hp.Site.URL),
			Image:       d.HeroImage,
		}
		layout(p, hp.Site, meta, PersonJsonLD(hp.Site, d), func(p *page) {
			header(p, hp)
			p.raw(`<main>`)
			hero(p, d)
			expertise(p, d)
			skills(p, d)
			work(p, d)
			contact(p, d, hp.ContactEnabled)
			p.raw(`</main>`)
			footer(p, d, hp.Year)
			if hp.ChatEnabled {
				chatWidget(p, d)
			}
		})
	})
}

func header(p *page, hp HomePage) {
	p.raw(`<header class="site-header"><a class="brand" href="#home">`)
	p.text(hp.Doc.Name)
	p.raw(`</a><nav>`)
	for _, s := range [][2]string{{"#home", "Home"}, {"#about", "About"}, {"#skills", "Skills"}, {"#work", "Work"}, {"#contact", "Contact"}} {
		p.raw(`<a href="`, s[0], `">`, s[1], `</a>`)
	}
	p.raw(`</nav><button type="button" class="theme-toggle" data-theme-toggle aria-label="Toggle dark mode">&#9681;</button></header>`)
}

func hero(p *page, d content.Document) {
	p.raw(`<section id="home" class="hero"><div class="hero-text"><span class="eyebrow">Available for hire</span><h1>Hello, I'm <span class="accent">`)
	p.text(d.Name)
	p.raw(`</span></h1>`)
	if len(d.HeroRoles) > 0 {
		p.raw(`<p class="roles">I'm a <span class="role" data-roles="`)
		p.text(strings.Join(d.HeroRoles, "|"))
		p.raw(`">`)
		p.text(d.HeroRoles[0])
		p.raw(`</span></p>`)
	}
	p.raw(`<p class="subheading">`)
	p.text(d.HeroSubheading)
	p.raw(`</p><div class="actions"><a class="button" href="#contact">Get in Touch</a></div>`)
	socialList(p, d.SocialLinks)
	p.raw(`</div><div class="hero-image"><img`)
	p.attr("src", d.HeroImage)
	p.attr("alt", d.Name)
	p.raw(` width="400" height="400"></div></section>`)
}

func expertise(p *page, d content.Document) {
	p.raw(`<section id="about" class="expertise"><h2>My Expertise</h2><p class="objective">`)
	p.text(d.CareerObjective)
	p.raw(`</p><ul class="areas">`)
	for _, a := range d.ExpertiseAreas {
		p.raw(`<li><strong>`)
		p.text(a.Name)
		p.raw(`</strong>`)
		if a.Description != "" {
			p.raw(`<span>`)
			p.text(a.Description)
			p.raw(`</span>`)
		}
		p.raw(`</li>`)
	}
	p.raw(`</ul></section>`)
}

func skills(p *page, d content.Document) {
	p.raw(`<section id="skills" class="skills"><h2>Skills</h2><div class="grid">`)
	for _, s := range d.Skills {
		p.raw(`<article class="card"><div class="icon">`, Icon(s.Icon), `</div><h3>`)
		p.text(s.Name)
		p.raw(`</h3><p>`)
		p.text(s.Description)
		p.raw(`</p><ul class="tags">`)
		for _, t := range s.Technologies {
			p.raw(`<li>`)
			p.text(t)
			p.raw(`</li>`)
		}
		p.raw(`</ul></article>`)
	}
	p.raw(`</div></section>`)
}

func work(p *page, d content.Document) {
	p.raw(`<section id="work" class="work"><span class="eyebrow">My Projects</span><h2>Bringing Ideas to Life</h2>`)
	for _, pr := range d.Projects {
		p.raw(`<article class="project"><h3>`)
		p.text(pr.Title)
		p.raw(`</h3>`)
		if pr.Category != "" {
			p.raw(`<span class="category">`)
			p.text(pr.Category)
			p.raw(`</span>`)
		}
		p.raw(`<p>`)
		p.text(pr.Description)
		p.raw(`</p><ul class="services">`)
		for _, s := range pr.Services {
			p.raw(`<li><span class="icon">`, Icon(s.Icon), `</span>`)
			p.text(s.Name)
			p.raw(`</li>`)
		}
		p.raw(`</ul></article>`)
	}
	p.raw(`<a class="button" href="#contact">Discuss Your Project</a></section>`)
}

func contact(p *page, d content.Document, enabled bool) {
	ci := d.ContactInfo
	p.raw(`<section id="contact" class="contact"><h2>Get in Touch</h2><ul class="contact-info"><li><a`)
	p.attr("href", "mailto:"+ci.Email)
	p.raw(`>`)
	p.text(ci.Email)
	p.raw(`</a></li><li>`)
	p.text(ci.Phone)
	p.raw(`</li><li>`)
	p.text(ci.Location)
	p.raw(`</li></ul>`)
	if !enabled {
		p.raw(`<p class="notice">The contact form is unavailable right now. Please email directly.</p></section>`)
		return
	}
	p.raw(`<form class="contact-form" data-contact-form action="/api/contact" method="post" novalidate>`)
	for _, f := range [][3]string{{"name", "text", "Your Name"}, {"email", "email", "Your Email"}, {"subject", "text", "Subject"}} {
		p.raw(`<label>`, f[2], `<input name="`, f[0], `" type="`, f[1], `" required></label>`)
	}
	p.raw(`<label>Message<textarea name="message" rows="5" required></textarea></label>`)
	p.raw(`<button type="submit" class="button">Send Message</button><p class="form-status" role="status" aria-live="polite"></p></form></section>`)
}

func socialList(p *page, links content.SocialLinks) {
	p.raw(`<ul class="social">`)
	for _, l := range links.Links() {
		if l.URL == "" {
			continue
		}
		p.raw(`<li><a`)
		p.attr("href", SafeURL(l.URL))
		p.attr("aria-label", l.Platform)
		p.raw(` target="_blank" rel="noopener noreferrer">`, socialIcon(l.Platform), `</a></li>`)
	}
	p.raw(`</ul>`)
}

func footer(p *page, d content.Document, year int) {
	p.raw(`<footer class="site-footer">`)
	socialList(p, d.SocialLinks)
	p.raw(`<p>`)
	p.text(fmt.Sprintf("© %d %s. All rights reserved.", year, d.Name))
	p.raw(`</p></footer>`)
}

func chatWidget(p *page, d content.Document) {
	first := d.Name
	if i := strings.IndexByte(first, ' '); i > 0 {
		first = first[:i]
	}
	p.raw(`<aside class="chat" data-chat hidden><header><strong>AI Assistant</strong><button type="button" data-chat-close aria-label="Close chat">&times;</button></header>`)
	p.raw(`<ol class="chat-log" data-chat-log`)
	p.attr("data-greeting", "Hello! I'm "+first+"'s AI assistant. How can I help you today?")
	p.raw(`></ol><form data-chat-form><input name="message" autocomplete="off" placeholder="Ask me anything..." required><button type="submit">Send</button></form></aside>`)
	p.raw(`<button type="button" class="chat-bubble" data-chat-open aria-label="Open chat">&#128172;</button>`)
}
