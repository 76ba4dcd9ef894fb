package site

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	// BaseURL is the public origin, used for the canonical link and og:url.
	BaseURL string
}

// htmx only swaps 2xx by default; the contact card also answers 409 and 422
// with markup that has to replace the card.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"409","swap":true,"error":false},{"code":"422","swap":true,"error":false},{"code":"[45]..","swap":false,"error":true}]}`

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "MediLabsAI - Precision AI for Modern Clinical Excellence"
	}

	if config.Description == "" {
		config.Description = "Secure, AI-powered clinical documentation and custom software for Indian healthcare providers."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				Meta(Name("htmx-config"), Content(htmxConfig)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.BaseURL != "", g.Group([]g.Node{
					Meta(g.Attr("property", "og:url"), Content(canonicalURL(config.BaseURL))),
					Link(Rel("canonical"), Href(canonicalURL(config.BaseURL))),
				})),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://unpkg.com/htmx.org@2.0.4")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
			),
			Body(
				Class("bg-zinc-950 text-zinc-100 antialiased selection:bg-emerald-500/30"),
				g.Group(content),

				Script(Src("/static/js/site.js"), Defer()),
			),
		),
	})
}

func canonicalURL(base string) string {
	return strings.TrimRight(base, "/") + "/"
}

// Page is the whole landing page with the contact card in its given state.
func Page(c *SiteContent, config PageConfig, contactCard g.Node) g.Node {
	return Layout(
		config,
		Navbar(c.Brand, c.Nav),
		Main(
			HeroSection(c.Hero),
			AboutSection(c.About),
			ServicesSection(c.Services),
			FeaturedSection(c.Featured),
			WhySection(c.Why),
			IndustriesSection(c.Industries),
			SecuritySection(c.Security),
			CaseStudySection(c.CaseStudy),
			ContactSection(c.Contact, contactCard),
			CTASection(c.CTA),
		),
		PageFooter(c.Brand, c.Footer),
	)
}
