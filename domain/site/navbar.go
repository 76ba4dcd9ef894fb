package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/ui"
)

// Navbar is the fixed top bar. site.js flips data-scrolled once the page
// moves and toggles the mobile menu.
func Navbar(b Brand, nav Navigation) g.Node {
	return Nav(
		ID("navbar"),
		g.Attr("data-scrolled", "false"),
		Class("group fixed top-0 inset-x-0 z-50 py-6 transition-all duration-300 data-[scrolled=true]:py-4 data-[scrolled=true]:bg-zinc-950/90 data-[scrolled=true]:backdrop-blur-md data-[scrolled=true]:border-b data-[scrolled=true]:border-zinc-800"),

		Div(
			Class("max-w-7xl mx-auto px-6 flex items-center justify-between"),
			Logo(b),

			Div(
				Class("hidden md:flex items-center gap-8"),
				g.Group(g.Map(nav.Links, func(l PageLink) g.Node {
					return A(
						Href(l.Href),
						Class("text-sm font-medium text-zinc-400 hover:text-white transition-colors"),
						g.Text(l.Label),
					)
				})),
				A(
					Href(nav.CTA.Href),
					Class("bg-emerald-600 hover:bg-emerald-500 text-white px-5 py-2.5 rounded-lg text-sm font-semibold transition-all shadow-lg shadow-emerald-900/20"),
					g.Text(nav.CTA.Label),
				),
			),

			Button(
				ID("nav-toggle"),
				Type("button"),
				Class("md:hidden text-white"),
				Aria("label", "Toggle menu"),
				Aria("expanded", "false"),
				Aria("controls", "mobile-menu"),
				ui.Icon("menu", "w-7 h-7"),
			),
		),

		Div(
			ID("mobile-menu"),
			Class("hidden md:hidden absolute top-full inset-x-0 bg-zinc-900 border-b border-zinc-800 p-6 flex-col gap-4"),
			g.Group(g.Map(nav.Links, func(l PageLink) g.Node {
				return A(
					Href(l.Href),
					Class("text-lg font-medium text-zinc-300"),
					g.Text(l.Label),
				)
			})),
			A(
				Href(nav.CTA.Href),
				Class("bg-emerald-600 text-white px-5 py-3 rounded-lg text-center font-semibold"),
				g.Text(nav.CTA.Label),
			),
		),
	)
}
