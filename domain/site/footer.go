package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(b Brand, f FooterInfo) g.Node {
	return Footer(
		Class("bg-zinc-950 border-t border-zinc-900 pt-20 pb-10"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("grid md:grid-cols-4 gap-12 mb-16"),

				Div(
					Class("md:col-span-2"),
					Logo(b),
					P(Class("text-zinc-500 mt-6 max-w-sm leading-relaxed"), g.Text(b.Tagline)),
				),

				Div(
					H4(Class("text-white font-bold mb-6"), g.Text("Quick Links")),
					Ul(
						Class("space-y-3"),
						g.Group(g.Map(f.QuickLinks, func(l PageLink) g.Node {
							return Li(A(Href(l.Href), Class("text-zinc-500 hover:text-emerald-500 transition-colors"), g.Text(l.Label)))
						})),
					),
				),

				Div(
					H4(Class("text-white font-bold mb-6"), g.Text("Contact")),
					Ul(
						Class("space-y-3 text-zinc-500"),
						g.Group(g.Map(f.ContactLines, func(line string) g.Node {
							return Li(g.Text(line))
						})),
					),
				),
			),

			Div(
				Class("pt-8 border-t border-zinc-900 flex flex-col md:flex-row justify-between items-center gap-4 text-sm text-zinc-600"),
				P(g.Text(f.Copyright)),
				Div(
					Class("flex gap-6"),
					g.Group(g.Map(f.Legal, func(l PageLink) g.Node {
						return A(Href(l.Href), Class("hover:text-zinc-400"), g.Text(l.Label))
					})),
				),
			),
		),
	)
}
