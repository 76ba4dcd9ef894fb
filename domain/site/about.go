package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/ui"
)

func AboutSection(a About) g.Node {
	return section("about", "bg-zinc-950",
		Div(
			Class("grid lg:grid-cols-2 gap-16 items-center"),

			Div(
				Class("animate-on-scroll"),
				H2(
					Class("text-3xl md:text-5xl font-bold text-white mb-8 leading-tight"),
					g.Text(a.Title+" "),
					Span(Class("text-emerald-500"), g.Text(a.Accent)),
				),
				g.Group(g.Map(a.Paragraphs, func(p string) g.Node {
					return P(Class("text-zinc-400 text-lg leading-relaxed mb-6"), g.Text(p))
				})),
				Div(
					Class("grid sm:grid-cols-2 gap-6 mt-10"),
					g.Group(g.Map(a.Highlights, func(it Item) g.Node {
						return Div(
							Class("p-6 bg-zinc-900 border border-zinc-800 rounded-2xl"),
							H4(Class("text-white font-bold text-lg mb-2"), g.Text(it.Title)),
							P(Class("text-zinc-500 text-sm"), g.Text(it.Desc)),
						)
					})),
				),
			),

			// decorative panel in place of photography
			Div(
				Class("relative animate-on-scroll"),
				Div(Class("aspect-square rounded-[2.5rem] bg-gradient-to-br from-emerald-900/40 via-zinc-900 to-zinc-950 border border-zinc-800")),
				Div(
					Class("absolute -bottom-8 -left-4 md:-left-8 max-w-xs p-6 bg-zinc-900 border border-zinc-800 rounded-2xl shadow-2xl"),
					Div(
						Class("flex items-center gap-3 mb-3"),
						ui.IconBadge(a.Badge.Icon, "w-10 h-10 bg-emerald-500/10 rounded-lg text-emerald-500", "w-5 h-5"),
						Span(Class("text-white font-bold"), g.Text(a.Badge.Title)),
					),
					P(Class("text-zinc-400 text-sm"), g.Text(a.Badge.Desc)),
				),
			),
		),
	)
}
