package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/ui"
)

func WhySection(w Why) g.Node {
	return section("why", "bg-zinc-950",
		Div(
			Class("grid lg:grid-cols-5 gap-16"),

			Div(
				Class("lg:col-span-2 animate-on-scroll"),
				H2(Class("text-3xl md:text-5xl font-bold text-white mb-6"), g.Text(w.Title)),
				P(Class("text-zinc-400 text-lg leading-relaxed mb-8"), g.Text(w.Lead)),
				BlockQuote(
					Class("border-l-4 border-emerald-500 pl-6 italic text-zinc-300"),
					g.Text(w.Quote),
				),
			),

			Div(
				Class("lg:col-span-3 grid sm:grid-cols-2 gap-6"),
				g.Group(g.Map(w.Reasons, func(it Item) g.Node {
					return Div(
						Class("p-8 bg-zinc-900 border border-zinc-800 rounded-3xl animate-on-scroll"),
						ui.IconBadge(it.Icon, "w-12 h-12 bg-zinc-800 rounded-xl text-emerald-500 mb-5", "w-6 h-6"),
						H3(Class("text-lg font-bold text-white mb-3"), g.Text(it.Title)),
						P(Class("text-zinc-400 text-sm leading-relaxed"), g.Text(it.Desc)),
					)
				})),
			),
		),
	)
}

func IndustriesSection(in Industries) g.Node {
	return section("industries", "bg-zinc-900/40 border-y border-zinc-900",
		sectionHeading(in.Title, in.Lead),
		Div(
			Class("grid sm:grid-cols-2 lg:grid-cols-4 gap-6"),
			g.Group(g.Map(in.Items, func(it Item) g.Node {
				return Div(
					Class("p-8 text-center bg-zinc-950 border border-zinc-800 rounded-3xl hover:-translate-y-1 transition-transform animate-on-scroll"),
					ui.IconBadge(it.Icon, "w-16 h-16 mx-auto bg-emerald-500/10 rounded-full text-emerald-500 mb-5", "w-8 h-8"),
					H3(Class("text-lg font-bold text-white mb-2"), g.Text(it.Title)),
					P(Class("text-zinc-500 text-sm"), g.Text(it.Desc)),
				)
			})),
		),
	)
}
