package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/ui"
)

func ServicesSection(s Services) g.Node {
	return section("services", "bg-zinc-900/40 border-y border-zinc-900",
		sectionHeading(s.Title, s.Lead),
		Div(
			Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
			g.Group(g.Map(s.Items, serviceCard)),
		),
	)
}

func serviceCard(it Item) g.Node {
	return Div(
		Class("group p-8 bg-zinc-950 border border-zinc-800 rounded-3xl hover:border-emerald-500/50 transition-all animate-on-scroll"),
		ui.IconBadge(it.Icon, "w-14 h-14 bg-emerald-500/10 rounded-2xl text-emerald-500 mb-6 group-hover:bg-emerald-600 group-hover:text-white transition-colors", "w-7 h-7"),
		H3(Class("text-xl font-bold text-white mb-3"), g.Text(it.Title)),
		P(Class("text-zinc-400 mb-6 leading-relaxed"), g.Text(it.Desc)),
		g.If(it.Benefit != "",
			Div(
				Class("pt-6 border-t border-zinc-800"),
				P(
					Class("text-sm text-emerald-400"),
					Span(Class("font-bold"), g.Text("Benefit: ")),
					g.Text(it.Benefit),
				),
			),
		),
	)
}

func FeaturedSection(f Featured) g.Node {
	return section("solutions", "",
		Div(
			Class("relative overflow-hidden rounded-[2.5rem] bg-gradient-to-br from-emerald-900/30 to-zinc-900 border border-emerald-500/20 p-8 md:p-16"),
			Div(
				Class("grid lg:grid-cols-2 gap-12 items-center"),

				Div(
					Class("animate-on-scroll"),
					Span(Class("text-emerald-400 text-sm font-bold uppercase tracking-wider"), g.Text(f.Eyebrow)),
					H2(Class("text-3xl md:text-5xl font-bold text-white mt-4 mb-6"), g.Text(f.Title)),
					P(Class("text-zinc-300 text-lg leading-relaxed mb-8"), g.Text(f.Lead)),
					Ul(
						Class("space-y-4 mb-10"),
						g.Group(g.Map(f.Bullets, func(b string) g.Node {
							return Li(
								Class("flex items-start gap-3 text-zinc-300"),
								ui.Icon("check-circle-2", "w-5 h-5 text-emerald-500 mt-0.5 shrink-0"),
								g.Text(b),
							)
						})),
					),
					primaryButton(f.CTA, "chevron-right"),
				),

				Div(
					Class("relative animate-on-scroll"),
					Div(
						Class("aspect-video rounded-2xl bg-zinc-950 border border-zinc-800 flex items-center justify-center"),
						ui.Icon("mic", "w-16 h-16 text-emerald-500/60"),
					),
					Div(
						Class("absolute -bottom-6 right-6 flex gap-3"),
						g.Group(g.Map(f.Stats, func(s string) g.Node {
							return Span(
								Class("px-4 py-2 bg-zinc-900 border border-zinc-800 rounded-lg text-xs font-mono text-emerald-400"),
								g.Text(s),
							)
						})),
					),
				),
			),
		),
	)
}
