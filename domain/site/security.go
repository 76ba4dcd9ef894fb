package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/ui"
)

func SecuritySection(s Security) g.Node {
	return section("security", "",
		Div(
			Class("grid lg:grid-cols-2 gap-16 items-start"),

			Div(
				Class("animate-on-scroll"),
				H2(Class("text-3xl md:text-5xl font-bold text-white mb-10"), g.Text(s.Title)),
				Div(
					Class("space-y-8"),
					g.Group(g.Map(s.Claims, func(it Item) g.Node {
						return Div(
							Class("flex gap-5"),
							ui.IconBadge(it.Icon, "w-12 h-12 bg-emerald-500/10 rounded-xl text-emerald-500", "w-6 h-6"),
							Div(
								H3(Class("text-lg font-bold text-white mb-1"), g.Text(it.Title)),
								P(Class("text-zinc-400 leading-relaxed"), g.Text(it.Desc)),
							),
						)
					})),
				),
			),

			Div(
				Class("p-10 bg-zinc-900 border border-zinc-800 rounded-[2rem] animate-on-scroll"),
				ui.Icon("shield-check", "w-12 h-12 text-emerald-500 mb-6"),
				H3(Class("text-2xl font-bold text-white mb-4"), g.Text(s.Privacy.Title)),
				P(Class("text-zinc-400 leading-relaxed mb-8"), g.Text(s.Privacy.Desc)),
				Div(
					Class("flex flex-wrap gap-3"),
					g.Group(g.Map(s.Privacy.Badges, func(b string) g.Node {
						return Span(
							Class("px-4 py-2 bg-zinc-950 border border-zinc-800 rounded-full text-xs font-semibold text-zinc-300"),
							g.Text(b),
						)
					})),
				),
			),
		),
	)
}

func CaseStudySection(cs CaseStudy) g.Node {
	return section("case-study", "bg-zinc-950",
		sectionHeading(cs.Title, cs.Lead),
		Div(
			Class("grid lg:grid-cols-3 bg-zinc-900 border border-zinc-800 rounded-[2rem] overflow-hidden animate-on-scroll"),

			Div(
				Class("p-10 bg-emerald-600 text-white flex flex-col justify-center"),
				Div(Class("text-6xl font-bold mb-2"), g.Text(cs.Metric)),
				Div(Class("text-emerald-100 font-semibold uppercase tracking-wider text-sm mb-8"), g.Text(cs.MetricLabel)),
				Dl(
					Class("space-y-4 text-sm"),
					Div(
						Dt(Class("text-emerald-200"), g.Text("Client")),
						Dd(Class("font-semibold"), g.Text(cs.Client)),
					),
					Div(
						Dt(Class("text-emerald-200"), g.Text("Solution")),
						Dd(Class("font-semibold"), g.Text(cs.Solution)),
					),
				),
			),

			Div(
				Class("lg:col-span-2 p-10 md:p-14"),
				H3(Class("text-2xl md:text-3xl font-bold text-white mb-6"), g.Text(cs.Heading)),
				g.Group(g.Map(cs.Paragraphs, func(p string) g.Node {
					return P(Class("text-zinc-400 leading-relaxed mb-5"), g.Text(p))
				})),
				Span(
					Class("inline-flex items-center gap-2 text-emerald-500 font-bold mt-4"),
					g.Text(cs.Link),
					ui.Icon("arrow-right", "w-4 h-4"),
				),
			),
		),
	)
}
