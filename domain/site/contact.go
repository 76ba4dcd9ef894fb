package site

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/rahulchoudhary2961/MediLabsAI/internal/ui"
)

// ContactSection wraps the live contact card with the office details.
func ContactSection(ci ContactInfo, card g.Node) g.Node {
	return section("contact", "bg-zinc-900/40 border-t border-zinc-900",
		Div(
			Class("grid lg:grid-cols-2 gap-16"),

			Div(
				Class("animate-on-scroll"),
				H2(Class("text-3xl md:text-5xl font-bold text-white mb-6"), g.Text(ci.Title)),
				P(Class("text-zinc-400 text-lg leading-relaxed mb-10"), g.Text(ci.Lead)),
				Div(
					Class("space-y-6"),
					g.Group(g.Map(ci.Details, func(it Item) g.Node {
						return Div(
							Class("flex items-center gap-4"),
							ui.IconBadge(it.Icon, "w-12 h-12 bg-zinc-900 border border-zinc-800 rounded-xl text-emerald-500", "w-5 h-5"),
							Div(
								P(Class("text-xs font-bold text-zinc-500 uppercase tracking-wider"), g.Text(it.Title)),
								P(Class("text-white font-medium"), g.Text(it.Desc)),
							),
						)
					})),
				),
			),

			card,
		),
	)
}

func CTASection(c CTA) g.Node {
	return section("", "",
		Div(
			Class("relative overflow-hidden text-center rounded-[2.5rem] bg-emerald-600 px-8 py-16 md:py-20 animate-on-scroll"),
			Div(Class("absolute -top-24 -right-24 w-72 h-72 bg-white/10 rounded-full blur-3xl")),
			H2(Class("relative text-3xl md:text-5xl font-bold text-white mb-6"), g.Text(c.Title)),
			P(Class("relative text-emerald-50 text-lg max-w-2xl mx-auto mb-10"), g.Text(c.Lead)),
			A(
				Href(c.Button.Href),
				Class("relative inline-flex items-center gap-2 bg-white text-emerald-700 hover:bg-emerald-50 px-8 py-4 rounded-xl font-bold transition-all"),
				g.Text(c.Button.Label),
				ui.Icon("arrow-right", "w-5 h-5"),
			),
		),
	)
}
